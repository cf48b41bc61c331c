package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/orrynara/timebank/internal/model"
	"github.com/orrynara/timebank/internal/pricing"
)

// MembershipPayback is the fixed point credit granted once when a user
// joins the membership programme.
const MembershipPayback = 50000

// Store owns all mutable state: the user table and the append-only
// booking ledger.  A single coarse mutex guards both, because booking
// creation reads and writes shared point balances and appends to the
// shared ledger in one step.  Price resolution happens inside the
// critical section and mutations are committed only after it fully
// succeeds, so a failed request observes no state change at all.
//
// All exported methods return copies; callers never see pointers into
// the store's internal state.
type Store struct {
	catalog *Catalog

	mu       sync.Mutex
	users    map[string]*model.User
	byInvite map[string]string // invite code -> user id
	bookings []model.Booking
}

// NewStore creates an empty ledger bound to the given catalog.
func NewStore(catalog *Catalog) *Store {
	return &Store{
		catalog:  catalog,
		users:    make(map[string]*model.User),
		byInvite: make(map[string]string),
	}
}

// Catalog exposes the read-only inventory the store was built with.
func (s *Store) Catalog() *Catalog { return s.catalog }

// BookingRequest carries everything needed to create a booking.  The
// invite code and points are optional; zero values mean "none".
type BookingRequest struct {
	UserID      string
	UnitID      string
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	PointsToUse int
	InviteCode  string
}

// RegisterUser creates a user under an explicit id with a freshly
// generated invite code.  It fails with ErrUserExists when the id is
// taken.
func (s *Store) RegisterUser(id, name, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; ok {
		return model.User{}, ErrUserExists
	}
	u, err := s.addUserLocked(id, name, email)
	if err != nil {
		return model.User{}, err
	}
	return *u, nil
}

// ProvisionGuest creates a lightweight guest record for the given id,
// or returns the existing user when one is already present.  This is
// the explicit replacement for the old implicit fallback inside
// booking creation: callers serving an anonymous identity invoke it
// deliberately before booking.
func (s *Store) ProvisionGuest(id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return *u, nil
	}
	u, err := s.addUserLocked(id, "Guest", "")
	if err != nil {
		return model.User{}, err
	}
	return *u, nil
}

func (s *Store) addUserLocked(id, name, email string) (*model.User, error) {
	code, err := s.uniqueInviteCode()
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:         id,
		Name:       name,
		Email:      email,
		InviteCode: code,
		CreatedAt:  time.Now().UTC(),
	}
	s.users[id] = u
	s.byInvite[code] = id
	return u, nil
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return *u, nil
}

// UserByInviteCode resolves an invite code to its owner.
func (s *Store) UserByInviteCode(code string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byInvite[code]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return *s.users[id], nil
}

// JoinMembership flips the user's membership flag and credits the
// fixed signup payback.  It is idempotent: joining twice is a no-op
// that returns the unchanged user, not an error.
func (s *Store) JoinMembership(id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	if u.IsMember {
		return *u, nil
	}
	u.IsMember = true
	u.Points += MembershipPayback
	return *u, nil
}

// QuotePrice resolves the price for a prospective booking without
// mutating anything.  It is the read-only twin of CreateBooking and
// shares its unit, user and invite-code resolution.
func (s *Store) QuotePrice(userID, unitID, inviteCode string, pointsToUse int) (pricing.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return pricing.Quote{}, ErrUserNotFound
	}
	unit, err := s.catalog.UnitByID(unitID)
	if err != nil {
		return pricing.Quote{}, err
	}
	inviter := s.resolveInviterLocked(inviteCode, userID)
	return pricing.Compute(pricing.Input{
		BasePrice:   unit.Price,
		IsMember:    u.IsMember,
		HasInviter:  inviter != nil,
		Balance:     u.Points,
		PointsToUse: pointsToUse,
	})
}

// CreateBooking validates the request, resolves the price and commits
// the point mutations and the ledger append atomically.  The checks
// run in a fixed order: dates, user, unit, capacity, overlap, then
// pricing.  Nothing is mutated until every step has succeeded.
func (s *Store) CreateBooking(req BookingRequest) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !req.CheckOut.After(req.CheckIn) {
		return model.Booking{}, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidInput)
	}
	u, ok := s.users[req.UserID]
	if !ok {
		return model.Booking{}, ErrUserNotFound
	}
	unit, err := s.catalog.UnitByID(req.UnitID)
	if err != nil {
		return model.Booking{}, err
	}
	if req.Guests < 1 || req.Guests > unit.MaxGuests {
		return model.Booking{}, fmt.Errorf("%w: guest count must be between 1 and %d", ErrInvalidInput, unit.MaxGuests)
	}
	if s.overlapsLocked(req.UnitID, req.CheckIn, req.CheckOut) {
		return model.Booking{}, ErrBookingConflict
	}

	inviter := s.resolveInviterLocked(req.InviteCode, req.UserID)
	q, err := pricing.Compute(pricing.Input{
		BasePrice:   unit.Price,
		IsMember:    u.IsMember,
		HasInviter:  inviter != nil,
		Balance:     u.Points,
		PointsToUse: req.PointsToUse,
	})
	if err != nil {
		return model.Booking{}, err
	}

	// Commit: from here on nothing can fail.  The code is recorded only
	// when it shaped the price, which never happens on the member path.
	// A referral counts whenever the final price is positive, even when
	// the floored reward comes out to zero won.
	u.Points += q.EarnedPoints - q.UsedPoints
	usedCode := ""
	if inviter != nil && !u.IsMember {
		usedCode = req.InviteCode
		if q.FinalPrice > 0 {
			inviter.Points += q.InviterReward
			inviter.ReferralCount++
			inviter.TotalEarnings += q.InviterReward
		}
	}
	b := model.Booking{
		ID:            fmt.Sprintf("B%04d", len(s.bookings)+1),
		UnitID:        unit.ID,
		UserID:        u.ID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Guests:        req.Guests,
		OriginalPrice: q.OriginalPrice,
		FinalPrice:    q.FinalPrice,
		UsedPoints:    q.UsedPoints,
		EarnedPoints:  q.EarnedPoints,
		InviteCode:    usedCode,
		Status:        model.BookingConfirmed,
		CreatedAt:     time.Now().UTC(),
	}
	s.bookings = append(s.bookings, b)
	return b, nil
}

// Bookings returns the whole ledger in creation order.
func (s *Store) Bookings() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// BookingsByUser returns the user's bookings in creation order.
func (s *Store) BookingsByUser(userID string) []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// resolveInviterLocked maps an invite code to its owner.  A code that
// does not resolve, or that belongs to the requester, is treated as
// absent.  Callers must hold the store mutex.
func (s *Store) resolveInviterLocked(code, requesterID string) *model.User {
	if code == "" {
		return nil
	}
	id, ok := s.byInvite[code]
	if !ok || id == requesterID {
		return nil
	}
	return s.users[id]
}

// overlapsLocked reports whether a CONFIRMED booking for the unit
// overlaps the half-open interval [in, out).
func (s *Store) overlapsLocked(unitID string, in, out time.Time) bool {
	for _, b := range s.bookings {
		if b.UnitID != unitID || b.Status != model.BookingConfirmed {
			continue
		}
		if in.Before(b.CheckOut) && b.CheckIn.Before(out) {
			return true
		}
	}
	return false
}
