package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/orrynara/timebank/internal/model"
	"github.com/orrynara/timebank/internal/queue"
	"github.com/orrynara/timebank/internal/repository"
	queue_publisher "github.com/orrynara/timebank/internal/service"
)

// bookingBody is the request payload for booking creation and price
// quoting.  Dates use the YYYY-MM-DD wire format.
type bookingBody struct {
	UnitID      string `json:"unit_id"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Guests      int    `json:"guests"`
	PointsToUse int    `json:"points_to_use"`
	InviteCode  string `json:"invite_code"`
}

// CreateBooking handles POST /v1/bookings.  It validates the payload,
// delegates to the ledger and, when a broker is configured, publishes
// a booking.created event on a best-effort basis.  The event can be
// lost without affecting the booking itself.
func (h *Handler) CreateBooking(c echo.Context) error {
	uid, err := h.resolveUser(c)
	if err != nil {
		return fail(c, err)
	}
	var body bookingBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	checkIn, err := time.Parse(dateLayout, body.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be YYYY-MM-DD"})
	}
	checkOut, err := time.Parse(dateLayout, body.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be YYYY-MM-DD"})
	}

	b, err := h.Store.CreateBooking(repository.BookingRequest{
		UserID:      uid,
		UnitID:      body.UnitID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Guests:      body.Guests,
		PointsToUse: body.PointsToUse,
		InviteCode:  body.InviteCode,
	})
	if err != nil {
		return fail(c, err)
	}
	h.publishBookingCreated(b)
	return c.JSON(http.StatusCreated, b)
}

// ListBookings handles GET /v1/bookings and returns the caller's
// bookings in creation order.
func (h *Handler) ListBookings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.BookingsByUser(userID(c)))
}

// ListAllBookings handles GET /v1/admin/bookings and returns the whole
// ledger.
func (h *Handler) ListAllBookings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Bookings())
}

// QuotePrice handles POST /v1/price/quote.  It resolves the price a
// booking would have without creating it or mutating any balance.
func (h *Handler) QuotePrice(c echo.Context) error {
	uid, err := h.resolveUser(c)
	if err != nil {
		return fail(c, err)
	}
	var body bookingBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	q, err := h.Store.QuotePrice(uid, body.UnitID, body.InviteCode, body.PointsToUse)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, q)
}

// publishBookingCreated emits a booking.created event in the
// background.  Failures are already logged by the publisher.
func (h *Handler) publishBookingCreated(b model.Booking) {
	if h.AMQPURL == "" {
		return
	}
	ev := queue.BookingCreatedEvent{
		EventID:       uuid.NewString(),
		BookingID:     b.ID,
		UserID:        b.UserID,
		UnitID:        b.UnitID,
		CheckIn:       b.CheckIn.Format(dateLayout),
		CheckOut:      b.CheckOut.Format(dateLayout),
		Guests:        b.Guests,
		OriginalPrice: b.OriginalPrice,
		FinalPrice:    b.FinalPrice,
		UsedPoints:    b.UsedPoints,
		EarnedPoints:  b.EarnedPoints,
		InviteCode:    b.InviteCode,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
	if unit, err := h.Store.Catalog().UnitByID(b.UnitID); err == nil {
		ev.UnitName = unit.Name
	}
	if cs, err := h.Store.Catalog().CampsiteByUnit(b.UnitID); err == nil {
		ev.CampsiteName = cs.Name
	}
	go func() {
		_ = queue_publisher.PublishBookingCreated(context.Background(), h.AMQPURL, ev)
	}()
}
