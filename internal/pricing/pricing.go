// Package pricing implements the booking price and reward computation.
// It is a pure calculation layer: callers resolve the unit, the
// requester and the inviter first, then call Compute with plain values.
// The ledger runs Compute inside its critical section and commits the
// resulting mutations only when no error is returned.
package pricing

import "errors"

// Discount and reward percentages, applied to integer won amounts with
// floor division.  Fractional remainders are discarded, never banked.
const (
	inviteDiscountPct = 5  // invite-code discount on the base price
	rewardPct         = 5  // requester reward on the paid amount
	referralPct       = 10 // inviter reward on the paid amount
)

// ErrInsufficientPoints is returned when a requester asks to redeem
// more points than their current balance holds.
var ErrInsufficientPoints = errors.New("points to use exceed balance")

// Input carries everything Compute needs, already resolved by the
// caller.  HasInviter must be false when the supplied invite code did
// not resolve to an existing user or resolved to the requester.
type Input struct {
	BasePrice   int  // nightly base price of the unit, in won
	IsMember    bool // membership flag of the requester
	HasInviter  bool // a valid foreign invite code was supplied
	Balance     int  // requester's point balance at booking time
	PointsToUse int  // points the requester asked to redeem
}

// Quote is the fully resolved outcome of a price computation.  All
// amounts are integer won; FinalPrice is never negative and UsedPoints
// never exceeds either Input.PointsToUse or the price it covered.
type Quote struct {
	OriginalPrice int `json:"original_price"`
	FinalPrice    int `json:"final_price"`
	UsedPoints    int `json:"used_points"`
	EarnedPoints  int `json:"earned_points"`
	InviterReward int `json:"inviter_reward"`
}

// Compute resolves a price using the fixed rule order:
//
//  1. the original price is the unit's nightly base price
//  2. members pay zero, full stop: no discounts stack, no points move
//  3. a resolved inviter grants a 5% discount, floored to whole won
//  4. redeemed points reduce the running price; the effective debit is
//     clamped so the price never goes below zero
//  5. when the final price is positive the requester earns 5% of it
//     and a resolved inviter earns 10% of it
//
// Multi-night stays are not prorated: the price covers one night
// regardless of the range length.  Asking to redeem more points than
// the balance holds fails with ErrInsufficientPoints; a negative
// PointsToUse is treated the same way.
func Compute(in Input) (Quote, error) {
	q := Quote{OriginalPrice: in.BasePrice}

	if in.IsMember {
		return q, nil
	}

	price := in.BasePrice
	if in.HasInviter {
		price -= price * inviteDiscountPct / 100
	}

	if in.PointsToUse < 0 || in.PointsToUse > in.Balance {
		return Quote{}, ErrInsufficientPoints
	}
	used := in.PointsToUse
	if used > price {
		used = price
	}
	price -= used

	q.FinalPrice = price
	q.UsedPoints = used
	if price > 0 {
		q.EarnedPoints = price * rewardPct / 100
		if in.HasInviter {
			q.InviterReward = price * referralPct / 100
		}
	}
	return q, nil
}
