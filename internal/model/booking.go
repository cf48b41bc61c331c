package model

import "time"

// BookingConfirmed is the status every successfully created booking
// carries.  No cancellation or modification operation exists, so it is
// currently the only status value the ledger produces.
const BookingConfirmed = "CONFIRMED"

// Booking records a confirmed stay in a unit over a date range.  Ids
// are dense and derived from the ledger position at creation time
// ("B0001", "B0002", ...), so they are only stable because deletion is
// unsupported.  A booking is immutable once appended to the ledger.
//
// Fields:
//  ID            – sequential ledger-derived identifier.
//  UnitID        – unit being booked.
//  UserID        – paying user.
//  CheckIn       – first night of the stay (inclusive).
//  CheckOut      – departure date, strictly after CheckIn (exclusive).
//  Guests        – guest count, validated against the unit capacity.
//  OriginalPrice – nightly base price before any discount, in won.
//  FinalPrice    – amount actually charged, never negative.
//  UsedPoints    – points debited from the user for this booking.
//  EarnedPoints  – points credited to the user for this booking.
//  InviteCode    – referral code redeemed at booking time, if any.
//  Status        – booking status, always CONFIRMED.
//  CreatedAt     – ledger append timestamp.
type Booking struct {
	ID            string    `json:"id"`
	UnitID        string    `json:"unit_id"`
	UserID        string    `json:"user_id"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	Guests        int       `json:"guests"`
	OriginalPrice int       `json:"original_price"`
	FinalPrice    int       `json:"final_price"`
	UsedPoints    int       `json:"used_points"`
	EarnedPoints  int       `json:"earned_points"`
	InviteCode    string    `json:"invite_code,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
