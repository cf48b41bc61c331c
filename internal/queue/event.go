// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published after a booking is appended to the
// ledger.  It carries the full pricing outcome so downstream consumers
// can log or run loyalty analytics without reading the ledger.  The
// event id is a uuid used for consumer-side deduplication.
type BookingCreatedEvent struct {
	EventID       string `json:"event_id"`
	BookingID     string `json:"booking_id"`
	UserID        string `json:"user_id"`
	UnitID        string `json:"unit_id"`
	UnitName      string `json:"unit_name"`
	CampsiteName  string `json:"campsite_name"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Guests        int    `json:"guests"`
	OriginalPrice int    `json:"original_price"`
	FinalPrice    int    `json:"final_price"`
	UsedPoints    int    `json:"used_points"`
	EarnedPoints  int    `json:"earned_points"`
	InviteCode    string `json:"invite_code,omitempty"`
	CreatedAt     string `json:"created_at"`
}
