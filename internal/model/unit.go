package model

// Unit is a single rentable accommodation (caravan, capsule or cabin)
// belonging to a campsite.  Prices are integer Korean won for one
// night; there is no minor currency unit.  Units are immutable after
// catalog load.
//
// Fields:
//  ID        – catalog identifier (e.g. "U101").
//  CampsiteID – id of the owning campsite.
//  Name      – display name of the unit.
//  Price     – nightly base price in won, always positive.
//  MaxGuests – maximum number of guests the unit sleeps.
//  Rating    – average review rating out of 5.
//  Tags      – marketing tags ("Luxury", "Ocean View", ...).
type Unit struct {
	ID         string   `json:"id"`
	CampsiteID string   `json:"campsite_id"`
	Name       string   `json:"name"`
	Price      int      `json:"price"`
	MaxGuests  int      `json:"max_guests"`
	Rating     float64  `json:"rating"`
	Tags       []string `json:"tags"`
}
