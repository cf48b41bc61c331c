package model

// Campsite is a physical glamping site located within a region.  A
// campsite owns its units: every unit belongs to exactly one campsite,
// and the catalog stores units inline on the owning campsite.  The
// RegionID field is a non-owning back-reference by id.
//
// Fields:
//  ID          – catalog identifier (e.g. "C001").
//  RegionID    – id of the containing region.
//  Name        – display name of the site.
//  Description – location and mood description shown in listings.
//  Units       – rentable units owned by this campsite, in catalog order.
type Campsite struct {
	ID          string `json:"id"`
	RegionID    string `json:"region_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Units       []Unit `json:"units"`
}
