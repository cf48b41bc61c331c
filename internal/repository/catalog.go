package repository

import "github.com/orrynara/timebank/internal/model"

// Catalog is the read-only inventory of regions, campsites and units.
// It is built once at process start and never mutated afterwards, so
// its accessors need no locking.  The booking ledger keeps a reference
// to it for unit resolution.
type Catalog struct {
	regions     []model.Region
	campsites   []model.Campsite
	memberships []model.MembershipProduct
}

// NewCatalog builds a catalog from already-assembled seed data.  The
// caller must not mutate the slices after handing them over.
func NewCatalog(regions []model.Region, campsites []model.Campsite, memberships []model.MembershipProduct) *Catalog {
	return &Catalog{regions: regions, campsites: campsites, memberships: memberships}
}

// Regions returns all regions in catalog order.
func (c *Catalog) Regions() []model.Region {
	return c.regions
}

// CampsitesByRegion returns the campsites located in the given region.
// An unknown region id yields an empty slice, not an error.
func (c *Catalog) CampsitesByRegion(regionID string) []model.Campsite {
	out := make([]model.Campsite, 0, len(c.campsites))
	for _, cs := range c.campsites {
		if cs.RegionID == regionID {
			out = append(out, cs)
		}
	}
	return out
}

// AllUnits returns every unit across all campsites, flattened in
// catalog order.
func (c *Catalog) AllUnits() []model.Unit {
	var out []model.Unit
	for _, cs := range c.campsites {
		out = append(out, cs.Units...)
	}
	return out
}

// UnitByID scans all campsites for the unit with the given id.  Linear
// scans are fine at this data scale.
func (c *Catalog) UnitByID(id string) (model.Unit, error) {
	for _, cs := range c.campsites {
		for _, u := range cs.Units {
			if u.ID == id {
				return u, nil
			}
		}
	}
	return model.Unit{}, ErrUnitNotFound
}

// CampsiteByUnit returns the campsite owning the given unit.  It is
// used to enrich booking events with the site name.
func (c *Catalog) CampsiteByUnit(unitID string) (model.Campsite, error) {
	for _, cs := range c.campsites {
		for _, u := range cs.Units {
			if u.ID == unitID {
				return cs, nil
			}
		}
	}
	return model.Campsite{}, ErrUnitNotFound
}

// Memberships returns the purchasable membership products.
func (c *Catalog) Memberships() []model.MembershipProduct {
	return c.memberships
}
