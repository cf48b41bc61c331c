package model

// Region is a geographic area the catalog groups campsites under.
// Regions are loaded once at startup and never mutated.
type Region struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
