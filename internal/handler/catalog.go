package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetRegions handles GET /v1/regions.
func (h *Handler) GetRegions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Catalog().Regions())
}

// GetCampsitesByRegion handles GET /v1/regions/:id/campsites.  An
// unknown region yields an empty list rather than a 404, matching the
// catalog's filter semantics.
func (h *Handler) GetCampsitesByRegion(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Catalog().CampsitesByRegion(c.Param("id")))
}

// GetUnits handles GET /v1/units and returns every unit across all
// campsites.
func (h *Handler) GetUnits(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Catalog().AllUnits())
}

// GetUnit handles GET /v1/units/:id.
func (h *Handler) GetUnit(c echo.Context) error {
	unit, err := h.Store.Catalog().UnitByID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, unit)
}

// GetMemberships handles GET /v1/memberships and lists the membership
// products.
func (h *Handler) GetMemberships(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Catalog().Memberships())
}
