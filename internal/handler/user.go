package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Me handles GET /v1/me.  It returns the caller's profile including
// the point balance and invite code.  A first-time guest identity is
// provisioned on the fly; an unknown named identity is a 404.
func (h *Handler) Me(c echo.Context) error {
	uid, err := h.resolveUser(c)
	if err != nil {
		return fail(c, err)
	}
	u, err := h.Store.GetUser(uid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// JoinMembership handles POST /v1/membership/join.  Joining twice is a
// no-op, so the handler always answers 200 with the current state.
func (h *Handler) JoinMembership(c echo.Context) error {
	uid, err := h.resolveUser(c)
	if err != nil {
		return fail(c, err)
	}
	u, err := h.Store.JoinMembership(uid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
