package middleware

// identity.go resolves the caller identity for every request.  There is
// no real authentication in this demo: the identity is taken from the
// X-User-ID header and checked against a static allow-list.  A missing
// header maps to the shared "guest" identity.

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GuestID is the identity assigned to requests without an X-User-ID
// header.  Handlers provision a guest user record for it on demand.
const GuestID = "guest"

// Identity returns middleware that stores the caller's user id in the
// echo context under "user_id".  When the allow-list is non-empty, ids
// outside it are rejected with 403; the guest identity is always
// accepted.
func Identity(allowed []string) echo.MiddlewareFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, id := range allowed {
		allowedSet[id] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get("X-User-ID")
			if id == "" {
				id = GuestID
			}
			if id != GuestID && len(allowedSet) > 0 {
				if _, ok := allowedSet[id]; !ok {
					return c.JSON(http.StatusForbidden, echo.Map{"error": "user not allowed"})
				}
			}
			c.Set("user_id", id)
			return next(c)
		}
	}
}
