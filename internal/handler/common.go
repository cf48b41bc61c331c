package handler // handler defines the HTTP handlers for the booking API

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orrynara/timebank/internal/middleware"
	"github.com/orrynara/timebank/internal/pricing"
	"github.com/orrynara/timebank/internal/repository"
)

// dateLayout is the wire format for check-in/check-out dates.
const dateLayout = "2006-01-02"

// Handler bundles the store and the optional broker URL used for
// booking events.  All state lives in the store; the handler itself is
// stateless and safe for concurrent use.
type Handler struct {
	Store   *repository.Store
	AMQPURL string // empty disables event publishing
}

// New constructs a Handler.  The store must be non-nil.
func New(store *repository.Store, amqpURL string) *Handler {
	if store == nil {
		panic("nil store passed to handler.New")
	}
	return &Handler{Store: store, AMQPURL: amqpURL}
}

// userID extracts the caller identity placed in the context by the
// identity middleware.  It falls back to the guest identity so the
// handlers behave sensibly even without the middleware installed.
func userID(c echo.Context) string {
	if v, ok := c.Get("user_id").(string); ok && v != "" {
		return v
	}
	return middleware.GuestID
}

// resolveUser looks the caller up and provisions a guest record when
// the caller is the anonymous guest identity seen for the first time.
// Named identities must already exist.  Guest provisioning is the
// explicit operation the ledger exposes for exactly this purpose.
func (h *Handler) resolveUser(c echo.Context) (string, error) {
	uid := userID(c)
	if _, err := h.Store.GetUser(uid); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) && uid == middleware.GuestID {
			if _, err := h.Store.ProvisionGuest(uid); err != nil {
				return "", err
			}
			return uid, nil
		}
		return "", err
	}
	return uid, nil
}

// fail maps repository and pricing sentinels onto HTTP statuses and
// writes a JSON error body.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrUnitNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrInvalidInput),
		errors.Is(err, pricing.ErrInsufficientPoints):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrBookingConflict),
		errors.Is(err, repository.ErrUserExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
