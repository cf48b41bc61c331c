package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/orrynara/timebank/internal/config"
	"github.com/orrynara/timebank/internal/handler"
	"github.com/orrynara/timebank/internal/middleware"
)

// RegisterRoutes wires every endpoint of the booking API onto the
// provided Echo instance.  The public catalog routes get the optional
// Redis-backed cache and rate limiter; everything under /v1 runs the
// identity middleware so handlers always see a caller id.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, cfg config.Config, rdb *redis.Client) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.Use(middleware.Identity(cfg.AllowedUsers))

	// Read-only catalog.  These never mutate state, so they are safe
	// to cache and are the only routes worth rate limiting in a demo.
	catalog := v1.Group("")
	catalog.Use(middleware.RateLimit(rdb, cfg.RateLimit))
	catalog.Use(middleware.CatalogCache(rdb, cfg.CacheTTL))
	catalog.GET("/regions", h.GetRegions)
	catalog.GET("/regions/:id/campsites", h.GetCampsitesByRegion)
	catalog.GET("/units", h.GetUnits)
	catalog.GET("/units/:id", h.GetUnit)
	catalog.GET("/memberships", h.GetMemberships)

	// Profile and membership enrollment.
	v1.GET("/me", h.Me)
	v1.POST("/membership/join", h.JoinMembership)

	// Pricing and the booking ledger.
	v1.POST("/price/quote", h.QuotePrice)
	v1.POST("/bookings", h.CreateBooking)
	v1.GET("/bookings", h.ListBookings)
	v1.GET("/admin/bookings", h.ListAllBookings)

	// Investor ROI report.
	v1.GET("/investor/roi", h.InvestorROI)
}
