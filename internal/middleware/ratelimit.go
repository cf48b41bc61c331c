package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// RateLimit returns a fixed-window limiter backed by Redis: one counter
// per client ip and route, reset every minute.  When rdb is nil the
// middleware is a pass-through so the server keeps working without
// Redis.  Redis errors fail open for the same reason.
func RateLimit(rdb *redis.Client, perMinute int) echo.MiddlewareFunc {
	if rdb == nil || perMinute <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			window := time.Now().Unix() / 60
			key := fmt.Sprintf("rl:%s:%s:%d", c.RealIP(), c.Path(), window)

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				rdb.Expire(ctx, key, time.Minute)
			}
			if n > int64(perMinute) {
				c.Response().Header().Set("Retry-After", "60")
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
