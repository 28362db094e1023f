package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// limiterIdleExpiry drops the bucket of a client that has been quiet this long.
const limiterIdleExpiry = 3 * time.Minute

// RateLimiter limits requests per client IP for the routes it is applied to.
// perMinute is the sustained rate; bursts up to the same amount, and at least
// one request, are allowed.
// Rejections go through the HTTP error handler, so htmx, JSON and browser
// clients each get their usual error format, plus a Retry-After header.
func RateLimiter(perMinute float64) echo.MiddlewareFunc {
	retryAfter := strconv.Itoa(int(time.Minute.Seconds()/perMinute) + 1)

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perMinute / 60),
			Burst:     max(1, int(perMinute)),
			ExpiresIn: limiterIdleExpiry,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("Rate limit exceeded", "client", identifier, "path", c.Path())
			c.Response().Header().Set("Retry-After", retryAfter)
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	})
}
