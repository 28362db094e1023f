package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey string

const loggerKey = contextKey("logger")

// Logger injects a request-scoped logger into the request context, carrying
// the request ID set by the RequestID middleware along with the method and
// path. It must run after RequestID.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		requestLogger := slog.Default().With(
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"method", req.Method,
			"path", req.URL.Path,
		)
		c.SetRequest(req.WithContext(context.WithValue(req.Context(), loggerKey, requestLogger)))
		return next(c)
	}
}

// With adds attributes to the request-scoped logger for the rest of the
// request.
func With(c echo.Context, args ...any) *slog.Logger {
	req := c.Request()
	logger := FromContext(req.Context()).With(args...)
	c.SetRequest(req.WithContext(context.WithValue(req.Context(), loggerKey, logger)))
	return logger
}

// FromContext returns the request-scoped logger, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
