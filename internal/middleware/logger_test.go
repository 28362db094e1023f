package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var logs bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(original)

	e := echo.New()
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: func() string { return "req-1" }}))
	e.Use(Logger)
	e.GET("/docs/:name", func(c echo.Context) error {
		With(c, "reference", c.Param("name"))
		FromContext(c.Request().Context()).Info("rendering")
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/usefieldarray", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	out := logs.String()
	assert.Contains(t, out, "msg=rendering")
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/docs/usefieldarray")
	assert.Contains(t, out, "reference=usefieldarray")
}

func TestFromContext_DefaultsToSlogDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, slog.Default(), FromContext(req.Context()))
}
