package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/middleware"
	"github.com/nfrund/formdocs/internal/module"
	"github.com/nfrund/formdocs/internal/registry"
)

// BuilderModule serves the form builder page.
type BuilderModule struct {
	module.BaseModule
}

// New creates a new instance of the BuilderModule.
func New() *BuilderModule {
	return &BuilderModule{}
}

// Name returns the unique name for the module.
func (m *BuilderModule) Name() string {
	return "builder"
}

// Boot registers the HTTP routes for the form builder. Changes are rate
// limited per client.
func (m *BuilderModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting BuilderModule: Setting up routes...")

	v, err := NewValidator()
	if err != nil {
		return fmt.Errorf("builder validator: %w", err)
	}
	h := NewHandler(registry.MustGet(reg, registry.RendererKey), v)
	limit := middleware.RateLimiter(reg.Config().GetRateLimit())

	g.GET("/form-builder", h.Page)
	g.POST("/form-builder/fields", h.AddField, limit)
	g.POST("/form-builder/fields/:index/delete", h.DeleteField, limit)
	g.POST("/form-builder/reset", h.Reset, limit)
	return nil
}
