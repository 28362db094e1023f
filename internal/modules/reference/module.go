package reference

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/module"
	"github.com/nfrund/formdocs/internal/registry"
)

// ReferenceModule serves the API reference pages and their tab fragments.
type ReferenceModule struct {
	module.BaseModule
}

// New creates a new instance of the ReferenceModule.
func New() *ReferenceModule {
	return &ReferenceModule{}
}

// Name returns the unique name for the module.
func (m *ReferenceModule) Name() string {
	return "reference"
}

// Boot registers the HTTP routes for the reference pages.
func (m *ReferenceModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting ReferenceModule: Setting up routes...")

	h := NewHandler(registry.MustGet(reg, registry.RendererKey))

	g.GET("/docs/:name", h.Page)
	g.GET("/fragments/docs/:name/examples", h.Examples)
	g.GET("/fragments/docs/:name/examples/:example/variants", h.Variants)
	return nil
}
