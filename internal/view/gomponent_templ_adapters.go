package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// TemplToGomponentAdapter wraps a templ.Component to satisfy gomponents.Node,
// so templ components (the code area) can sit inside gomponents pages.
type TemplToGomponentAdapter struct {
	Component templ.Component
	Ctx       context.Context
}

// Render implements gomponents.Node. gomponents does not pass a context, so
// the one captured at adaptation time is used.
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	ctx := a.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Component.Render(ctx, w)
}

// AdaptTemplToGomponent wraps component as a gomponents.Node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component}
}

// AdaptTemplToGomponentCtx is AdaptTemplToGomponent with a request context.
func AdaptTemplToGomponentCtx(ctx context.Context, component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component, Ctx: ctx}
}
