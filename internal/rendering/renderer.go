package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer renders templ components and gomponents nodes.
type Renderer interface {
	// RenderComponent renders a component to bytes, e.g. for a websocket push.
	RenderComponent(ctx context.Context, component interface{}) ([]byte, error)

	// RenderPage writes a full page or an htmx fragment as the HTTP response.
	RenderPage(c echo.Context, status int, component interface{}) error
}

// UniversalRenderer accepts both component kinds. Pages are rendered into a
// pooled buffer before anything is written, so a failing component still
// yields a clean error response instead of a half-written page.
type UniversalRenderer struct {
	buffers sync.Pool
}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{
		buffers: sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
}

// gomponentNode is the structural interface of gomponents.Node.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (tr *UniversalRenderer) render(ctx context.Context, component interface{}, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T. Component must be templ.Component or implement Render(io.Writer) error (like gomponents.Node)", component)
	}
}

func (tr *UniversalRenderer) withBuffer(ctx context.Context, component interface{}, fn func(*bytes.Buffer) error) error {
	buf := tr.buffers.Get().(*bytes.Buffer)
	buf.Reset()
	defer tr.buffers.Put(buf)

	if err := tr.render(ctx, component, buf); err != nil {
		return fmt.Errorf("failed to render component: %w", err)
	}
	return fn(buf)
}

// RenderComponent implements the Renderer interface.
func (tr *UniversalRenderer) RenderComponent(ctx context.Context, component interface{}) ([]byte, error) {
	var out []byte
	err := tr.withBuffer(ctx, component, func(buf *bytes.Buffer) error {
		out = bytes.Clone(buf.Bytes())
		return nil
	})
	return out, err
}

// RenderPage implements the Renderer interface. A handler may answer a page
// or an htmx fragment for the same URL, so the response varies on
// HX-Request. HEAD requests get the headers only.
func (tr *UniversalRenderer) RenderPage(c echo.Context, status int, component interface{}) error {
	return tr.withBuffer(c.Request().Context(), component, func(buf *bytes.Buffer) error {
		res := c.Response()
		res.Header().Add(echo.HeaderVary, "HX-Request")
		if c.Request().Method == http.MethodHead {
			res.Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
			res.WriteHeader(status)
			return nil
		}
		return c.HTMLBlob(status, buf.Bytes())
	})
}

// Render implements echo.Renderer so c.Render(status, "", component) works.
// The name is ignored; the component travels in data.
func (tr *UniversalRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return tr.render(c.Request().Context(), data, w)
}
