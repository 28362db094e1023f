package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/domain"
	"github.com/nfrund/formdocs/internal/handlers"
	appmiddleware "github.com/nfrund/formdocs/internal/middleware"
	"github.com/nfrund/formdocs/internal/rendering"
	"github.com/nfrund/formdocs/internal/view"
	"github.com/nfrund/formdocs/web/src/templates/pages"
)

// setupErrorHandling installs the HTTP error handler. Unhandled errors are
// logged with a stack trace and answered with a 500; echo.HTTPError keeps its
// status. Browsers get a localized error page, API clients JSON.
func setupErrorHandling(e *echo.Echo, holder *content.Holder, renderer rendering.Renderer) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := classify(err)
		logger := appmiddleware.FromContext(c.Request().Context())
		if status >= http.StatusInternalServerError {
			var he *echo.HTTPError
			if !errors.As(err, &he) {
				logger.Error("Internal Server Error (Unhandled)",
					"error", err,
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack_trace", string(debug.Stack()),
				)
			} else {
				logger.Error("Server error", "status", status, "error", err)
			}
			// Internal details never reach the client.
			message = ""
		}

		if err := respond(c, holder, renderer, status, message); err != nil {
			logger.Error("Failed to send error response", "error", err)
		}
	}
}

func classify(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		msg, _ := he.Message.(string)
		if he.Code == http.StatusNotFound {
			msg = ""
		}
		return he.Code, msg
	case errors.Is(err, domain.ErrUnknownReference), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ""
	default:
		return http.StatusInternalServerError, ""
	}
}

func respond(c echo.Context, holder *content.Holder, renderer rendering.Renderer, status int, message string) error {
	req := c.Request()
	if req.Method == http.MethodHead {
		return c.NoContent(status)
	}

	if strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		if message == "" {
			message = http.StatusText(status)
		}
		return c.JSON(status, handlers.ErrorResponse{Code: status, Message: message})
	}

	l, ok := appmiddleware.LocalizerFrom(c)
	if !ok {
		store := holder.Current()
		if store == nil {
			return c.String(status, http.StatusText(status))
		}
		l = store.For(store.DefaultLanguage().String())
	}

	// htmx leaves the page alone on errors; a short text is enough.
	if req.Header.Get("HX-Request") == "true" {
		if message == "" {
			message = http.StatusText(status)
		}
		return c.String(status, message)
	}

	p := view.Page{
		Ctx:   req.Context(),
		Title: fmt.Sprintf("%d", status),
		Path:  req.URL.Path,
		Query: c.QueryParams(),
		L:     l,
	}
	if err := renderer.RenderPage(c, status, pages.Error(p, status, message)); err != nil {
		slog.Error("Failed to render error page", "error", err)
		return c.String(status, http.StatusText(status))
	}
	return nil
}
