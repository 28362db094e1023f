package builder

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/handlers"
	"github.com/nfrund/formdocs/internal/middleware"
	"github.com/nfrund/formdocs/internal/rendering"
	"github.com/nfrund/formdocs/internal/view"
)

// Handler serves the form builder.
type Handler struct {
	renderer  rendering.Renderer
	validator *handlers.CustomValidator
}

// NewHandler creates a new Handler.
func NewHandler(renderer rendering.Renderer, v *handlers.CustomValidator) *Handler {
	return &Handler{renderer: renderer, validator: v}
}

// Page renders GET /form-builder.
func (h *Handler) Page(c echo.Context) error {
	p, err := view.NewPage(c, "", "")
	if err != nil {
		return err
	}
	p.Title = p.L.T(content.KeyBuilderTitle)
	p.Description = p.L.T(content.KeyBuilderDescription)

	fields, err := loadFields(c)
	if err != nil {
		return err
	}
	code, err := Generate(fields)
	if err != nil {
		return err
	}
	return h.renderer.RenderPage(c, http.StatusOK, builderPage(p, fields, code))
}

// AddField handles POST /form-builder/fields.
func (h *Handler) AddField(c echo.Context) error {
	l, err := view.Localizer(c)
	if err != nil {
		return err
	}
	fields, err := loadFields(c)
	if err != nil {
		return err
	}

	var f Field
	if err := c.Bind(&f); err != nil {
		return h.respond(c, fields, view.FlashData{Error: []string{l.T(content.KeyBuilderInvalid)}})
	}
	f.Name = strings.TrimSpace(f.Name)
	f.Pattern = strings.TrimSpace(f.Pattern)

	if err := h.validator.Validate(&f); err != nil {
		middleware.FromContext(c.Request().Context()).Debug("Rejected builder field", "error", err)
		return h.respond(c, fields, view.FlashData{Error: []string{invalidMessage(l, err)}})
	}
	if len(fields) >= MaxFields || indexOf(fields, f.Name) >= 0 {
		return h.respond(c, fields, view.FlashData{Error: []string{l.T(content.KeyBuilderInvalid)}})
	}

	fields = append(fields, f)
	if err := saveFields(c, fields); err != nil {
		return err
	}
	return h.respond(c, fields, view.FlashData{Success: []string{l.T(content.KeyBuilderAdded)}})
}

// DeleteField handles POST /form-builder/fields/:index/delete.
func (h *Handler) DeleteField(c echo.Context) error {
	fields, err := loadFields(c)
	if err != nil {
		return err
	}
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil || i < 0 || i >= len(fields) {
		return echo.NewHTTPError(http.StatusBadRequest, "field index out of range")
	}

	fields = append(fields[:i], fields[i+1:]...)
	if err := saveFields(c, fields); err != nil {
		return err
	}
	return h.respond(c, fields, view.FlashData{})
}

// Reset handles POST /form-builder/reset.
func (h *Handler) Reset(c echo.Context) error {
	if err := saveFields(c, nil); err != nil {
		return err
	}
	return h.respond(c, nil, view.FlashData{})
}

// respond re-renders the builder panel for htmx requests. Plain form posts
// get their messages as flashes and a redirect back to the page.
func (h *Handler) respond(c echo.Context, fields []Field, messages view.FlashData) error {
	if c.Request().Header.Get("HX-Request") != "true" {
		for _, msg := range messages.Success {
			view.SetFlashSuccess(c, msg)
		}
		for _, msg := range messages.Error {
			view.SetFlashError(c, msg)
		}
		return c.Redirect(http.StatusSeeOther, "/form-builder")
	}

	p, err := view.NewFragment(c)
	if err != nil {
		return err
	}
	code, err := Generate(fields)
	if err != nil {
		return err
	}
	// htmx only swaps 2xx responses, so rejected fields still answer 200.
	return h.renderer.RenderPage(c, http.StatusOK, builderPanel(p, fields, code, messages))
}

func invalidMessage(l content.Localizer, err error) string {
	msg := l.T(content.KeyBuilderInvalid)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return msg
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, fe.Field())
	}
	return msg + " (" + strings.Join(names, ", ") + ")"
}
