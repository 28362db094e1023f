package reference

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/domain"
	"github.com/nfrund/formdocs/internal/rendering"
	"github.com/nfrund/formdocs/internal/view"
	"github.com/nfrund/formdocs/web/src/templates/components"
	"github.com/nfrund/formdocs/web/src/templates/pages"
)

// Handler renders reference pages.
type Handler struct {
	renderer rendering.Renderer
}

// NewHandler creates a new Handler.
func NewHandler(renderer rendering.Renderer) *Handler {
	return &Handler{renderer: renderer}
}

// Page renders GET /docs/:name. Names are matched case-insensitively and
// redirected to their canonical slug.
func (h *Handler) Page(c echo.Context) error {
	p, err := view.NewPage(c, "", "")
	if err != nil {
		return err
	}
	ref, err := lookup(c, p.L)
	if err != nil {
		return err
	}
	if c.Param("name") != ref.Slug() {
		target := "/docs/" + ref.Slug()
		if q := c.QueryString(); q != "" {
			target += "?" + q
		}
		return c.Redirect(http.StatusMovedPermanently, target)
	}

	p.Title = ref.Name
	p.Description = ref.Subtitle
	return h.renderer.RenderPage(c, http.StatusOK, pages.Reference(p, ref))
}

// Examples renders the examples tab group with the tab from ?tab= selected.
func (h *Handler) Examples(c echo.Context) error {
	p, err := view.NewFragment(c)
	if err != nil {
		return err
	}
	ref, err := lookup(c, p.L)
	if err != nil {
		return err
	}

	group := pages.ExampleGroup(ref)
	i, err := tabIndex(c, group.InRange)
	if err != nil {
		return err
	}
	group.Select(i)

	return h.renderer.RenderPage(c, http.StatusOK, pages.ExamplesTabs(p, ref, group))
}

// Variants renders the JavaScript/TypeScript toggle of one example.
func (h *Handler) Variants(c echo.Context) error {
	p, err := view.NewFragment(c)
	if err != nil {
		return err
	}
	ref, err := lookup(c, p.L)
	if err != nil {
		return err
	}

	example, err := strconv.Atoi(c.Param("example"))
	if err != nil || example < 0 || example >= len(ref.Examples) {
		return echo.NewHTTPError(http.StatusNotFound, "example not found")
	}

	group := pages.VariantGroup(p.L, ref.Examples[example])
	i, err := tabIndex(c, group.InRange)
	if err != nil {
		return err
	}
	group.Select(i)

	return h.renderer.RenderPage(c, http.StatusOK, pages.VariantTabs(p, ref, example, group))
}

func lookup(c echo.Context, l content.Localizer) (content.Reference, error) {
	ref, err := l.Store().Reference(c.Param("name"), l.Lang())
	if errors.Is(err, domain.ErrUnknownReference) {
		return content.Reference{}, echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
	}
	return ref, err
}

// tabIndex reads ?tab=. The index comes from the client, so it is checked
// before it reaches Select; an absent parameter means the first tab.
func tabIndex(c echo.Context, inRange func(int) bool) (int, error) {
	raw := c.QueryParam(components.TabParam)
	if raw == "" {
		return 0, nil
	}
	i, err := strconv.Atoi(raw)
	if err != nil || !inRange(i) {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "tab index out of range")
	}
	return i, nil
}
