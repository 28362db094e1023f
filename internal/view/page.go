package view

import (
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/middleware"
)

// LiveReloadKey marks requests whose pages should include the live-reload
// client. The server sets it when content hot reload is enabled.
const LiveReloadKey = "formdocs.livereload"

// Page is the per-request rendering context handed to layouts and pages. It
// carries the content snapshot and language of the request, so rendering
// never reaches for global state.
type Page struct {
	Ctx         context.Context
	Title       string
	Description string
	Path        string
	Query       url.Values
	L           content.Localizer
	Flash       FlashData
	LiveReload  bool
}

// Localizer returns the request's Localizer or a 500 error when the language
// middleware did not run.
func Localizer(c echo.Context) (content.Localizer, error) {
	l, ok := middleware.LocalizerFrom(c)
	if !ok {
		return content.Localizer{}, echo.NewHTTPError(http.StatusInternalServerError, "localizer missing from request context")
	}
	return l, nil
}

// NewPage builds the rendering context for c. Flash messages are consumed.
func NewPage(c echo.Context, title, description string) (Page, error) {
	l, err := Localizer(c)
	if err != nil {
		return Page{}, err
	}
	live, _ := c.Get(LiveReloadKey).(bool)
	return Page{
		Ctx:         c.Request().Context(),
		Title:       title,
		Description: description,
		Path:        c.Request().URL.Path,
		Query:       c.QueryParams(),
		L:           l,
		Flash:       GetFlashData(c),
		LiveReload:  live,
	}, nil
}

// NewFragment builds the rendering context of an htmx fragment. Flash
// messages are left for the next full page.
func NewFragment(c echo.Context) (Page, error) {
	l, err := Localizer(c)
	if err != nil {
		return Page{}, err
	}
	return Page{
		Ctx:   c.Request().Context(),
		Path:  c.Request().URL.Path,
		Query: c.QueryParams(),
		L:     l,
	}, nil
}

// LanguageURL returns the current page URL with lang selected.
func (p Page) LanguageURL(lang string) string {
	q := url.Values{}
	for k, v := range p.Query {
		q[k] = append([]string(nil), v...)
	}
	q.Set(middleware.LangParam, lang)
	return p.Path + "?" + q.Encode()
}
