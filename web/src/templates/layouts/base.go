package layouts

import (
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/view"
	"github.com/nfrund/formdocs/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	// RepoURL is linked from the footer.
	RepoURL = "https://github.com/react-hook-form/react-hook-form"
	// DocsRepoURL is where the "edit this page" link points.
	DocsRepoURL = "https://github.com/react-hook-form/documentation"

	htmxURL = "https://unpkg.com/htmx.org@2.0.4"
)

// Base wraps page content in the site chrome: head, navigation, language
// switcher, flash messages and footer.
func Base(p view.Page, body ...g.Node) g.Node {
	return h.Doctype(h.HTML(
		h.Lang(p.L.Lang()),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.TitleEl(g.Text(CalculateTitle(p.Title))),
			g.If(p.Description != "", h.Meta(h.Name("description"), h.Content(p.Description))),
			h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
			h.Link(h.Rel("stylesheet"), h.Href("/assets/highlight.css")),
			h.Script(h.Src(htmxURL), h.Defer()),
			h.Script(h.Src("/static/js/site.js"), h.Defer()),
			g.If(p.LiveReload, h.Script(h.Src("/static/js/livereload.js"), h.Defer())),
		),
		h.Body(
			h.Header(
				h.Class("site-header"),
				components.Menu(p, menuItems(p)),
				components.LanguageSwitcher(p),
			),
			h.Main(
				components.Flash(p.Flash),
				g.Group(body),
			),
			h.Footer(
				h.Class("site-footer"),
				h.P(h.A(h.Href(RepoURL), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text(p.L.T(content.KeyStarRepo)))),
				h.P(h.A(h.Href(DocsRepoURL), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text(p.L.T(content.KeyFooter)))),
			),
		),
	))
}

func menuItems(p view.Page) []components.MenuItem {
	store := p.L.Store()
	items := []components.MenuItem{{Label: p.L.T(content.KeyHomeTitle), Href: "/"}}
	for _, slug := range store.References() {
		ref, err := store.Reference(slug, p.L.Lang())
		if err != nil {
			continue
		}
		items = append(items, components.MenuItem{Label: ref.Name, Href: "/docs/" + slug})
	}
	return append(items, components.MenuItem{Label: p.L.T(content.KeyBuilderTitle), Href: "/form-builder"})
}
