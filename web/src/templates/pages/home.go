package pages

import (
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/view"
	"github.com/nfrund/formdocs/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Home lists every reference page with its subtitle.
func Home(p view.Page) g.Node {
	store := p.L.Store()
	items := make([]g.Node, 0, len(store.References()))
	for _, slug := range store.References() {
		ref, err := store.Reference(slug, p.L.Lang())
		if err != nil {
			continue
		}
		items = append(items, h.Li(
			h.A(h.Href("/docs/"+slug), h.Code(g.Text(ref.Name))),
			g.If(ref.Subtitle != "", g.Text(" · "+ref.Subtitle)),
		))
	}

	return layouts.Base(p,
		h.H1(g.Text(p.L.T(content.KeyHomeTitle))),
		h.P(g.Text(p.L.T(content.KeyHomeIntro))),
		h.Ul(h.Class("references"), g.Group(items)),
		h.P(h.A(h.Href("/form-builder"), g.Text(p.L.T(content.KeyBuilderTitle)))),
	)
}
