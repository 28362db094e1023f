package components

import (
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// MenuItem is one navigation link.
type MenuItem struct {
	Label string
	Href  string
}

// Menu renders the navigation list, marking the item for the current path.
func Menu(p view.Page, items []MenuItem) g.Node {
	links := make([]g.Node, len(items))
	for i, item := range items {
		links[i] = h.Li(h.A(
			h.Href(item.Href),
			g.If(item.Href == p.Path, h.Aria("current", "page")),
			g.Text(item.Label),
		))
	}
	return h.Nav(h.Ul(g.Group(links)))
}

// LanguageSwitcher renders one link per supported language.
func LanguageSwitcher(p view.Page) g.Node {
	store := p.L.Store()
	links := []g.Node{h.Span(g.Text(p.L.T(content.KeyLanguage) + ":"))}
	for _, lang := range store.Languages() {
		links = append(links, h.A(
			h.Href(p.LanguageURL(lang)),
			h.Lang(lang),
			g.If(lang == p.L.Lang(), h.Aria("current", "true")),
			g.Text(lang),
		))
	}
	return h.Div(h.Class("language-switcher"), g.Group(links))
}

// Flash renders the one-shot messages of the page.
func Flash(f view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	nodes := make([]g.Node, 0, len(f.Success)+len(f.Error))
	for _, msg := range f.Success {
		nodes = append(nodes, h.Div(h.Class("flash flash-success"), h.Role("status"), g.Text(msg)))
	}
	for _, msg := range f.Error {
		nodes = append(nodes, h.Div(h.Class("flash flash-error"), h.Role("alert"), g.Text(msg)))
	}
	return h.Div(h.ID("flash"), g.Group(nodes))
}
