package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/formdocs/internal/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CodeAreaProps describes one code sample.
type CodeAreaProps struct {
	// ID must be unique within the page; the copy button targets it.
	ID string
	Code string
	// Lang selects the highlighter, e.g. "jsx" or "tsx".
	Lang   string
	URL    string
	NoCopy bool
}

// CodeArea renders a highlighted sample with a copy button (unless NoCopy)
// and a link to the sandbox when URL is set. Button labels come from l.
// Sandbox URLs with an unsafe scheme are replaced by templ's sanitizer.
func CodeArea(l content.Localizer, p CodeAreaProps) templ.Component {
	node := h.Div(h.Class("code-area"),
		h.Div(h.Class("code-actions"),
			g.If(!p.NoCopy, h.Button(
				h.Type("button"),
				h.Data("copy-target", p.ID+"-source"),
				h.Data("copied-label", l.T(content.KeyCopied)),
				g.Text(l.T(content.KeyCopy)),
			)),
			g.If(p.URL != "", h.A(
				h.Href(string(templ.URL(p.URL))),
				h.Target("_blank"),
				h.Rel("noopener noreferrer"),
				g.Text(l.T(content.KeySandbox)),
			)),
		),
		h.Div(h.ID(p.ID), g.NodeFunc(func(w io.Writer) error {
			return Highlight(w, p.Code, p.Lang)
		})),
		// Plain copy of the source for the clipboard script.
		h.Pre(g.Attr("hidden"), h.ID(p.ID+"-source"), g.Text(p.Code)),
	)

	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}
