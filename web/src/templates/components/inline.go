package components

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Inline renders text where `backticked` spans become inline code. An
// unmatched backtick is kept as text.
func Inline(s string) g.Node {
	parts := strings.Split(s, "`")
	balanced := len(parts)%2 == 1

	nodes := make([]g.Node, 0, len(parts))
	for i, part := range parts {
		switch {
		case i%2 == 0:
			if part != "" {
				nodes = append(nodes, g.Text(part))
			}
		case !balanced && i == len(parts)-1:
			nodes = append(nodes, g.Text("`"+part))
		default:
			nodes = append(nodes, h.Code(g.Text(part)))
		}
	}
	return g.Group(nodes)
}

// Paragraphs renders each entry of texts as an inline-formatted paragraph.
func Paragraphs(texts []string) g.Node {
	nodes := make([]g.Node, len(texts))
	for i, text := range texts {
		nodes[i] = h.P(Inline(text))
	}
	return g.Group(nodes)
}
