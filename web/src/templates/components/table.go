package components

import (
	"context"
	"fmt"

	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FieldTable renders a props or return table. Header labels are resolved from
// the content store; the condition line appears only on fields that have one.
func FieldTable(ctx context.Context, l content.Localizer, id string, fields []content.Field) g.Node {
	rows := make([]g.Node, len(fields))
	for i, f := range fields {
		rows[i] = h.Tr(
			h.Td(h.Code(g.Text(f.Name))),
			h.Td(h.Code(h.Class("type-name"), g.Text(f.Type))),
			h.Td(
				h.P(Inline(f.Description)),
				g.If(f.Condition != "", h.P(
					h.Strong(g.Text(l.T(content.KeyCondition))),
					g.Text(" "),
					Inline(f.Condition),
				)),
				g.If(f.Code != "", view.AdaptTemplToGomponentCtx(ctx, CodeArea(l, CodeAreaProps{
					ID:   fmt.Sprintf("%s-%d-code", id, i),
					Code: f.Code,
					Lang: "jsx",
				}))),
			),
		)
	}

	return h.Table(
		h.ID(id),
		h.THead(h.Tr(
			h.Th(g.Text(l.T(content.KeyName))),
			h.Th(g.Text(l.T(content.KeyType))),
			h.Th(g.Text(l.T(content.KeyDescription))),
		)),
		h.TBody(g.Group(rows)),
	)
}

// RowTable renders a structured content fragment as a table.
func RowTable(l content.Localizer, f content.Fragment) g.Node {
	rows := make([]g.Node, len(f.Rows))
	for i, r := range f.Rows {
		rows[i] = h.Tr(
			h.Td(h.Code(g.Text(r.Name))),
			h.Td(h.Code(h.Class("type-name"), g.Text(r.Type))),
			h.Td(Inline(r.Description)),
		)
	}
	return h.Table(
		g.If(f.Text != "", h.Caption(g.Text(f.Text))),
		h.THead(h.Tr(
			h.Th(g.Text(l.T(content.KeyName))),
			h.Th(g.Text(l.T(content.KeyType))),
			h.Th(g.Text(l.T(content.KeyDescription))),
		)),
		h.TBody(g.Group(rows)),
	)
}
