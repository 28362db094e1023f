package builder

import (
	"fmt"

	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/view"
	"github.com/nfrund/formdocs/web/src/templates/components"
	"github.com/nfrund/formdocs/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const panelID = "builder"

// builderPage renders the full form builder page.
func builderPage(p view.Page, fields []Field, code string) g.Node {
	l := p.L
	return layouts.Base(p,
		h.H1(g.Text(l.T(content.KeyBuilderTitle))),
		h.P(g.Text(l.T(content.KeyBuilderDescription))),
		builderPanel(p, fields, code, view.FlashData{}),
		components.RowTable(l, l.Fragment(content.KeyBuilderRules)),
	)
}

// builderPanel is the part of the page swapped by htmx after each change.
// Messages are shown inline because htmx responses never reach the layout.
func builderPanel(p view.Page, fields []Field, code string, messages view.FlashData) g.Node {
	l := p.L
	return h.Div(
		h.ID(panelID),
		h.Class("builder"),
		h.Section(
			components.Flash(messages),
			fieldForm(l, len(fields) >= MaxFields),
		),
		h.Section(
			fieldList(l, fields),
			h.H2(g.Text(l.T(content.KeyBuilderCode))),
			view.AdaptTemplToGomponentCtx(p.Ctx, components.CodeArea(l, components.CodeAreaProps{
				ID:   "builder-code",
				Code: code,
				Lang: "jsx",
			})),
		),
	)
}

func htmxPost(action string) g.Node {
	return g.Group{
		h.Method("post"),
		h.Action(action),
		hx.Post(action),
		hx.Target("#" + panelID),
		hx.Swap("outerHTML"),
	}
}

func fieldForm(l content.Localizer, full bool) g.Node {
	options := make([]g.Node, len(FieldTypes))
	for i, t := range FieldTypes {
		options[i] = h.Option(h.Value(t), g.Text(t))
	}

	return h.Form(
		htmxPost("/form-builder/fields"),
		h.Label(h.For("field-name"), g.Text(l.T(content.KeyBuilderFieldName))),
		h.Input(h.ID("field-name"), h.Name("name"), h.Type("text"), h.Required(), h.MaxLength("40"), h.AutoComplete("off")),
		h.Label(h.For("field-type"), g.Text(l.T(content.KeyBuilderFieldType))),
		h.Select(h.ID("field-type"), h.Name("type"), g.Group(options)),
		h.Label(
			h.Input(h.Type("checkbox"), h.Name("required"), h.Value("true")),
			g.Text(" "+l.T(content.KeyBuilderRequired)),
		),
		numberInput("min", "min"),
		numberInput("max", "max"),
		numberInput("minLength", "minLength"),
		numberInput("maxLength", "maxLength"),
		h.Label(h.For("field-pattern"), g.Text("pattern")),
		h.Input(h.ID("field-pattern"), h.Name("pattern"), h.Type("text")),
		h.Button(h.Type("submit"), g.If(full, h.Disabled()), g.Text(l.T(content.KeyBuilderAdd))),
	)
}

func numberInput(name, label string) g.Node {
	id := "field-" + name
	return g.Group{
		h.Label(h.For(id), g.Text(label)),
		h.Input(h.ID(id), h.Name(name), h.Type("number")),
	}
}

func fieldList(l content.Localizer, fields []Field) g.Node {
	if len(fields) == 0 {
		return h.P(h.Class("empty"), g.Text(l.T(content.KeyBuilderEmpty)))
	}
	items := make([]g.Node, len(fields))
	for i, f := range fields {
		items[i] = h.Li(
			h.Span(h.Code(g.Text(f.Name)), g.Text(" "+f.Type), g.If(f.Required, g.Text(" *"))),
			h.Form(
				htmxPost(fmt.Sprintf("/form-builder/fields/%d/delete", i)),
				h.Button(h.Type("submit"), g.Text(l.T(content.KeyBuilderDelete))),
			),
		)
	}
	return g.Group{
		h.Ul(h.Class("fields"), g.Group(items)),
		h.Form(
			htmxPost("/form-builder/reset"),
			h.Button(h.Type("submit"), g.Text(l.T(content.KeyBuilderReset))),
		),
	}
}
