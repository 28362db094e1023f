package pages

import (
	"fmt"

	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/tabs"
	"github.com/nfrund/formdocs/internal/view"
	"github.com/nfrund/formdocs/web/src/templates/components"
	"github.com/nfrund/formdocs/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Variant is one language version of an example.
type Variant struct {
	Lang string
	Code string
	URL  string
}

// ExampleGroup builds the examples tab group of ref, first example active.
func ExampleGroup(ref content.Reference) *tabs.Group[content.Example] {
	panels := make([]tabs.Panel[content.Example], len(ref.Examples))
	for i, ex := range ref.Examples {
		panels[i] = tabs.Panel[content.Example]{Label: ex.Label, Content: ex}
	}
	return tabs.New(panels...)
}

// VariantGroup builds the JavaScript/TypeScript toggle of ex. Examples
// without a TypeScript version get a single panel.
func VariantGroup(l content.Localizer, ex content.Example) *tabs.Group[Variant] {
	panels := []tabs.Panel[Variant]{{
		Label:   "JS",
		Content: Variant{Lang: "jsx", Code: ex.Code, URL: ex.URL},
	}}
	if ex.TSCode != "" {
		panels = append(panels, tabs.Panel[Variant]{
			Label:   l.T(content.KeyTypeScript),
			Content: Variant{Lang: "tsx", Code: ex.TSCode, URL: ex.TSURL},
		})
	}
	return tabs.New(panels...)
}

// ExamplesEndpoint is the fragment URL of the examples tab group.
func ExamplesEndpoint(slug string) string {
	return "/fragments/docs/" + slug + "/examples"
}

// VariantsEndpoint is the fragment URL of one example's variant toggle.
func VariantsEndpoint(slug string, example int) string {
	return fmt.Sprintf("/fragments/docs/%s/examples/%d/variants", slug, example)
}

// Reference renders the full reference page of ref.
func Reference(p view.Page, ref content.Reference) g.Node {
	return layouts.Base(p, ReferenceBody(p, ref))
}

// ReferenceBody renders the reference content without the site chrome.
func ReferenceBody(p view.Page, ref content.Reference) g.Node {
	l := p.L
	return h.Article(
		h.Class("reference"),
		h.Header(
			h.H1(h.Code(g.Text(ref.Name)),
				g.If(ref.Since != "", sinceBadge(ref)),
			),
			g.If(ref.Subtitle != "", h.P(h.Class("subtitle"), g.Text(ref.Subtitle))),
			typeName(ref),
		),
		components.Paragraphs(ref.Description),

		g.If(len(ref.Props) > 0, h.Section(
			h.H2(g.Text(l.T(content.KeyProps))),
			components.FieldTable(p.Ctx, l, "props", ref.Props),
		)),
		g.If(len(ref.Return) > 0, h.Section(
			h.H2(g.Text(l.T(content.KeyReturn))),
			components.FieldTable(p.Ctx, l, "return", ref.Return),
		)),
		g.If(len(ref.Rules) > 0, h.Section(
			h.H2(g.Text(l.T(content.KeyRules))),
			rules(p, "rule", ref.Rules),
		)),
		g.If(len(ref.TypeScript) > 0, h.Section(
			h.H2(g.Text(l.T(content.KeyTypeScript))),
			rules(p, "typescript", ref.TypeScript),
		)),
		h.Section(
			h.H2(g.Text(l.T(content.KeyExamples))),
			ExamplesTabs(p, ref, ExampleGroup(ref)),
		),
		g.If(len(ref.Tips) > 0, h.Section(
			h.H2(g.Text(l.T(content.KeyTips))),
			tips(p, ref.Tips),
		)),
	)
}

// ExamplesTabs renders the examples tab group with its active example.
func ExamplesTabs(p view.Page, ref content.Reference, group *tabs.Group[content.Example]) g.Node {
	active := group.Active()
	return components.Tabs("examples", ExamplesEndpoint(ref.Slug()), group, func(ex content.Example) g.Node {
		return exampleBody(p, ref, active, ex)
	})
}

// VariantTabs renders the JavaScript/TypeScript toggle of one example.
func VariantTabs(p view.Page, ref content.Reference, example int, group *tabs.Group[Variant]) g.Node {
	id := fmt.Sprintf("example-%d-variants", example)
	return components.Tabs(id, VariantsEndpoint(ref.Slug(), example), group, func(v Variant) g.Node {
		return codeArea(p, fmt.Sprintf("example-%d-%s", example, v.Lang), components.CodeAreaProps{
			Code: v.Code,
			Lang: v.Lang,
			URL:  v.URL,
		})
	})
}

func exampleBody(p view.Page, ref content.Reference, index int, ex content.Example) g.Node {
	if ex.TSCode == "" {
		return codeArea(p, fmt.Sprintf("example-%d-jsx", index), components.CodeAreaProps{
			Code: ex.Code,
			Lang: "jsx",
			URL:  ex.URL,
		})
	}
	return VariantTabs(p, ref, index, VariantGroup(p.L, ex))
}

func codeArea(p view.Page, id string, props components.CodeAreaProps) g.Node {
	props.ID = id
	return view.AdaptTemplToGomponentCtx(p.Ctx, components.CodeArea(p.L, props))
}

func sinceBadge(ref content.Reference) g.Node {
	if ref.SinceURL == "" {
		return h.Small(h.Class("since"), g.Text(ref.Since))
	}
	return h.Small(h.Class("since"), h.A(h.Href(ref.SinceURL), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text(ref.Since)))
}

func typeName(ref content.Reference) g.Node {
	name := h.Code(h.Class("type-name"), g.Text(ref.TypeName))
	if ref.TypeLink == "" {
		return h.P(name)
	}
	return h.P(h.A(h.Href(ref.TypeLink), name))
}

func rules(p view.Page, prefix string, list []content.Rule) g.Node {
	items := make([]g.Node, len(list))
	for i, rule := range list {
		id := fmt.Sprintf("%s-%d", prefix, i)
		items[i] = h.Li(
			components.Paragraphs(rule.Text),
			g.If(len(rule.Links) > 0, links(rule.Links)),
			g.If(rule.Code != "", codeArea(p, id+"-code", components.CodeAreaProps{
				Code:   rule.Code,
				Lang:   "jsx",
				NoCopy: rule.NoCopy,
			})),
			g.If(len(rule.Children) > 0, rules(p, id, rule.Children)),
		)
	}
	return h.Ol(g.Group(items))
}

func links(list []content.Link) g.Node {
	items := make([]g.Node, len(list))
	for i, link := range list {
		items[i] = h.Li(h.A(h.Href(link.URL), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text(link.Text)))
	}
	return h.Ul(h.Class("links"), g.Group(items))
}

func tips(p view.Page, list []content.Tip) g.Node {
	nodes := make([]g.Node, len(list))
	for i, tip := range list {
		nodes[i] = h.Div(
			h.Class("tip"),
			h.H3(components.Inline(tip.Title)),
			components.Paragraphs(tip.Text),
			g.If(tip.Code != "", codeArea(p, fmt.Sprintf("tip-%d-code", i), components.CodeAreaProps{
				Code: tip.Code,
				Lang: "jsx",
				URL:  tip.URL,
			})),
		)
	}
	return g.Group(nodes)
}
