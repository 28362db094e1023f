package components

import (
	"fmt"
	"strconv"

	"github.com/nfrund/formdocs/internal/tabs"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// TabParam is the query parameter carrying the selected tab index.
const TabParam = "tab"

// TabGroupProps describes one rendered tab group. Only the active panel is
// rendered; selecting another label asks Endpoint for the whole group again.
type TabGroupProps struct {
	ID       string
	Endpoint string
	Labels   []string
	Active   int
	Panel    g.Node
}

// TabGroup renders the tab list and the active panel.
func TabGroup(p TabGroupProps) g.Node {
	buttons := make([]g.Node, len(p.Labels))
	for i, label := range p.Labels {
		active := i == p.Active
		buttons[i] = h.Button(
			h.Type("button"),
			h.Role("tab"),
			h.ID(fmt.Sprintf("%s-tab-%d", p.ID, i)),
			h.Aria("selected", strconv.FormatBool(active)),
			h.Aria("controls", p.ID+"-panel"),
			hx.Get(fmt.Sprintf("%s?%s=%d", p.Endpoint, TabParam, i)),
			hx.Target("#"+p.ID),
			hx.Swap("outerHTML"),
			g.Text(label),
		)
	}

	return h.Div(
		h.ID(p.ID),
		h.Class("tab-group"),
		h.Div(h.Class("tab-list"), h.Role("tablist"), g.Group(buttons)),
		h.Div(
			h.ID(p.ID+"-panel"),
			h.Class("tab-panel"),
			h.Role("tabpanel"),
			h.Aria("labelledby", fmt.Sprintf("%s-tab-%d", p.ID, p.Active)),
			p.Panel,
		),
	)
}

// Tabs renders group with its active panel drawn by render.
func Tabs[T any](id, endpoint string, group *tabs.Group[T], render func(T) g.Node) g.Node {
	return TabGroup(TabGroupProps{
		ID:       id,
		Endpoint: endpoint,
		Labels:   group.Labels(),
		Active:   group.Active(),
		Panel:    render(group.ActivePanel().Content),
	})
}
