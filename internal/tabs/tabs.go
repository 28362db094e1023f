// Package tabs holds the state of a tabbed display: an ordered set of labeled
// panels of which exactly one is visible.
package tabs

import "fmt"

// Panel is one selectable block. The label travels with its content, so a
// group always has as many labels as panels.
type Panel[T any] struct {
	Label   string
	Content T
}

// Group is a tabbed display. The active index is its only mutable state; it
// starts at 0 and changes only through Select.
type Group[T any] struct {
	panels []Panel[T]
	active int
}

// New creates a group showing the first panel. A group without panels is a
// programming error and panics.
func New[T any](panels ...Panel[T]) *Group[T] {
	if len(panels) == 0 {
		panic("tabs: a group needs at least one panel")
	}
	owned := make([]Panel[T], len(panels))
	copy(owned, panels)
	return &Group[T]{panels: owned}
}

// Select makes panel i the visible one. An index outside the group is a
// programming error and panics; check untrusted input with InRange first.
func (g *Group[T]) Select(i int) {
	if !g.InRange(i) {
		panic(fmt.Sprintf("tabs: index %d out of range [0,%d)", i, len(g.panels)))
	}
	g.active = i
}

// SelectLabel selects the first panel carrying label and reports whether one
// was found. The active panel is unchanged when none matches.
func (g *Group[T]) SelectLabel(label string) bool {
	for i, p := range g.panels {
		if p.Label == label {
			g.active = i
			return true
		}
	}
	return false
}

// InRange reports whether i addresses a panel of the group.
func (g *Group[T]) InRange(i int) bool {
	return i >= 0 && i < len(g.panels)
}

func (g *Group[T]) Active() int { return g.active }

func (g *Group[T]) ActivePanel() Panel[T] { return g.panels[g.active] }

// Visible reports whether panel i is the active one.
func (g *Group[T]) Visible(i int) bool { return i == g.active }

func (g *Group[T]) Len() int { return len(g.panels) }

// Labels returns the panel labels in order.
func (g *Group[T]) Labels() []string {
	labels := make([]string, len(g.panels))
	for i, p := range g.panels {
		labels[i] = p.Label
	}
	return labels
}

// Panels returns a copy of the panels in order.
func (g *Group[T]) Panels() []Panel[T] {
	out := make([]Panel[T], len(g.panels))
	copy(out, g.panels)
	return out
}
