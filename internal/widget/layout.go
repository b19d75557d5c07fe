package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction represents the box direction
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Box lays its children out in a row or a column
type Box struct {
	Direction Direction
	Spacing   int
	Align     lipgloss.Position

	children []Widget
}

// NewBox creates a box
func NewBox(dir Direction, spacing int, children ...Widget) *Box {
	return &Box{
		Direction: dir,
		Spacing:   spacing,
		Align:     lipgloss.Center,
		children:  children,
	}
}

// Add appends children
func (b *Box) Add(w ...Widget) {
	b.children = append(b.children, w...)
}

// Clear removes all children
func (b *Box) Clear() {
	b.children = nil
}

// Children returns the box's children
func (b *Box) Children() []Widget {
	return b.children
}

// View renders the children joined with spacing
func (b *Box) View(width, height int) string {
	if len(b.children) == 0 {
		return ""
	}

	var rendered []string
	for i, child := range b.children {
		if i > 0 && b.Spacing > 0 {
			if b.Direction == Horizontal {
				rendered = append(rendered, strings.Repeat(" ", b.Spacing))
			} else {
				rendered = append(rendered, strings.Repeat("\n", b.Spacing-1))
			}
		}
		rendered = append(rendered, child.View(width, height))
	}

	if b.Direction == Horizontal {
		return lipgloss.JoinHorizontal(b.Align, rendered...)
	}
	return lipgloss.JoinVertical(b.Align, rendered...)
}

// Anchor places its children at a position within the whole area
type Anchor struct {
	X, Y lipgloss.Position

	children []Widget
}

// NewAnchor creates an anchor layout, centered by default
func NewAnchor(children ...Widget) *Anchor {
	return &Anchor{
		X:        lipgloss.Center,
		Y:        lipgloss.Center,
		children: children,
	}
}

// Add appends children
func (a *Anchor) Add(w ...Widget) {
	a.children = append(a.children, w...)
}

// Clear removes all children
func (a *Anchor) Clear() {
	a.children = nil
}

// Children returns the anchor's children
func (a *Anchor) Children() []Widget {
	return a.children
}

// View places the stacked children in the area
func (a *Anchor) View(width, height int) string {
	var rendered []string
	for _, child := range a.children {
		rendered = append(rendered, child.View(width, height))
	}
	content := lipgloss.JoinVertical(a.X, rendered...)
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, a.X, a.Y, content)
}
