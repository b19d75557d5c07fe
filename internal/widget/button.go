package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ClickEvent describes how a button was activated
type ClickEvent struct {
	X, Y     int // position inside the button, mouse only
	Keyboard bool
}

// ClickHandler is called when a button is clicked
type ClickHandler func(b *Button, ev ClickEvent) tea.Cmd

// Button is a clickable control with a text caption
type Button struct {
	Text    string
	Width   int
	OnClick ClickHandler

	Style        lipgloss.Style
	FocusedStyle lipgloss.Style

	id      string
	focused bool
	mark    func(id, v string) string
}

// NewButton creates a button
func NewButton(text string, width int, onClick ClickHandler) *Button {
	return &Button{
		Text:         text,
		Width:        width,
		OnClick:      onClick,
		Style:        lipgloss.NewStyle(),
		FocusedStyle: lipgloss.NewStyle().Reverse(true),
	}
}

// ID returns the zone id assigned by the manager
func (b *Button) ID() string {
	return b.id
}

// Focused returns whether the button has keyboard focus
func (b *Button) Focused() bool {
	return b.focused
}

// Click runs the click handler
func (b *Button) Click(ev ClickEvent) tea.Cmd {
	if b.OnClick == nil {
		return nil
	}
	return b.OnClick(b, ev)
}

// View renders the button
func (b *Button) View(width, height int) string {
	style := b.Style
	if b.focused {
		style = b.FocusedStyle
	}
	if b.Width > 0 {
		style = style.Width(b.Width)
	}
	out := style.Render(b.Text)
	if b.mark != nil && b.id != "" {
		out = b.mark(b.id, out)
	}
	return out
}
