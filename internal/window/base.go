package window

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/huntgame/internal/ui"
	"github.com/kmacinski/huntgame/internal/widget"
)

// Base provides common functionality for views: a widget manager that is
// live only while the view is shown, and a full-screen background.
type Base struct {
	name       string
	styles     ui.Styles
	background lipgloss.TerminalColor
	ctx        Context
	shown      bool
	ui         *widget.Manager
}

// NewBase creates a new base view
func NewBase(name string, styles ui.Styles) Base {
	return Base{
		name:   name,
		styles: styles,
		ui:     widget.NewManager(),
	}
}

// Name returns the view name
func (b *Base) Name() string {
	return b.name
}

// Styles returns the view styles
func (b *Base) Styles() ui.Styles {
	return b.styles
}

// SetStyles replaces the styles
func (b *Base) SetStyles(styles ui.Styles) {
	b.styles = styles
	b.ctx.Styles = styles
}

// SetSize records a new drawable area
func (b *Base) SetSize(width, height int) {
	b.ctx.Width = width
	b.ctx.Height = height
}

// SetBackground overrides the background color from the styles
func (b *Base) SetBackground(c lipgloss.TerminalColor) {
	b.background = c
}

// UI returns the view's widget manager
func (b *Base) UI() *widget.Manager {
	return b.ui
}

// Shown returns whether the view is the active one
func (b *Base) Shown() bool {
	return b.shown
}

// Context returns the context the view was last shown with
func (b *Base) Context() Context {
	return b.ctx
}

// OnShow claims the whole area and enables the widget manager
func (b *Base) OnShow(ctx Context) tea.Cmd {
	b.ctx = ctx
	b.styles = ctx.Styles
	b.shown = true
	b.ui.SetZones(ctx.Zones)
	b.ui.Enable()
	return nil
}

// OnHide disables the widget manager
func (b *Base) OnHide() {
	b.shown = false
	b.ui.Disable()
}

// View renders the widget tree over the background
func (b *Base) View(width, height int) string {
	style := b.styles.Screen
	if b.background != nil {
		style = style.Background(b.background)
	}
	content := b.ui.View(width, height)
	if width <= 0 || height <= 0 {
		return content
	}
	return style.Width(width).Height(height).MaxHeight(height).Render(content)
}
