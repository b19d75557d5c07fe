package window

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/huntgame/internal/ui"
	zone "github.com/lrstanley/bubblezone"
)

// View defines the interface for full-screen views
type View interface {
	// Lifecycle, called by the surface when the view becomes active or is replaced
	OnShow(ctx Context) tea.Cmd
	OnHide()

	// Update handles input while the view is active
	Update(msg tea.Msg) (View, tea.Cmd)

	// View renders the view content
	View(width, height int) string

	// Identity
	Name() string
}

// Context is the shared state a view reads from the surface showing it
type Context struct {
	Width  int
	Height int
	Styles ui.Styles
	Zones  *zone.Manager
}

// Texter is implemented by views with copyable text
type Texter interface {
	Text() string
}
