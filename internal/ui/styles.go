package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles for the game
type Styles struct {
	Colors Colors

	// Screen styles
	Screen  lipgloss.Style
	Title   lipgloss.Style
	Passage lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Status bar
	StatusBar     lipgloss.Style
	StatusBarItem lipgloss.Style

	// Modal
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style

	// General
	Muted lipgloss.Style
	Bold  lipgloss.Style
	Error lipgloss.Style
}

// NewStyles creates a new Styles instance with the given colors
func NewStyles(c Colors) Styles {
	return Styles{
		Colors: c,

		Screen: lipgloss.NewStyle().
			Background(c.Background).
			Foreground(c.Text),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Title),
		Passage: lipgloss.NewStyle().
			Foreground(c.Text),

		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Foreground(c.ButtonText).
			Align(lipgloss.Center).
			Padding(0, 1),
		ButtonFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.ButtonFocused).
			Foreground(c.ButtonFocused).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(c.StatusBar).
			Foreground(c.StatusBarText).
			Padding(0, 1),
		StatusBarItem: lipgloss.NewStyle().
			Foreground(c.StatusBarText).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Title).
			MarginBottom(1),

		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),
		Bold: lipgloss.NewStyle().
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(c.Error).
			Bold(true),
	}
}

// DefaultStyles returns styles with the default color palette
var DefaultStyles = NewStyles(DefaultColors)
