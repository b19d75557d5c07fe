package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/huntgame/internal/config"
)

// Colors defines the color palette for the game
type Colors struct {
	Background    lipgloss.Color
	Text          lipgloss.Color
	Title         lipgloss.Color
	Muted         lipgloss.Color
	Button        lipgloss.Color
	ButtonText    lipgloss.Color
	ButtonFocused lipgloss.Color
	Border        lipgloss.Color
	StatusBar     lipgloss.Color
	StatusBarText lipgloss.Color
	Error         lipgloss.Color
}

// DefaultColors returns the default color palette
var DefaultColors = ColorsFrom(config.Default.Colors)

// ColorsFrom builds a palette from configured hex strings
func ColorsFrom(c config.ColorConfig) Colors {
	return Colors{
		Background:    lipgloss.Color(c.Background),
		Text:          lipgloss.Color(c.Text),
		Title:         lipgloss.Color(c.Title),
		Muted:         lipgloss.Color(c.Muted),
		Button:        lipgloss.Color(c.Button),
		ButtonText:    lipgloss.Color(c.ButtonText),
		ButtonFocused: lipgloss.Color(c.ButtonFocused),
		Border:        lipgloss.Color(c.Border),
		StatusBar:     lipgloss.Color(c.StatusBar),
		StatusBarText: lipgloss.Color(c.StatusBarText),
		Error:         lipgloss.Color(c.Error),
	}
}
