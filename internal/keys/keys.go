package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the game
type KeyMap struct {
	// Choice navigation
	Left     key.Binding
	Right    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding

	// Passage scrolling
	Up   key.Binding
	Down key.Binding

	// Screens
	Back key.Binding
	Help key.Binding

	// Actions
	Quit key.Binding
	Yank key.Binding
}

// DefaultKeyMap returns the default keybindings
var DefaultKeyMap = KeyMap{
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/l", "previous/next choice"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("h/l", "previous/next choice"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next choice"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "previous choice"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "choose"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("j/k", "scroll text"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/k", "scroll text"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy text"),
	),
}

// HelpBindings returns the keybindings to display in help
func HelpBindings() []key.Binding {
	return []key.Binding{
		DefaultKeyMap.Left,
		DefaultKeyMap.Tab,
		DefaultKeyMap.Enter,
		DefaultKeyMap.Up,
		DefaultKeyMap.Back,
		DefaultKeyMap.Yank,
		DefaultKeyMap.Help,
		DefaultKeyMap.Quit,
	}
}
