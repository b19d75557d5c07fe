package window

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg asks the surface to push a view over the active one
type NavigateMsg struct {
	View View
}

// BackMsg asks the surface to return to the previous view
type BackMsg struct{}

// QuitMsg asks the application to exit
type QuitMsg struct{}

// Navigate returns a command that pushes v
func Navigate(v View) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{View: v}
	}
}

// Back returns a command that pops the active view
func Back() tea.Cmd {
	return func() tea.Msg {
		return BackMsg{}
	}
}

// Quit returns a command that exits the application
func Quit() tea.Cmd {
	return func() tea.Msg {
		return QuitMsg{}
	}
}
