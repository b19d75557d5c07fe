package window

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/huntgame/internal/ui"
)

// ConfirmScreen asks a yes/no question and runs a command for the answer
type ConfirmScreen struct {
	Base
	question  string
	confirmed bool
	form      *huh.Form
	onYes     func() tea.Cmd
	onNo      func() tea.Cmd
}

// NewConfirmScreen creates a confirmation screen. A nil onNo goes back.
func NewConfirmScreen(styles ui.Styles, question string, onYes, onNo func() tea.Cmd) *ConfirmScreen {
	if onNo == nil {
		onNo = Back
	}
	s := &ConfirmScreen{
		Base:     NewBase("confirm", styles),
		question: question,
		onYes:    onYes,
		onNo:     onNo,
	}
	s.reset()
	return s
}

func (s *ConfirmScreen) reset() {
	s.confirmed = false
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(s.question).
				Affirmative("Yes").
				Negative("No").
				Value(&s.confirmed),
		),
	).WithShowHelp(false)
	s.form.SubmitCmd = nil
	s.form.CancelCmd = nil
}

// Text returns the question
func (s *ConfirmScreen) Text() string {
	return s.question
}

// CapturesKeys keeps letter keys for the form's y/n shortcuts
func (s *ConfirmScreen) CapturesKeys() bool {
	return true
}

// OnShow starts a fresh form
func (s *ConfirmScreen) OnShow(ctx Context) tea.Cmd {
	s.Base.OnShow(ctx)
	s.reset()
	return s.form.Init()
}

// Update forwards input to the form and answers once it completes
func (s *ConfirmScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	if !s.shown {
		return s, nil
	}

	model, cmd := s.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		s.form = f
	}

	switch s.form.State {
	case huh.StateCompleted:
		s.shown = false
		if s.confirmed && s.onYes != nil {
			return s, tea.Batch(cmd, s.onYes())
		}
		return s, tea.Batch(cmd, s.onNo())
	case huh.StateAborted:
		s.shown = false
		return s, tea.Batch(cmd, s.onNo())
	}
	return s, cmd
}

// View renders the form in the middle of the screen
func (s *ConfirmScreen) View(width, height int) string {
	box := s.styles.Modal.Render(s.form.View())
	if width <= 0 || height <= 0 {
		return box
	}
	return s.styles.Screen.Render(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box))
}
