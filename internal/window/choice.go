package window

import (
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/huntgame/internal/keys"
	"github.com/kmacinski/huntgame/internal/ui"
	"github.com/kmacinski/huntgame/internal/widget"
)

const (
	passageWidth = 60
	buttonWidth  = 20
	spacing      = 2
)

// Choice is a labeled option on a ChoiceScreen
type Choice struct {
	Text    string
	OnClick widget.ClickHandler
}

// ChoiceScreen shows a passage of text and a row of choices
type ChoiceScreen struct {
	Base

	title    string
	fullText string
	choices  []Choice

	titleLabel *widget.Label
	text       *widget.Label
	buttons    *widget.Box
	vertical   *widget.Box
	anchor     *widget.Anchor

	revealRate  time.Duration
	revealed    int // runes of fullText currently shown
	generation  int
	skipSetup   bool
	initialized bool
}

// ChoiceOption configures a ChoiceScreen
type ChoiceOption func(*ChoiceScreen)

// WithTitle sets a title shown above the passage
func WithTitle(title string) ChoiceOption {
	return func(s *ChoiceScreen) {
		s.title = title
	}
}

// WithBackground overrides the background color
func WithBackground(c lipgloss.TerminalColor) ChoiceOption {
	return func(s *ChoiceScreen) {
		s.SetBackground(c)
	}
}

// WithReveal types the passage out one character per rate
func WithReveal(rate time.Duration) ChoiceOption {
	return func(s *ChoiceScreen) {
		s.revealRate = rate
	}
}

// WithoutSetup skips building the widgets; call Setup before showing
func WithoutSetup() ChoiceOption {
	return func(s *ChoiceScreen) {
		s.skipSetup = true
	}
}

// NewChoiceScreen creates a choice screen
func NewChoiceScreen(styles ui.Styles, text string, choices []Choice, opts ...ChoiceOption) *ChoiceScreen {
	s := &ChoiceScreen{
		Base:     NewBase("choice", styles),
		fullText: text,
		choices:  choices,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.skipSetup {
		s.Setup()
	}
	return s
}

// Text returns the full passage text
func (s *ChoiceScreen) Text() string {
	return s.fullText
}

// Title returns the title
func (s *ChoiceScreen) Title() string {
	return s.title
}

// Choices returns the configured choices
func (s *ChoiceScreen) Choices() []Choice {
	return s.choices
}

// Initialized returns whether Setup has run
func (s *ChoiceScreen) Initialized() bool {
	return s.initialized
}

// TextFinished reports whether the passage is fully displayed
func (s *ChoiceScreen) TextFinished() bool {
	return s.text != nil && s.text.Text() == s.fullText
}

// SetText replaces the passage and rebuilds the screen
func (s *ChoiceScreen) SetText(text string) tea.Cmd {
	s.fullText = text
	return s.Setup()
}

// SetTitle replaces the title and rebuilds the screen
func (s *ChoiceScreen) SetTitle(title string) tea.Cmd {
	s.title = title
	return s.Setup()
}

// SetChoices replaces the choices and rebuilds the screen
func (s *ChoiceScreen) SetChoices(choices []Choice) tea.Cmd {
	s.choices = choices
	return s.Setup()
}

// Setup builds the widget tree from the current title, text and choices,
// replacing any previous tree.
func (s *ChoiceScreen) Setup() tea.Cmd {
	if s.initialized {
		s.ui.Clear()
	}
	s.generation++

	s.revealed = utf8.RuneCountInString(s.fullText)
	if s.revealRate > 0 {
		s.revealed = 0
	}

	s.text = widget.NewLabel(s.visibleText(), passageWidth, true)
	s.buttons = widget.NewBox(widget.Horizontal, spacing)
	for _, c := range s.choices {
		s.buttons.Add(widget.NewButton(c.Text, buttonWidth, c.OnClick))
	}

	s.vertical = widget.NewBox(widget.Vertical, spacing-1)
	if s.title != "" {
		s.titleLabel = widget.NewLabel(s.title, passageWidth, false)
		s.vertical.Add(s.titleLabel)
	} else {
		s.titleLabel = nil
	}
	s.vertical.Add(s.text, s.buttons)
	s.anchor = widget.NewAnchor(s.vertical)
	s.ui.Add(s.anchor)
	s.applyStyles()
	if s.ctx.Height > 0 {
		s.SetSize(s.ctx.Width, s.ctx.Height)
	}

	s.initialized = true
	return s.revealTick()
}

// OnShow enables input and starts revealing the passage
func (s *ChoiceScreen) OnShow(ctx Context) tea.Cmd {
	s.Base.OnShow(ctx)
	s.applyStyles()
	s.SetSize(ctx.Width, ctx.Height)
	// ticks from an earlier showing must not start a second chain
	s.generation++
	return s.revealTick()
}

// SetStyles restyles the existing widgets
func (s *ChoiceScreen) SetStyles(styles ui.Styles) {
	s.Base.SetStyles(styles)
	s.applyStyles()
}

// SetSize gives the passage half of the new height
func (s *ChoiceScreen) SetSize(width, height int) {
	s.Base.SetSize(width, height)
	if s.text != nil {
		s.text.Height = max(height/2, 1)
	}
}

// Update handles input
func (s *ChoiceScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case revealMsg:
		if msg.screen != s || msg.generation != s.generation || s.TextFinished() {
			return s, nil
		}
		s.revealed++
		s.text.SetText(s.visibleText())
		return s, s.revealTick()

	case tea.KeyMsg:
		if !s.ui.Enabled() {
			return s, nil
		}
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Enter) && !s.TextFinished():
			s.finishReveal()
			return s, nil
		case key.Matches(msg, keys.DefaultKeyMap.Up):
			s.text.Scroll(-1)
			return s, nil
		case key.Matches(msg, keys.DefaultKeyMap.Down):
			s.text.Scroll(1)
			return s, nil
		}
	}

	return s, s.ui.Update(msg)
}

func (s *ChoiceScreen) finishReveal() {
	s.revealed = utf8.RuneCountInString(s.fullText)
	s.text.SetText(s.fullText)
}

func (s *ChoiceScreen) visibleText() string {
	if s.revealed >= utf8.RuneCountInString(s.fullText) {
		return s.fullText
	}
	return string([]rune(s.fullText)[:s.revealed])
}

func (s *ChoiceScreen) revealTick() tea.Cmd {
	if s.revealRate <= 0 || !s.shown || s.TextFinished() {
		return nil
	}
	screen, generation := s, s.generation
	return tea.Tick(s.revealRate, func(time.Time) tea.Msg {
		return revealMsg{screen: screen, generation: generation}
	})
}

func (s *ChoiceScreen) applyStyles() {
	if s.text == nil {
		return
	}
	s.text.Style = s.styles.Passage
	if s.titleLabel != nil {
		s.titleLabel.Style = s.styles.Title
	}
	for _, w := range s.buttons.Children() {
		if b, ok := w.(*widget.Button); ok {
			b.Style = s.styles.Button
			b.FocusedStyle = s.styles.ButtonFocused
		}
	}
}

type revealMsg struct {
	screen     *ChoiceScreen
	generation int
}
