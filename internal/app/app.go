package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/huntgame/internal/config"
	"github.com/kmacinski/huntgame/internal/keys"
	"github.com/kmacinski/huntgame/internal/surface"
	"github.com/kmacinski/huntgame/internal/ui"
	"github.com/kmacinski/huntgame/internal/watcher"
	"github.com/kmacinski/huntgame/internal/window"
	zone "github.com/lrstanley/bubblezone"
)

// App is the main application model. It is the windowing facility the
// surface runs on: it owns the event loop, timers and the view being drawn.
type App struct {
	state   *State
	surface *surface.Surface
	styles  ui.Styles
	logger  *slog.Logger
	zones   *zone.Manager

	// Views
	current window.View
	help    *window.Help

	// Commands produced outside Update (timers, view lifecycle)
	queued []tea.Cmd

	// Dimensions
	width  int
	height int

	// Clipboard, replaceable in tests
	copyText func(string) error

	// Config watcher
	watcher *watcher.Watcher
	program *tea.Program
}

// Option configures an App
type Option func(*App)

// WithLogger sets the application logger
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithStyles sets the initial styles
func WithStyles(s ui.Styles) Option {
	return func(a *App) {
		a.styles = s
	}
}

// New creates a new application
func New(opts ...Option) *App {
	a := &App{
		state:    NewState(),
		styles:   ui.DefaultStyles,
		zones:    zone.New(),
		copyText: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a.help = window.NewHelp(a.styles)
	return a
}

// SetSurface attaches the controller that decides which view is shown
func (a *App) SetSurface(s *surface.Surface) {
	a.surface = s
}

// SetProgram sets the tea.Program reference for sending messages from the watcher
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
}

// WatchConfig reloads the config file whenever it changes on disk
func (a *App) WatchConfig(path string) error {
	w, err := watcher.New(path, 300*time.Millisecond, func() {
		if a.program == nil {
			return
		}
		cfg, err := config.Load(path)
		if err != nil {
			a.program.Send(ErrorMsg{Err: err})
			return
		}
		a.program.Send(ConfigChangedMsg{Config: cfg})
	}, func(err error) {
		if a.program != nil {
			a.program.Send(ErrorMsg{Err: fmt.Errorf("config watcher: %w", err)})
		}
	})
	if err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}
	a.watcher = w
	a.watcher.Start()
	return nil
}

// Cleanup stops the watcher
func (a *App) Cleanup() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	a.zones.Close()
}

// ScheduleOnce runs fn on the event loop after delay
func (a *App) ScheduleOnce(fn func(elapsed time.Duration) error, delay time.Duration) {
	start := time.Now()
	a.queue(tea.Tick(delay, func(time.Time) tea.Msg {
		return scheduledMsg{fn: fn, start: start}
	}))
}

// ShowView replaces the active view, running the hide and show hooks
func (a *App) ShowView(v window.View) {
	if a.current != nil {
		a.current.OnHide()
	}
	a.current = v
	if v == nil {
		return
	}
	a.queue(v.OnShow(a.context()))
	a.logger.Debug("showing view", slog.String("view", v.Name()))
}

// Current returns the view being drawn
func (a *App) Current() window.View {
	return a.current
}

func (a *App) context() window.Context {
	return window.Context{
		Width:  a.width,
		Height: a.contentHeight(),
		Styles: a.styles,
		Zones:  a.zones,
	}
}

func (a *App) queue(cmd tea.Cmd) {
	if cmd != nil {
		a.queued = append(a.queued, cmd)
	}
}

// done batches cmd with anything queued while handling the message
func (a *App) done(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	cmds := append(a.queued, cmd)
	a.queued = nil
	return a, tea.Batch(cmds...)
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	_, cmd := a.done(nil)
	return cmd
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if r, ok := a.current.(interface{ SetSize(width, height int) }); ok {
			r.SetSize(a.width, a.contentHeight())
		}
		return a.done(nil)

	case scheduledMsg:
		if err := msg.fn(time.Since(msg.start)); err != nil {
			a.logger.Error("scheduled callback failed", slog.Any("err", err))
			a.state.SetError(err)
		}
		return a.done(nil)

	case window.NavigateMsg:
		if a.surface != nil {
			a.surface.PushView(msg.View)
		}
		return a.done(nil)

	case window.BackMsg:
		if a.surface != nil {
			a.surface.PopView()
		}
		return a.done(nil)

	case window.QuitMsg:
		return a, tea.Quit

	case ConfigChangedMsg:
		a.applyConfig(msg.Config)
		a.state.Status = "Config reloaded"
		return a.done(nil)

	case ErrorMsg:
		a.logger.Error("background error", slog.Any("err", msg.Err))
		a.state.SetError(msg.Err)
		return a.done(nil)

	case StatusMsg:
		a.state.Status = msg.Text
		return a.done(nil)

	case tea.KeyMsg:
		if a.state.ActiveModal != "" {
			return a.handleModalKey(msg)
		}
		if key.Matches(msg, keys.DefaultKeyMap.Quit) {
			return a, tea.Quit
		}
		if key.Matches(msg, keys.DefaultKeyMap.Back) && a.surface != nil && a.surface.Depth() > 0 {
			a.surface.PopView()
			return a.done(nil)
		}
		if !a.capturesKeys() {
			switch {
			case key.Matches(msg, keys.DefaultKeyMap.Help):
				a.state.ToggleModal("help")
				return a.done(nil)

			case key.Matches(msg, keys.DefaultKeyMap.Yank):
				a.yank()
				return a.done(nil)
			}
		}
		return a.delegate(msg)
	}

	return a.delegate(msg)
}

func (a *App) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow quit
	if key.Matches(msg, keys.DefaultKeyMap.Quit) {
		return a, tea.Quit
	}

	// Close modal on ? or Escape
	if key.Matches(msg, keys.DefaultKeyMap.Help) || key.Matches(msg, keys.DefaultKeyMap.Back) {
		a.state.CloseModal()
	}
	return a.done(nil)
}

func (a *App) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.current == nil {
		return a.done(nil)
	}
	v, cmd := a.current.Update(msg)
	if v != a.current && a.surface != nil {
		a.surface.SetActiveView(v)
	}
	a.current = v
	return a.done(cmd)
}

// capturesKeys reports whether the view wants plain letter keys for itself
func (a *App) capturesKeys() bool {
	c, ok := a.current.(interface{ CapturesKeys() bool })
	return ok && c.CapturesKeys()
}

func (a *App) yank() {
	t, ok := a.current.(window.Texter)
	if !ok {
		return
	}
	if err := a.copyText(t.Text()); err != nil {
		a.state.SetError(err)
		return
	}
	a.state.Status = "Copied text"
}

func (a *App) applyConfig(cfg *config.Config) {
	a.styles = ui.NewStyles(ui.ColorsFrom(cfg.Colors))
	a.help.SetStyles(a.styles)
	if r, ok := a.current.(interface{ SetStyles(ui.Styles) }); ok {
		r.SetStyles(a.styles)
	}
}

func (a *App) contentHeight() int {
	return max(a.height-1, 0) // status bar
}

// View renders the application
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	if a.current == nil {
		content = lipgloss.Place(a.width, a.contentHeight(), lipgloss.Center, lipgloss.Center,
			a.styles.Muted.Render("Loading..."))
	} else {
		content = a.current.View(a.width, a.contentHeight())
	}

	if a.state.ActiveModal == "help" {
		content = a.renderWithModal(a.help)
	}

	return a.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, content, a.renderStatusBar()))
}

func (a *App) renderStatusBar() string {
	name := "loading"
	if a.current != nil {
		name = a.current.Name()
	}

	left := fmt.Sprintf(" huntgame  [%s]", name)
	if a.surface != nil && a.surface.Depth() > 0 {
		left += fmt.Sprintf("  depth %d", a.surface.Depth())
	}

	// Status message (temporary)
	if a.state.Error != "" {
		left += a.styles.Error.Render(" │ " + a.state.Error)
		a.state.Error = ""
	} else if a.state.Status != "" {
		left += a.styles.Muted.Render(" │ " + a.state.Status)
		a.state.Status = "" // Clear after showing
	}

	padding := max(a.width-lipgloss.Width(left), 0)
	return a.styles.StatusBar.
		Width(a.width).
		Render(left + strings.Repeat(" ", padding))
}

func (a *App) renderWithModal(modal window.View) string {
	modalWidth := min(50, a.width-4)
	modalHeight := min(20, a.contentHeight()-2)

	return lipgloss.Place(
		a.width,
		a.contentHeight(),
		lipgloss.Center,
		lipgloss.Center,
		modal.View(modalWidth, modalHeight),
	)
}
