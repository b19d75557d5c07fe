// Package game holds the hunt game's screens.
package game

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/huntgame/internal/deferred"
	"github.com/kmacinski/huntgame/internal/ui"
	"github.com/kmacinski/huntgame/internal/widget"
	"github.com/kmacinski/huntgame/internal/window"
)

// MakeMenu builds a choice screen. It takes the passage text as its only
// positional argument and the named arguments "choices" ([]window.Choice),
// "title" (string), "styles" (ui.Styles) and "reveal" (time.Duration).
func MakeMenu(args []any, kwargs deferred.Kwargs) (window.View, error) {
	text, err := deferred.Arg[string](args, 0)
	if err != nil {
		return nil, err
	}
	choices, _, err := deferred.Kwarg[[]window.Choice](kwargs, "choices")
	if err != nil {
		return nil, err
	}
	title, _, err := deferred.Kwarg[string](kwargs, "title")
	if err != nil {
		return nil, err
	}
	styles, ok, err := deferred.Kwarg[ui.Styles](kwargs, "styles")
	if err != nil {
		return nil, err
	}
	if !ok {
		styles = ui.DefaultStyles
	}
	reveal, _, err := deferred.Kwarg[time.Duration](kwargs, "reveal")
	if err != nil {
		return nil, err
	}

	return window.NewChoiceScreen(styles, text, choices,
		window.WithTitle(title),
		window.WithReveal(reveal),
	), nil
}

// Game creates the screens of the hunt
type Game struct {
	styles ui.Styles
	reveal time.Duration
}

// New creates a game using styles and a passage reveal rate
func New(styles ui.Styles, reveal time.Duration) *Game {
	return &Game{styles: styles, reveal: reveal}
}

// MainMenu returns the deferred construction of the first screen
func (g *Game) MainMenu() deferred.Call[window.View] {
	return deferred.Make(MakeMenu, []any{"Main Menu"}, deferred.Kwargs{
		"title":  "Hunt",
		"styles": g.styles,
		"choices": []window.Choice{
			{Text: "New game", OnClick: func(*widget.Button, widget.ClickEvent) tea.Cmd {
				return window.Navigate(g.Cave())
			}},
			{Text: "Exit", OnClick: func(*widget.Button, widget.ClickEvent) tea.Cmd {
				return window.Navigate(g.ConfirmExit())
			}},
		},
	})
}

// ConfirmExit asks before quitting
func (g *Game) ConfirmExit() window.View {
	return window.NewConfirmScreen(g.styles, "Leave the hunt?", window.Quit, nil)
}

// Cave is the first screen of a new game
func (g *Game) Cave() window.View {
	s := window.NewChoiceScreen(g.styles, "You enter the cave...", nil, window.WithReveal(g.reveal))
	s.SetChoices([]window.Choice{
		{Text: "Go deeper", OnClick: func(*widget.Button, widget.ClickEvent) tea.Cmd {
			return tea.Batch(
				s.SetText("The passage narrows and the air turns cold. Something shifts in the dark ahead."),
				s.SetChoices([]window.Choice{
					{Text: "Turn back", OnClick: back},
				}),
			)
		}},
		{Text: "Turn back", OnClick: back},
	})
	return s
}

func back(*widget.Button, widget.ClickEvent) tea.Cmd {
	return window.Back()
}
