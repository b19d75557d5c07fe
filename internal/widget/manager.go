package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/huntgame/internal/keys"
	zone "github.com/lrstanley/bubblezone"
)

// Manager owns a screen's widget tree. It renders the tree, keeps keyboard
// focus among the buttons and dispatches clicks. A disabled manager ignores
// all input.
type Manager struct {
	roots   []Widget
	buttons []*Button
	focus   int
	enabled bool

	zones  *zone.Manager
	prefix string
}

// NewManager creates an empty, disabled manager
func NewManager() *Manager {
	return &Manager{}
}

// SetZones attaches the zone manager used to resolve mouse clicks
func (m *Manager) SetZones(z *zone.Manager) {
	if m.zones == z {
		return
	}
	m.zones = z
	m.prefix = ""
	if z != nil {
		m.prefix = z.NewPrefix()
	}
	m.reindex()
}

// Add adds top-level widgets and registers any buttons inside them
func (m *Manager) Add(w ...Widget) {
	m.roots = append(m.roots, w...)
	m.reindex()
}

// Clear removes every widget
func (m *Manager) Clear() {
	m.roots = nil
	m.buttons = nil
	m.focus = 0
}

// Enable turns on input handling
func (m *Manager) Enable() {
	m.enabled = true
}

// Disable turns off input handling
func (m *Manager) Disable() {
	m.enabled = false
}

// Enabled returns whether input is handled
func (m *Manager) Enabled() bool {
	return m.enabled
}

// Buttons returns the registered buttons in tree order
func (m *Manager) Buttons() []*Button {
	return m.buttons
}

// Focused returns the button with keyboard focus, if any
func (m *Manager) Focused() *Button {
	if len(m.buttons) == 0 {
		return nil
	}
	return m.buttons[m.focus]
}

// FocusIndex moves keyboard focus to button i
func (m *Manager) FocusIndex(i int) {
	if len(m.buttons) == 0 {
		return
	}
	i = (i%len(m.buttons) + len(m.buttons)) % len(m.buttons)
	m.buttons[m.focus].focused = false
	m.focus = i
	m.buttons[i].focused = true
}

// Click activates button i as if chosen from the keyboard
func (m *Manager) Click(i int) tea.Cmd {
	if !m.enabled || i < 0 || i >= len(m.buttons) {
		return nil
	}
	m.FocusIndex(i)
	return m.buttons[i].Click(ClickEvent{Keyboard: true})
}

// Update handles keyboard focus and mouse clicks
func (m *Manager) Update(msg tea.Msg) tea.Cmd {
	if !m.enabled || len(m.buttons) == 0 {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Right), key.Matches(msg, keys.DefaultKeyMap.Tab):
			m.FocusIndex(m.focus + 1)
		case key.Matches(msg, keys.DefaultKeyMap.Left), key.Matches(msg, keys.DefaultKeyMap.ShiftTab):
			m.FocusIndex(m.focus - 1)
		case key.Matches(msg, keys.DefaultKeyMap.Enter):
			return m.Click(m.focus)
		}

	case tea.MouseMsg:
		if m.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		for i, b := range m.buttons {
			z := m.zones.Get(b.id)
			if z == nil || !z.InBounds(msg) {
				continue
			}
			m.FocusIndex(i)
			x, y := z.Pos(msg)
			return b.Click(ClickEvent{X: x, Y: y})
		}
	}

	return nil
}

// View renders every top-level widget into the area
func (m *Manager) View(width, height int) string {
	var out []string
	for _, w := range m.roots {
		out = append(out, w.View(width, height))
	}
	return strings.Join(out, "\n")
}

func (m *Manager) reindex() {
	m.buttons = m.buttons[:0]
	for _, w := range m.roots {
		m.collect(w)
	}
	for i, b := range m.buttons {
		b.id = fmt.Sprintf("%sbutton-%d", m.prefix, i)
		b.focused = false
		b.mark = nil
		if m.zones != nil {
			b.mark = m.zones.Mark
		}
	}
	if m.focus >= len(m.buttons) {
		m.focus = 0
	}
	if len(m.buttons) > 0 {
		m.buttons[m.focus].focused = true
	}
}

func (m *Manager) collect(w Widget) {
	switch w := w.(type) {
	case *Button:
		m.buttons = append(m.buttons, w)
	case Container:
		for _, child := range w.Children() {
			m.collect(child)
		}
	}
}
