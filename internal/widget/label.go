package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// Label displays text. Multiline labels wrap at Width; with a Height they
// scroll inside a viewport.
type Label struct {
	Style     lipgloss.Style
	Width     int
	Height    int
	Multiline bool

	text     string
	viewport viewport.Model
	ready    bool
}

// NewLabel creates a label
func NewLabel(text string, width int, multiline bool) *Label {
	return &Label{
		Style:     lipgloss.NewStyle(),
		Width:     width,
		Multiline: multiline,
		text:      text,
	}
}

// Text returns the label text
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label text
func (l *Label) SetText(text string) {
	l.text = text
	if l.ready {
		l.viewport.SetContent(l.render())
	}
}

// Scroll moves a scrolling label by delta lines
func (l *Label) Scroll(delta int) {
	if !l.ready {
		return
	}
	l.viewport.SetYOffset(l.viewport.YOffset + delta)
}

// View renders the label
func (l *Label) View(width, height int) string {
	content := l.render()
	if l.Height <= 0 || lipgloss.Height(content) <= l.Height {
		return content
	}

	w := l.Width
	if w <= 0 {
		w = lipgloss.Width(content)
	}
	if !l.ready {
		l.viewport = viewport.New(w, l.Height)
		l.ready = true
		l.viewport.SetContent(content)
	} else if l.viewport.Width != w || l.viewport.Height != l.Height {
		l.viewport.Width = w
		l.viewport.Height = l.Height
		l.viewport.SetContent(content)
	}
	return l.viewport.View()
}

func (l *Label) render() string {
	style := l.Style
	if l.Width > 0 {
		if l.Multiline {
			style = style.Width(l.Width)
		} else {
			style = style.MaxWidth(l.Width)
		}
	}
	text := l.text
	if !l.Multiline {
		text = strings.ReplaceAll(text, "\n", " ")
	}
	return style.Render(text)
}
