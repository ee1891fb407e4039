// Package help renders the key reference overlay from embedded markdown.
package help

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

//go:embed help.md
var reference string

const (
	minWidth  = 32
	minHeight = 8
)

// Model is a scrollable, framed rendering of the key reference.
type Model struct {
	viewport viewport.Model
	frame    lipgloss.Style
	width    int
	height   int
	err      error
}

func New(width, height int) *Model {
	m := &Model{
		viewport: viewport.New(),
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
	m.viewport.MouseWheelEnabled = true
	m.SetSize(width, height)
	return m
}

// Update forwards scrolling keys and wheel events to the viewport.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) View() (string, *tea.Cursor) {
	body := m.viewport.View()
	if m.err != nil {
		body = fmt.Sprintf("help unavailable: %v", m.err)
	}
	footer := fmt.Sprintf("%3.f%%  ↑/↓ scroll • ? close", m.viewport.ScrollPercent()*100)
	return m.frame.Width(m.width).Height(m.height).Render(body + "\n" + footer), nil
}

// SetSize clamps to a minimum frame and re-renders the markdown only when
// the bounds change.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, minWidth), max(height, minHeight)
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height

	inner := max(width-m.frame.GetHorizontalFrameSize(), 1)
	m.viewport.SetWidth(inner)
	// One line is kept for the footer.
	m.viewport.SetHeight(max(height-m.frame.GetVerticalFrameSize()-1, 1))
	m.render(inner)
}

func (m *Model) render(wrap int) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(wrap, 10)),
	)
	if err == nil {
		var out string
		if out, err = renderer.Render(strings.TrimSpace(reference)); err == nil {
			m.err = nil
			m.viewport.SetContent(ansi.Strip(out))
			m.viewport.GotoTop()
			return
		}
	}
	m.err = err
}
