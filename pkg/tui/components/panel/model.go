// Package panel frames content such as the narrow-terminal date modal.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/pedal/pkg/tui/theme"
)

// Model is a titled frame with an optional action line under the body.
type Model struct {
	title   string
	body    string
	actions string

	frame   lipgloss.Style
	heading lipgloss.Style
	text    lipgloss.Style
}

func New(th theme.PanelTheme) Model {
	return Model{
		frame:   th.Frame,
		heading: th.Title,
		text:    th.Body,
	}
}

// SetContent replaces the title and the already rendered body.
func (m *Model) SetContent(title, body string) {
	m.title = title
	m.body = body
}

// SetActions sets the key hints rendered below the body.
func (m *Model) SetActions(actions string) { m.actions = actions }

func (m *Model) Reset() {
	m.title, m.body, m.actions = "", "", ""
}

// View returns the framed panel and its height in lines.
func (m Model) View() (string, int) {
	var parts []string
	if m.title != "" {
		parts = append(parts, m.heading.Render(m.title), "")
	}
	if m.body != "" {
		parts = append(parts, m.body)
	}
	if m.actions != "" {
		parts = append(parts, "", m.text.Render(m.actions))
	}
	view := m.frame.Render(strings.Join(parts, "\n"))
	return view, lipgloss.Height(view)
}

// Place centers the panel in a width x height area. Non-positive bounds
// return the bare panel.
func (m Model) Place(width, height int) string {
	view, _ := m.View()
	if width <= 0 || height <= 0 {
		return view
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, view)
}
