// Package success shows the confirmation after a rental is created.
package success

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/tui/events"
	"tableflip.dev/pedal/pkg/tui/theme"
)

// Model renders the booked bike and an optional way back to the list.
type Model struct {
	id           events.ComponentID
	theme        theme.CardTheme
	rental       bike.BikeReturnDetails
	showRedirect bool
}

// New returns a success screen. When showRedirect is false the back action
// is neither rendered nor triggered.
func New(id events.ComponentID, th theme.CardTheme, showRedirect bool) *Model {
	return &Model{id: id, theme: th, showRedirect: showRedirect}
}

// SetRental records the created rental.
func (m *Model) SetRental(r bike.BikeReturnDetails) { m.rental = r }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update emits BackMsg on enter when the redirect is enabled.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" && m.showRedirect {
		return m, events.BackCmd(m.id)
	}
	return m, nil
}

// View renders the confirmation.
func (m *Model) View() string {
	th := m.theme
	b := m.rental.Bike
	lines := []string{
		th.Name.Render("Thank you!"),
		"",
		th.Value.Render("Your bike is booked."),
		"",
	}
	if thumb := b.Thumb(); thumb != "" {
		lines = append(lines, th.Label.Render(thumb))
	}
	lines = append(lines,
		th.Price.Render(b.Name),
		th.Label.Render(b.Type),
		th.Label.Render(m.rental.DateFrom.String()+" → "+m.rental.DateTo.String()),
	)
	if m.showRedirect {
		lines = append(lines, "", th.Button.Render("enter  Back to bikes"))
	}
	return strings.Join(lines, "\n")
}
