// Package pricing shows the rent amount for the current booking details and
// re-requests it whenever they change.
package pricing

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/currency"
	"tableflip.dev/pedal/pkg/tui/events"
	"tableflip.dev/pedal/pkg/tui/theme"
)

const requestTimeout = 10 * time.Second

// Model tracks the latest quote for a set of rent details.
type Model struct {
	id       events.ComponentID
	service  api.Service
	currency currency.Code
	theme    theme.CardTheme

	seq     int
	details bike.RentDetails
	amount  *bike.RentAmount
	loading bool
	err     error
}

// New returns a pricing model that fetches quotes from service.
func New(id events.ComponentID, service api.Service, code currency.Code, th theme.CardTheme) *Model {
	return &Model{id: id, service: service, currency: code, theme: th}
}

// SetDetails records new details and, when they are valid and differ from
// the current ones, returns a command that fetches the amount.
func (m *Model) SetDetails(details bike.RentDetails) tea.Cmd {
	if details == m.details && (m.amount != nil || m.loading) {
		return nil
	}
	m.details = details
	m.amount = nil
	m.err = nil
	m.seq++
	if details.Validate() != nil {
		m.loading = false
		return nil
	}
	m.loading = true
	return fetchCmd(m.id, m.seq, m.service, details)
}

// Amount returns the loaded quote, if any.
func (m *Model) Amount() (bike.RentAmount, bool) {
	if m.amount == nil {
		return bike.RentAmount{}, false
	}
	return *m.amount, true
}

// Loading reports whether a request is in flight.
func (m *Model) Loading() bool { return m.loading }

// Err returns the last request error.
func (m *Model) Err() error { return m.err }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update applies quote responses for the most recent request only.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	loaded, ok := msg.(events.QuoteLoadedMsg)
	if !ok || loaded.Component != m.id || loaded.Seq != m.seq {
		return m, nil
	}
	m.loading = false
	if loaded.Err != nil {
		m.err = loaded.Err
		return m, nil
	}
	amount := loaded.Amount
	m.amount = &amount
	return m, nil
}

// View renders the price breakdown.
func (m *Model) View() string {
	th := m.theme
	switch {
	case m.err != nil:
		return th.Label.Render("price unavailable: " + m.err.Error())
	case m.loading:
		return th.Label.Render("calculating price…")
	case m.amount == nil:
		return th.Label.Render("select dates to see the price")
	}
	rows := []string{
		th.Label.Render("Rent   ") + th.Value.Render(currency.Format(m.amount.RentAmount, m.currency)),
		th.Label.Render("Fee    ") + th.Value.Render(currency.Format(m.amount.Fee, m.currency)),
		th.Label.Render("Total  ") + th.Price.Render(currency.Format(m.amount.TotalAmount, m.currency)),
	}
	return strings.Join(rows, "\n")
}

func fetchCmd(id events.ComponentID, seq int, service api.Service, details bike.RentDetails) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		amount, err := service.Amount(ctx, details)
		return events.QuoteLoadedMsg{Component: id, Seq: seq, Details: details, Amount: amount, Err: err}
	}
}
