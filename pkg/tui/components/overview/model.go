// Package overview renders the booking summary and submits the rental.
package overview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/currency"
	"tableflip.dev/pedal/pkg/tui/events"
	"tableflip.dev/pedal/pkg/tui/theme"
)

const rentTimeout = 15 * time.Second

// Model is the booking overview screen.
type Model struct {
	id       events.ComponentID
	service  api.Service
	currency currency.Code
	theme    theme.CardTheme

	bike       bike.Bike
	details    bike.RentDetails
	amount     bike.RentAmount
	submitting bool
	err        error
}

// New returns an overview backed by service.
func New(id events.ComponentID, service api.Service, code currency.Code, th theme.CardTheme) *Model {
	return &Model{id: id, service: service, currency: code, theme: th}
}

// SetBooking loads the bike, details and quoted amount to summarize.
func (m *Model) SetBooking(b bike.Bike, details bike.RentDetails, amount bike.RentAmount) {
	m.bike = b
	m.details = details
	m.amount = amount
	m.submitting = false
	m.err = nil
}

// Submitting reports whether a rent request is in flight.
func (m *Model) Submitting() bool { return m.submitting }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update submits on enter and records failures.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case events.ErrorMsg:
		if msg.Component == m.id {
			m.submitting = false
			m.err = msg.Err
		}
	case events.BookedMsg:
		if msg.Component == m.id {
			m.submitting = false
		}
	case tea.KeyMsg:
		if msg.String() == "enter" && !m.submitting {
			if err := m.details.Validate(); err != nil {
				m.err = err
				return m, nil
			}
			m.submitting = true
			m.err = nil
			return m, rentCmd(m.id, m.service, m.details)
		}
	}
	return m, nil
}

// View renders the summary card.
func (m *Model) View() string {
	th := m.theme
	row := func(label, value string) string {
		return th.Label.Render(fmt.Sprintf("%-8s", label)) + th.Value.Render(value)
	}
	lines := []string{
		th.Name.Render(m.bike.Name),
		row("Type", m.bike.Type),
		row("From", m.details.DateFrom.String()),
		row("To", m.details.DateTo.String()),
		row("Days", fmt.Sprintf("%d", m.details.Days())),
		row("Rent", currency.Format(m.amount.RentAmount, m.currency)),
		row("Fee", currency.Format(m.amount.Fee, m.currency)),
		th.Label.Render(fmt.Sprintf("%-8s", "Total")) + th.Price.Render(currency.Format(m.amount.TotalAmount, m.currency)),
		"",
	}
	switch {
	case m.submitting:
		lines = append(lines, th.Label.Render("booking…"))
	default:
		lines = append(lines, th.Button.Render("enter  Book now"))
	}
	if m.err != nil {
		lines = append(lines, th.Label.Render("error: "+m.err.Error()))
	}
	return strings.Join(lines, "\n")
}

func rentCmd(id events.ComponentID, service api.Service, details bike.RentDetails) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rentTimeout)
		defer cancel()
		rental, err := service.Rent(ctx, details)
		if err != nil {
			return events.ErrorMsg{Component: id, Err: err}
		}
		return events.BookedMsg{Component: id, Rental: rental}
	}
}
