package overview

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/currency"
	"tableflip.dev/pedal/pkg/datepicker"
	"tableflip.dev/pedal/pkg/tui/events"
	"tableflip.dev/pedal/pkg/tui/theme"
)

type fakeService struct {
	api.Service
	rented []bike.RentDetails
	err    error
}

func (f *fakeService) Rent(_ context.Context, d bike.RentDetails) (bike.BikeReturnDetails, error) {
	if f.err != nil {
		return bike.BikeReturnDetails{}, f.err
	}
	f.rented = append(f.rented, d)
	return bike.BikeReturnDetails{ID: 7, BikeID: d.BikeID, UserID: d.UserID, DateFrom: d.DateFrom, DateTo: d.DateTo}, nil
}

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

func newModel(svc api.Service) *Model {
	m := New("overview", svc, currency.EUR, theme.Default().Card)
	m.SetBooking(
		bike.Bike{ID: 2, Name: "Veloz", Type: "Road"},
		bike.RentDetails{
			UserID:   1,
			BikeID:   2,
			DateFrom: datepicker.MustParseDate("2024-01-20"),
			DateTo:   datepicker.MustParseDate("2024-01-22"),
		},
		bike.RentAmount{RentAmount: 54, Fee: 8.1, TotalAmount: 62.1},
	)
	return m
}

func TestEnterRentsOnce(t *testing.T) {
	svc := &fakeService{}
	m := newModel(svc)
	_, cmd := m.Update(enter)
	if cmd == nil || !m.Submitting() {
		t.Fatalf("expected a rent command")
	}
	if _, again := m.Update(enter); again != nil {
		t.Fatalf("a second enter while submitting must be ignored")
	}
	msg, ok := cmd().(events.BookedMsg)
	if !ok || msg.Rental.ID != 7 || msg.Component != "overview" {
		t.Fatalf("unexpected message %#v", msg)
	}
	m.Update(msg)
	if m.Submitting() || len(svc.rented) != 1 {
		t.Fatalf("submitting=%t rented=%d", m.Submitting(), len(svc.rented))
	}
}

func TestRentFailureIsShown(t *testing.T) {
	svc := &fakeService{err: api.ErrUnavailable}
	m := newModel(svc)
	_, cmd := m.Update(enter)
	m.Update(cmd())
	if m.Submitting() {
		t.Fatalf("expected submission to settle")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "error:") {
		t.Fatalf("expected error in view:\n%s", view)
	}
}

func TestViewSummarizesBooking(t *testing.T) {
	view := ansi.Strip(newModel(&fakeService{}).View())
	for _, want := range []string{"Veloz", "2024-01-20", "2024-01-22", "Days    3", "62.10", "Book now"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
