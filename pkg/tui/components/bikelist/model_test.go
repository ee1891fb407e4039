package bikelist

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/bookmarks"
	"tableflip.dev/pedal/pkg/currency"
	"tableflip.dev/pedal/pkg/tui/events"
)

var catalog = []bike.Bike{
	{ID: 1, Name: "Rustler", Type: "Mountain", BodySize: 17, Rate: 22.5},
	{ID: 2, Name: "Veloz", Type: "Road", BodySize: 19, Rate: 18},
}

func newModel(t *testing.T, marks bookmarks.Store) *Model {
	t.Helper()
	m := NewModel("bikes", marks, currency.EUR)
	m.SetSize(60, 20)
	m.SetBikes(catalog)
	return m
}

func TestEnterSelectsHighlightedBike(t *testing.T) {
	m := newModel(t, nil)
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a selection command")
	}
	msg, ok := cmd().(events.BikeSelectMsg)
	if !ok || msg.Bike.ID != 2 {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestBookmarkToggleMarksItem(t *testing.T) {
	marks, err := bookmarks.Load(t.TempDir())
	if err != nil {
		t.Fatalf("bookmarks.Load: %v", err)
	}
	m := newModel(t, marks)
	_, cmd := m.Update(tea.KeyPressMsg{Text: "b", Code: 'b'})
	if cmd == nil {
		t.Fatalf("expected a toggle command")
	}
	msg := cmd().(events.BookmarkToggledMsg)
	if msg.Err != nil || !msg.Bookmarked || msg.BikeID != 1 {
		t.Fatalf("unexpected toggle %+v", msg)
	}
	m.Update(msg)
	if !m.Bookmarked(1) {
		t.Fatalf("expected bike 1 to be bookmarked")
	}
	if !marks.Has(1) {
		t.Fatalf("toggle was not persisted")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "★ Rustler") {
		t.Fatalf("expected bookmark star in view:\n%s", view)
	}
}

func TestBookmarkKeyIgnoredWithoutStore(t *testing.T) {
	m := newModel(t, nil)
	if _, cmd := m.Update(tea.KeyPressMsg{Text: "b", Code: 'b'}); cmd != nil {
		t.Fatalf("expected no command without a store")
	}
}

func TestDescriptionFormatsRate(t *testing.T) {
	item := bikeItem{bike: catalog[0], currency: currency.EUR}
	if got := item.Description(); !strings.Contains(got, "22.50") || !strings.Contains(got, "Mountain") {
		t.Fatalf("description = %q", got)
	}
}
