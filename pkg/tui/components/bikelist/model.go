// Package bikelist renders the bike catalog as a filterable list.
package bikelist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/bookmarks"
	"tableflip.dev/pedal/pkg/currency"
	"tableflip.dev/pedal/pkg/tui/events"
)

// Model wraps a bubbles list of bikes with bookmark toggling.
type Model struct {
	id         events.ComponentID
	list       list.Model
	bikes      []bike.Bike
	bookmarked map[int]bool
	marks      bookmarks.Store
	currency   currency.Code
}

// NewModel constructs the list. marks may be nil, which disables bookmarking.
func NewModel(id events.ComponentID, marks bookmarks.Store, code currency.Code) *Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	return &Model{
		id:         id,
		list:       l,
		bookmarked: map[int]bool{},
		marks:      marks,
		currency:   code,
	}
}

// SetBikes replaces the rendered bikes.
func (m *Model) SetBikes(bikes []bike.Bike) {
	m.bikes = append([]bike.Bike(nil), bikes...)
	m.refresh()
}

// SetBookmarked replaces the set of bookmarked bike IDs.
func (m *Model) SetBookmarked(ids map[int]bool) {
	m.bookmarked = ids
	if m.bookmarked == nil {
		m.bookmarked = map[int]bool{}
	}
	m.refresh()
}

// Bookmarked reports whether id is currently marked.
func (m *Model) Bookmarked(id int) bool { return m.bookmarked[id] }

// Selected returns the highlighted bike.
func (m *Model) Selected() (bike.Bike, bool) {
	it, ok := m.list.SelectedItem().(bikeItem)
	if !ok {
		return bike.Bike{}, false
	}
	return it.bike, true
}

// Filtering reports whether the filter input owns the keyboard.
func (m *Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles selection and bookmark keys, forwarding the rest to the list.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case events.BookmarkToggledMsg:
		if msg.Err == nil {
			m.bookmarked[msg.BikeID] = msg.Bookmarked
			m.refresh()
		}
		return m, nil
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter":
			if b, ok := m.Selected(); ok {
				return m, events.BikeSelectCmd(m.id, b)
			}
			return m, nil
		case "b":
			if b, ok := m.Selected(); ok && m.marks != nil {
				return m, toggleCmd(m.id, m.marks, b)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list.
func (m *Model) View() string {
	return m.list.View()
}

func (m *Model) refresh() {
	index := m.list.Index()
	items := make([]list.Item, 0, len(m.bikes))
	for _, b := range m.bikes {
		items = append(items, bikeItem{bike: b, bookmarked: m.bookmarked[b.ID], currency: m.currency})
	}
	m.list.SetItems(items)
	if index < len(items) {
		m.list.Select(index)
	}
}

func toggleCmd(id events.ComponentID, marks bookmarks.Store, b bike.Bike) tea.Cmd {
	return func() tea.Msg {
		on, err := marks.Toggle(b.ID, b.Name)
		return events.BookmarkToggledMsg{Component: id, BikeID: b.ID, Bookmarked: on, Err: err}
	}
}

type bikeItem struct {
	bike       bike.Bike
	bookmarked bool
	currency   currency.Code
}

func (i bikeItem) Title() string {
	title := i.bike.Name
	if i.bookmarked {
		title = "★ " + title
	}
	if i.bike.IsRented {
		title += " (rented)"
	}
	return title
}

func (i bikeItem) Description() string {
	return fmt.Sprintf("%s · size %d · %s/day", i.bike.Type, i.bike.BodySize, currency.Format(i.bike.Rate, i.currency))
}

func (i bikeItem) FilterValue() string { return i.bike.Name + " " + i.bike.Type }
