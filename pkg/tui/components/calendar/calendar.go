// Package calendar provides the interactive date-range picker used by the
// booking screen.
package calendar

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/pedal/pkg/datepicker"
	"tableflip.dev/pedal/pkg/screensize"
	"tableflip.dev/pedal/pkg/tui/events"
	"tableflip.dev/pedal/pkg/tui/theme"
)

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Model wraps a datepicker.Picker with a keyboard cursor.
type Model struct {
	id     events.ComponentID
	picker *datepicker.Picker
	cursor datepicker.Date
	theme  theme.PickerTheme

	unsubscribe func()

	width  int
	height int
}

// New returns a calendar bound to picker. The cursor starts on the current
// selection start, or today.
func New(id events.ComponentID, th theme.PickerTheme, picker *datepicker.Picker) *Model {
	m := &Model{id: id, picker: picker, theme: th}
	m.cursor = picker.Today()
	if start := picker.Selection().Start; !start.IsZero() && picker.Month().Contains(start) {
		m.cursor = start
	} else if !picker.Month().Contains(m.cursor) {
		m.cursor = picker.Month().First()
	}
	m.jump(m.cursor)
	return m
}

// Activate subscribes the picker to viewport changes so it switches between
// the immediate and the confirm-before-emit policy.
func (m *Model) Activate(o *screensize.Observer) {
	m.Deactivate()
	m.unsubscribe = o.Subscribe(func(s screensize.Size) {
		m.picker.SetMobile(s.Mobile)
	})
}

// Deactivate releases the viewport subscription. Safe to call repeatedly.
func (m *Model) Deactivate() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Picker exposes the underlying state machine.
func (m *Model) Picker() *datepicker.Picker { return m.picker }

// Cursor returns the highlighted date.
func (m *Model) Cursor() datepicker.Date { return m.cursor }

// SetSize updates the available area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles cursor movement, taps, confirmation and month navigation.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		m.move(-1)
	case "right", "l":
		m.move(1)
	case "up", "k":
		m.move(-7)
	case "down", "j":
		m.move(7)
	case "]", "pgdown":
		m.picker.Next()
		m.cursor = m.picker.Month().First()
	case "[", "pgup":
		if m.picker.Prev() {
			m.cursor = m.floor(m.picker.Month().First())
		}
	case "t":
		m.jump(m.picker.Today())
	case "enter", "space", " ":
		if m.picker.Grid().Index(m.cursor) < 0 {
			return m, nil
		}
		if r, ok := m.picker.Tap(m.cursor); ok {
			return m, events.RangeSelectedCmd(m.id, r)
		}
	case "c":
		if r, ok := m.picker.Confirm(); ok {
			return m, events.RangeSelectedCmd(m.id, r)
		}
	}
	return m, nil
}

func (m *Model) move(delta int) {
	m.jump(m.cursor.AddDays(delta))
}

// jump moves the cursor, following it across month boundaries. The cursor
// never rests before today and always sits on a visible cell: days cut off
// a truncated page are reached on the next month's page.
func (m *Model) jump(d datepicker.Date) {
	d = m.floor(d)
	for datepicker.MonthOf(d).Before(m.picker.Month()) {
		if !m.picker.Prev() {
			break
		}
	}
	for m.picker.Month().Before(datepicker.MonthOf(d)) {
		m.picker.Next()
	}
	if m.picker.Grid().Index(d) < 0 {
		m.picker.Next()
		if m.picker.Grid().Index(d) < 0 {
			m.picker.Prev()
			cells := m.picker.Grid().Cells
			if len(cells) > 0 {
				d = cells[len(cells)-1].Date
			}
		}
	}
	m.cursor = d
}

func (m *Model) floor(d datepicker.Date) datepicker.Date {
	if today := m.picker.Today(); d.Before(today) {
		return today
	}
	return d
}

// View renders the month header, weekday row, the day grid and a status line.
func (m *Model) View() string {
	th := m.theme
	month := m.picker.Month()

	prev := th.NavOff.Render("‹")
	if m.picker.CanPrev() {
		prev = th.NavOn.Render("‹")
	}
	next := th.NavOn.Render("›")
	title := th.Header.Render(fmt.Sprintf("%s %d", month.Label(), month.Year))
	lines := []string{lipgloss.PlaceHorizontal(20, lipgloss.Center, prev+" "+title+" "+next)}

	heads := make([]string, len(weekdays))
	for i, w := range weekdays {
		heads[i] = th.Weekday.Render(w)
	}
	lines = append(lines, strings.Join(heads, " "))

	days := m.picker.Days()
	sel := m.picker.Selection()
	span := 0
	if sel.IsComplete() {
		span = daysBetween(sel.Start, sel.End)
	}
	for start := 0; start < len(days); start += 7 {
		end := start + 7
		if end > len(days) {
			end = len(days)
		}
		cells := make([]string, 0, 7)
		for _, day := range days[start:end] {
			cells = append(cells, m.renderDay(day, sel, span))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	lines = append(lines, "", m.status())
	return strings.Join(lines, "\n")
}

func (m *Model) renderDay(day datepicker.Day, sel datepicker.Range, span int) string {
	th := m.theme
	style := th.Day
	switch {
	case day.Start || day.End:
		style = th.Endpoint
	case day.Between && len(th.Between) > 0:
		idx := 0
		if span > 0 {
			idx = daysBetween(sel.Start, day.Date) * (len(th.Between) - 1) / span
		}
		style = th.Between[idx]
	case day.Disabled:
		style = th.Disabled
	case day.DiffMonth:
		style = th.DiffMonth
	}
	if day.Today {
		style = style.Inherit(th.Today)
	}
	if day.Date == m.cursor {
		style = style.Inherit(th.Cursor)
	}
	return style.Render(fmt.Sprintf("%2d", day.Date.Day))
}

func daysBetween(from, to datepicker.Date) int {
	return int(to.Time(time.UTC).Sub(from.Time(time.UTC)).Hours() / 24)
}

func (m *Model) status() string {
	sel := m.picker.Selection()
	switch m.picker.Phase() {
	case datepicker.PhaseEmpty:
		return m.theme.Weekday.Render("pick a start date")
	case datepicker.PhasePartialStart:
		return m.theme.Weekday.Render(fmt.Sprintf("from %s, pick an end date", sel.Start))
	}
	if m.picker.Mobile() && m.picker.Pending() {
		return m.theme.Pending.Render(fmt.Sprintf("%s  press c to confirm", sel))
	}
	return sel.String()
}
