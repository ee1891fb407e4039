package calendar

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/pedal/pkg/datepicker"
	"tableflip.dev/pedal/pkg/screensize"
	"tableflip.dev/pedal/pkg/tui/events"
	"tableflip.dev/pedal/pkg/tui/theme"
)

var testNow = time.Date(2024, time.January, 14, 9, 0, 0, 0, time.UTC)

func newModel(t *testing.T, mobile bool) *Model {
	t.Helper()
	p, err := datepicker.New(datepicker.Options{Now: testNow, Mobile: mobile})
	if err != nil {
		t.Fatalf("datepicker.New: %v", err)
	}
	return New("booking", theme.Default().Picker, p)
}

func press(m *Model, key tea.KeyPressMsg) tea.Msg {
	_, cmd := m.Update(key)
	if cmd == nil {
		return nil
	}
	return cmd()
}

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
	left  = tea.KeyPressMsg{Code: tea.KeyLeft}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
)

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: string(r), Code: r}
}

func TestCursorStartsOnToday(t *testing.T) {
	m := newModel(t, false)
	if got := m.Cursor().String(); got != "2024-01-14" {
		t.Fatalf("cursor = %s", got)
	}
}

func TestCursorCannotMoveBeforeToday(t *testing.T) {
	m := newModel(t, false)
	press(m, left)
	if got := m.Cursor().String(); got != "2024-01-14" {
		t.Fatalf("cursor = %s", got)
	}
}

func TestEnterTwiceEmitsRangeOnWideViewport(t *testing.T) {
	m := newModel(t, false)
	if msg := press(m, enter); msg != nil {
		t.Fatalf("first tap emitted %#v", msg)
	}
	press(m, right)
	press(m, right)
	msg := press(m, enter)
	sel, ok := msg.(events.RangeSelectedMsg)
	if !ok {
		t.Fatalf("expected RangeSelectedMsg, got %#v", msg)
	}
	if sel.Component != "booking" || sel.Range.Start.String() != "2024-01-14" || sel.Range.End.String() != "2024-01-16" {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestMobileWaitsForConfirm(t *testing.T) {
	m := newModel(t, true)
	press(m, enter)
	press(m, down)
	if msg := press(m, enter); msg != nil {
		t.Fatalf("mobile tap emitted %#v", msg)
	}
	if !strings.Contains(ansi.Strip(m.View()), "press c to confirm") {
		t.Fatalf("expected confirm hint in view:\n%s", m.View())
	}
	msg := press(m, char('c'))
	sel, ok := msg.(events.RangeSelectedMsg)
	if !ok || sel.Range.End.String() != "2024-01-21" {
		t.Fatalf("expected confirmed range, got %#v", msg)
	}
	if msg := press(m, char('c')); msg != nil {
		t.Fatalf("second confirm emitted %#v", msg)
	}
}

func TestActivateFollowsViewport(t *testing.T) {
	m := newModel(t, false)
	o := screensize.NewObserver(screensize.DefaultBreakpoints(), 60)
	m.Activate(o)
	if !m.Picker().Mobile() {
		t.Fatalf("narrow viewport should switch the picker to mobile")
	}
	o.Resize(140)
	if m.Picker().Mobile() {
		t.Fatalf("wide viewport should leave mobile mode")
	}
	m.Deactivate()
	m.Deactivate()
	if o.Subscribers() != 0 {
		t.Fatalf("expected the subscription to be released, got %d", o.Subscribers())
	}
	o.Resize(60)
	if m.Picker().Mobile() {
		t.Fatalf("deactivated picker must not track resizes")
	}
}

func TestMonthNavigationKeys(t *testing.T) {
	m := newModel(t, false)
	press(m, char('['))
	if m.Picker().Month().Label() != "January" {
		t.Fatalf("prev before today's month should be refused")
	}
	press(m, char(']'))
	if m.Picker().Month().Label() != "February" || m.Cursor().String() != "2024-02-01" {
		t.Fatalf("month = %s cursor = %s", m.Picker().Month(), m.Cursor())
	}
	press(m, char('t'))
	if m.Picker().Month().Label() != "January" || m.Cursor().String() != "2024-01-14" {
		t.Fatalf("today jump: month = %s cursor = %s", m.Picker().Month(), m.Cursor())
	}
}

func TestCursorFollowsIntoNextMonth(t *testing.T) {
	m := newModel(t, false)
	for i := 0; i < 3; i++ {
		press(m, down)
	}
	if m.Cursor().String() != "2024-02-04" || m.Picker().Month().Label() != "February" {
		t.Fatalf("cursor = %s month = %s", m.Cursor(), m.Picker().Month())
	}
}

func TestViewShowsMonthAndWeekdays(t *testing.T) {
	view := ansi.Strip(newModel(t, false).View())
	for _, want := range []string{"January 2024", "Su Mo Tu We Th Fr Sa", "pick a start date"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

// March 2024 needs six rows, so the 35-cell page ends on the 30th.
func newMarchModel(t *testing.T) *Model {
	t.Helper()
	now := time.Date(2024, time.March, 30, 9, 0, 0, 0, time.UTC)
	p, err := datepicker.New(datepicker.Options{Now: now})
	if err != nil {
		t.Fatalf("datepicker.New: %v", err)
	}
	return New("booking", theme.Default().Picker, p)
}

func TestCursorSkipsDaysCutFromThePage(t *testing.T) {
	m := newMarchModel(t)
	if m.Picker().Grid().Index(datepicker.MustParseDate("2024-03-31")) >= 0 {
		t.Fatalf("expected 2024-03-31 to be truncated from the March page")
	}

	press(m, enter)
	press(m, right)
	if got := m.Cursor().String(); got != "2024-03-31" {
		t.Fatalf("cursor = %s", got)
	}
	if got := m.Picker().Month().Label(); got != "April" {
		t.Fatalf("month = %s, want the page showing the cursor", got)
	}
	if m.Picker().Grid().Index(m.Cursor()) < 0 {
		t.Fatalf("cursor %s is not on the displayed page", m.Cursor())
	}

	msg, ok := press(m, enter).(events.RangeSelectedMsg)
	if !ok {
		t.Fatalf("expected a range selection")
	}
	if got := msg.Range.String(); got != "2024-03-30..2024-03-31" {
		t.Fatalf("range = %s", got)
	}

	press(m, left)
	if m.Picker().Month().Label() != "March" || m.Cursor().String() != "2024-03-30" {
		t.Fatalf("month = %s cursor = %s", m.Picker().Month(), m.Cursor())
	}
}

func TestTapRefusedOffThePage(t *testing.T) {
	m := newMarchModel(t)
	m.cursor = datepicker.MustParseDate("2024-03-31")
	if msg := press(m, enter); msg != nil {
		t.Fatalf("unexpected message %v", msg)
	}
	if m.Picker().Phase() != datepicker.PhaseEmpty {
		t.Fatalf("phase = %s, tap on a hidden day must be ignored", m.Picker().Phase())
	}
}
