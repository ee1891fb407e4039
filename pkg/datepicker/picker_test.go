package datepicker

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2024, time.January, 14, 9, 30, 0, 0, time.UTC)

func newTestPicker(t *testing.T, mobile bool, value Range) *Picker {
	t.Helper()
	p, err := New(Options{Now: testNow, Mobile: mobile, Value: value})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func d(s string) Date { return MustParseDate(s) }

func TestTapLaterDateEmitsOnWideViewport(t *testing.T) {
	p := newTestPicker(t, false, Range{})

	var proposals []Range
	for _, day := range []string{"2024-01-20", "2024-01-23"} {
		if r, ok := p.Tap(d(day)); ok {
			proposals = append(proposals, r)
		}
	}

	if len(proposals) != 1 {
		t.Fatalf("expected one proposal, got %d", len(proposals))
	}
	want := Range{Start: d("2024-01-20"), End: d("2024-01-23")}
	if proposals[0] != want {
		t.Fatalf("proposal = %v, want %v", proposals[0], want)
	}
	if p.Phase() != PhaseComplete {
		t.Fatalf("phase = %s", p.Phase())
	}
}

func TestTapEarlierDateReplacesStart(t *testing.T) {
	p := newTestPicker(t, false, Range{})
	p.Tap(d("2024-01-20"))
	if _, ok := p.Tap(d("2024-01-16")); ok {
		t.Fatalf("earlier tap must not emit")
	}
	if p.Phase() != PhasePartialStart {
		t.Fatalf("phase = %s", p.Phase())
	}
	if got := p.Selection().Start; got != d("2024-01-16") {
		t.Fatalf("start = %s", got)
	}
}

func TestTapSameDayCompletesSingleDayRange(t *testing.T) {
	p := newTestPicker(t, false, Range{})
	p.Tap(d("2024-01-20"))
	r, ok := p.Tap(d("2024-01-20"))
	if !ok || r.Start != r.End {
		t.Fatalf("expected single-day range, got %v (%t)", r, ok)
	}
}

func TestTapAfterCompleteResetsRange(t *testing.T) {
	p := newTestPicker(t, false, Range{Start: d("2024-01-15"), End: d("2024-01-18")})
	if _, ok := p.Tap(d("2024-01-25")); ok {
		t.Fatalf("reset tap must not emit")
	}
	sel := p.Selection()
	if sel.Start != d("2024-01-25") || !sel.End.IsZero() {
		t.Fatalf("selection = %v", sel)
	}
}

func TestTapBeforeTodayIsNoop(t *testing.T) {
	p := newTestPicker(t, false, Range{Start: d("2024-01-15")})
	if _, ok := p.Tap(d("2024-01-13")); ok {
		t.Fatalf("past tap must not emit")
	}
	if p.Phase() != PhasePartialStart || p.Selection().Start != d("2024-01-15") {
		t.Fatalf("past tap changed state: %s %v", p.Phase(), p.Selection())
	}
	// today itself is selectable
	if r, ok := p.Tap(d("2024-01-14")); ok {
		t.Fatalf("earlier-than-start tap emitted %v", r)
	}
	if p.Selection().Start != d("2024-01-14") {
		t.Fatalf("today should be tappable, start = %s", p.Selection().Start)
	}
}

func TestMobileDefersUntilConfirm(t *testing.T) {
	p := newTestPicker(t, true, Range{})

	var proposals []Range
	record := func(r Range, ok bool) {
		if ok {
			proposals = append(proposals, r)
		}
	}

	record(p.Tap(d("2024-01-20")))
	record(p.Tap(d("2024-01-22")))
	p.Next()
	p.Prev()
	if len(proposals) != 0 {
		t.Fatalf("expected no proposals before confirm, got %v", proposals)
	}
	if !p.Pending() {
		t.Fatalf("expected a pending range")
	}

	record(p.Confirm())
	record(p.Confirm())
	if len(proposals) != 1 {
		t.Fatalf("expected exactly one proposal, got %v", proposals)
	}
	want := Range{Start: d("2024-01-20"), End: d("2024-01-22")}
	if proposals[len(proposals)-1] != want {
		t.Fatalf("latest proposal = %v, want %v", proposals[len(proposals)-1], want)
	}
}

func TestConfirmNoops(t *testing.T) {
	p := newTestPicker(t, true, Range{})
	if _, ok := p.Confirm(); ok {
		t.Fatalf("confirm on empty picker emitted")
	}
	p.Tap(d("2024-01-20"))
	if _, ok := p.Confirm(); ok {
		t.Fatalf("confirm on partial selection emitted")
	}

	wide := newTestPicker(t, false, Range{})
	wide.Tap(d("2024-01-20"))
	wide.Tap(d("2024-01-21"))
	if _, ok := wide.Confirm(); ok {
		t.Fatalf("confirm on wide viewport emitted")
	}
}

func TestViewportSwitchKeepsHeldRange(t *testing.T) {
	p := newTestPicker(t, true, Range{})
	p.Tap(d("2024-01-20"))
	p.Tap(d("2024-01-22"))

	p.SetMobile(false)
	if _, ok := p.Confirm(); ok {
		t.Fatalf("confirm must be unavailable on wide viewport")
	}
	p.SetMobile(true)
	if _, ok := p.Confirm(); !ok {
		t.Fatalf("held range should be confirmable after returning to mobile")
	}
}

func TestDisabledCountMatchesToday(t *testing.T) {
	p := newTestPicker(t, false, Range{})
	disabled := 0
	for _, day := range p.Days() {
		if day.Disabled {
			disabled++
		}
	}
	if want := testNow.Day() - 1; disabled != want {
		t.Fatalf("disabled = %d, want %d", disabled, want)
	}
}

func TestDaysHighlightRange(t *testing.T) {
	p := newTestPicker(t, false, Range{Start: d("2024-01-14"), End: d("2024-01-19")})

	var start, end, between []Date
	for _, day := range p.Days() {
		switch {
		case day.Start:
			start = append(start, day.Date)
		case day.End:
			end = append(end, day.Date)
		case day.Between:
			between = append(between, day.Date)
		}
	}
	if len(start) != 1 || start[0] != d("2024-01-14") {
		t.Fatalf("start cells = %v", start)
	}
	if len(end) != 1 || end[0] != d("2024-01-19") {
		t.Fatalf("end cells = %v", end)
	}
	if len(between) != 4 {
		t.Fatalf("expected 4 between cells, got %v", between)
	}
}

func TestDaysFlagsAdjacentMonths(t *testing.T) {
	p := newTestPicker(t, false, Range{})
	days := p.Days()
	if !days[0].DiffMonth || days[0].Disabled {
		t.Fatalf("leading December cell = %+v", days[0])
	}
	if !days[len(days)-1].DiffMonth {
		t.Fatalf("trailing February cell = %+v", days[len(days)-1])
	}
	todayCount := 0
	for _, day := range days {
		if day.Today {
			todayCount++
		}
	}
	if todayCount != 1 {
		t.Fatalf("expected one today cell, got %d", todayCount)
	}
}

func TestNavigationBoundedByTodaysMonth(t *testing.T) {
	p := newTestPicker(t, false, Range{})
	if p.CanPrev() || p.Prev() {
		t.Fatalf("navigating before today's month must be refused")
	}
	if p.Month().Label() != "January" {
		t.Fatalf("month = %s", p.Month())
	}
	p.Next()
	if p.Month().Label() != "February" {
		t.Fatalf("month after Next = %s", p.Month())
	}
	if !p.Prev() || p.Month().Label() != "January" {
		t.Fatalf("month after Prev = %s", p.Month())
	}
}

func TestNavigationKeepsSelection(t *testing.T) {
	p := newTestPicker(t, false, Range{})
	p.Tap(d("2024-01-30"))
	p.Next()
	r, ok := p.Tap(d("2024-02-02"))
	if !ok {
		t.Fatalf("expected range across months to complete")
	}
	if r.Start != d("2024-01-30") || r.End != d("2024-02-02") {
		t.Fatalf("range = %v", r)
	}
}

func TestNextRollsDecemberIntoJanuary(t *testing.T) {
	p, err := New(Options{Now: time.Date(2024, time.December, 3, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.Next()
	if m := p.Month(); m.Year != 2025 || m.Month != time.January {
		t.Fatalf("month = %v", m)
	}
}

func TestNewOpensOnValueMonth(t *testing.T) {
	p := newTestPicker(t, false, Range{Start: d("2024-03-04"), End: d("2024-03-06")})
	if p.Month() != (Month{Year: 2024, Month: time.March}) {
		t.Fatalf("month = %v", p.Month())
	}
	past := newTestPicker(t, false, Range{Start: d("2023-11-04"), End: d("2023-11-06")})
	if past.Month() != (Month{Year: 2024, Month: time.January}) {
		t.Fatalf("past value should open on today's month, got %v", past.Month())
	}
}

func TestSetValueRejectsInvertedRange(t *testing.T) {
	p := newTestPicker(t, false, Range{})
	err := p.SetValue(Range{Start: d("2024-01-20"), End: d("2024-01-18")})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := New(Options{Length: -1}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative length, got %v", err)
	}
}

func TestSetNowPullsMonthForward(t *testing.T) {
	p := newTestPicker(t, false, Range{})
	p.SetNow(time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC))
	if p.Month() != (Month{Year: 2024, Month: time.March}) {
		t.Fatalf("month = %v", p.Month())
	}
	if p.CanPrev() {
		t.Fatalf("prev should be disabled on the new floor month")
	}
}
