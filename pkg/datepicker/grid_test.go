package datepicker

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateJanuary2024(t *testing.T) {
	days, err := Generate(2024, 1, DefaultLength)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(days) != DefaultLength {
		t.Fatalf("expected %d days, got %d", DefaultLength, len(days))
	}
	if got := days[0].String(); got != "2023-12-31" {
		t.Fatalf("first day = %s, want 2023-12-31", got)
	}
	if got := days[DefaultLength-1].String(); got != "2024-02-03" {
		t.Fatalf("last day = %s, want 2024-02-03", got)
	}
}

func TestGenerateLengthAndOrder(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			for _, length := range []int{0, 7, 28, 35} {
				days, err := Generate(year, month, length)
				if err != nil {
					t.Fatalf("Generate(%d, %d, %d): %v", year, month, length, err)
				}
				want := length
				if length == DefaultLength && month == 2 && len(days) == 28 {
					// a February spanning exactly four weeks under-fills
					want = 28
				}
				if len(days) != want {
					t.Fatalf("Generate(%d, %d, %d) returned %d days", year, month, length, len(days))
				}
				for i := 1; i < len(days); i++ {
					if days[i] != days[i-1].AddDays(1) {
						t.Fatalf("Generate(%d, %d, %d): %s does not follow %s", year, month, length, days[i], days[i-1])
					}
				}
				if length > 0 && days[0].Weekday() != time.Sunday {
					t.Fatalf("Generate(%d, %d, %d) starts on %s", year, month, length, days[0].Weekday())
				}
			}
		}
	}
}

func TestGenerateUnderfillsShortPages(t *testing.T) {
	// February 2026 starts on a Sunday and ends on a Saturday: exactly 28 cells.
	days, err := Generate(2026, 2, 42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(days) != 28 {
		t.Fatalf("expected 28 days, got %d", len(days))
	}
	if days[0].String() != "2026-02-01" || days[27].String() != "2026-02-28" {
		t.Fatalf("unexpected bounds %s..%s", days[0], days[27])
	}
}

func TestGenerateTruncatesSixRowMonths(t *testing.T) {
	// March 2024 starts on a Friday and needs six rows.
	days, err := Generate(2024, 3, DefaultLength)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := days[len(days)-1].String(); got != "2024-03-30" {
		t.Fatalf("last cell = %s, want 2024-03-30", got)
	}
}

func TestGenerateRejectsInvalidArguments(t *testing.T) {
	tests := []struct {
		name          string
		month, length int
	}{
		{name: "month zero", month: 0, length: 35},
		{name: "month thirteen", month: 13, length: 35},
		{name: "negative length", month: 5, length: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(2024, tt.month, tt.length)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestNewGridTags(t *testing.T) {
	g, err := NewGrid(Month{Year: 2024, Month: time.January}, DefaultLength)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Cells[0].Tag != PreviousMonth {
		t.Fatalf("first cell tag = %s", g.Cells[0].Tag)
	}
	if g.Cells[1].Tag != SameMonth || g.Cells[1].Date.String() != "2024-01-01" {
		t.Fatalf("second cell = %+v", g.Cells[1])
	}
	if last := g.Cells[len(g.Cells)-1]; last.Tag != NextMonth {
		t.Fatalf("last cell tag = %s", last.Tag)
	}
	if rows := g.Rows(); len(rows) != 5 || len(rows[4]) != 7 {
		t.Fatalf("expected 5 full rows, got %d", len(rows))
	}
}

func TestMonthNavigationRollsYear(t *testing.T) {
	dec := Month{Year: 2024, Month: time.December}
	if next := dec.Next(); next != (Month{Year: 2025, Month: time.January}) {
		t.Fatalf("Next() = %v", next)
	}
	if prev := dec.Next().Prev(); prev != dec {
		t.Fatalf("Prev() = %v", prev)
	}
	if dec.Label() != "December" {
		t.Fatalf("Label() = %q", dec.Label())
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		part Part
		want string
	}{
		{part: PartDay, want: "14"},
		{part: PartMonth, want: "01"},
		{part: PartYear, want: "2024"},
	}
	for _, tt := range tests {
		got, err := FormatDate("2024-1-14", tt.part)
		if err != nil {
			t.Fatalf("FormatDate(%s): %v", tt.part, err)
		}
		if got != tt.want {
			t.Fatalf("FormatDate(%s) = %q, want %q", tt.part, got, tt.want)
		}
	}

	if _, err := FormatDate("not a date", PartDay); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := FormatDate("2024-01-14", Part("HH")); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown part, got %v", err)
	}
}

func TestDateTextRoundTrip(t *testing.T) {
	var d Date
	if err := d.UnmarshalText([]byte("2024-02-29")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if d != (Date{Year: 2024, Month: time.February, Day: 29}) {
		t.Fatalf("unexpected date %+v", d)
	}
	b, _ := d.MarshalText()
	if string(b) != "2024-02-29" {
		t.Fatalf("MarshalText = %q", b)
	}
	if err := d.UnmarshalText(nil); err != nil || !d.IsZero() {
		t.Fatalf("empty text should reset date, got %+v, %v", d, err)
	}
}
