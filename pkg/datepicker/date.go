// Package datepicker holds the calendar grid generator and the date-range
// selection state machine behind the booking calendar.
package datepicker

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is returned for malformed months, lengths or dates.
var ErrInvalidArgument = errors.New("datepicker: invalid argument")

// layoutLoose accepts both zero-padded and bare month/day numbers.
const layoutLoose = "2006-1-2"

// Date is a single calendar day without a time zone. The zero value means
// "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate normalizes the components (so day 0 is the last day of the
// previous month) and returns the resulting Date.
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO YYYY-MM-DD string. Unpadded months and days
// ("2024-1-14") are accepted.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(layoutLoose, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q: %v", ErrInvalidArgument, s, err)
	}
	return FromTime(t), nil
}

// MustParseDate is ParseDate for literals known to be valid.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether d is unset.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Weekday returns the day of the week, Sunday == 0.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// String renders the ISO form, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input yields the
// zero Date.
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Part selects a component for FormatDate.
type Part string

const (
	PartYear  Part = "YYYY"
	PartMonth Part = "MM"
	PartDay   Part = "DD"
)

// FormatDate returns the zero-padded year, month or day of an ISO date.
func FormatDate(iso string, part Part) (string, error) {
	d, err := ParseDate(iso)
	if err != nil {
		return "", err
	}
	switch part {
	case PartYear:
		return fmt.Sprintf("%04d", d.Year), nil
	case PartMonth:
		return fmt.Sprintf("%02d", int(d.Month)), nil
	case PartDay:
		return fmt.Sprintf("%02d", d.Day), nil
	}
	return "", fmt.Errorf("%w: date part %q", ErrInvalidArgument, part)
}
