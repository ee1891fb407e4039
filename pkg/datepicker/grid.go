package datepicker

import (
	"fmt"
	"time"
)

// DefaultLength is the five-row, seven-column page used by the booking
// calendar.
const DefaultLength = 35

// Month identifies a displayed calendar page.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing d.
func MonthOf(d Date) Month {
	return Month{Year: d.Year, Month: d.Month}
}

// Next returns the following month, rolling December into January.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev returns the preceding month, rolling January into December.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Before reports whether m is strictly earlier than o.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// Contains reports whether d falls inside m.
func (m Month) Contains(d Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// First returns the first day of the month.
func (m Month) First() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

// Last returns the last day of the month.
func (m Month) Last() Date {
	return NewDate(m.Year, m.Month+1, 0)
}

// Label is the English month name, e.g. "January".
func (m Month) Label() string {
	return m.Month.String()
}

// String renders "January 2024".
func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Generate returns the dates shown on the calendar page for year/month
// (month is 1..12). The page starts on the Sunday on or before the first of
// the month, ends on the Saturday on or after the last, and is then cut to
// length entries. Months needing six rows lose their final days when length
// is 35; shorter pages are returned as is.
func Generate(year, month, length int) ([]Date, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d outside 1..12", ErrInvalidArgument, month)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}

	m := Month{Year: year, Month: time.Month(month)}
	first, last := m.First(), m.Last()
	lead := int(first.Weekday())
	trail := 6 - int(last.Weekday())

	days := make([]Date, 0, lead+last.Day+trail)
	for i := lead; i > 0; i-- {
		days = append(days, first.AddDays(-i))
	}
	for d := 1; d <= last.Day; d++ {
		days = append(days, Date{Year: year, Month: m.Month, Day: d})
	}
	for i := 1; i <= trail; i++ {
		days = append(days, last.AddDays(i))
	}

	if len(days) > length {
		days = days[:length]
	}
	return days, nil
}

// Tag tells whether a cell belongs to the displayed month.
type Tag int

const (
	SameMonth Tag = iota
	PreviousMonth
	NextMonth
)

func (t Tag) String() string {
	switch t {
	case SameMonth:
		return "sameMonth"
	case PreviousMonth:
		return "previousMonth"
	case NextMonth:
		return "nextMonth"
	}
	return "unknown"
}

// MarshalText renders the tag by name.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Cell is one date on a page along with its month tag.
type Cell struct {
	Date Date `json:"date"`
	Tag  Tag  `json:"tag"`
}

// Grid is a fixed-length calendar page.
type Grid struct {
	Month Month
	Cells []Cell
}

// NewGrid generates and tags the page for m.
func NewGrid(m Month, length int) (Grid, error) {
	days, err := Generate(m.Year, int(m.Month), length)
	if err != nil {
		return Grid{}, err
	}
	cells := make([]Cell, len(days))
	for i, d := range days {
		tag := SameMonth
		switch {
		case MonthOf(d).Before(m):
			tag = PreviousMonth
		case m.Before(MonthOf(d)):
			tag = NextMonth
		}
		cells[i] = Cell{Date: d, Tag: tag}
	}
	return Grid{Month: m, Cells: cells}, nil
}

// Index returns the cell position of d, or -1.
func (g Grid) Index(d Date) int {
	for i, c := range g.Cells {
		if c.Date == d {
			return i
		}
	}
	return -1
}

// Rows splits the cells into weeks of seven.
func (g Grid) Rows() [][]Cell {
	var rows [][]Cell
	for i := 0; i < len(g.Cells); i += 7 {
		end := i + 7
		if end > len(g.Cells) {
			end = len(g.Cells)
		}
		rows = append(rows, g.Cells[i:end])
	}
	return rows
}
