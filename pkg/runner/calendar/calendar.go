// Package calendar prints a date picker page on the command line.
package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/pedal/pkg/datepicker"
	"tableflip.dev/pedal/pkg/printers"
)

const layoutMonth = "2006-01"

type Calendar struct {
	// Month is YYYY-MM; empty shows the month of From, or today's month.
	Month  string
	From   string
	To     string
	Length int
	Now    time.Time
	JSON   bool

	Printer *printers.PrettyPrint
}

// Page is the JSON form of a rendered month.
type Page struct {
	Month     string           `json:"month"`
	Today     datepicker.Date  `json:"today"`
	Selection datepicker.Range `json:"selection"`
	Phase     string           `json:"phase"`
	CanPrev   bool             `json:"canPrev"`
	Days      []datepicker.Day `json:"days"`
}

// Picker builds a picker for the requested month and selection.
func (c *Calendar) Picker() (*datepicker.Picker, error) {
	var r datepicker.Range
	var err error
	if strings.TrimSpace(c.From) != "" {
		if r.Start, err = datepicker.ParseDate(c.From); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(c.To) != "" {
		if r.End, err = datepicker.ParseDate(c.To); err != nil {
			return nil, err
		}
	}

	p, err := datepicker.New(datepicker.Options{
		Length: c.Length,
		Now:    c.Now,
		Value:  r,
	})
	if err != nil {
		return nil, err
	}

	if c.Month == "" {
		return p, nil
	}
	then, err := time.Parse(layoutMonth, c.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: month %q, want YYYY-MM", datepicker.ErrInvalidArgument, c.Month)
	}
	target := datepicker.Month{Year: then.Year(), Month: then.Month()}
	if target.Before(datepicker.MonthOf(p.Today())) {
		return nil, fmt.Errorf("%w: %s is before the current month", datepicker.ErrInvalidArgument, target)
	}
	for p.Month().Before(target) {
		p.Next()
	}
	for target.Before(p.Month()) {
		if !p.Prev() {
			break
		}
	}
	return p, nil
}

// NewPage projects p for JSON output.
func NewPage(p *datepicker.Picker) Page {
	return Page{
		Month:     p.Month().String(),
		Today:     p.Today(),
		Selection: p.Selection(),
		Phase:     p.Phase().String(),
		CanPrev:   p.CanPrev(),
		Days:      p.Days(),
	}
}

func (c *Calendar) Do(ctx context.Context) error {
	p, err := c.Picker()
	if err != nil {
		return err
	}
	pp := c.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if c.JSON {
		return pp.JSON(NewPage(p))
	}
	pp.NewLine()
	pp.Month(p.Month(), p.Days())
	pp.Selection(p)
	return nil
}
