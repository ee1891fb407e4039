package datepicker

import (
	"fmt"
	"time"
)

// Range is the two-endpoint selection exchanged with the caller. Zero dates
// mean "unset".
type Range struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// IsEmpty reports whether neither endpoint is set.
func (r Range) IsEmpty() bool { return r.Start.IsZero() && r.End.IsZero() }

// IsComplete reports whether both endpoints are set.
func (r Range) IsComplete() bool { return !r.Start.IsZero() && !r.End.IsZero() }

// Validate checks that an end is only set together with a start that does
// not come after it.
func (r Range) Validate() error {
	if r.Start.IsZero() && !r.End.IsZero() {
		return fmt.Errorf("%w: range end %s without start", ErrInvalidArgument, r.End)
	}
	if r.IsComplete() && r.End.Before(r.Start) {
		return fmt.Errorf("%w: range end %s before start %s", ErrInvalidArgument, r.End, r.Start)
	}
	return nil
}

// Contains reports whether d lies within the complete range, endpoints
// included.
func (r Range) Contains(d Date) bool {
	return r.IsComplete() && !d.Before(r.Start) && !d.After(r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.Start, r.End)
}

// Phase is the transient selection state driving how a tap is interpreted.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhasePartialStart
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhasePartialStart:
		return "partial"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// Options configures a Picker.
type Options struct {
	// Length is the number of cells per page; zero means DefaultLength.
	Length int
	// Now is the reference time for "today"; zero means time.Now().
	Now time.Time
	// Value is the caller's initial range.
	Value Range
	// Mobile selects the confirm-to-emit policy.
	Mobile bool
}

// Picker is the range selection state machine. It owns the displayed month
// and the selection phase; the bound Range belongs to the caller, who learns
// about changes through the proposals returned by Tap and Confirm.
type Picker struct {
	length int
	today  Date
	month  Month
	grid   Grid

	phase Phase
	start Date
	end   Date

	mobile bool
	held   bool
}

// New constructs a picker showing the month of opts.Value.Start, or today's
// month when the range is empty or starts in the past.
func New(opts Options) (*Picker, error) {
	if opts.Length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, opts.Length)
	}
	if opts.Length == 0 {
		opts.Length = DefaultLength
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	p := &Picker{
		length: opts.Length,
		today:  FromTime(now),
		mobile: opts.Mobile,
	}
	p.month = MonthOf(p.today)
	if err := p.SetValue(opts.Value); err != nil {
		return nil, err
	}
	p.regenerate()
	return p, nil
}

// SetValue adopts a range provided by the caller. A complete range puts the
// picker in PhaseComplete, a start-only range in PhasePartialStart.
func (p *Picker) SetValue(r Range) error {
	if err := r.Validate(); err != nil {
		return err
	}
	p.start, p.end, p.held = r.Start, r.End, false
	switch {
	case r.IsComplete():
		p.phase = PhaseComplete
	case !r.Start.IsZero():
		p.phase = PhasePartialStart
	default:
		p.phase = PhaseEmpty
	}
	if !r.Start.IsZero() {
		if m := MonthOf(r.Start); !m.Before(MonthOf(p.today)) && m != p.month {
			p.month = m
			p.regenerate()
		}
	}
	return nil
}

// Selection returns the picker's own view of the range, which may be ahead
// of the caller's value while a mobile confirmation is pending.
func (p *Picker) Selection() Range {
	if p.phase == PhaseEmpty {
		return Range{}
	}
	return Range{Start: p.start, End: p.end}
}

// Phase returns the current selection phase.
func (p *Picker) Phase() Phase { return p.phase }

// Pending reports whether a complete range awaits Confirm.
func (p *Picker) Pending() bool { return p.held }

// Tap applies a tap on d. It returns the proposed range and true when the
// tap completes a range on a wide viewport. Taps on dates before today are
// ignored.
func (p *Picker) Tap(d Date) (Range, bool) {
	if d.IsZero() || d.Before(p.today) {
		return Range{}, false
	}

	switch p.phase {
	case PhasePartialStart:
		if d.Before(p.start) {
			p.start = d
			return Range{}, false
		}
		p.end = d
		p.phase = PhaseComplete
		if p.mobile {
			p.held = true
			return Range{}, false
		}
		return Range{Start: p.start, End: p.end}, true
	default:
		// Empty, or a complete range being reset.
		p.start, p.end = d, Date{}
		p.phase = PhasePartialStart
		p.held = false
		return Range{}, false
	}
}

// Confirm releases the complete range held on a narrow viewport. It returns
// false when not mobile, not complete, or already confirmed.
func (p *Picker) Confirm() (Range, bool) {
	if !p.mobile || p.phase != PhaseComplete || !p.held {
		return Range{}, false
	}
	p.held = false
	return Range{Start: p.start, End: p.end}, true
}

// Mobile reports the active emission policy.
func (p *Picker) Mobile() bool { return p.mobile }

// SetMobile switches the emission policy. A held range stays held; it can
// only be released by Confirm while mobile.
func (p *Picker) SetMobile(mobile bool) { p.mobile = mobile }

// Month returns the displayed month.
func (p *Picker) Month() Month { return p.month }

// Today returns the reference day.
func (p *Picker) Today() Date { return p.today }

// SetNow moves the reference day, pulling the displayed month forward if it
// would otherwise lie in the past.
func (p *Picker) SetNow(now time.Time) {
	p.today = FromTime(now)
	if floor := MonthOf(p.today); p.month.Before(floor) {
		p.month = floor
		p.regenerate()
	}
}

// Grid returns the page for the displayed month.
func (p *Picker) Grid() Grid { return p.grid }

// Next shows the following month.
func (p *Picker) Next() {
	p.month = p.month.Next()
	p.regenerate()
}

// CanPrev reports whether the previous month is browsable.
func (p *Picker) CanPrev() bool {
	return MonthOf(p.today).Before(p.month)
}

// Prev shows the preceding month unless that would reach before today's
// month, in which case it does nothing and returns false.
func (p *Picker) Prev() bool {
	if !p.CanPrev() {
		return false
	}
	p.month = p.month.Prev()
	p.regenerate()
	return true
}

// Day is a grid cell with its derived highlight flags.
type Day struct {
	Cell
	Start     bool `json:"start,omitempty"`
	End       bool `json:"end,omitempty"`
	Between   bool `json:"between,omitempty"`
	Disabled  bool `json:"disabled,omitempty"`
	DiffMonth bool `json:"diffMonth,omitempty"`
	Today     bool `json:"today,omitempty"`
}

// Days derives the highlight state of every cell from the current grid,
// selection and reference day. Cells of adjacent months are tagged
// DiffMonth rather than Disabled; taps on past dates are refused either way.
func (p *Picker) Days() []Day {
	days := make([]Day, len(p.grid.Cells))
	for i, c := range p.grid.Cells {
		d := Day{
			Cell:      c,
			Disabled:  c.Tag == SameMonth && c.Date.Before(p.today),
			DiffMonth: c.Tag != SameMonth,
			Today:     c.Date == p.today,
		}
		if p.phase != PhaseEmpty && c.Date == p.start {
			d.Start = true
		}
		if p.phase == PhaseComplete {
			d.End = c.Date == p.end
			d.Between = c.Date.After(p.start) && c.Date.Before(p.end)
		}
		days[i] = d
	}
	return days
}

func (p *Picker) regenerate() {
	// length is validated in New and month always comes from Month
	// arithmetic, so NewGrid cannot fail here.
	g, err := NewGrid(p.month, p.length)
	if err != nil {
		panic(err)
	}
	p.grid = g
}
