package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"tableflip.dev/pedal/pkg/datepicker"
)

const width = len("11 12 13 14 15 16 17") // an example week

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Month prints one picker page. Endpoints are reversed, days between them
// underlined, past days faint and adjacent-month days dimmed.
func (pp *PrettyPrint) Month(m datepicker.Month, days []datepicker.Day) {
	out := termenv.NewOutput(pp.out())

	tf := color.New(color.FgWhite, color.Italic)
	title := m.String()
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), title)
	_, _ = fmt.Fprintln(pp.out(), strings.Join(weekdays, " "))

	for i, d := range days {
		cell := out.String(fmt.Sprintf("%2d", d.Date.Day))
		switch {
		case d.Start || d.End:
			cell = cell.Reverse().Bold()
		case d.Between:
			cell = cell.Underline()
		case d.DiffMonth, d.Disabled:
			cell = cell.Faint()
		case d.Today:
			cell = cell.Bold()
		}
		sep := " "
		if (i+1)%7 == 0 || i == len(days)-1 {
			sep = "\n"
		}
		_, _ = fmt.Fprint(pp.out(), cell.String()+sep)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Selection prints the picker's range below a month.
func (pp *PrettyPrint) Selection(p *datepicker.Picker) {
	sel := p.Selection()
	i := color.New(color.Italic)
	switch p.Phase() {
	case datepicker.PhaseEmpty:
		_, _ = i.Fprintln(pp.out(), "no dates selected")
	case datepicker.PhasePartialStart:
		_, _ = i.Fprintf(pp.out(), "from %s\n", sel.Start)
	default:
		_, _ = i.Fprintf(pp.out(), "%s → %s\n", sel.Start, sel.End)
	}
}
