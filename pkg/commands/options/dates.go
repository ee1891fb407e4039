package options

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/pedal/pkg/datepicker"
)

// dateValue adapts a datepicker.Date to a pflag.Value.
type dateValue struct {
	date *datepicker.Date
}

var _ pflag.Value = (*dateValue)(nil)

func (v *dateValue) String() string {
	if v.date == nil || v.date.IsZero() {
		return ""
	}
	return v.date.String()
}

func (v *dateValue) Set(s string) error {
	d, err := datepicker.ParseDate(s)
	if err != nil {
		return err
	}
	*v.date = d
	return nil
}

func (v *dateValue) Type() string { return "date" }

// DateOptions holds a rental date range.
type DateOptions struct {
	From datepicker.Date
	To   datepicker.Date
}

// AddDateArgs registers --from and --to.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().Var(&dateValue{date: &o.From}, "from",
		`First rental day, example: --from=2024-3-1.`)
	cmd.Flags().Var(&dateValue{date: &o.To}, "to",
		`Last rental day, defaults to --from.`)
}

// Range returns the configured range. A missing --to rents a single day.
func (o *DateOptions) Range() (datepicker.Range, error) {
	if o.From.IsZero() {
		return datepicker.Range{}, fmt.Errorf("--from is required")
	}
	r := datepicker.Range{Start: o.From, End: o.To}
	if r.End.IsZero() {
		r.End = r.Start
	}
	if err := r.Validate(); err != nil {
		return datepicker.Range{}, err
	}
	return r, nil
}
