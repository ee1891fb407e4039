package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pedal/pkg/commands/options"
	"tableflip.dev/pedal/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	c := &calendar.Calendar{}
	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "print a month page of the date picker",
		Example: `
pedal calendar
pedal calendar --month 2024-03
pedal calendar --from 2024-3-4 --to 2024-3-9
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return output.HandleError(err)
			}
			if c.Length == 0 {
				c.Length = cfg.GridLength
			}
			c.JSON = output.JSON
			c.Printer = newPrinter(cfg)
			return output.HandleError(c.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&c.Month, "month", "", "Month to show as YYYY-MM, defaults to the month of --from or today.")
	cmd.Flags().StringVar(&c.From, "from", "", "Highlight a range starting on this date.")
	cmd.Flags().StringVar(&c.To, "to", "", "Highlight a range ending on this date.")
	cmd.Flags().IntVar(&c.Length, "length", 0, "Number of cells on the page.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
