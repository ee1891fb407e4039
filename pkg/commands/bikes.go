package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pedal/pkg/commands/options"
	"tableflip.dev/pedal/pkg/runner/bikes"
)

func addBikes(topLevel *cobra.Command) {
	bookmarked := false
	cmd := &cobra.Command{
		Use:     "bikes",
		Aliases: []string{"list", "ls"},
		Short:   "list rentable bikes",
		Example: `
pedal bikes
pedal bikes --bookmarked
pedal bikes --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return output.HandleError(err)
			}
			marks, err := loadBookmarks(cfg)
			if err != nil {
				return output.HandleError(err)
			}
			b := bikes.Bikes{
				Service:    newClient(cfg),
				Bookmarks:  marks,
				Bookmarked: bookmarked,
				JSON:       output.JSON,
				Printer:    newPrinter(cfg),
			}
			return output.HandleError(b.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&bookmarked, "bookmarked", false, "Only list bookmarked bikes.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
