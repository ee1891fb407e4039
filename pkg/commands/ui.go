package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pedal/pkg/config"
	"tableflip.dev/pedal/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	noRedirect := false
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the booking user interface",
		Example: `
pedal ui
PEDAL_MOBILE_MAX_WIDTH=0 pedal ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			marks, err := loadBookmarks(cfg)
			if err != nil {
				return err
			}
			i := ui.UI{
				Service:      newClient(cfg),
				Bookmarks:    marks,
				UserID:       cfg.UserID,
				Currency:     cfg.Currency,
				Breakpoints:  cfg.Breakpoints(),
				GridLength:   cfg.GridLength,
				LogFile:      cfg.LogFile,
				LogLevel:     cfg.LogLevel,
				ShowRedirect: !noRedirect,
			}
			return i.Do(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&noRedirect, "no-redirect", false, "Hide the way back to the bike list after booking.")

	topLevel.AddCommand(cmd)
}
