package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/pedal/pkg/runner/bookmark"
)

func addBookmark(topLevel *cobra.Command) {
	b := &bookmark.Bookmark{}
	cmd := &cobra.Command{
		Use:   "bookmark <bike-id>",
		Short: "bookmark a bike, or remove a bookmark",
		Example: `
pedal bookmark 3
pedal bookmark 3 --remove
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("requires a bike id")
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid bike id %q", args[0])
			}
			b.BikeID = id
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			if b.Bookmarks, err = loadBookmarks(cfg); err != nil {
				return err
			}
			b.Service = newClient(cfg)
			return b.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&b.Remove, "remove", false, "Remove the bookmark instead.")

	topLevel.AddCommand(cmd)
}
