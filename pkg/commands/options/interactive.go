package options

import (
	"github.com/spf13/cobra"
)

// InteractiveOptions asks for missing arguments with prompts.
type InteractiveOptions struct {
	Interactive bool
}

func InteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		`Pick the bike and dates with prompts instead of arguments.`)
}
