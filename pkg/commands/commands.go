package commands

import (
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/bookmarks"
	"tableflip.dev/pedal/pkg/commands/options"
	"tableflip.dev/pedal/pkg/config"
	"tableflip.dev/pedal/pkg/logging"
	"tableflip.dev/pedal/pkg/printers"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "pedal",
		Short: base.Wrap80("Rent a bike from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addBikes(topLevel)
	addCalendar(topLevel)
	addQuote(topLevel)
	addRent(topLevel)
	addBookmark(topLevel)
	addServe(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// setup loads the configuration and sends logs to stderr.
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logging.Setup(cfg.LogLevel, os.Stderr); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.APIURL, cfg.Token, api.WithLogger(logrus.StandardLogger()))
}

func loadBookmarks(cfg *config.Config) (bookmarks.Store, error) {
	return bookmarks.Load(cfg.BookmarksPath)
}

func newPrinter(cfg *config.Config) *printers.PrettyPrint {
	return &printers.PrettyPrint{Currency: cfg.Currency}
}
