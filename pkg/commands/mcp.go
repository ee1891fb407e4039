package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tableflip.dev/pedal/pkg/commands/options"
	"tableflip.dev/pedal/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the rental service to MCP clients.",
		Long: `Launch a Model Context Protocol server exposing the bike catalog, calendar
pages, quotes, rentals and bookmarks.`,
		Example: `
pedal mcp
pedal mcp --transport stdio
pedal mcp --http-port 0
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return mo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			marks, err := loadBookmarks(cfg)
			if err != nil {
				return err
			}
			svc := mcp.NewService(newClient(cfg), marks, cfg.UserID)
			svc.GridLength = cfg.GridLength

			r := mcp.Runner{
				Service:   svc,
				Version:   buildVersion(),
				Transport: mcp.Transport(mo.Transport),
				HTTP: mcp.HTTP{
					Addr:    mo.Addr(),
					Path:    mo.EndpointPath(),
					TLSCert: mo.TLSCert,
					TLSKey:  mo.TLSKey,
				},
				Out:    cmd.OutOrStdout(),
				Logger: logrus.StandardLogger(),
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddMCPArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}
