package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pedal/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	s := &serve.Serve{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the rental service with an in-memory catalog",
		Example: `
pedal serve
pedal serve --addr :8484 --token secret
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				s.Addr = cfg.ServeAddr
			}
			if !cmd.Flags().Changed("token") {
				s.Token = cfg.Token
			}
			if !cmd.Flags().Changed("service-fee") {
				s.ServiceFee = cfg.ServiceFee
			}
			return s.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&s.Addr, "addr", "127.0.0.1:8484", "Address to listen on.")
	cmd.Flags().StringVar(&s.Token, "token", "", "Token clients must send, empty disables the check.")
	cmd.Flags().Float64Var(&s.ServiceFee, "service-fee", 0.15, "Fee charged on top of the rent, as a fraction.")

	topLevel.AddCommand(cmd)
}
