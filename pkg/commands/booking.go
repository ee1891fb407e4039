package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/commands/options"
	"tableflip.dev/pedal/pkg/config"
	"tableflip.dev/pedal/pkg/datepicker"
	"tableflip.dev/pedal/pkg/prompt"
	"tableflip.dev/pedal/pkg/runner/quote"
	"tableflip.dev/pedal/pkg/runner/rent"
)

// bookingArgs resolves the bike and dates for quote and rent, either from
// arguments and flags or, with --interactive, by asking.
type bookingArgs struct {
	dates       options.DateOptions
	interactive options.InteractiveOptions
	bikeID      int
}

func (b *bookingArgs) add(cmd *cobra.Command) {
	options.AddDateArgs(cmd, &b.dates)
	options.InteractiveArgs(cmd, &b.interactive)
	options.AddOutputArg(cmd, output)
}

func (b *bookingArgs) parse(cmd *cobra.Command, args []string) error {
	if b.interactive.Interactive {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("requires a bike id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid bike id %q", args[0])
	}
	b.bikeID = id
	return nil
}

func (b *bookingArgs) details(ctx context.Context, cmd *cobra.Command, cfg *config.Config, svc api.Service) (bike.RentDetails, error) {
	if b.interactive.Interactive {
		bikes, err := svc.Bikes(ctx)
		if err != nil {
			return bike.RentDetails{}, err
		}
		picked, err := prompt.SelectBike(cmd.InOrStdin(), cmd.OutOrStdout(), bikes)
		if err != nil {
			return bike.RentDetails{}, err
		}
		r, err := prompt.Range(cmd.InOrStdin(), cmd.OutOrStdout(), datepicker.FromTime(time.Now()))
		if err != nil {
			return bike.RentDetails{}, err
		}
		return bike.NewRentDetails(cfg.UserID, picked.ID, r), nil
	}
	r, err := b.dates.Range()
	if err != nil {
		return bike.RentDetails{}, err
	}
	return bike.NewRentDetails(cfg.UserID, b.bikeID, r), nil
}

func addQuote(topLevel *cobra.Command) {
	b := &bookingArgs{}
	cmd := &cobra.Command{
		Use:   "quote <bike-id>",
		Short: "price a rental",
		Example: `
pedal quote 2 --from 2024-3-4 --to 2024-3-6
pedal quote -i
`,
		Args: b.parse,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return output.HandleError(err)
			}
			svc := newClient(cfg)
			details, err := b.details(cmd.Context(), cmd, cfg, svc)
			if err != nil {
				return output.HandleError(err)
			}
			q := quote.Quote{
				Service: svc,
				Details: details,
				JSON:    output.JSON,
				Printer: newPrinter(cfg),
			}
			return output.HandleError(q.Do(cmd.Context()))
		},
	}
	b.add(cmd)

	topLevel.AddCommand(cmd)
}

func addRent(topLevel *cobra.Command) {
	b := &bookingArgs{}
	cmd := &cobra.Command{
		Use:   "rent <bike-id>",
		Short: "book a bike",
		Example: `
pedal rent 2 --from 2024-3-4 --to 2024-3-6
pedal rent -i
`,
		Args: b.parse,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return output.HandleError(err)
			}
			svc := newClient(cfg)
			details, err := b.details(cmd.Context(), cmd, cfg, svc)
			if err != nil {
				return output.HandleError(err)
			}
			r := rent.Rent{
				Service: svc,
				Details: details,
				JSON:    output.JSON,
				Printer: newPrinter(cfg),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}
	b.add(cmd)

	topLevel.AddCommand(cmd)
}
