// Package quote asks the rental service for the price of a booking.
package quote

import (
	"context"
	"errors"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/printers"
)

type Quote struct {
	Service api.Service
	Details bike.RentDetails
	JSON    bool
	Printer *printers.PrettyPrint
}

// Result is the JSON form of a quote.
type Result struct {
	Bike    bike.Bike        `json:"bike"`
	Details bike.RentDetails `json:"details"`
	Days    int              `json:"days"`
	Amount  bike.RentAmount  `json:"amount"`
}

// Fetch loads the bike and its price for the configured details.
func (q *Quote) Fetch(ctx context.Context) (Result, error) {
	if q.Service == nil {
		return Result{}, errors.New("can not quote, no service")
	}
	if err := q.Details.Validate(); err != nil {
		return Result{}, err
	}
	b, err := q.Service.Bike(ctx, q.Details.BikeID)
	if err != nil {
		return Result{}, err
	}
	amount, err := q.Service.Amount(ctx, q.Details)
	if err != nil {
		return Result{}, err
	}
	return Result{Bike: b, Details: q.Details, Days: q.Details.Days(), Amount: amount}, nil
}

func (q *Quote) Do(ctx context.Context) error {
	res, err := q.Fetch(ctx)
	if err != nil {
		return err
	}
	pp := q.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if q.JSON {
		return pp.JSON(res)
	}
	pp.NewLine()
	pp.Quote(res.Bike, res.Details, res.Amount)
	return nil
}
