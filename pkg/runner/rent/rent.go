// Package rent books a bike through the rental service.
package rent

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/printers"
)

type Rent struct {
	Service api.Service
	Details bike.RentDetails
	JSON    bool
	Printer *printers.PrettyPrint
}

func (r *Rent) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not rent, no service")
	}
	if err := r.Details.Validate(); err != nil {
		return err
	}
	ret, err := r.Service.Rent(ctx, r.Details)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			return errors.New("that bike is already rented for those dates")
		}
		return err
	}
	logrus.WithFields(logrus.Fields{
		"rental": ret.ID,
		"bike":   ret.BikeID,
	}).Debug("rental created")

	pp := r.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if r.JSON {
		return pp.JSON(ret)
	}
	pp.NewLine()
	pp.Rental(ret)
	return nil
}
