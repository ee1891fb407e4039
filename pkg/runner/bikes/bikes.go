// Package bikes lists the rental catalog on the command line.
package bikes

import (
	"context"
	"errors"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/bookmarks"
	"tableflip.dev/pedal/pkg/printers"
)

type Bikes struct {
	Service    api.Service
	Bookmarks  bookmarks.Store
	Bookmarked bool
	JSON       bool
	Printer    *printers.PrettyPrint
}

func (n *Bikes) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list bikes, no service")
	}
	all, err := n.Service.Bikes(ctx)
	if err != nil {
		return err
	}

	marked := map[int]bool{}
	if n.Bookmarks != nil {
		marked = bookmarks.IDs(ctx, n.Bookmarks)
	}
	if n.Bookmarked {
		all = Filter(all, marked)
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if n.JSON {
		return pp.JSON(all)
	}
	pp.NewLine()
	pp.Title("Bikes")
	pp.Bikes(all, marked)
	return nil
}

// Filter keeps the bikes whose IDs are in keep.
func Filter(all []bike.Bike, keep map[int]bool) []bike.Bike {
	out := make([]bike.Bike, 0, len(all))
	for _, b := range all {
		if keep[b.ID] {
			out = append(out, b)
		}
	}
	return out
}
