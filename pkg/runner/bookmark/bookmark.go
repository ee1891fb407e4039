// Package bookmark stars or unstars bikes locally.
package bookmark

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/bookmarks"
)

type Bookmark struct {
	Bookmarks bookmarks.Store
	// Service is optional; when set the bike is looked up to record its name.
	Service api.Service
	BikeID  int
	Remove  bool
}

func (b *Bookmark) Do(ctx context.Context) error {
	if b.Bookmarks == nil {
		return errors.New("can not bookmark, no store")
	}
	if b.Remove {
		if err := b.Bookmarks.Remove(b.BikeID); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(color.Output, "removed bookmark for bike %d\n", b.BikeID)
		return nil
	}

	mark := bookmarks.Bookmark{BikeID: b.BikeID}
	if b.Service != nil {
		found, err := b.Service.Bike(ctx, b.BikeID)
		if err != nil {
			return err
		}
		mark.Name = found.Name
	}
	if err := b.Bookmarks.Add(mark); err != nil {
		return err
	}
	star := color.New(color.FgHiYellow)
	_, _ = star.Fprintf(color.Output, "★ bookmarked bike %d %s\n", b.BikeID, mark.Name)
	return nil
}
