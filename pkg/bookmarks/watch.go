package bookmarks

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// settle is how long the watcher waits for a burst of writes to end.
const settle = 100 * time.Millisecond

// Event is emitted by Store.Watch when a bookmark changes on disk, e.g. from
// another pedal process.
type Event struct {
	// BikeID is zero when the change could not be attributed to a bike.
	BikeID int
}

// Watch streams change events until ctx is cancelled. Bursts are coalesced
// into one event per bike. The channel is closed once ctx is done or the
// watcher fails; a slow reader misses events rather than blocking the
// watcher.
func (s *store) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("bookmarks: create watcher: %w", err)
	}
	if err := watcher.Add(s.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("bookmarks: watch %s: %w", s.basePath, err)
	}

	events := make(chan Event, 16)
	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				logrus.WithError(err).Warn("bookmarks: closing watcher")
			}
		}()
		coalesce(ctx, watcher, events)
	}()
	return events, nil
}

func coalesce(ctx context.Context, watcher *fsnotify.Watcher, out chan<- Event) {
	pending := map[int]struct{}{}
	timer := time.NewTimer(settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	arm := func(id int) {
		if len(pending) == 0 {
			timer.Reset(settle)
		}
		pending[id] = struct{}{}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Debug("bookmarks: watcher error")
			arm(0)
		case evt, ok := <-watcher.Events:
			if !ok {
				return
			}
			id, _ := fromKey(filepath.Base(evt.Name))
			arm(id)
		case <-timer.C:
			for id := range pending {
				select {
				case out <- Event{BikeID: id}:
				default:
				}
				delete(pending, id)
			}
		}
	}
}
