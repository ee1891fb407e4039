package bookmarks

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStoreToggle(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	on, err := s.Toggle(3, "Cargo Max")
	if err != nil || !on {
		t.Fatalf("first toggle = %t, %v", on, err)
	}
	if !s.Has(3) {
		t.Fatalf("expected bike 3 bookmarked")
	}

	on, err = s.Toggle(3, "Cargo Max")
	if err != nil || on {
		t.Fatalf("second toggle = %t, %v", on, err)
	}
	if s.Has(3) {
		t.Fatalf("expected bike 3 removed")
	}
	if err := s.Remove(3); err != nil {
		t.Fatalf("removing a missing bookmark: %v", err)
	}
}

func TestStoreListOrder(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	base := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
	for i, id := range []int{4, 1, 2} {
		if err := s.Add(Bookmark{BikeID: id, Created: base.Add(time.Duration(i) * time.Minute)}); err != nil {
			t.Fatalf("add %d: %v", id, err)
		}
	}
	list := s.List(context.Background())
	if len(list) != 3 || list[0].BikeID != 4 || list[2].BikeID != 2 {
		t.Fatalf("unexpected order %+v", list)
	}
	if ids := IDs(context.Background(), s); !ids[1] || ids[3] {
		t.Fatalf("unexpected id set %v", ids)
	}
}

func TestStoreRejectsInvalidID(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.Add(Bookmark{BikeID: 0}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := Load(""); err == nil {
		t.Fatalf("expected an error for an empty base path")
	}
}

func TestWatchEmitsBookmarkChanges(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to start before writing.
	time.Sleep(50 * time.Millisecond)

	if err := s.Add(Bookmark{BikeID: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.BikeID == 0 || evt.BikeID == 2 {
				return
			}
			t.Fatalf("unexpected bike id %d", evt.BikeID)
		case <-deadline:
			t.Fatal("timed out waiting for bookmark event")
		}
	}
}
