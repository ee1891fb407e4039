// Package bookmarks remembers which bikes the user starred. Bookmarks are a
// local UI preference and never reach the rental service.
package bookmarks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
	"github.com/sirupsen/logrus"
)

var ErrInvalidID = errors.New("bookmarks: invalid bike id")

// Bookmark is a starred bike.
type Bookmark struct {
	BikeID  int       `json:"bikeId"`
	Name    string    `json:"name,omitempty"`
	Created time.Time `json:"created"`
}

// Store defines the bookmark persistence contract.
type Store interface {
	Add(b Bookmark) error
	Remove(bikeID int) error
	Has(bikeID int) bool
	Toggle(bikeID int, name string) (bool, error)
	List(ctx context.Context) []Bookmark
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Store backed by diskv under basePath.
func Load(basePath string) (Store, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("bookmarks: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("bookmarks: ensure base path: %w", err)
	}
	return &store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 64 * 1024,
	}), basePath: basePath, now: time.Now}, nil
}

type store struct {
	d        *diskv.Diskv
	basePath string
	now      func() time.Time
}

func toKey(bikeID int) string {
	return strconv.Itoa(bikeID)
}

func fromKey(key string) (int, bool) {
	id, err := strconv.Atoi(key)
	return id, err == nil && id > 0
}

func (s *store) Add(b Bookmark) error {
	if b.BikeID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, b.BikeID)
	}
	if b.Created.IsZero() {
		b.Created = s.now()
	}
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.d.Write(toKey(b.BikeID), data)
}

func (s *store) Remove(bikeID int) error {
	if !s.Has(bikeID) {
		return nil
	}
	return s.d.Erase(toKey(bikeID))
}

func (s *store) Has(bikeID int) bool {
	return bikeID > 0 && s.d.Has(toKey(bikeID))
}

// Toggle adds or removes the bookmark and reports whether it is now set.
func (s *store) Toggle(bikeID int, name string) (bool, error) {
	if s.Has(bikeID) {
		return false, s.Remove(bikeID)
	}
	return true, s.Add(Bookmark{BikeID: bikeID, Name: name})
}

func (s *store) read(key string) (Bookmark, error) {
	val, err := s.d.Read(key)
	if err != nil {
		return Bookmark{}, err
	}
	var b Bookmark
	if err := json.Unmarshal(val, &b); err != nil {
		return Bookmark{}, err
	}
	return b, nil
}

func (s *store) List(ctx context.Context) []Bookmark {
	all := make([]Bookmark, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if _, ok := fromKey(key); !ok {
			continue
		}
		b, err := s.read(key)
		if err != nil {
			logrus.WithError(err).WithField("key", key).Warn("bookmarks: skipping unreadable entry")
			continue
		}
		all = append(all, b)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Created.Equal(all[j].Created) {
			return all[i].BikeID < all[j].BikeID
		}
		return all[i].Created.Before(all[j].Created)
	})
	return all
}

// IDs returns the bookmarked bike IDs as a set.
func IDs(ctx context.Context, s Store) map[int]bool {
	set := make(map[int]bool)
	for _, b := range s.List(ctx) {
		set[b.BikeID] = true
	}
	return set
}
