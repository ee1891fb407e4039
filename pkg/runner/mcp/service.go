// Package mcp exposes the bike rental flow over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/bookmarks"
	"tableflip.dev/pedal/pkg/datepicker"
	"tableflip.dev/pedal/pkg/runner/bikes"
	"tableflip.dev/pedal/pkg/runner/calendar"
	"tableflip.dev/pedal/pkg/runner/quote"
)

// Service adapts the rental API and local bookmarks for MCP handlers.
type Service struct {
	API        api.Service
	Bookmarks  bookmarks.Store
	UserID     int
	GridLength int
	Now        func() time.Time
}

// ErrNoService is returned when the Service is missing its API.
var ErrNoService = errors.New("mcp: rental service not configured")

// BikeDTO is a bike annotated with local bookmark state.
type BikeDTO struct {
	bike.Bike
	Bookmarked bool `json:"bookmarked"`
}

// NewService constructs a Service.
func NewService(svc api.Service, marks bookmarks.Store, userID int) *Service {
	return &Service{API: svc, Bookmarks: marks, UserID: userID, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) marked(ctx context.Context) map[int]bool {
	if s.Bookmarks == nil {
		return map[int]bool{}
	}
	return bookmarks.IDs(ctx, s.Bookmarks)
}

// ListBikes returns the catalog, optionally limited to bookmarked bikes.
func (s *Service) ListBikes(ctx context.Context, bookmarkedOnly bool) ([]BikeDTO, error) {
	if s.API == nil {
		return nil, ErrNoService
	}
	all, err := s.API.Bikes(ctx)
	if err != nil {
		return nil, err
	}
	marked := s.marked(ctx)
	if bookmarkedOnly {
		all = bikes.Filter(all, marked)
	}
	out := make([]BikeDTO, 0, len(all))
	for _, b := range all {
		out = append(out, BikeDTO{Bike: b, Bookmarked: marked[b.ID]})
	}
	return out, nil
}

// Bike returns one bike.
func (s *Service) Bike(ctx context.Context, id int) (BikeDTO, error) {
	if s.API == nil {
		return BikeDTO{}, ErrNoService
	}
	b, err := s.API.Bike(ctx, id)
	if err != nil {
		return BikeDTO{}, err
	}
	return BikeDTO{Bike: b, Bookmarked: s.marked(ctx)[b.ID]}, nil
}

// Calendar renders a picker page for month (YYYY-MM) with an optional
// selection.
func (s *Service) Calendar(month, from, to string) (calendar.Page, error) {
	c := calendar.Calendar{Month: month, From: from, To: to, Length: s.GridLength, Now: s.now()}
	p, err := c.Picker()
	if err != nil {
		return calendar.Page{}, err
	}
	return calendar.NewPage(p), nil
}

func (s *Service) details(bikeID int, from, to string) (bike.RentDetails, error) {
	start, err := datepicker.ParseDate(from)
	if err != nil {
		return bike.RentDetails{}, err
	}
	end, err := datepicker.ParseDate(to)
	if err != nil {
		return bike.RentDetails{}, err
	}
	if start.Before(datepicker.FromTime(s.now())) {
		return bike.RentDetails{}, fmt.Errorf("%w: %s is in the past", datepicker.ErrInvalidArgument, start)
	}
	d := bike.RentDetails{UserID: s.UserID, BikeID: bikeID, DateFrom: start, DateTo: end}
	return d, d.Validate()
}

// Quote prices a rental.
func (s *Service) Quote(ctx context.Context, bikeID int, from, to string) (quote.Result, error) {
	d, err := s.details(bikeID, from, to)
	if err != nil {
		return quote.Result{}, err
	}
	q := quote.Quote{Service: s.API, Details: d}
	return q.Fetch(ctx)
}

// Rent books a bike.
func (s *Service) Rent(ctx context.Context, bikeID int, from, to string) (bike.BikeReturnDetails, error) {
	if s.API == nil {
		return bike.BikeReturnDetails{}, ErrNoService
	}
	d, err := s.details(bikeID, from, to)
	if err != nil {
		return bike.BikeReturnDetails{}, err
	}
	return s.API.Rent(ctx, d)
}

// ToggleBookmark flips the bookmark for bikeID and reports the new state.
func (s *Service) ToggleBookmark(ctx context.Context, bikeID int) (bool, error) {
	if s.Bookmarks == nil {
		return false, errors.New("mcp: bookmarks not configured")
	}
	name := ""
	if s.API != nil {
		if b, err := s.API.Bike(ctx, bikeID); err == nil {
			name = b.Name
		}
	}
	return s.Bookmarks.Toggle(bikeID, name)
}
