// Package bike holds the types exchanged with the rental service.
package bike

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"tableflip.dev/pedal/pkg/datepicker"
)

var ErrInvalidDetails = errors.New("bike: invalid rent details")

// Bike is a rentable bike as listed by the service.
type Bike struct {
	ID          int      `json:"id"`
	CandidateID int      `json:"candidateId"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	BodySize    int      `json:"bodySize"`
	MaxLoad     int      `json:"maxLoad"`
	Rate        float64  `json:"rate"`
	Ratings     float64  `json:"ratings"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"imageUrls"`
	IsRented    bool     `json:"isRented"`
}

// Thumb is the card image, the first listed image.
func (b Bike) Thumb() string {
	if len(b.ImageURLs) == 0 {
		return ""
	}
	return b.ImageURLs[0]
}

// Key is the string form of the ID used for local bookkeeping.
func (b Bike) Key() string {
	return strconv.Itoa(b.ID)
}

// RentDetails describes a requested rental.
type RentDetails struct {
	UserID   int             `json:"userId"`
	BikeID   int             `json:"bikeId"`
	DateFrom datepicker.Date `json:"dateFrom"`
	DateTo   datepicker.Date `json:"dateTo"`
}

// NewRentDetails builds details for a complete picker range.
func NewRentDetails(userID, bikeID int, r datepicker.Range) RentDetails {
	return RentDetails{UserID: userID, BikeID: bikeID, DateFrom: r.Start, DateTo: r.End}
}

// Validate requires positive IDs and an ordered pair of dates.
func (d RentDetails) Validate() error {
	switch {
	case d.UserID <= 0:
		return fmt.Errorf("%w: user id %d", ErrInvalidDetails, d.UserID)
	case d.BikeID <= 0:
		return fmt.Errorf("%w: bike id %d", ErrInvalidDetails, d.BikeID)
	case d.DateFrom.IsZero() || d.DateTo.IsZero():
		return fmt.Errorf("%w: both dates are required", ErrInvalidDetails)
	case d.DateTo.Before(d.DateFrom):
		return fmt.Errorf("%w: %s is before %s", ErrInvalidDetails, d.DateTo, d.DateFrom)
	}
	return nil
}

// Days is the number of rental days, both ends included.
func (d RentDetails) Days() int {
	return Days(d.DateFrom, d.DateTo)
}

// RentAmount is the price breakdown for a rental.
type RentAmount struct {
	RentAmount  float64 `json:"rentAmount"`
	Fee         float64 `json:"fee"`
	TotalAmount float64 `json:"totalAmount"`
}

// BikeReturnDetails is the service's record of a created rental.
type BikeReturnDetails struct {
	ID       int             `json:"id"`
	BikeID   int             `json:"bikeId"`
	UserID   int             `json:"userId"`
	DateFrom datepicker.Date `json:"dateFrom"`
	DateTo   datepicker.Date `json:"dateTo"`
	Bike     Bike            `json:"bike"`
}

// Days counts the days from from to to inclusively. It returns 0 when either
// date is zero or to comes first.
func Days(from, to datepicker.Date) int {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return 0
	}
	// UTC midnights differ by whole days.
	hours := to.Time(time.UTC).Sub(from.Time(time.UTC)).Hours()
	return int(hours/24) + 1
}
