// Package api is the HTTP client for the bike rental service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"tableflip.dev/pedal/pkg/bike"
)

// Service is the rental service contract consumed by the UI and commands.
type Service interface {
	Bikes(ctx context.Context) ([]bike.Bike, error)
	Bike(ctx context.Context, id int) (bike.Bike, error)
	Amount(ctx context.Context, details bike.RentDetails) (bike.RentAmount, error)
	Rent(ctx context.Context, details bike.RentDetails) (bike.BikeReturnDetails, error)
}

var _ Service = (*Client)(nil)

// Client talks JSON over HTTP to the rental service.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient is a constructor for creating a new Client
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Bikes lists the catalog.
func (c *Client) Bikes(ctx context.Context) ([]bike.Bike, error) {
	var bikes []bike.Bike
	if err := c.send(ctx, http.MethodGet, "/bikes", nil, &bikes); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to list bikes")
	}
	return bikes, nil
}

// Bike fetches one bike.
func (c *Client) Bike(ctx context.Context, id int) (bike.Bike, error) {
	var b bike.Bike
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/bikes/%d", id), nil, &b); err != nil {
		return bike.Bike{}, pkgerrors.Wrapf(err, "failed to get bike %d", id)
	}
	return b, nil
}

// Amount quotes the price of a rental.
func (c *Client) Amount(ctx context.Context, details bike.RentDetails) (bike.RentAmount, error) {
	if err := details.Validate(); err != nil {
		return bike.RentAmount{}, err
	}
	var amount bike.RentAmount
	if err := c.send(ctx, http.MethodPost, "/bikes/amount", details, &amount); err != nil {
		return bike.RentAmount{}, pkgerrors.Wrapf(err, "failed to get amount for bike %d", details.BikeID)
	}
	return amount, nil
}

// Rent books the bike for the requested dates.
func (c *Client) Rent(ctx context.Context, details bike.RentDetails) (bike.BikeReturnDetails, error) {
	if err := details.Validate(); err != nil {
		return bike.BikeReturnDetails{}, err
	}
	var ret bike.BikeReturnDetails
	if err := c.send(ctx, http.MethodPost, "/bikes/rent", details, &ret); err != nil {
		return bike.BikeReturnDetails{}, pkgerrors.Wrapf(err, "failed to rent bike %d", details.BikeID)
	}
	return ret, nil
}

func (c *Client) send(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	var data []byte
	if in != nil {
		var err error
		data, err = json.Marshal(in)
		if err != nil {
			return pkgerrors.Wrapf(err, "failed to marshal request")
		}
		body = bytes.NewReader(data)
	}

	c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"data":   string(data),
		"url":    c.baseURL,
	}).Debug("sending request")

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Errorf("failed to close response body: %v", err)
		}
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return ErrUnavailable
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("got %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal %s response", path)
	}
	return nil
}
