package api

import "errors"

var (
	// ErrUnauthorized is returned when the service rejects the token.
	ErrUnauthorized = errors.New("401 unauthorized")

	// ErrNotFound is returned when 404 is returned from the service.
	ErrNotFound = errors.New("404 not found")

	// ErrUnavailable is returned when the bike is already rented.
	ErrUnavailable = errors.New("409 bike unavailable")
)
