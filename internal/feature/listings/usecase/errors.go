// Package usecase implements the business logic for the listings feature.
package usecase

import "errors"

var (
	// ErrVehicleNotFound is returned when no listing exists with the given ID.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrNotOwner is returned when a caller tries to mutate a listing owned
	// by someone else.
	ErrNotOwner = errors.New("caller does not own this vehicle")

	// ErrUnknownUser is returned when a verified token resolves to an
	// identity that no longer exists.
	ErrUnknownUser = errors.New("unknown user")

	// ErrInvalidInput is returned for out-of-range paging or missing
	// required fields. Out-of-range values are rejected rather than clamped
	// so that paging results stay reproducible.
	ErrInvalidInput = errors.New("invalid input")
)
