// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an
	// email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login failure. Unknown email and
	// wrong password produce this same error so callers cannot probe which
	// emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
