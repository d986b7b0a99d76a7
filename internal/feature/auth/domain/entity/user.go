// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered marketplace user.
// It contains authentication credentials and the contact details shown to
// buyers on the user's listings.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name shown on listings.
	Name string `gorm:"size:100;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Phone is an optional contact number.
	Phone string `gorm:"size:20"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext and never leaves the repository boundary.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
