package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authentity "marketplace_backend/internal/feature/auth/domain/entity"
	"marketplace_backend/internal/feature/listings/usecase"
)

// ownerGorm resolves user IDs to redacted owner summaries. It reads the
// users table directly; only the contact fields leave this adapter.
type ownerGorm struct {
	db *gorm.DB
}

var _ usecase.OwnerDirectory = (*ownerGorm)(nil)

// NewOwnerDirectory creates a new ownerGorm with the given gorm.DB connection.
func NewOwnerDirectory(db *gorm.DB) *ownerGorm {
	return &ownerGorm{db: db}
}

// FindOwner returns the owner contact summary for a user ID, or
// ErrUnknownUser when the identity no longer exists.
func (r *ownerGorm) FindOwner(ctx context.Context, id uint) (*usecase.Owner, error) {
	var u authentity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUnknownUser
		}
		return nil, err
	}
	return &usecase.Owner{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}, nil
}
