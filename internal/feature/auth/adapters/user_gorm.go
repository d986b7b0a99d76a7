// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace_backend/internal/feature/auth/domain/entity"
	"marketplace_backend/internal/feature/auth/usecase"
)

// userGorm is the GORM implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a new userGorm with the given gorm.DB connection.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. The unique index on email rejects duplicates;
// the driver error is translated via gorm.ErrDuplicatedKey, which works the
// same against postgres and the sqlite test database.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
