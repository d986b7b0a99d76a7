// Package adapters provides repository implementations for the listings feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"marketplace_backend/internal/feature/listings/domain/entity"
	"marketplace_backend/internal/feature/listings/usecase"
)

// vehicleGorm is the GORM implementation of the VehicleRepository and
// BrandRepository interfaces.
type vehicleGorm struct {
	db *gorm.DB
}

// Compile-time checks.
var (
	_ usecase.VehicleRepository = (*vehicleGorm)(nil)
	_ usecase.BrandRepository   = (*vehicleGorm)(nil)
)

// NewVehicleRepository creates a new vehicleGorm with the given gorm.DB connection.
func NewVehicleRepository(db *gorm.DB) *vehicleGorm {
	return &vehicleGorm{db: db}
}

// Create inserts a new vehicle row.
func (r *vehicleGorm) Create(ctx context.Context, v *entity.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// FindByID retrieves a vehicle by ID.
func (r *vehicleGorm) FindByID(ctx context.Context, id uint) (*entity.Vehicle, error) {
	var v entity.Vehicle
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrVehicleNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Search applies the conjunctive filters and returns one page plus the total
// match count, ordered by ID ascending for reproducible paging.
// Substring filters are lowered on both sides so the same query behaves
// identically on postgres and on the sqlite test database.
func (r *vehicleGorm) Search(ctx context.Context, q usecase.SearchQuery) ([]entity.Vehicle, int64, error) {
	tx := r.db.WithContext(ctx).Model(&entity.Vehicle{})

	if q.Brand != "" {
		tx = tx.Where("LOWER(brand) LIKE ?", "%"+strings.ToLower(q.Brand)+"%")
	}
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where("LOWER(model) LIKE ? OR LOWER(title) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vehicles []entity.Vehicle
	if err := tx.Order("id ASC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&vehicles).Error; err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

// ListByOwner returns every vehicle owned by the given user, unpaginated.
func (r *vehicleGorm) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Vehicle, error) {
	var vehicles []entity.Vehicle
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Save writes every column of an existing vehicle back to the store.
// gorm's Save updates all fields, matching the full-replace semantics.
func (r *vehicleGorm) Save(ctx context.Context, v *entity.Vehicle) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// Delete removes the vehicle and its image rows in a single transaction, so
// a listing never outlives its images nor vice versa.
func (r *vehicleGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", id).Delete(&entity.VehicleImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Vehicle{}, id).Error
	})
}

// ImagesByVehicle returns the image rows bound to a vehicle.
func (r *vehicleGorm) ImagesByVehicle(ctx context.Context, vehicleID uint) ([]entity.VehicleImage, error) {
	var images []entity.VehicleImage
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("id ASC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// AddImage records one stored image reference for a vehicle.
func (r *vehicleGorm) AddImage(ctx context.Context, img *entity.VehicleImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

// ListBrands returns the distinct non-empty brand values across all listings.
func (r *vehicleGorm) ListBrands(ctx context.Context) ([]string, error) {
	var brands []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Vehicle{}).
		Where("brand <> ''").
		Distinct().
		Order("brand ASC").
		Pluck("brand", &brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}
