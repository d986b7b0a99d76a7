// Package entity defines the domain entities for the listings feature.
package entity

import "time"

// Vehicle is a listing put up for sale by exactly one owner. The owner is
// set at creation and never reassigned through any exposed operation.
type Vehicle struct {
	ID uint `gorm:"primaryKey"`

	// Required listing fields.
	Title       string  `gorm:"size:100;not null"`
	Brand       string  `gorm:"size:100;not null"`
	Model       string  `gorm:"size:100;not null"`
	Price       float64 `gorm:"not null"`
	Year        int     `gorm:"not null"`
	KmDriven    int     `gorm:"not null"`
	FuelType    string  `gorm:"size:100;not null"`
	Location    string  `gorm:"size:100;not null"`
	Description string  `gorm:"type:text"`

	// Selling metadata. OwnerType holds the ownership-history tag
	// ("first_owner", "second_owner", ...).
	OwnerType          string   `gorm:"size:50"`
	EngineCC           *int     `gorm:""`
	Mileage            *float64 `gorm:""`
	Color              *string  `gorm:"size:50"`
	InsuranceValid     *string  `gorm:"size:100"`
	RegistrationNumber *string  `gorm:"size:50"`
	IsNegotiable       bool     `gorm:"default:true"`
	IsSold             bool     `gorm:"default:false"`

	// OwnerID references the user who created the listing. Immutable.
	OwnerID uint `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VehicleImage binds one stored image reference to a vehicle. ImageURL is
// either an absolute URL or a blob-store key; it is resolved to a public URL
// on every read. Rows are deleted only when the parent vehicle is deleted.
type VehicleImage struct {
	ID        uint   `gorm:"primaryKey"`
	VehicleID uint   `gorm:"index;not null"`
	ImageURL  string `gorm:"size:500;not null"`
}
