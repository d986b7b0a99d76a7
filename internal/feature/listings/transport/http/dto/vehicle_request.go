// Package dto defines data transfer objects for the listings feature's HTTP transport layer.
package dto

import "marketplace_backend/internal/feature/listings/usecase"

// VehicleReq is the request body for creating or fully replacing a listing.
// Required numeric fields are pointers so a legitimate zero value passes the
// required binding.
type VehicleReq struct {
	Title       string   `json:"title" binding:"required"`
	Brand       string   `json:"brand" binding:"required"`
	Model       string   `json:"model" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Year        *int     `json:"year" binding:"required"`
	KmDriven    *int     `json:"km_driven" binding:"required"`
	FuelType    string   `json:"fuel_type" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Description string   `json:"description" binding:"required"`

	OwnerType          *string  `json:"owner_type"`
	EngineCC           *int     `json:"engine_cc"`
	Mileage            *float64 `json:"mileage"`
	Color              *string  `json:"color"`
	InsuranceValid     *string  `json:"insurance_valid"`
	RegistrationNumber *string  `json:"registration_number"`
	IsNegotiable       *bool    `json:"is_negotiable"`
}

// ToInput converts the request into the usecase's typed input struct.
func (r VehicleReq) ToInput() usecase.ListingInput {
	return usecase.ListingInput{
		Title:              r.Title,
		Brand:              r.Brand,
		Model:              r.Model,
		Price:              *r.Price,
		Year:               *r.Year,
		KmDriven:           *r.KmDriven,
		FuelType:           r.FuelType,
		Location:           r.Location,
		Description:        r.Description,
		OwnerType:          r.OwnerType,
		EngineCC:           r.EngineCC,
		Mileage:            r.Mileage,
		Color:              r.Color,
		InsuranceValid:     r.InsuranceValid,
		RegistrationNumber: r.RegistrationNumber,
		IsNegotiable:       r.IsNegotiable,
	}
}

// ListQuery binds the browse endpoint's query parameters. The default tags
// fire only when a parameter is absent; an explicit zero passes through
// unchanged and is rejected downstream.
type ListQuery struct {
	Brand    string   `form:"brand"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
	Search   string   `form:"search"`
	Page     int      `form:"page,default=1"`
	Limit    int      `form:"limit,default=12"`
}
