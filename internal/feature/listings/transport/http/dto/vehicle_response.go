package dto

import "marketplace_backend/internal/feature/listings/usecase"

// VehicleOut is the full listing projection returned by every read path.
type VehicleOut struct {
	ID                 uint     `json:"id"`
	Title              string   `json:"title"`
	Brand              string   `json:"brand"`
	Model              string   `json:"model"`
	Price              float64  `json:"price"`
	Year               int      `json:"year"`
	KmDriven           int      `json:"km_driven"`
	FuelType           string   `json:"fuel_type"`
	Location           string   `json:"location"`
	Description        string   `json:"description"`
	OwnerType          string   `json:"owner_type"`
	EngineCC           *int     `json:"engine_cc"`
	Mileage            *float64 `json:"mileage"`
	Color              *string  `json:"color"`
	InsuranceValid     *string  `json:"insurance_valid"`
	RegistrationNumber *string  `json:"registration_number"`
	IsNegotiable       bool     `json:"is_negotiable"`
	IsSold             bool     `json:"is_sold"`
	OwnerID            uint     `json:"owner_id"`
	Images             []string `json:"images"`
}

// OwnerOut is the redacted owner contact summary on the single-listing read.
type OwnerOut struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// VehicleDetailOut is the single-listing response.
type VehicleDetailOut struct {
	VehicleOut
	Owner OwnerOut `json:"owner"`
}

// ListResponse is one page of listings plus paging metadata.
type ListResponse struct {
	Vehicles []VehicleOut `json:"vehicles"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	Pages    int          `json:"pages"`
}

// MyListingsResponse is the caller's unpaginated listings.
type MyListingsResponse struct {
	Vehicles []VehicleOut `json:"vehicles"`
	Total    int          `json:"total"`
}

// CreateResponse acknowledges a created listing.
type CreateResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// UploadResponse acknowledges stored images.
type UploadResponse struct {
	Message string   `json:"message"`
	Images  []string `json:"images"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FromListing maps a usecase listing to its response projection.
func FromListing(l usecase.Listing) VehicleOut {
	v := l.Vehicle
	return VehicleOut{
		ID:                 v.ID,
		Title:              v.Title,
		Brand:              v.Brand,
		Model:              v.Model,
		Price:              v.Price,
		Year:               v.Year,
		KmDriven:           v.KmDriven,
		FuelType:           v.FuelType,
		Location:           v.Location,
		Description:        v.Description,
		OwnerType:          v.OwnerType,
		EngineCC:           v.EngineCC,
		Mileage:            v.Mileage,
		Color:              v.Color,
		InsuranceValid:     v.InsuranceValid,
		RegistrationNumber: v.RegistrationNumber,
		IsNegotiable:       v.IsNegotiable,
		IsSold:             v.IsSold,
		OwnerID:            v.OwnerID,
		Images:             l.Images,
	}
}
