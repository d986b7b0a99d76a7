// Package dto defines data transfer objects for the listingassist feature's HTTP transport layer.
package dto

// BrandMatchOut is one detected brand candidate.
type BrandMatchOut struct {
	Name       string  `json:"name"`
	Confidence float32 `json:"confidence"`
}

// DescribeReq is the request body for the description-suggestion endpoint.
type DescribeReq struct {
	Title    string `json:"title"`
	Brand    string `json:"brand" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Year     int    `json:"year"`
	KmDriven int    `json:"km_driven"`
	FuelType string `json:"fuel_type"`
}

// DescribeResponse carries the generated selling description.
type DescribeResponse struct {
	Description string `json:"description"`
}

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
