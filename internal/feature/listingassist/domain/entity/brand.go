// Package entity defines the domain models for the listingassist feature.
package entity

// BrandMatch is a manufacturer brand detected in a listing photo.
type BrandMatch struct {
	Name       string  // detected brand name
	Confidence float32 // confidence score (0.0 - 1.0)
}

// DescriptionSuggestion is an AI-written selling description for a listing.
type DescriptionSuggestion struct {
	Title       string
	Description string
}
