// Package usecase implements the business logic for the listingassist feature.
package usecase

import (
	"context"
	"fmt"

	"marketplace_backend/internal/feature/listingassist/domain/entity"
)

const (
	// MaxImageSize is the maximum accepted photo size (10MB).
	MaxImageSize = 10 * 1024 * 1024
	// MaxDescriptionFieldLength bounds each free-text field fed into the
	// description prompt.
	MaxDescriptionFieldLength = 100
)

// BrandDetector detects manufacturer brands in listing photos.
// Following Go convention, the interface is defined by the consumer (usecase).
type BrandDetector interface {
	// DetectBrands returns the brands found in the image bytes.
	DetectBrands(ctx context.Context, imageData []byte) ([]entity.BrandMatch, error)
}

// DescriptionWriter generates selling copy from a prompt.
// Following Go convention, the interface is defined by the consumer (usecase).
type DescriptionWriter interface {
	// Write generates text from the prompt.
	Write(ctx context.Context, prompt string) (string, error)
}

// DescriptionInput carries the listing facts the suggestion is built from.
type DescriptionInput struct {
	Title    string
	Brand    string
	Model    string
	Year     int
	KmDriven int
	FuelType string
}

// assistUsecase provides the seller-assist business logic.
type assistUsecase struct {
	detector BrandDetector
	writer   DescriptionWriter
}

// NewAssistUsecase creates a new assistUsecase.
func NewAssistUsecase(detector BrandDetector, writer DescriptionWriter) *assistUsecase {
	return &assistUsecase{detector: detector, writer: writer}
}

// DetectBrand returns brand candidates found in an uploaded listing photo.
func (u *assistUsecase) DetectBrand(ctx context.Context, imageData []byte) ([]entity.BrandMatch, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}
	return u.detector.DetectBrands(ctx, imageData)
}

// SuggestDescription generates a selling description from the listing facts.
func (u *assistUsecase) SuggestDescription(ctx context.Context, in DescriptionInput) (*entity.DescriptionSuggestion, error) {
	if in.Brand == "" || in.Model == "" {
		return nil, fmt.Errorf("brand and model are required")
	}
	for _, field := range []string{in.Title, in.Brand, in.Model, in.FuelType} {
		if len(field) > MaxDescriptionFieldLength {
			return nil, fmt.Errorf("field exceeds maximum length of %d characters", MaxDescriptionFieldLength)
		}
	}

	prompt := fmt.Sprintf(
		"Write a short, honest selling description (max 80 words) for a used vehicle listing: "+
			"%s %s, year %d, %d km driven, fuel type %s. Plain text, no headings.",
		in.Brand, in.Model, in.Year, in.KmDriven, in.FuelType,
	)
	text, err := u.writer.Write(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("description writer failed for %s %s: %w", in.Brand, in.Model, err)
	}
	return &entity.DescriptionSuggestion{Title: in.Title, Description: text}, nil
}
