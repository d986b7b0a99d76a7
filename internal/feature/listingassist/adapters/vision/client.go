// Package vision provides a brand detector backed by the Google Cloud Vision API.
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"marketplace_backend/internal/feature/listingassist/domain/entity"
	"marketplace_backend/internal/feature/listingassist/usecase"
)

// VisionBrandDetector detects manufacturer logos in listing photos using the
// Cloud Vision logo-detection feature.
type VisionBrandDetector struct {
	client *gvision.ImageAnnotatorClient
}

// Compile-time check that VisionBrandDetector implements BrandDetector.
var _ usecase.BrandDetector = (*VisionBrandDetector)(nil)

// NewVisionBrandDetector creates a detector using application default credentials.
func NewVisionBrandDetector(ctx context.Context) (*VisionBrandDetector, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionBrandDetector{client: client}, nil
}

// Close releases the Vision API client.
func (v *VisionBrandDetector) Close() error {
	return v.client.Close()
}

// DetectBrands runs logo detection over the image bytes.
func (v *VisionBrandDetector) DetectBrands(ctx context.Context, imageData []byte) ([]entity.BrandMatch, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_LOGO_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return nil, nil
	}
	if resp.Responses[0].Error != nil {
		return nil, fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	matches := make([]entity.BrandMatch, 0, len(resp.Responses[0].LogoAnnotations))
	for _, logo := range resp.Responses[0].LogoAnnotations {
		matches = append(matches, entity.BrandMatch{
			Name:       logo.Description,
			Confidence: logo.Score,
		})
	}
	return matches, nil
}
