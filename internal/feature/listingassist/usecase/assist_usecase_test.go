package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"marketplace_backend/internal/feature/listingassist/domain/entity"
)

// mockBrandDetector is a mock implementation of the BrandDetector interface.
type mockBrandDetector struct {
	DetectBrandsFunc func(ctx context.Context, imageData []byte) ([]entity.BrandMatch, error)
}

func (m *mockBrandDetector) DetectBrands(ctx context.Context, imageData []byte) ([]entity.BrandMatch, error) {
	if m.DetectBrandsFunc != nil {
		return m.DetectBrandsFunc(ctx, imageData)
	}
	return nil, nil
}

// mockDescriptionWriter is a mock implementation of the DescriptionWriter interface.
type mockDescriptionWriter struct {
	WriteFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockDescriptionWriter) Write(ctx context.Context, prompt string) (string, error) {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, prompt)
	}
	return "A well-kept bike.", nil
}

func TestAssistUsecase_DetectBrand(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards image to the detector", func(t *testing.T) {
		detector := &mockBrandDetector{
			DetectBrandsFunc: func(ctx context.Context, imageData []byte) ([]entity.BrandMatch, error) {
				return []entity.BrandMatch{{Name: "Honda", Confidence: 0.92}}, nil
			},
		}
		uc := NewAssistUsecase(detector, &mockDescriptionWriter{})

		matches, err := uc.DetectBrand(ctx, []byte("image bytes"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 1 || matches[0].Name != "Honda" {
			t.Errorf("unexpected matches: %+v", matches)
		}
	})

	t.Run("empty image rejected", func(t *testing.T) {
		uc := NewAssistUsecase(&mockBrandDetector{}, &mockDescriptionWriter{})

		if _, err := uc.DetectBrand(ctx, nil); err == nil {
			t.Fatal("expected error for empty image")
		}
	})

	t.Run("oversized image rejected before the detector runs", func(t *testing.T) {
		detector := &mockBrandDetector{
			DetectBrandsFunc: func(ctx context.Context, imageData []byte) ([]entity.BrandMatch, error) {
				t.Error("detector must not be called for oversized images")
				return nil, nil
			},
		}
		uc := NewAssistUsecase(detector, &mockDescriptionWriter{})

		big := make([]byte, MaxImageSize+1)
		if _, err := uc.DetectBrand(ctx, big); err == nil {
			t.Fatal("expected error for oversized image")
		}
	})
}

func TestAssistUsecase_SuggestDescription(t *testing.T) {
	ctx := context.Background()

	t.Run("prompt carries the listing facts", func(t *testing.T) {
		var prompt string
		writer := &mockDescriptionWriter{
			WriteFunc: func(ctx context.Context, p string) (string, error) {
				prompt = p
				return "Reliable commuter in great shape.", nil
			},
		}
		uc := NewAssistUsecase(&mockBrandDetector{}, writer)

		got, err := uc.SuggestDescription(ctx, DescriptionInput{
			Title: "My bike", Brand: "Honda", Model: "CB350",
			Year: 2021, KmDriven: 8000, FuelType: "Petrol",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"Honda", "CB350", "2021", "8000", "Petrol"} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt missing %q: %s", want, prompt)
			}
		}
		if got.Description != "Reliable commuter in great shape." {
			t.Errorf("unexpected description: %q", got.Description)
		}
	})

	t.Run("brand and model required", func(t *testing.T) {
		uc := NewAssistUsecase(&mockBrandDetector{}, &mockDescriptionWriter{})

		if _, err := uc.SuggestDescription(ctx, DescriptionInput{Model: "CB350"}); err == nil {
			t.Error("expected error for missing brand")
		}
		if _, err := uc.SuggestDescription(ctx, DescriptionInput{Brand: "Honda"}); err == nil {
			t.Error("expected error for missing model")
		}
	})

	t.Run("over-long field rejected", func(t *testing.T) {
		uc := NewAssistUsecase(&mockBrandDetector{}, &mockDescriptionWriter{})

		in := DescriptionInput{Brand: strings.Repeat("x", MaxDescriptionFieldLength+1), Model: "CB350"}
		if _, err := uc.SuggestDescription(ctx, in); err == nil {
			t.Fatal("expected error for over-long field")
		}
	})

	t.Run("writer failure surfaces", func(t *testing.T) {
		writer := &mockDescriptionWriter{
			WriteFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("model unavailable")
			},
		}
		uc := NewAssistUsecase(&mockBrandDetector{}, writer)

		if _, err := uc.SuggestDescription(ctx, DescriptionInput{Brand: "Honda", Model: "CB350"}); err == nil {
			t.Fatal("expected error when the writer fails")
		}
	})
}
