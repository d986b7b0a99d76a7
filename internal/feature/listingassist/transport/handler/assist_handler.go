// Package handler provides HTTP handlers for the listingassist feature.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace_backend/internal/feature/listingassist/domain/entity"
	"marketplace_backend/internal/feature/listingassist/transport/http/dto"
	"marketplace_backend/internal/feature/listingassist/usecase"
)

// AssistUsecase defines the seller-assist operations used by this handler.
// Following Go convention, the interface is defined by the consumer (handler).
type AssistUsecase interface {
	DetectBrand(ctx context.Context, imageData []byte) ([]entity.BrandMatch, error)
	SuggestDescription(ctx context.Context, in usecase.DescriptionInput) (*entity.DescriptionSuggestion, error)
}

// AssistHandler handles HTTP requests for seller-assist tooling.
type AssistHandler struct {
	uc AssistUsecase
}

// NewAssistHandler creates a new AssistHandler.
func NewAssistHandler(uc AssistUsecase) *AssistHandler {
	return &AssistHandler{uc: uc}
}

// DetectBrand detects the vehicle's brand from an uploaded photo.
//
// Endpoint: POST /vehicles/assist/detect-brand
// Content-Type: multipart/form-data
// Field: image (max 10MB)
func (h *AssistHandler) DetectBrand(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("brand detection image missing", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "an image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open uploaded image", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded image", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("failed to read uploaded image", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to read image"})
		return
	}

	matches, err := h.uc.DetectBrand(c.Request.Context(), imageData)
	if err != nil {
		slog.Error("brand detection failed", "error", err)
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "brand detection failed"})
		return
	}

	out := make([]dto.BrandMatchOut, 0, len(matches))
	for _, m := range matches {
		out = append(out, dto.BrandMatchOut{Name: m.Name, Confidence: m.Confidence})
	}
	c.JSON(http.StatusOK, out)
}

// Describe generates a selling description from the listing's facts.
//
// Endpoint: POST /vehicles/assist/describe
// Content-Type: application/json
func (h *AssistHandler) Describe(c *gin.Context) {
	var req dto.DescribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("describe request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "brand and model are required"})
		return
	}

	suggestion, err := h.uc.SuggestDescription(c.Request.Context(), usecase.DescriptionInput{
		Title:    req.Title,
		Brand:    req.Brand,
		Model:    req.Model,
		Year:     req.Year,
		KmDriven: req.KmDriven,
		FuelType: req.FuelType,
	})
	if err != nil {
		slog.Error("description suggestion failed", "error", err, "brand", req.Brand, "model", req.Model)
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "description suggestion failed"})
		return
	}

	c.JSON(http.StatusOK, dto.DescribeResponse{Description: suggestion.Description})
}
