// Package handler provides HTTP handlers for the listings feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace_backend/internal/feature/listings/transport/http/dto"
	"marketplace_backend/internal/feature/listings/usecase"
	jwtmw "marketplace_backend/internal/platform/jwt"
)

// ListingsUsecase defines the listing lifecycle operations used by this
// handler. Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type ListingsUsecase interface {
	Create(ctx context.Context, callerID uint, in usecase.ListingInput) (uint, error)
	Get(ctx context.Context, id uint) (*usecase.ListingWithOwner, error)
	Search(ctx context.Context, q usecase.SearchQuery) (*usecase.SearchResult, error)
	ListByOwner(ctx context.Context, callerID uint) ([]usecase.Listing, error)
	Update(ctx context.Context, callerID, id uint, in usecase.ListingInput) error
	Delete(ctx context.Context, callerID, id uint) error
	AttachImages(ctx context.Context, callerID, id uint, uploads []usecase.ImageUpload) ([]string, error)
	Brands(ctx context.Context) ([]string, error)
}

// ListingsHandler handles HTTP requests for the listing lifecycle.
type ListingsHandler struct {
	listings ListingsUsecase
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(listings ListingsUsecase) *ListingsHandler {
	return &ListingsHandler{listings: listings}
}

// vehicleID parses the :id path parameter.
func vehicleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vehicle id"})
		return 0, false
	}
	return uint(id), true
}

// writeError maps usecase errors to HTTP statuses. Existence is reported
// before ownership, so not-found wins over forbidden.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "vehicle not found"})
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "you can only modify your own listings"})
	case errors.Is(err, usecase.ErrUnknownUser):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unknown user"})
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("listing operation failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}

// Create handles POST /vehicles.
func (h *ListingsHandler) Create(c *gin.Context) {
	var req dto.VehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create listing validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	callerID := c.GetUint(jwtmw.ContextUserID)
	id, err := h.listings.Create(c.Request.Context(), callerID, req.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	slog.Info("listing created", "vehicle_id", id, "owner_id", callerID)
	c.JSON(http.StatusCreated, dto.CreateResponse{ID: id, Message: "Vehicle created successfully"})
}

// Get handles GET /vehicles/:id. Public: no auth required.
func (h *ListingsHandler) Get(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}
	detail, err := h.listings.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.VehicleDetailOut{
		VehicleOut: dto.FromListing(detail.Listing),
		Owner: dto.OwnerOut{
			Name:  detail.Owner.Name,
			Email: detail.Owner.Email,
			Phone: detail.Owner.Phone,
		},
	})
}

// List handles GET /vehicles with optional conjunctive filters and paging.
func (h *ListingsHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid query parameters"})
		return
	}
	result, err := h.listings.Search(c.Request.Context(), usecase.SearchQuery{
		Brand:    q.Brand,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Search:   q.Search,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]dto.VehicleOut, 0, len(result.Items))
	for _, item := range result.Items {
		out = append(out, dto.FromListing(item))
	}
	c.JSON(http.StatusOK, dto.ListResponse{Vehicles: out, Total: result.Total, Page: result.Page, Pages: result.Pages})
}

// MyListings handles GET /vehicles/my-bikes.
func (h *ListingsHandler) MyListings(c *gin.Context) {
	callerID := c.GetUint(jwtmw.ContextUserID)
	items, err := h.listings.ListByOwner(c.Request.Context(), callerID)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]dto.VehicleOut, 0, len(items))
	for _, item := range items {
		out = append(out, dto.FromListing(item))
	}
	c.JSON(http.StatusOK, dto.MyListingsResponse{Vehicles: out, Total: len(out)})
}

// Update handles PUT /vehicles/:id with full-replace semantics.
func (h *ListingsHandler) Update(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}
	var req dto.VehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update listing validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	callerID := c.GetUint(jwtmw.ContextUserID)
	if err := h.listings.Update(c.Request.Context(), callerID, id, req.ToInput()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Vehicle updated successfully"})
}

// Delete handles DELETE /vehicles/:id with cascading image removal.
func (h *ListingsHandler) Delete(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}
	callerID := c.GetUint(jwtmw.ContextUserID)
	if err := h.listings.Delete(c.Request.Context(), callerID, id); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("listing deleted", "vehicle_id", id, "owner_id", callerID)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Vehicle deleted successfully"})
}

// UploadImages handles POST /vehicles/:id/upload-images.
// Multipart field: files. Files stored before a mid-batch failure stay
// persisted; the response then reports the failure.
func (h *ListingsHandler) UploadImages(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "multipart form required"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no files supplied"})
		return
	}

	uploads := make([]usecase.ImageUpload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unreadable upload"})
			return
		}
		defer f.Close()
		uploads = append(uploads, usecase.ImageUpload{
			Filename:    fh.Filename,
			Reader:      f,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
		})
	}

	callerID := c.GetUint(jwtmw.ContextUserID)
	saved, err := h.listings.AttachImages(c.Request.Context(), callerID, id, uploads)
	if err != nil {
		if errors.Is(err, usecase.ErrVehicleNotFound) || errors.Is(err, usecase.ErrNotOwner) || errors.Is(err, usecase.ErrUnknownUser) {
			writeError(c, err)
			return
		}
		slog.Error("image upload failed", "error", err, "vehicle_id", id, "stored", len(saved))
		c.JSON(http.StatusInternalServerError, dto.UploadResponse{Message: "some images could not be stored", Images: saved})
		return
	}
	slog.Info("images uploaded", "vehicle_id", id, "count", len(saved))
	c.JSON(http.StatusOK, dto.UploadResponse{Message: "Images uploaded successfully", Images: saved})
}

// Brands handles GET /vehicles/brands/list.
func (h *ListingsHandler) Brands(c *gin.Context) {
	brands, err := h.listings.Brands(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}
