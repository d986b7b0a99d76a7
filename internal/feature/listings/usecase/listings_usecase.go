package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"marketplace_backend/internal/feature/listings/domain/entity"
)

const (
	// DefaultPage is used when no page parameter is supplied.
	DefaultPage = 1
	// DefaultLimit is the page size used when no limit parameter is supplied.
	DefaultLimit = 12
	// MaxLimit caps the page size.
	MaxLimit = 50

	// DefaultOwnerType is the ownership-history tag applied when a listing
	// is created or replaced without one.
	DefaultOwnerType = "first_owner"
)

// VehicleRepository abstracts the persistence layer for vehicles and their
// image references. Following Go convention, the interface is defined by the
// consumer (usecase), not the provider (adapters).
type VehicleRepository interface {
	Create(ctx context.Context, v *entity.Vehicle) error
	// FindByID returns ErrVehicleNotFound when the listing does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Vehicle, error)
	// Search returns one page of matches plus the total match count.
	Search(ctx context.Context, q SearchQuery) ([]entity.Vehicle, int64, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]entity.Vehicle, error)
	// Save writes every field of an existing vehicle back to the store.
	Save(ctx context.Context, v *entity.Vehicle) error
	// Delete removes the vehicle row and all its image rows in one
	// transaction.
	Delete(ctx context.Context, id uint) error
	ImagesByVehicle(ctx context.Context, vehicleID uint) ([]entity.VehicleImage, error)
	AddImage(ctx context.Context, img *entity.VehicleImage) error
}

// BrandRepository provides the distinct-brands query for filter menus.
// It is separate from VehicleRepository so a caching decorator can wrap just
// this read.
type BrandRepository interface {
	ListBrands(ctx context.Context) ([]string, error)
}

// Owner is the redacted projection of a listing's owner. The password hash
// never crosses this boundary.
type Owner struct {
	ID    uint
	Name  string
	Email string
	Phone string
}

// OwnerDirectory resolves user IDs to owner contact summaries.
// FindOwner returns ErrUnknownUser when the identity no longer exists.
type OwnerDirectory interface {
	FindOwner(ctx context.Context, id uint) (*Owner, error)
}

// BlobStore abstracts uploaded-file storage. Implementations exist for local
// disk and MinIO; the listing lifecycle never touches either directly.
type BlobStore interface {
	// Put stores the content under name and returns the stored reference.
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
	// Delete removes a stored blob by reference.
	Delete(ctx context.Context, ref string) error
	// PublicURL resolves a stored reference to a URL reachable by clients.
	PublicURL(ref string) string
}

// ListingInput enumerates every writable listing field. Optional fields are
// pointers; nil means "use the declared default". Owner and sold state are
// deliberately absent: the owner is immutable and is_sold is not writable
// through the API.
type ListingInput struct {
	Title       string
	Brand       string
	Model       string
	Price       float64
	Year        int
	KmDriven    int
	FuelType    string
	Location    string
	Description string

	OwnerType          *string
	EngineCC           *int
	Mileage            *float64
	Color              *string
	InsuranceValid     *string
	RegistrationNumber *string
	IsNegotiable       *bool
}

// SearchQuery carries the optional, conjunctive listing filters plus paging.
type SearchQuery struct {
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Search   string
	Page     int
	Limit    int
}

// Listing pairs a vehicle with its resolved image URLs.
type Listing struct {
	Vehicle entity.Vehicle
	Images  []string
}

// ListingWithOwner adds the redacted owner contact summary, returned by the
// single-listing read.
type ListingWithOwner struct {
	Listing
	Owner Owner
}

// SearchResult is one page of listings plus paging metadata.
type SearchResult struct {
	Items []Listing
	Total int64
	Page  int
	Pages int
}

// ImageUpload is one file submitted to AttachImages.
type ImageUpload struct {
	Filename    string
	Reader      io.Reader
	Size        int64
	ContentType string
}

// listingsUsecase implements the listing lifecycle.
type listingsUsecase struct {
	vehicles VehicleRepository
	brands   BrandRepository
	owners   OwnerDirectory
	blobs    BlobStore
}

// NewListingsUsecase creates a new listingsUsecase.
func NewListingsUsecase(vehicles VehicleRepository, brands BrandRepository, owners OwnerDirectory, blobs BlobStore) *listingsUsecase {
	return &listingsUsecase{vehicles: vehicles, brands: brands, owners: owners, blobs: blobs}
}

// resolveCaller re-checks that a verified token still maps to a stored user.
// Every mutating operation and the my-listings read goes through this gate.
func (u *listingsUsecase) resolveCaller(ctx context.Context, callerID uint) error {
	if _, err := u.owners.FindOwner(ctx, callerID); err != nil {
		return err
	}
	return nil
}

// applyInput writes every field of in onto v, filling defaults for omitted
// optional fields. Used by both create and update so full-replace semantics
// match create semantics exactly.
func applyInput(v *entity.Vehicle, in ListingInput) {
	v.Title = in.Title
	v.Brand = in.Brand
	v.Model = in.Model
	v.Price = in.Price
	v.Year = in.Year
	v.KmDriven = in.KmDriven
	v.FuelType = in.FuelType
	v.Location = in.Location
	v.Description = in.Description

	v.OwnerType = DefaultOwnerType
	if in.OwnerType != nil {
		v.OwnerType = *in.OwnerType
	}
	v.EngineCC = in.EngineCC
	v.Mileage = in.Mileage
	v.Color = in.Color
	v.InsuranceValid = in.InsuranceValid
	v.RegistrationNumber = in.RegistrationNumber

	v.IsNegotiable = true
	if in.IsNegotiable != nil {
		v.IsNegotiable = *in.IsNegotiable
	}
}

// validateInput rejects listings missing any required field.
func validateInput(in ListingInput) error {
	switch {
	case in.Title == "", in.Brand == "", in.Model == "",
		in.FuelType == "", in.Location == "", in.Description == "":
		return fmt.Errorf("%w: missing required field", ErrInvalidInput)
	case in.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

// Create persists a new listing owned by the caller and returns its ID.
func (u *listingsUsecase) Create(ctx context.Context, callerID uint, in ListingInput) (uint, error) {
	if err := u.resolveCaller(ctx, callerID); err != nil {
		return 0, err
	}
	if err := validateInput(in); err != nil {
		return 0, err
	}

	v := &entity.Vehicle{OwnerID: callerID}
	applyInput(v, in)
	if err := u.vehicles.Create(ctx, v); err != nil {
		return 0, err
	}
	return v.ID, nil
}

// Get returns a single listing with resolved image URLs and the owner's
// contact summary.
func (u *listingsUsecase) Get(ctx context.Context, id uint) (*ListingWithOwner, error) {
	v, err := u.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	images, err := u.resolveImages(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	out := &ListingWithOwner{Listing: Listing{Vehicle: *v, Images: images}}

	owner, err := u.owners.FindOwner(ctx, v.OwnerID)
	switch {
	case err == nil:
		out.Owner = *owner
	case errors.Is(err, ErrUnknownUser):
		// A listing can outlive its owner; the contact summary stays empty.
	default:
		return nil, err
	}
	return out, nil
}

// Search returns one page of listings matching the conjunctive filters,
// ordered by ID ascending. Out-of-range paging, zero included, is rejected,
// not clamped; absent parameters receive their defaults at the transport
// boundary, so an explicit zero is distinguishable from "not supplied".
func (u *listingsUsecase) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	if q.Page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}
	if q.Limit < 1 || q.Limit > MaxLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxLimit)
	}

	vehicles, total, err := u.vehicles.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]Listing, 0, len(vehicles))
	for _, v := range vehicles {
		images, err := u.resolveImages(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, Listing{Vehicle: v, Images: images})
	}

	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return &SearchResult{Items: items, Total: total, Page: q.Page, Pages: pages}, nil
}

// ListByOwner returns every listing owned by the caller, unpaginated.
func (u *listingsUsecase) ListByOwner(ctx context.Context, callerID uint) ([]Listing, error) {
	if err := u.resolveCaller(ctx, callerID); err != nil {
		return nil, err
	}
	vehicles, err := u.vehicles.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}
	items := make([]Listing, 0, len(vehicles))
	for _, v := range vehicles {
		images, err := u.resolveImages(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, Listing{Vehicle: v, Images: images})
	}
	return items, nil
}

// Update performs a full-field replace of the caller's listing. The owner
// and the sold flag are preserved. Existence is checked before ownership, so
// a missing listing reports not-found rather than forbidden.
func (u *listingsUsecase) Update(ctx context.Context, callerID, id uint, in ListingInput) error {
	if err := u.resolveCaller(ctx, callerID); err != nil {
		return err
	}
	v, err := u.vehicles.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if v.OwnerID != callerID {
		return ErrNotOwner
	}
	if err := validateInput(in); err != nil {
		return err
	}
	applyInput(v, in)
	return u.vehicles.Save(ctx, v)
}

// Delete removes the caller's listing, its image rows and their blobs.
// Blob removal is best effort: a failed delete is logged and skipped so the
// listing record is always removable. Absolute-URL references have no blob
// behind them and are skipped outright.
func (u *listingsUsecase) Delete(ctx context.Context, callerID, id uint) error {
	if err := u.resolveCaller(ctx, callerID); err != nil {
		return err
	}
	v, err := u.vehicles.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if v.OwnerID != callerID {
		return ErrNotOwner
	}

	images, err := u.vehicles.ImagesByVehicle(ctx, id)
	if err != nil {
		return err
	}
	for _, img := range images {
		if isAbsoluteURL(img.ImageURL) {
			continue
		}
		if err := u.blobs.Delete(ctx, img.ImageURL); err != nil {
			slog.Warn("blob delete failed, continuing", "ref", img.ImageURL, "vehicle_id", id, "error", err)
		}
	}

	return u.vehicles.Delete(ctx, id)
}

// AttachImages stores each file under a name derived from the listing ID and
// the sanitized original filename, recording one image row per stored file.
// On a mid-batch failure the files already stored stay persisted; the error
// is returned together with their references.
func (u *listingsUsecase) AttachImages(ctx context.Context, callerID, id uint, uploads []ImageUpload) ([]string, error) {
	if err := u.resolveCaller(ctx, callerID); err != nil {
		return nil, err
	}
	v, err := u.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.OwnerID != callerID {
		return nil, ErrNotOwner
	}

	saved := make([]string, 0, len(uploads))
	for _, up := range uploads {
		name := fmt.Sprintf("%d_%s", id, sanitizeFilename(up.Filename))
		ref, err := u.blobs.Put(ctx, name, up.Reader, up.Size, up.ContentType)
		if err != nil {
			return saved, fmt.Errorf("store %q: %w", up.Filename, err)
		}
		if err := u.vehicles.AddImage(ctx, &entity.VehicleImage{VehicleID: id, ImageURL: ref}); err != nil {
			return saved, fmt.Errorf("record image %q: %w", ref, err)
		}
		saved = append(saved, ref)
	}
	return saved, nil
}

// Brands returns the distinct non-empty brand values across all listings.
func (u *listingsUsecase) Brands(ctx context.Context) ([]string, error) {
	return u.brands.ListBrands(ctx)
}

// resolveImages loads a listing's image rows and resolves each reference to
// a public URL. The same rule applies on every read path: absolute URLs pass
// through verbatim, blob keys are composed by the blob store.
func (u *listingsUsecase) resolveImages(ctx context.Context, vehicleID uint) ([]string, error) {
	rows, err := u.vehicles.ImagesByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(rows))
	for _, img := range rows {
		if isAbsoluteURL(img.ImageURL) {
			urls = append(urls, img.ImageURL)
			continue
		}
		urls = append(urls, u.blobs.PublicURL(img.ImageURL))
	}
	return urls, nil
}

// isAbsoluteURL reports whether a stored reference is already a resolvable URL.
func isAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// sanitizeFilename strips any path component and collapses whitespace so the
// stored name cannot collide across listings or escape the upload directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "image"
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "image"
	}
	return strings.Join(fields, "_")
}
