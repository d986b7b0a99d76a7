// Package di provides dependency injection factories for application components.
package di

import (
	"context"
	"log/slog"

	"marketplace_backend/internal/config"
	"marketplace_backend/internal/feature/listings/usecase"
	"marketplace_backend/internal/platform/storage"
)

// NewBlobStore creates the configured blob store backend. It returns the
// MinIO-backed store when configured, falling back to local disk otherwise.
// The second return value is the local store when one was created, so the
// caller can mount its directory under /static.
func NewBlobStore(ctx context.Context, cfg *config.Config) (usecase.BlobStore, *storage.LocalStore, error) {
	if cfg.StorageBackend == "minio" && cfg.MinioEndpoint != "" {
		store, err := storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			slog.Warn("MinIO unavailable, falling back to local storage", "error", err)
		} else {
			return store, nil, nil
		}
	}

	local, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return nil, nil, err
	}
	return local, local, nil
}
