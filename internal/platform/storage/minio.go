package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore is the object-store blob backend. It satisfies the same
// interface as LocalStore, so the listing lifecycle is unaware of which one
// is wired in.
type MinioStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// MinioConfig carries the object-store connection settings.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewMinioStore connects to the object store and ensures the bucket exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", cfg.Bucket, err)
		}
		slog.Info("created upload bucket", "bucket", cfg.Bucket)
	}

	return &MinioStore{client: client, bucket: cfg.Bucket, endpoint: cfg.Endpoint, useSSL: cfg.UseSSL}, nil
}

// Put uploads the content under name and returns name as the stored reference.
func (s *MinioStore) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload object %q: %w", name, err)
	}
	return name, nil
}

// Delete removes a stored object.
func (s *MinioStore) Delete(ctx context.Context, ref string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, ref, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", ref, err)
	}
	return nil
}

// PublicURL composes the object's public address. The bucket must carry a
// public-read policy for these URLs to resolve.
func (s *MinioStore) PublicURL(ref string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, ref)
}
