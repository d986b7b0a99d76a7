// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"marketplace_backend/internal/feature/listings/usecase"
)

// CachingBrandRepository decorates a BrandRepository with Redis caching.
// The distinct-brands query backs a filter menu, so serving a value up to
// the TTL stale is acceptable; every other listing read still hits the
// database. Caching is best effort: with a nil client the decorator is a
// pass-through.
type CachingBrandRepository struct {
	inner usecase.BrandRepository
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

// NewCachingBrandRepository decorates a BrandRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If key is empty, it uses "brands".
func NewCachingBrandRepository(rdb *redis.Client, ttl time.Duration, inner usecase.BrandRepository, key string) *CachingBrandRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if key == "" {
		key = "brands"
	}
	return &CachingBrandRepository{inner: inner, rdb: rdb, ttl: ttl, key: key}
}

// ListBrands checks the cache first and falls back to the database.
func (c *CachingBrandRepository) ListBrands(ctx context.Context) ([]string, error) {
	if c.rdb == nil {
		return c.inner.ListBrands(ctx)
	}

	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		var out []string
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Drop corrupted cache entries
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	out, err := c.inner.ListBrands(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, c.key, b, c.ttl).Err()
	}
	return out, nil
}
