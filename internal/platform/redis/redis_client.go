// Package redis provides the optional Redis client used by the brand-menu cache.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis at addr and verifies the connection.
// The server runs without caching when this fails.
func NewRedisClient(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
