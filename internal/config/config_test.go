package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiry)
	assert.Equal(t, "local", cfg.StorageBackend)
	assert.Equal(t, "static/uploads/vehicles", cfg.UploadDir)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_EXPIRY", "1h")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "bikes")
	t.Setenv("REDIS_HOST", "cache.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, time.Hour, cfg.TokenExpiry)
	assert.Contains(t, cfg.DSN(), "host=db.internal")
	assert.Contains(t, cfg.DSN(), "dbname=bikes")
	assert.Equal(t, "cache.internal:6379", cfg.RedisAddr())
}

func TestRedisAddr_EmptyWhenUnset(t *testing.T) {
	cfg := &Config{RedisHost: "", RedisPort: "6379"}
	assert.Empty(t, cfg.RedisAddr())
}
