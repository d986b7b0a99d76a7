// Package config holds the immutable process configuration.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is parsed once at startup and passed by reference to every component
// that needs it. It is never mutated after Load returns.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// PublicBaseURL is the externally visible base URL used to compose
	// image URLs for locally stored uploads.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	// JWTSecret signs and verifies access tokens. Required in production.
	JWTSecret string `env:"JWT_SECRET" envDefault:""`

	// TokenExpiry is the lifetime of issued access tokens.
	TokenExpiry time.Duration `env:"TOKEN_EXPIRY" envDefault:"24h"`

	// Database connection settings.
	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string `env:"DB_PORT" envDefault:"5432"`
	DBUser        string `env:"DB_USER" envDefault:"postgres"`
	DBPassword    string `env:"DB_PASSWORD" envDefault:""`
	DBName        string `env:"DB_NAME" envDefault:"marketplace"`
	DBSSLMode     string `env:"DB_SSLMODE" envDefault:"disable"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"false"`

	// Redis settings for the brand-menu cache. The server runs without
	// Redis when the host is empty or unreachable.
	RedisHost     string `env:"REDIS_HOST" envDefault:""`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`

	// Blob storage. Backend is either "local" or "minio".
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"local"`
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"static/uploads/vehicles"`

	// MinIO settings, used only when StorageBackend is "minio".
	MinioEndpoint  string `env:"MINIO_ENDPOINT" envDefault:""`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY" envDefault:""`
	MinioSecretKey string `env:"MINIO_SECRET_KEY" envDefault:""`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"vehicle-uploads"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// RedisAddr returns the redis address, or an empty string when Redis is not
// configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}
