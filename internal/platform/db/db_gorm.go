// Package db opens the application's postgres database via GORM.
package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"marketplace_backend/internal/config"
	authentity "marketplace_backend/internal/feature/auth/domain/entity"
	listingsentity "marketplace_backend/internal/feature/listings/domain/entity"
)

// OpenDB connects to postgres, retrying for up to a minute while the
// database comes up. TranslateError lets adapters match driver-agnostic
// errors like gorm.ErrDuplicatedKey.
func OpenDB(cfg *config.Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&listingsentity.Vehicle{},
			&listingsentity.VehicleImage{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
