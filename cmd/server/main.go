package main

import (
	"context"
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"marketplace_backend/internal/app/di"
	"marketplace_backend/internal/app/router"
	"marketplace_backend/internal/config"
	authadapters "marketplace_backend/internal/feature/auth/adapters"
	authhandler "marketplace_backend/internal/feature/auth/transport/handler"
	authusecase "marketplace_backend/internal/feature/auth/usecase"
	"marketplace_backend/internal/feature/listingassist/adapters/gemini"
	"marketplace_backend/internal/feature/listingassist/adapters/vision"
	assisthandler "marketplace_backend/internal/feature/listingassist/transport/handler"
	assistusecase "marketplace_backend/internal/feature/listingassist/usecase"
	listingsadapters "marketplace_backend/internal/feature/listings/adapters"
	listingshandler "marketplace_backend/internal/feature/listings/transport/handler"
	listingsusecase "marketplace_backend/internal/feature/listings/usecase"
	"marketplace_backend/internal/platform/cache"
	infradb "marketplace_backend/internal/platform/db"
	jwtmw "marketplace_backend/internal/platform/jwt"
	infraredis "marketplace_backend/internal/platform/redis"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB(cfg)

	// Redis (optional, brand-menu cache only)
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := infraredis.NewRedisClient(addr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Blob store (minio or local disk)
	blobs, localStore, err := di.NewBlobStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := authadapters.NewUserRepository(db)
	vehicleRepo := listingsadapters.NewVehicleRepository(db)
	ownerDir := listingsadapters.NewOwnerDirectory(db)
	brandRepo := cache.NewCachingBrandRepository(rdb, 0, vehicleRepo, "brands")

	// Usecases
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenExpiry)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	listingsUC := listingsusecase.NewListingsUsecase(vehicleRepo, brandRepo, ownerDir, blobs)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	listingsH := listingshandler.NewListingsHandler(listingsUC)

	// Seller assist is optional: it needs Google Cloud credentials.
	var assistH *assisthandler.AssistHandler
	detector, derr := vision.NewVisionBrandDetector(ctx)
	writer, werr := gemini.NewGeminiWriter(ctx)
	if derr != nil || werr != nil {
		slog.Warn("seller assist disabled", "vision_error", derr, "gemini_error", werr)
	} else {
		defer func() {
			if err := detector.Close(); err != nil {
				slog.Warn("failed to close vision client", "error", err)
			}
		}()
		assistH = assisthandler.NewAssistHandler(assistusecase.NewAssistUsecase(detector, writer))
	}

	r := router.NewRouter(cfg.JWTSecret, authH, listingsH, assistH)

	// Serve local uploads; with the MinIO backend the object store serves
	// them itself.
	if localStore != nil {
		r.Static("/static/uploads/vehicles", localStore.Dir())
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
