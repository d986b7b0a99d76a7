// Package router builds the Gin route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "marketplace_backend/internal/feature/auth/transport/handler"
	assisthandler "marketplace_backend/internal/feature/listingassist/transport/handler"
	listingshandler "marketplace_backend/internal/feature/listings/transport/handler"
	platformhandler "marketplace_backend/internal/platform/http/handler"
	jwtmw "marketplace_backend/internal/platform/jwt"
)

// NewRouter wires every endpoint. Static vehicle paths (brands, my-bikes,
// assist) are registered alongside the :id wildcard; Gin resolves static
// segments before the parameter. assist may be nil when the detection
// backends are not configured; its routes are then not registered.
func NewRouter(jwtSecret string, auth *authhandler.AuthHandler,
	listings *listingshandler.ListingsHandler, assist *assisthandler.AssistHandler) *gin.Engine {
	r := gin.Default()

	// The original frontend is served from another origin.
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", platformhandler.Health)

	authRequired := jwtmw.AuthRequired(jwtSecret)

	// Account endpoints
	r.POST("/auth/register", auth.Register)
	r.POST("/auth/login", auth.Login)
	r.GET("/auth/me", authRequired, auth.Me)

	vehicles := r.Group("/vehicles")
	{
		// Public browsing
		vehicles.GET("", listings.List)
		vehicles.GET("/brands/list", listings.Brands)
		vehicles.GET("/:id", listings.Get)

		// Seller endpoints, token required
		vehicles.GET("/my-bikes", authRequired, listings.MyListings)
		vehicles.POST("", authRequired, listings.Create)
		vehicles.PUT("/:id", authRequired, listings.Update)
		vehicles.DELETE("/:id", authRequired, listings.Delete)
		vehicles.POST("/:id/upload-images", authRequired, listings.UploadImages)

		if assist != nil {
			vehicles.POST("/assist/detect-brand", authRequired, assist.DetectBrand)
			vehicles.POST("/assist/describe", authRequired, assist.Describe)
		}
	}

	return r
}
