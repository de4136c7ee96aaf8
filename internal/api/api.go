package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/forkful/forkful-backend/config"
	"github.com/forkful/forkful-backend/internal/middleware"
	"github.com/forkful/forkful-backend/internal/service"
	"github.com/forkful/forkful-backend/internal/store"
)

// HealthCheck returns the health status of the API.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Forkful API is running",
	})
}

// RegisterRoutes builds the services over the given store and mounts every
// endpoint on the router. redisClient and imageService may be nil; the
// corresponding features degrade instead of blocking startup.
func RegisterRoutes(router *gin.Engine, st store.Store, redisClient *redis.Client, imageService service.IImageService, cfg *config.Config) {
	router.GET("/health", HealthCheck)

	authService := service.NewAuthService(st.Users(), cfg.JWTSecret, cfg.BcryptCost)
	cuisineService := service.NewTermService(st.Cuisines(), "cuisine")
	tagService := service.NewTermService(st.Tags(), "tag")
	recipeService := service.NewRecipeService(st, service.RecipePolicy{
		ResolveOnRead: cfg.RecipeResolveOnRead,
		OwnerOnly:     cfg.RecipeOwnerOnly,
	})

	var writeLimiter *middleware.RateLimiter
	if redisClient != nil {
		writeLimiter = middleware.NewRecipeWriteRateLimiter(redisClient)
	}

	root := router.Group("")
	NewAuthHandler(authService).RegisterRoutes(root)
	NewTermHandler(cuisineService).RegisterRoutes(root, "/cuisines")
	NewTermHandler(tagService).RegisterRoutes(root, "/tags")
	NewRecipeHandler(recipeService, authService, writeLimiter).RegisterRoutes(root)
	NewImageHandler(imageService, authService).RegisterRoutes(root)
}
