package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful-backend/internal/middleware"
	"github.com/forkful/forkful-backend/internal/service"
	"github.com/forkful/forkful-backend/internal/types"
)

// RecipeHandler serves recipe CRUD. Reads are public; writes run behind the
// auth gate and, when Redis is available, a per-user rate limit.
type RecipeHandler struct {
	recipeService service.IRecipeService
	authService   middleware.TokenValidator
	writeLimiter  *middleware.RateLimiter
}

// NewRecipeHandler creates a new RecipeHandler. writeLimiter may be nil.
func NewRecipeHandler(recipeService service.IRecipeService, authService middleware.TokenValidator, writeLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		authService:   authService,
		writeLimiter:  writeLimiter,
	}
}

// RegisterRoutes mounts the recipe endpoints.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	guards := []gin.HandlerFunc{middleware.AuthMiddleware(h.authService)}
	if h.writeLimiter != nil {
		guards = append(guards, h.writeLimiter.RateLimitMiddleware())
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/:id", h.Get)
		recipes.POST("", append(guards, h.Create)...)
		recipes.PUT("/:id", append(guards, h.Update)...)
		recipes.DELETE("/:id", append(guards, h.Delete)...)
	}
}

func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipeService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) Get(c *gin.Context) {
	recipe, err := h.recipeService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	if err := h.recipeService.Update(c.Request.Context(), c.Param("id"), &req, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe updated successfully", "id": c.Param("id")})
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted successfully", "id": c.Param("id")})
}

// authenticatedUser pulls the subject id the auth middleware stored. A miss
// means the route was wired without the gate; treat it as unauthenticated.
func authenticatedUser(c *gin.Context) (primitive.ObjectID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return primitive.NilObjectID, false
	}
	userID, ok := val.(primitive.ObjectID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return primitive.NilObjectID, false
	}
	return userID, true
}
