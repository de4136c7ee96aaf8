package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful-backend/internal/models"
	"github.com/forkful/forkful-backend/internal/types"
)

// IAuthService defines the interface for authentication operations.
type IAuthService interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
}

// ITermService defines the interface for cuisine/tag operations.
type ITermService interface {
	List(ctx context.Context) ([]models.Term, error)
	Get(ctx context.Context, id string) (*models.Term, error)
	Create(ctx context.Context, name string) (*models.Term, error)
	Update(ctx context.Context, id, name string) (*models.Term, error)
	Delete(ctx context.Context, id string) error
}

// IRecipeService defines the interface for recipe operations.
type IRecipeService interface {
	List(ctx context.Context) ([]models.Recipe, error)
	Get(ctx context.Context, id string) (*models.Recipe, error)
	Create(ctx context.Context, req *types.RecipeRequest, userID primitive.ObjectID) (*models.Recipe, error)
	Update(ctx context.Context, id string, req *types.RecipeRequest, userID primitive.ObjectID) error
	Delete(ctx context.Context, id string, userID primitive.ObjectID) error
}

// IImageService defines the interface for image storage.
type IImageService interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}
