// Package store is the document-store access layer. Services hold a Store
// handle passed in at construction instead of reaching for a process-wide
// singleton, which keeps test doubles and multiple logical stores possible.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful-backend/internal/models"
)

// ErrNotFound is returned when a lookup, update or delete matches no document.
var ErrNotFound = errors.New("document not found")

// UserStore provides access to the users collection.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
}

// TermStore provides CRUD over one taxonomy collection (cuisine or tags).
type TermStore interface {
	List(ctx context.Context) ([]models.Term, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Term, error)
	// GetMany returns the terms whose ids appear in ids, in collection order.
	// Ids that resolve to nothing are silently absent from the result; callers
	// that need all-or-nothing semantics compare lengths.
	GetMany(ctx context.Context, ids []primitive.ObjectID) ([]models.Term, error)
	Insert(ctx context.Context, term *models.Term) (primitive.ObjectID, error)
	// Update renames a term and returns the post-update document.
	Update(ctx context.Context, id primitive.ObjectID, name string) (*models.Term, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// RecipeStore provides CRUD over the recipes collection.
type RecipeStore interface {
	List(ctx context.Context) ([]models.Recipe, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error)
	Insert(ctx context.Context, recipe *models.Recipe) (primitive.ObjectID, error)
	// Replace overwrites the recipe's denormalized fields wholesale. The
	// recipe's own ID and UserID fields are left untouched when zero.
	// Returns ErrNotFound when id matches no document, regardless of whether
	// the write would have changed anything.
	Replace(ctx context.Context, id primitive.ObjectID, recipe *models.Recipe) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Store bundles the per-collection stores behind a single handle.
type Store interface {
	Users() UserStore
	Cuisines() TermStore
	Tags() TermStore
	Recipes() RecipeStore
}
