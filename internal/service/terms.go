package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful-backend/internal/models"
	"github.com/forkful/forkful-backend/internal/store"
)

// TermService implements CRUD for one taxonomy collection. Cuisines and tags
// have identical contracts, so the same service runs twice against different
// collections; resource is only used in not-found messages.
type TermService struct {
	terms    store.TermStore
	resource string
}

// NewTermService creates a TermService over the given collection.
func NewTermService(terms store.TermStore, resource string) *TermService {
	return &TermService{terms: terms, resource: resource}
}

func (s *TermService) notFound() error {
	return fmt.Errorf("%s %w", s.resource, ErrNotFound)
}

// List returns every term in the collection.
func (s *TermService) List(ctx context.Context) ([]models.Term, error) {
	return s.terms.List(ctx)
}

// Get returns one term by its 24-hex id.
func (s *TermService) Get(ctx context.Context, id string) (*models.Term, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	term, err := s.terms.Get(ctx, oid)
	if errors.Is(err, store.ErrNotFound) {
		return nil, s.notFound()
	}
	return term, err
}

// Create inserts a new term. Names are not unique; duplicates are allowed.
func (s *TermService) Create(ctx context.Context, name string) (*models.Term, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	term := &models.Term{Name: name}
	id, err := s.terms.Insert(ctx, term)
	if err != nil {
		return nil, err
	}
	term.ID = id
	return term, nil
}

// Update renames a term and returns the updated document.
func (s *TermService) Update(ctx context.Context, id, name string) (*models.Term, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	term, err := s.terms.Update(ctx, oid, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, s.notFound()
	}
	return term, err
}

// Delete removes a term. Recipes holding a snapshot of it keep the snapshot.
func (s *TermService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if err := s.terms.Delete(ctx, oid); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s.notFound()
		}
		return err
	}
	return nil
}
