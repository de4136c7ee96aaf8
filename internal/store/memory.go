package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful-backend/internal/models"
)

// Memory is an in-memory Store used as a test double. It mirrors the Mongo
// implementation's observable behavior, including collection-order results
// from List and GetMany.
type Memory struct {
	mu      sync.RWMutex
	users   []models.User
	terms   map[string][]models.Term
	recipes []models.Recipe
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		terms: map[string][]models.Term{
			cuisineCollection: {},
			tagsCollection:    {},
		},
	}
}

func (m *Memory) Users() UserStore     { return &memoryUsers{m} }
func (m *Memory) Cuisines() TermStore  { return &memoryTerms{m: m, collection: cuisineCollection} }
func (m *Memory) Tags() TermStore      { return &memoryTerms{m: m, collection: tagsCollection} }
func (m *Memory) Recipes() RecipeStore { return &memoryRecipes{m} }

type memoryUsers struct {
	m *Memory
}

func (s *memoryUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for i := range s.m.users {
		if s.m.users[i].Email == email {
			user := s.m.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for i := range s.m.users {
		if s.m.users[i].ID == id {
			user := s.m.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryUsers) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	stored := *user
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	s.m.users = append(s.m.users, stored)
	return stored.ID, nil
}

type memoryTerms struct {
	m          *Memory
	collection string
}

func (s *memoryTerms) List(ctx context.Context) ([]models.Term, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]models.Term, len(s.m.terms[s.collection]))
	copy(out, s.m.terms[s.collection])
	return out, nil
}

func (s *memoryTerms) Get(ctx context.Context, id primitive.ObjectID) (*models.Term, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for _, term := range s.m.terms[s.collection] {
		if term.ID == id {
			t := term
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryTerms) GetMany(ctx context.Context, ids []primitive.ObjectID) ([]models.Term, error) {
	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := []models.Term{}
	for _, term := range s.m.terms[s.collection] {
		if wanted[term.ID] {
			out = append(out, term)
		}
	}
	return out, nil
}

func (s *memoryTerms) Insert(ctx context.Context, term *models.Term) (primitive.ObjectID, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	stored := *term
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	s.m.terms[s.collection] = append(s.m.terms[s.collection], stored)
	return stored.ID, nil
}

func (s *memoryTerms) Update(ctx context.Context, id primitive.ObjectID, name string) (*models.Term, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	terms := s.m.terms[s.collection]
	for i := range terms {
		if terms[i].ID == id {
			terms[i].Name = name
			t := terms[i]
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryTerms) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	terms := s.m.terms[s.collection]
	for i := range terms {
		if terms[i].ID == id {
			s.m.terms[s.collection] = append(terms[:i], terms[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type memoryRecipes struct {
	m *Memory
}

func (s *memoryRecipes) List(ctx context.Context) ([]models.Recipe, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]models.Recipe, len(s.m.recipes))
	copy(out, s.m.recipes)
	return out, nil
}

func (s *memoryRecipes) Get(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for i := range s.m.recipes {
		if s.m.recipes[i].ID == id {
			r := s.m.recipes[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryRecipes) Insert(ctx context.Context, recipe *models.Recipe) (primitive.ObjectID, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	stored := *recipe
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	s.m.recipes = append(s.m.recipes, stored)
	return stored.ID, nil
}

func (s *memoryRecipes) Replace(ctx context.Context, id primitive.ObjectID, recipe *models.Recipe) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i := range s.m.recipes {
		if s.m.recipes[i].ID == id {
			stored := *recipe
			stored.ID = id
			if stored.UserID.IsZero() {
				stored.UserID = s.m.recipes[i].UserID
			}
			s.m.recipes[i] = stored
			return nil
		}
	}
	return ErrNotFound
}

func (s *memoryRecipes) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i := range s.m.recipes {
		if s.m.recipes[i].ID == id {
			s.m.recipes = append(s.m.recipes[:i], s.m.recipes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
