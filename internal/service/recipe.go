package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful-backend/internal/models"
	"github.com/forkful/forkful-backend/internal/store"
	"github.com/forkful/forkful-backend/internal/types"
)

// RecipePolicy holds the configurable consistency and authorization choices.
type RecipePolicy struct {
	// ResolveOnRead re-resolves cuisine/tag names against the current
	// collections on every read. When false, reads return the write-time
	// snapshots untouched.
	ResolveOnRead bool
	// OwnerOnly restricts update/delete to the recipe's creator. When false,
	// any authenticated user may modify any recipe.
	OwnerOnly bool
}

// RecipeService implements the recipe read/write contract: referential
// validation and snapshot denormalization at write time, best-effort name
// resolution at read time.
type RecipeService struct {
	recipes  store.RecipeStore
	cuisines store.TermStore
	tags     store.TermStore
	policy   RecipePolicy
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(st store.Store, policy RecipePolicy) *RecipeService {
	return &RecipeService{
		recipes:  st.Recipes(),
		cuisines: st.Cuisines(),
		tags:     st.Tags(),
		policy:   policy,
	}
}

func errRecipeNotFound() error {
	return fmt.Errorf("recipe %w", ErrNotFound)
}

// List returns all recipes. With ResolveOnRead set, each cuisine/tag name is
// overridden with the current collection value where the id still resolves;
// dangling references keep their stored snapshot. The two full collection
// scans per request are deliberate, sized for this domain.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	if !s.policy.ResolveOnRead || len(recipes) == 0 {
		return recipes, nil
	}

	cuisineNames, err := nameIndex(ctx, s.cuisines)
	if err != nil {
		return nil, err
	}
	tagNames, err := nameIndex(ctx, s.tags)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		resolveRefs(&recipes[i], cuisineNames, tagNames)
	}
	return recipes, nil
}

// Get returns one recipe by its 24-hex id, resolving names like List.
func (s *RecipeService) Get(ctx context.Context, id string) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	recipe, err := s.recipes.Get(ctx, oid)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errRecipeNotFound()
	}
	if err != nil {
		return nil, err
	}

	if s.policy.ResolveOnRead {
		cuisineNames, err := nameIndex(ctx, s.cuisines)
		if err != nil {
			return nil, err
		}
		tagNames, err := nameIndex(ctx, s.tags)
		if err != nil {
			return nil, err
		}
		resolveRefs(recipe, cuisineNames, tagNames)
	}
	return recipe, nil
}

// Create validates the payload, resolves the cuisine and every tag id against
// the current collections, and persists the denormalized snapshot with the
// authenticated subject as creator.
func (s *RecipeService) Create(ctx context.Context, req *types.RecipeRequest, userID primitive.ObjectID) (*models.Recipe, error) {
	if err := validateRecipeRequest(req); err != nil {
		return nil, err
	}
	cuisine, tags, err := s.resolveWriteRefs(ctx, req.Cuisine, req.Tags)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Name:            req.Name,
		CookingDuration: req.CookingDuration,
		Difficulty:      req.Difficulty,
		Cuisine:         cuisine,
		Tags:            tags,
		Ingredients:     req.Ingredients,
		ImageURL:        req.ImageURL,
		Description:     req.Description,
		Steps:           req.Steps,
		UserID:          userID,
	}
	id, err := s.recipes.Insert(ctx, recipe)
	if err != nil {
		return nil, err
	}
	recipe.ID = id
	return recipe, nil
}

// Update re-validates and re-resolves exactly like Create and replaces the
// denormalized fields wholesale; it never patches. The creator recorded at
// insert time is preserved. Not-found is decided by whether the id matched a
// document, not by whether anything changed.
func (s *RecipeService) Update(ctx context.Context, id string, req *types.RecipeRequest, userID primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if err := validateRecipeRequest(req); err != nil {
		return err
	}
	if err := s.checkOwnership(ctx, oid, userID); err != nil {
		return err
	}
	cuisine, tags, err := s.resolveWriteRefs(ctx, req.Cuisine, req.Tags)
	if err != nil {
		return err
	}

	recipe := &models.Recipe{
		Name:            req.Name,
		CookingDuration: req.CookingDuration,
		Difficulty:      req.Difficulty,
		Cuisine:         cuisine,
		Tags:            tags,
		Ingredients:     req.Ingredients,
		ImageURL:        req.ImageURL,
		Description:     req.Description,
		Steps:           req.Steps,
	}
	if err := s.recipes.Replace(ctx, oid, recipe); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errRecipeNotFound()
		}
		return err
	}
	return nil
}

// Delete removes a recipe.
func (s *RecipeService) Delete(ctx context.Context, id string, userID primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if err := s.checkOwnership(ctx, oid, userID); err != nil {
		return err
	}
	if err := s.recipes.Delete(ctx, oid); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errRecipeNotFound()
		}
		return err
	}
	return nil
}

func (s *RecipeService) checkOwnership(ctx context.Context, id, userID primitive.ObjectID) error {
	if !s.policy.OwnerOnly {
		return nil
	}
	recipe, err := s.recipes.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return errRecipeNotFound()
	}
	if err != nil {
		return err
	}
	if recipe.UserID != userID {
		return ErrForbidden
	}
	return nil
}

// resolveWriteRefs turns raw term ids into snapshots. The cuisine must
// resolve, and the number of resolved tags must equal the number supplied so
// no invalid tag is silently dropped. There is no transaction around the
// lookups and the following write; a concurrent term deletion in that window
// is an accepted race.
func (s *RecipeService) resolveWriteRefs(ctx context.Context, cuisineID string, tagIDs []string) (models.EntityRef, []models.EntityRef, error) {
	cuisineOID, err := primitive.ObjectIDFromHex(cuisineID)
	if err != nil {
		return models.EntityRef{}, nil, ErrInvalidCuisine
	}
	cuisine, err := s.cuisines.Get(ctx, cuisineOID)
	if errors.Is(err, store.ErrNotFound) {
		return models.EntityRef{}, nil, ErrInvalidCuisine
	}
	if err != nil {
		return models.EntityRef{}, nil, err
	}

	oids := make([]primitive.ObjectID, 0, len(tagIDs))
	for _, raw := range tagIDs {
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return models.EntityRef{}, nil, ErrInvalidTags
		}
		oids = append(oids, oid)
	}
	terms, err := s.tags.GetMany(ctx, oids)
	if err != nil {
		return models.EntityRef{}, nil, err
	}
	if len(terms) != len(tagIDs) {
		return models.EntityRef{}, nil, ErrInvalidTags
	}

	tags := make([]models.EntityRef, len(terms))
	for i, term := range terms {
		tags[i] = models.EntityRef{ID: term.ID, Name: term.Name}
	}
	return models.EntityRef{ID: cuisine.ID, Name: cuisine.Name}, tags, nil
}

func validateRecipeRequest(req *types.RecipeRequest) error {
	if req.Name == "" || req.CookingDuration == "" || req.Difficulty == "" ||
		req.Cuisine == "" || req.Tags == nil || len(req.Ingredients) == 0 {
		return ErrMissingFields
	}
	return nil
}

func nameIndex(ctx context.Context, terms store.TermStore) (map[primitive.ObjectID]string, error) {
	all, err := terms.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[primitive.ObjectID]string, len(all))
	for _, term := range all {
		index[term.ID] = term.Name
	}
	return index, nil
}

func resolveRefs(r *models.Recipe, cuisines, tags map[primitive.ObjectID]string) {
	if name, ok := cuisines[r.Cuisine.ID]; ok {
		r.Cuisine.Name = name
	}
	for i := range r.Tags {
		if name, ok := tags[r.Tags[i].ID]; ok {
			r.Tags[i].Name = name
		}
	}
}
