package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forkful/forkful-backend/internal/models"
)

const (
	usersCollection   = "users"
	cuisineCollection = "cuisine"
	tagsCollection    = "tags"
	recipesCollection = "recipes"
)

// Mongo is the MongoDB-backed Store.
type Mongo struct {
	db *mongo.Database
}

// NewMongo wraps a connected database handle.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) Users() UserStore {
	return &mongoUsers{c: m.db.Collection(usersCollection)}
}

func (m *Mongo) Cuisines() TermStore {
	return &mongoTerms{c: m.db.Collection(cuisineCollection)}
}

func (m *Mongo) Tags() TermStore {
	return &mongoTerms{c: m.db.Collection(tagsCollection)}
}

func (m *Mongo) Recipes() RecipeStore {
	return &mongoRecipes{c: m.db.Collection(recipesCollection)}
}

type mongoUsers struct {
	c *mongo.Collection
}

func (s *mongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUsers) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	res, err := s.c.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

type mongoTerms struct {
	c *mongo.Collection
}

func (s *mongoTerms) List(ctx context.Context) ([]models.Term, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	terms := []models.Term{}
	if err := cur.All(ctx, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

func (s *mongoTerms) Get(ctx context.Context, id primitive.ObjectID) (*models.Term, error) {
	var term models.Term
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&term)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &term, nil
}

func (s *mongoTerms) GetMany(ctx context.Context, ids []primitive.ObjectID) ([]models.Term, error) {
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	terms := []models.Term{}
	if err := cur.All(ctx, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

func (s *mongoTerms) Insert(ctx context.Context, term *models.Term) (primitive.ObjectID, error) {
	res, err := s.c.InsertOne(ctx, term)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoTerms) Update(ctx context.Context, id primitive.ObjectID, name string) (*models.Term, error) {
	var term models.Term
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": name}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&term)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &term, nil
}

func (s *mongoTerms) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoRecipes struct {
	c *mongo.Collection
}

func (s *mongoRecipes) List(ctx context.Context) ([]models.Recipe, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	recipes := []models.Recipe{}
	if err := cur.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *mongoRecipes) Get(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *mongoRecipes) Insert(ctx context.Context, recipe *models.Recipe) (primitive.ObjectID, error) {
	res, err := s.c.InsertOne(ctx, recipe)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoRecipes) Replace(ctx context.Context, id primitive.ObjectID, recipe *models.Recipe) error {
	// The $set document is built explicitly rather than marshaling the struct:
	// the optional fields carry omitempty, and marshaling would drop cleared
	// values from the update, leaving stale ones behind. Every replaceable key
	// is always written; _id and user_id are never touched, so the creator
	// recorded at insert time is preserved.
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"name":             recipe.Name,
		"cooking_duration": recipe.CookingDuration,
		"difficulty":       recipe.Difficulty,
		"cuisine":          recipe.Cuisine,
		"tags":             recipe.Tags,
		"ingredients":      recipe.Ingredients,
		"image_url":        recipe.ImageURL,
		"description":      recipe.Description,
		"steps":            recipe.Steps,
	}})
	if err != nil {
		return err
	}
	// Matched count, not modified count: a no-op rewrite of an existing
	// recipe is a success, only a missing id is not found.
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoRecipes) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
