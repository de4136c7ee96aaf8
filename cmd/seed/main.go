package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful-backend/config"
	"github.com/forkful/forkful-backend/internal/database"
	"github.com/forkful/forkful-backend/internal/service"
	"github.com/forkful/forkful-backend/internal/store"
	"github.com/forkful/forkful-backend/internal/types"
)

var cuisineNames = []string{
	"Italian", "French", "Japanese", "Mexican", "Indian", "Thai", "Greek",
}

var tagNames = []string{
	"pasta", "comfort food", "vegetarian", "quick", "spicy", "dessert", "seafood",
}

type seedRecipe struct {
	name        string
	duration    string
	difficulty  string
	cuisine     string
	tags        []string
	ingredients []string
}

var seedRecipes = []seedRecipe{
	{
		name:        "Spaghetti Carbonara",
		duration:    "30 minutes",
		difficulty:  "Intermediate",
		cuisine:     "Italian",
		tags:        []string{"pasta", "comfort food"},
		ingredients: []string{"spaghetti", "guanciale", "eggs", "pecorino", "black pepper"},
	},
	{
		name:        "Ratatouille",
		duration:    "1 hour 15 minutes",
		difficulty:  "Intermediate",
		cuisine:     "French",
		tags:        []string{"vegetarian"},
		ingredients: []string{"eggplant", "zucchini", "bell pepper", "tomato", "onion", "thyme"},
	},
	{
		name:        "Green Curry",
		duration:    "45 minutes",
		difficulty:  "Beginner",
		cuisine:     "Thai",
		tags:        []string{"spicy", "quick"},
		ingredients: []string{"green curry paste", "coconut milk", "chicken", "thai basil", "fish sauce"},
	},
	{
		name:        "Fish Tacos",
		duration:    "25 minutes",
		difficulty:  "Beginner",
		cuisine:     "Mexican",
		tags:        []string{"seafood", "quick"},
		ingredients: []string{"white fish", "corn tortillas", "cabbage", "lime", "crema"},
	},
}

// Seeds a demo user, the base taxonomy and a handful of recipes through the
// same service layer the API uses, so snapshots come out identical to real
// writes. Safe to run against an empty database only; it does not dedupe.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	st := store.NewMongo(client.Database(cfg.MongoDB))

	authService := service.NewAuthService(st.Users(), cfg.JWTSecret, cfg.BcryptCost)
	email := fmt.Sprintf("demo_%d@example.com", time.Now().Unix())
	if _, err := authService.Register(ctx, email, "demo-password"); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	demoUser, err := st.Users().FindByEmail(ctx, email)
	if err != nil {
		log.Fatalf("Failed to load demo user: %v", err)
	}
	log.Printf("Created demo user %s", email)

	cuisineService := service.NewTermService(st.Cuisines(), "cuisine")
	cuisineIDs := make(map[string]primitive.ObjectID, len(cuisineNames))
	for _, name := range cuisineNames {
		term, err := cuisineService.Create(ctx, name)
		if err != nil {
			log.Fatalf("Failed to create cuisine %q: %v", name, err)
		}
		cuisineIDs[name] = term.ID
	}
	log.Printf("Seeded %d cuisines", len(cuisineNames))

	tagService := service.NewTermService(st.Tags(), "tag")
	tagIDs := make(map[string]primitive.ObjectID, len(tagNames))
	for _, name := range tagNames {
		term, err := tagService.Create(ctx, name)
		if err != nil {
			log.Fatalf("Failed to create tag %q: %v", name, err)
		}
		tagIDs[name] = term.ID
	}
	log.Printf("Seeded %d tags", len(tagNames))

	recipeService := service.NewRecipeService(st, service.RecipePolicy{
		ResolveOnRead: cfg.RecipeResolveOnRead,
		OwnerOnly:     cfg.RecipeOwnerOnly,
	})
	for _, r := range seedRecipes {
		req := &types.RecipeRequest{
			Name:            r.name,
			CookingDuration: r.duration,
			Difficulty:      r.difficulty,
			Cuisine:         cuisineIDs[r.cuisine].Hex(),
			Ingredients:     r.ingredients,
			Tags:            make([]string, 0, len(r.tags)),
		}
		for _, tag := range r.tags {
			req.Tags = append(req.Tags, tagIDs[tag].Hex())
		}

		recipe, err := recipeService.Create(ctx, req, demoUser.ID)
		if err != nil {
			log.Fatalf("Failed to create recipe %q: %v", r.name, err)
		}
		log.Printf("Created recipe %s (%s)", recipe.Name, recipe.ID.Hex())
	}

	log.Printf("Seeded %d recipes", len(seedRecipes))
}
