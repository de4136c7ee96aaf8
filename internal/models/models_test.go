package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEntityRefDecodesSnapshot(t *testing.T) {
	id := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.M{
		"cuisine": bson.M{"_id": id, "name": "Italian"},
	})
	require.NoError(t, err)

	var doc struct {
		Cuisine EntityRef `bson:"cuisine"`
	}
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, id, doc.Cuisine.ID)
	assert.Equal(t, "Italian", doc.Cuisine.Name)
}

func TestEntityRefDecodesLegacyObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.M{"cuisine": id})
	require.NoError(t, err)

	var doc struct {
		Cuisine EntityRef `bson:"cuisine"`
	}
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, id, doc.Cuisine.ID)
	assert.Empty(t, doc.Cuisine.Name)
}

func TestEntityRefDecodesMixedTagArray(t *testing.T) {
	legacy := primitive.NewObjectID()
	snapshot := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.M{
		"tags": bson.A{
			legacy,
			bson.M{"_id": snapshot, "name": "pasta"},
		},
	})
	require.NoError(t, err)

	var doc struct {
		Tags []EntityRef `bson:"tags"`
	}
	require.NoError(t, bson.Unmarshal(raw, &doc))
	require.Len(t, doc.Tags, 2)
	assert.Equal(t, EntityRef{ID: legacy}, doc.Tags[0])
	assert.Equal(t, EntityRef{ID: snapshot, Name: "pasta"}, doc.Tags[1])
}

func TestEntityRefRejectsOtherTypes(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"cuisine": "just a string"})
	require.NoError(t, err)

	var doc struct {
		Cuisine EntityRef `bson:"cuisine"`
	}
	assert.Error(t, bson.Unmarshal(raw, &doc))
}

func TestRecipeRoundTripKeepsSnapshots(t *testing.T) {
	recipe := Recipe{
		ID:              primitive.NewObjectID(),
		Name:            "Spaghetti",
		CookingDuration: "45 minutes",
		Difficulty:      "Beginner",
		Cuisine:         EntityRef{ID: primitive.NewObjectID(), Name: "Italian"},
		Tags:            []EntityRef{{ID: primitive.NewObjectID(), Name: "pasta"}},
		Ingredients:     []string{"pasta", "tomato sauce"},
		UserID:          primitive.NewObjectID(),
	}

	raw, err := bson.Marshal(recipe)
	require.NoError(t, err)

	var got Recipe
	require.NoError(t, bson.Unmarshal(raw, &got))
	assert.Equal(t, recipe, got)
}
