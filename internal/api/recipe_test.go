package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipePayload(cuisineID string, tagIDs []string) gin.H {
	return gin.H{
		"name":             "Spaghetti",
		"cooking_duration": "45 minutes",
		"difficulty":       "Beginner",
		"cuisine":          cuisineID,
		"tags":             tagIDs,
		"ingredients":      []string{"pasta"},
	}
}

func TestCreateRecipeRequiresAuth(t *testing.T) {
	router, _ := setupTestRouter(t)
	cuisineID := createTerm(t, router, "/cuisines", "Italian")
	tagID := createTerm(t, router, "/tags", "pasta")

	w := doJSON(t, router, http.MethodPost, "/recipes", "", recipePayload(cuisineID, []string{tagID}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPut, "/recipes/0123456789abcdef01234567", "", recipePayload(cuisineID, []string{tagID}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/recipes/0123456789abcdef01234567", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndGetRecipe(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := registerUser(t, router, "cook@example.com")
	cuisineID := createTerm(t, router, "/cuisines", "Italian")
	tagID := createTerm(t, router, "/tags", "pasta")

	w := doJSON(t, router, http.MethodPost, "/recipes", token, recipePayload(cuisineID, []string{tagID}))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	id, ok := created["id"].(string)
	require.True(t, ok)

	w = doJSON(t, router, http.MethodGet, "/recipes/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)
	assert.Equal(t, "Spaghetti", got["name"])

	cuisine, ok := got["cuisine"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Italian", cuisine["name"])

	tags, ok := got["tags"].([]interface{})
	require.True(t, ok)
	require.Len(t, tags, 1)
	assert.Equal(t, "pasta", tags[0].(map[string]interface{})["name"])
}

func TestCreateRecipeBadRefs(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := registerUser(t, router, "cook@example.com")
	cuisineID := createTerm(t, router, "/cuisines", "Italian")
	tagID := createTerm(t, router, "/tags", "pasta")

	// Unknown cuisine id, well-formed.
	w := doJSON(t, router, http.MethodPost, "/recipes", token, recipePayload("0123456789abcdef01234567", []string{tagID}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown tag id alongside a valid one.
	w = doJSON(t, router, http.MethodPost, "/recipes", token, recipePayload(cuisineID, []string{tagID, "0123456789abcdef01234567"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing required field.
	payload := recipePayload(cuisineID, []string{tagID})
	delete(payload, "ingredients")
	w = doJSON(t, router, http.MethodPost, "/recipes", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was persisted by the rejected writes.
	w = doJSON(t, router, http.MethodGet, "/recipes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetRecipeInvalidAndMissingID(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/recipes/not-a-hex-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/recipes/0123456789abcdef01234567", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateRecipe(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := registerUser(t, router, "cook@example.com")
	cuisineID := createTerm(t, router, "/cuisines", "Italian")
	tagID := createTerm(t, router, "/tags", "pasta")

	w := doJSON(t, router, http.MethodPost, "/recipes", token, recipePayload(cuisineID, []string{tagID}))
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	frenchID := createTerm(t, router, "/cuisines", "French")
	veggieID := createTerm(t, router, "/tags", "vegetarian")

	payload := recipePayload(frenchID, []string{veggieID})
	payload["name"] = "Ratatouille"
	w = doJSON(t, router, http.MethodPut, "/recipes/"+id, token, payload)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/recipes/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)
	assert.Equal(t, "Ratatouille", got["name"])
	assert.Equal(t, "French", got["cuisine"].(map[string]interface{})["name"])
	tags := got["tags"].([]interface{})
	require.Len(t, tags, 1)
	assert.Equal(t, "vegetarian", tags[0].(map[string]interface{})["name"])

	// Well-formed but unknown id.
	w = doJSON(t, router, http.MethodPut, "/recipes/0123456789abcdef01234567", token, payload)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecipe(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := registerUser(t, router, "cook@example.com")
	cuisineID := createTerm(t, router, "/cuisines", "Italian")
	tagID := createTerm(t, router, "/tags", "pasta")

	w := doJSON(t, router, http.MethodPost, "/recipes", token, recipePayload(cuisineID, []string{tagID}))
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodDelete, "/recipes/"+id, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/recipes/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/recipes/bogus", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
