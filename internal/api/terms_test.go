package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermEndpoints(t *testing.T) {
	for _, path := range []string{"/cuisines", "/tags"} {
		t.Run(path, func(t *testing.T) {
			router, _ := setupTestRouter(t)

			id := createTerm(t, router, path, "Italian")

			w := doJSON(t, router, http.MethodGet, path+"/"+id, "", nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "Italian", decodeBody(t, w)["name"])

			w = doJSON(t, router, http.MethodPut, path+"/"+id, "", gin.H{"name": "Tuscan"})
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "Tuscan", decodeBody(t, w)["name"])

			w = doJSON(t, router, http.MethodGet, path, "", nil)
			require.Equal(t, http.StatusOK, w.Code)
			var list []map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
			require.Len(t, list, 1)
			assert.Equal(t, "Tuscan", list[0]["name"])

			w = doJSON(t, router, http.MethodDelete, path+"/"+id, "", nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, true, decodeBody(t, w)["success"])

			w = doJSON(t, router, http.MethodDelete, path+"/"+id, "", nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestTermBadInput(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/cuisines", "", gin.H{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/cuisines/not-hex", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/cuisines/0123456789abcdef01234567", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
