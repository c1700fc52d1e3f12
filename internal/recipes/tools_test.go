package recipes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/local-mcps/grocery-mcps/config"
	"github.com/local-mcps/grocery-mcps/internal/common"
)

func recipeTestServer(baseURL string) *Server {
	return NewServer(&config.RecipesConfig{
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
		UserAgent:      "test-agent",
	}, common.NewLogger(common.LogLevelError, common.LogFormatJSON, io.Discard, "recipes"))
}

func TestHandleGetRecipe(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
		{"@type":"Recipe","name":"Skillet Chicken","recipeIngredient":["2 chicken breasts"],
		 "recipeInstructions":[{"text":"Sear the chicken on both sides."}]}
	</script></head><body></body></html>`

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/recipe/123/" || r.URL.Path == "/recipe/123/skillet-chicken/" {
			w.Write([]byte(page))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer stub.Close()
	s := recipeTestServer(stub.URL)

	t.Run("fetches by numeric id", func(t *testing.T) {
		result, err := s.handleGetRecipe(context.Background(), map[string]interface{}{"recipe": "123"})
		require.NoError(t, err)
		assert.Contains(t, result.Content[0].Text, "Skillet Chicken")
		assert.Contains(t, result.Content[0].Text, "Sear the chicken")
	})

	t.Run("fetches by full url", func(t *testing.T) {
		result, err := s.handleGetRecipe(context.Background(), map[string]interface{}{
			"recipe": stub.URL + "/recipe/123/skillet-chicken/",
		})
		require.NoError(t, err)
		assert.Contains(t, result.Content[0].Text, "Skillet Chicken")
	})

	t.Run("rejects foreign hosts", func(t *testing.T) {
		_, err := s.handleGetRecipe(context.Background(), map[string]interface{}{
			"recipe": "https://evil.example.com/recipe/123/",
		})
		require.Error(t, err)
		assert.True(t, common.IsValidation(err))
	})

	t.Run("rejects non-recipe paths", func(t *testing.T) {
		_, err := s.handleGetRecipe(context.Background(), map[string]interface{}{
			"recipe": stub.URL + "/article/some-story/",
		})
		require.Error(t, err)
		assert.True(t, common.IsValidation(err))
	})

	t.Run("rejects garbage references", func(t *testing.T) {
		_, err := s.handleGetRecipe(context.Background(), map[string]interface{}{"recipe": "not a url"})
		require.Error(t, err)
		assert.True(t, common.IsValidation(err))
	})
}

func TestHandleGetRecipeFallback(t *testing.T) {
	page := fmt.Sprintf(`<html><body>
		<h1>Plain Markup Soup</h1>
		<li class="%s">3 carrots</li>
		<li class="%s">Chop the carrots and simmer them in broth for thirty minutes.</li>
	</body></html>`, ingredientItemClass, instructionItemClass)

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer stub.Close()
	s := recipeTestServer(stub.URL)

	result, err := s.handleGetRecipe(context.Background(), map[string]interface{}{"recipe": "55"})
	require.NoError(t, err)
	assert.Contains(t, result.Content[0].Text, "Plain Markup Soup")
	assert.Contains(t, result.Content[0].Text, "3 carrots")
}

func TestHandleGetRecipeNoData(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>nothing here</p></body></html>"))
	}))
	defer stub.Close()
	s := recipeTestServer(stub.URL)

	_, err := s.handleGetRecipe(context.Background(), map[string]interface{}{"recipe": "55"})
	require.Error(t, err)
	assert.True(t, common.IsNotFound(err))
}

func TestHandleSearchRecipes(t *testing.T) {
	page := searchPage(
		searchCard("/recipe/111/first/", "First Dish", ""),
		searchCard("/recipe/222/second/", "Second Dish", ""),
	)

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "beef stew", r.URL.Query().Get("q"))
		w.Write([]byte(page))
	}))
	defer stub.Close()
	s := recipeTestServer(stub.URL)

	t.Run("returns extracted results", func(t *testing.T) {
		result, err := s.handleSearchRecipes(context.Background(), map[string]interface{}{"query": "beef stew"})
		require.NoError(t, err)
		assert.Contains(t, result.Content[0].Text, "First Dish")
		assert.Contains(t, result.Content[0].Text, "Second Dish")
	})

	t.Run("limit bounds the result count", func(t *testing.T) {
		result, err := s.handleSearchRecipes(context.Background(), map[string]interface{}{
			"query": "beef stew",
			"limit": float64(1),
		})
		require.NoError(t, err)
		assert.Contains(t, result.Content[0].Text, "First Dish")
		assert.NotContains(t, result.Content[0].Text, "Second Dish")
	})

	t.Run("empty query is a validation error", func(t *testing.T) {
		_, err := s.handleSearchRecipes(context.Background(), map[string]interface{}{"query": " "})
		require.Error(t, err)
		assert.True(t, common.IsValidation(err))
	})
}
