package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/recettes/backend/internal/mocks"
	"github.com/pageza/recettes/backend/internal/service"
	"github.com/pageza/recettes/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setup(t *testing.T) (*gin.Engine, *mocks.MockRecipeService, *mocks.MockCatalogService) {
	t.Helper()

	recipes, catalog := new(mocks.MockRecipeService), new(mocks.MockCatalogService)
	h := NewHandler(recipes, catalog, zaptest.NewLogger(t))

	router := gin.New()
	h.RegisterRoutes(router)
	router.NoRoute(h.NotFound)
	return router, recipes, catalog
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListPage(t *testing.T) {
	router, recipes, catalog := setup(t)

	catalog.On("ListCategories", mock.Anything).Return([]types.Category{{Slug: "soupes", Name: "Soupes", RecipeCount: 1}}, nil)
	recipes.On("ListRecipes", mock.Anything, types.FilterSpec{Page: 1, Limit: 12, Category: "soupes"}).Return(&types.RecipeList{
		Recipes:    []types.Recipe{{Slug: "harira", Title: "Harira", PrepTime: 15, CookTime: 45, Servings: 6, Difficulty: "facile"}},
		Pagination: types.Pagination{Page: 1, Limit: 12, Total: 1, TotalPages: 1},
	}, nil)

	w := get(router, "/recipes?category=soupes")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "<title>Recettes - Recettes du Maroc</title>")
	assert.Contains(t, body, `<option value="soupes" selected>`)
	assert.Contains(t, body, `href="/recipes/harira"`)
	assert.Contains(t, body, "1h")
	assert.Contains(t, body, ">Facile<")
}

func TestListPageEmpty(t *testing.T) {
	router, recipes, catalog := setup(t)

	catalog.On("ListCategories", mock.Anything).Return([]types.Category{}, nil)
	recipes.On("ListRecipes", mock.Anything, mock.Anything).Return(&types.RecipeList{Recipes: []types.Recipe{}}, nil)

	w := get(router, "/recipes?search=rien")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Aucune recette trouvée")
}

func TestListPageStoreFailure(t *testing.T) {
	router, recipes, catalog := setup(t)

	catalog.On("ListCategories", mock.Anything).Return([]types.Category{}, nil)
	recipes.On("ListRecipes", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	w := get(router, "/recipes")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erreur lors du chargement des recettes")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestDetailPage(t *testing.T) {
	router, recipes, _ := setup(t)

	recipes.On("GetRecipeBySlug", mock.Anything, "harira").Return(&types.Recipe{Slug: "harira", Title: "Harira"}, nil)
	recipes.On("GetRecipeBySlug", mock.Anything, "absente").Return(nil, service.ErrRecipeNotFound)

	w := get(router, "/recipes/harira")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>Harira</h1>")

	w = get(router, "/recipes/absente")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Recette introuvable")
	assert.Contains(t, w.Body.String(), `href="/recipes"`)
}

func TestHomePage(t *testing.T) {
	router, recipes, catalog := setup(t)

	catalog.On("GetStats", mock.Anything).Return(&types.Stats{TotalRecipes: 8, TotalCategories: 3, AverageRating: 4.8, AverageTime: 30}, nil)
	recipes.On("ListRecipes", mock.Anything, types.FilterSpec{Featured: true, Limit: 6}).Return(&types.RecipeList{
		Recipes: []types.Recipe{{Slug: "couscous", Title: "Couscous", IsFeatured: true}},
	}, nil)

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<strong>8</strong>")
	assert.Contains(t, w.Body.String(), `href="/recipes/couscous"`)
}

func TestUnknownPage(t *testing.T) {
	router, _, _ := setup(t)

	w := get(router, "/nulle-part")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Recette introuvable")
}
