package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/pageza/recettes/backend/internal/middleware"
	"github.com/pageza/recettes/backend/internal/repository"
	"github.com/pageza/recettes/backend/internal/service"
	"github.com/pageza/recettes/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.CORS(), middleware.Preflight())
	RegisterRoutes(router, deps)
	router.NoRoute(RouteNotFound)
	return router
}

// SetupTestRouter wires the API over a fresh in-memory store
func SetupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	log := zaptest.NewLogger(t)
	db := testhelpers.SetupTestDatabase(t)
	deps := Dependencies{
		DB:      db,
		Recipes: service.NewRecipeService(repository.NewRecipeRepository(db), nil, log),
		Catalog: service.NewCatalogService(repository.NewCatalogRepository(db), service.StatsDefaults{AverageRating: 4.8, AverageTime: 30}),
		Errors:  &ErrorPolicy{ExposeStoreErrors: true, Log: log},
	}
	return newRouter(deps), db
}

// PerformRequest sends body as JSON when it is not nil
func PerformRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}
