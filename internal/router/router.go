package router

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recettes/backend/internal/api"
	"github.com/pageza/recettes/backend/internal/middleware"
	"github.com/pageza/recettes/backend/internal/service"
	"github.com/pageza/recettes/backend/internal/web"
)

// Options carries everything the routes are built from
type Options struct {
	DB                *gorm.DB
	Recipes           service.IRecipeService
	Catalog           service.ICatalogService
	Log               *zap.Logger
	RequestTimeout    time.Duration
	ExposeStoreErrors bool
}

// SetupRouter configures the application routes
func SetupRouter(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Logger(opts.Log),
		middleware.Recovery(opts.Log),
		middleware.Metrics(),
		middleware.CORS(),
		middleware.Preflight(),
		middleware.Timeout(opts.RequestTimeout),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api.RegisterRoutes(router, api.Dependencies{
		DB:      opts.DB,
		Recipes: opts.Recipes,
		Catalog: opts.Catalog,
		Errors:  &api.ErrorPolicy{ExposeStoreErrors: opts.ExposeStoreErrors, Log: opts.Log},
	})

	pages := web.NewHandler(opts.Recipes, opts.Catalog, opts.Log)
	pages.RegisterRoutes(router)

	router.NoRoute(func(c *gin.Context) {
		if isAPIPath(c.Request.URL.Path) {
			api.RouteNotFound(c)
			return
		}
		pages.NotFound(c)
	})

	return router
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
