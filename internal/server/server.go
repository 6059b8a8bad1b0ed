package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recettes/backend/config"
	"github.com/pageza/recettes/backend/internal/repository"
	"github.com/pageza/recettes/backend/internal/router"
	"github.com/pageza/recettes/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	log    *zap.Logger
}

// New builds the services and routes over db. An S3 client is only set up
// when a bucket is configured.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, log *zap.Logger) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3: %w", err)
	}
	images := service.NewImageResolver(s3Config, cfg.ImageURLExpiry, log)

	recipes := service.NewRecipeService(repository.NewRecipeRepository(db), images, log)
	catalog := service.NewCatalogService(repository.NewCatalogRepository(db), service.StatsDefaults{
		AverageRating: cfg.StatsAverageRating,
		AverageTime:   cfg.StatsAverageTime,
	})

	r := router.SetupRouter(router.Options{
		DB:                db,
		Recipes:           recipes,
		Catalog:           catalog,
		Log:               log,
		RequestTimeout:    cfg.RequestTimeout,
		ExposeStoreErrors: cfg.ExposeStoreErrors,
	})

	return &Server{
		router: r,
		log:    log,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.log.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
