package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pageza/recettes/backend/internal/model"
	"github.com/pageza/recettes/backend/internal/types"
)

// StatsDefaults are the figures reported by the stats endpoint that are not
// derived from the store.
type StatsDefaults struct {
	AverageRating float64
	AverageTime   int
}

// CatalogService serves categories and catalog-wide stats
type CatalogService struct {
	store    CatalogStore
	defaults StatsDefaults
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(store CatalogStore, defaults StatsDefaults) *CatalogService {
	return &CatalogService{store: store, defaults: defaults}
}

// ListCategories returns every category ordered by name
func (s *CatalogService) ListCategories(ctx context.Context) ([]types.Category, error) {
	rows, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]types.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, types.Category{
			ID:          row.ID,
			Slug:        row.Slug,
			Name:        row.Name,
			Description: row.Description,
			RecipeCount: row.RecipeCount,
		})
	}
	return categories, nil
}

// GetStats counts published recipes and categories concurrently
func (s *CatalogService) GetStats(ctx context.Context) (*types.Stats, error) {
	stats := &types.Stats{
		AverageRating: s.defaults.AverageRating,
		AverageTime:   s.defaults.AverageTime,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.store.CountPublishedRecipes(gctx)
		stats.TotalRecipes = n
		return err
	})
	g.Go(func() error {
		n, err := s.store.CountCategories(gctx)
		stats.TotalCategories = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// CreateCategory inserts a category and returns its id
func (s *CatalogService) CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (uint, error) {
	c := &model.Category{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.store.CreateCategory(ctx, c); err != nil {
		return 0, err
	}
	return c.ID, nil
}
