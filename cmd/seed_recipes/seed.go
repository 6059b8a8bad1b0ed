package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pageza/recettes/backend/internal/service"
	"github.com/pageza/recettes/backend/internal/types"
)

// seeder inserts the sample catalog, skipping rows that already exist.
type seeder struct {
	catalog service.ICatalogService
	recipes service.IRecipeService
	log     *zap.Logger
	dryRun  bool
}

type seedResult struct {
	Categories int
	Recipes    int
	Skipped    int
}

func (s *seeder) run(ctx context.Context, categories []types.CreateCategoryRequest, recipes []seedRecipe) (seedResult, error) {
	var res seedResult

	existing, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list categories: %w", err)
	}
	ids := make(map[string]uint, len(existing))
	for _, c := range existing {
		ids[c.Slug] = c.ID
	}

	for i := range categories {
		req := categories[i]
		if _, ok := ids[req.Slug]; ok {
			res.Skipped++
			continue
		}
		if s.dryRun {
			s.log.Info("would create category", zap.String("slug", req.Slug))
			res.Categories++
			continue
		}
		id, err := s.catalog.CreateCategory(ctx, &req)
		if err != nil {
			return res, fmt.Errorf("failed to create category %q: %w", req.Slug, err)
		}
		ids[req.Slug] = id
		res.Categories++
		s.log.Info("created category", zap.String("slug", req.Slug), zap.Uint("id", id))
	}

	for _, r := range recipes {
		req := r.request
		if id, ok := ids[r.category]; ok {
			req.CategoryID = &id
		}

		_, err := s.recipes.GetRecipeBySlug(ctx, req.Slug)
		switch {
		case err == nil:
			res.Skipped++
			continue
		case !errors.Is(err, service.ErrRecipeNotFound):
			return res, fmt.Errorf("failed to look up recipe %q: %w", req.Slug, err)
		}

		if s.dryRun {
			s.log.Info("would create recipe", zap.String("slug", req.Slug))
			res.Recipes++
			continue
		}
		id, err := s.recipes.CreateRecipe(ctx, &req)
		if err != nil {
			return res, fmt.Errorf("failed to create recipe %q: %w", req.Slug, err)
		}
		res.Recipes++
		s.log.Info("created recipe", zap.String("slug", req.Slug), zap.Uint("id", id))
	}

	return res, nil
}
