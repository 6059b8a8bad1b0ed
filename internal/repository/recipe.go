package repository

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/pageza/recettes/backend/internal/model"
	"github.com/pageza/recettes/backend/internal/query"
	"github.com/pageza/recettes/backend/internal/types"
)

// RecipeRepository executes recipe queries against the store
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository instance
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// List returns one page of published recipes matching the filters and the
// total number of matches. The page and count queries run concurrently.
func (r *RecipeRepository) List(ctx context.Context, f types.FilterSpec) ([]model.RecipeRow, int64, error) {
	const op = "repository.RecipeRepository.List"

	var (
		rows  []model.RecipeRow
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).Scopes(query.Page(f)).Find(&rows).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Scopes(query.Count(f)).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, storeErr(op, err)
	}

	return rows, total, nil
}

// FindBySlug returns the published recipe with the given slug, or ErrNotFound.
func (r *RecipeRepository) FindBySlug(ctx context.Context, slug string) (*model.RecipeRow, error) {
	const op = "repository.RecipeRepository.FindBySlug"

	var row model.RecipeRow
	err := r.db.WithContext(ctx).Scopes(query.BySlug(slug)).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr(op, err)
	}
	return &row, nil
}

// Create inserts a recipe and returns its generated id
func (r *RecipeRepository) Create(ctx context.Context, recipe *model.Recipe) (uint, error) {
	const op = "repository.RecipeRepository.Create"

	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return 0, storeErr(op, err)
	}
	return recipe.ID, nil
}
