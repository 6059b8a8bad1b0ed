package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pageza/recettes/backend/internal/model"
	"github.com/pageza/recettes/backend/internal/query"
)

// CatalogRepository reads categories and catalog-wide counts
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new CatalogRepository instance
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListCategories returns every category with its published recipe count, by name
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]model.CategoryRow, error) {
	const op = "repository.CatalogRepository.ListCategories"

	var rows []model.CategoryRow
	if err := r.db.WithContext(ctx).Scopes(query.Categories).Find(&rows).Error; err != nil {
		return nil, storeErr(op, err)
	}
	return rows, nil
}

// CreateCategory inserts a category
func (r *CatalogRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	const op = "repository.CatalogRepository.CreateCategory"
	return storeErr(op, r.db.WithContext(ctx).Create(c).Error)
}

// CountPublishedRecipes counts recipes visible through the API
func (r *CatalogRepository) CountPublishedRecipes(ctx context.Context) (int64, error) {
	const op = "repository.CatalogRepository.CountPublishedRecipes"
	return r.count(ctx, op, query.PublishedRecipes)
}

// CountCategories counts every category
func (r *CatalogRepository) CountCategories(ctx context.Context) (int64, error) {
	const op = "repository.CatalogRepository.CountCategories"
	return r.count(ctx, op, query.AllCategories)
}

func (r *CatalogRepository) count(ctx context.Context, op string, scope query.Scope) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Scopes(scope).Count(&n).Error; err != nil {
		return 0, storeErr(op, err)
	}
	return n, nil
}
