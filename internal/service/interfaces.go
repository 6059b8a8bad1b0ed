package service

import (
	"context"
	"time"

	"github.com/pageza/recettes/backend/internal/model"
	"github.com/pageza/recettes/backend/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context, filters types.FilterSpec) (*types.RecipeList, error)
	GetRecipeBySlug(ctx context.Context, slug string) (*types.Recipe, error)
	CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (uint, error)
}

// ICatalogService defines the interface for category and stats operations
type ICatalogService interface {
	ListCategories(ctx context.Context) ([]types.Category, error)
	GetStats(ctx context.Context) (*types.Stats, error)
	CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (uint, error)
}

// RecipeStore is the persistence the recipe service reads and writes through
type RecipeStore interface {
	List(ctx context.Context, filters types.FilterSpec) ([]model.RecipeRow, int64, error)
	FindBySlug(ctx context.Context, slug string) (*model.RecipeRow, error)
	Create(ctx context.Context, recipe *model.Recipe) (uint, error)
}

// CatalogStore is the persistence behind categories and stats
type CatalogStore interface {
	ListCategories(ctx context.Context) ([]model.CategoryRow, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	CountPublishedRecipes(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
}

// ImageResolver turns a stored image reference into a URL a browser can load
type ImageResolver interface {
	Resolve(ctx context.Context, ref string) string
}

// Presigner issues time-limited GET URLs for s3:// image references
type Presigner interface {
	GeneratePresignedURL(ctx context.Context, ref string, expiration time.Duration) (string, error)
}
