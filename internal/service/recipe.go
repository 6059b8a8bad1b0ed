package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pageza/recettes/backend/internal/content"
	"github.com/pageza/recettes/backend/internal/model"
	"github.com/pageza/recettes/backend/internal/repository"
	"github.com/pageza/recettes/backend/internal/types"
)

// ErrRecipeNotFound is returned when no published recipe has the requested slug
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService handles recipe operations
type RecipeService struct {
	store  RecipeStore
	images ImageResolver
	log    *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(store RecipeStore, images ImageResolver, log *zap.Logger) *RecipeService {
	if images == nil {
		images = PassthroughResolver{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RecipeService{
		store:  store,
		images: images,
		log:    log,
	}
}

// ListRecipes returns one page of published recipes with decoded content.
// A recipe whose stored content is malformed is served with null content.
func (s *RecipeService) ListRecipes(ctx context.Context, filters types.FilterSpec) (*types.RecipeList, error) {
	filters = filters.Normalize()

	rows, total, err := s.store.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	recipes := make([]types.Recipe, 0, len(rows))
	for i := range rows {
		recipes = append(recipes, s.toRecipe(ctx, &rows[i]))
	}

	return &types.RecipeList{
		Recipes: recipes,
		Pagination: types.Pagination{
			Page:       filters.Page,
			Limit:      filters.Limit,
			Total:      total,
			TotalPages: types.TotalPages(total, filters.Limit),
		},
	}, nil
}

// GetRecipeBySlug retrieves a published recipe by slug
func (s *RecipeService) GetRecipeBySlug(ctx context.Context, slug string) (*types.Recipe, error) {
	row, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	recipe := s.toRecipe(ctx, row)
	return &recipe, nil
}

// CreateRecipe inserts a recipe and returns its id. Publication flags
// default to false when the request omits them.
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (uint, error) {
	encoded, err := content.Encode(req.Content)
	if err != nil {
		return 0, fmt.Errorf("failed to create recipe: %w", err)
	}

	recipe := &model.Recipe{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Content:     encoded,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Servings:    req.Servings,
		Difficulty:  req.Difficulty,
		IsPublished: boolOrFalse(req.IsPublished),
		IsFeatured:  boolOrFalse(req.IsFeatured),
	}

	id, err := s.store.Create(ctx, recipe)
	if err != nil {
		return 0, err
	}

	s.log.Info("recipe created", zap.Uint("id", id), zap.String("slug", recipe.Slug))
	return id, nil
}

func (s *RecipeService) toRecipe(ctx context.Context, row *model.RecipeRow) types.Recipe {
	decoded, err := content.Decode(row.Content)
	if err != nil {
		contentDecodeFailures.Inc()
		s.log.Warn("serving recipe with null content",
			zap.Uint("id", row.ID),
			zap.String("slug", row.Slug),
			zap.Error(err),
		)
		decoded = nil
	}

	return types.Recipe{
		ID:           row.ID,
		Slug:         row.Slug,
		Title:        row.Title,
		Description:  row.Description,
		Content:      decoded,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		CategorySlug: row.CategorySlug,
		ImageURL:     s.images.Resolve(ctx, row.ImageURL),
		PrepTime:     row.PrepTime,
		CookTime:     row.CookTime,
		Servings:     row.Servings,
		Difficulty:   row.Difficulty,
		IsPublished:  row.IsPublished,
		IsFeatured:   row.IsFeatured,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func boolOrFalse(b *bool) bool {
	return b != nil && *b
}
