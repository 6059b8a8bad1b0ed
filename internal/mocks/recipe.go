package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recettes/backend/internal/model"
	"github.com/pageza/recettes/backend/internal/types"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeService) ListRecipes(ctx context.Context, filters types.FilterSpec) (*types.RecipeList, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeList), args.Error(1)
}

// GetRecipeBySlug mocks the GetRecipeBySlug method
func (m *MockRecipeService) GetRecipeBySlug(ctx context.Context, slug string) (*types.Recipe, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

// CreateRecipe mocks the CreateRecipe method
func (m *MockRecipeService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (uint, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uint), args.Error(1)
}

// MockRecipeStore is a mock implementation of the recipe repository
type MockRecipeStore struct {
	mock.Mock
}

// List mocks the List method
func (m *MockRecipeStore) List(ctx context.Context, filters types.FilterSpec) ([]model.RecipeRow, int64, error) {
	args := m.Called(ctx, filters)
	rows, _ := args.Get(0).([]model.RecipeRow)
	return rows, args.Get(1).(int64), args.Error(2)
}

// FindBySlug mocks the FindBySlug method
func (m *MockRecipeStore) FindBySlug(ctx context.Context, slug string) (*model.RecipeRow, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RecipeRow), args.Error(1)
}

// Create mocks the Create method
func (m *MockRecipeStore) Create(ctx context.Context, recipe *model.Recipe) (uint, error) {
	args := m.Called(ctx, recipe)
	return args.Get(0).(uint), args.Error(1)
}
