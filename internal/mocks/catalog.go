package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recettes/backend/internal/model"
	"github.com/pageza/recettes/backend/internal/types"
)

// MockCatalogService is a mock implementation of the catalog service
type MockCatalogService struct {
	mock.Mock
}

// ListCategories mocks the ListCategories method
func (m *MockCatalogService) ListCategories(ctx context.Context) ([]types.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]types.Category)
	return categories, args.Error(1)
}

// GetStats mocks the GetStats method
func (m *MockCatalogService) GetStats(ctx context.Context) (*types.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Stats), args.Error(1)
}

// CreateCategory mocks the CreateCategory method
func (m *MockCatalogService) CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (uint, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uint), args.Error(1)
}

// MockCatalogStore is a mock implementation of the catalog repository
type MockCatalogStore struct {
	mock.Mock
}

// ListCategories mocks the ListCategories method
func (m *MockCatalogStore) ListCategories(ctx context.Context) ([]model.CategoryRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.CategoryRow)
	return rows, args.Error(1)
}

// CreateCategory mocks the CreateCategory method
func (m *MockCatalogStore) CreateCategory(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// CountPublishedRecipes mocks the CountPublishedRecipes method
func (m *MockCatalogStore) CountPublishedRecipes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// CountCategories mocks the CountCategories method
func (m *MockCatalogStore) CountCategories(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockPresigner is a mock implementation of an object storage presigner
type MockPresigner struct {
	mock.Mock
}

// GeneratePresignedURL mocks the GeneratePresignedURL method
func (m *MockPresigner) GeneratePresignedURL(ctx context.Context, ref string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, ref, expiration)
	return args.String(0), args.Error(1)
}
