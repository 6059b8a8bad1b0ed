package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recettes/backend/internal/mocks"
	"github.com/pageza/recettes/backend/internal/model"
	"github.com/pageza/recettes/backend/internal/types"
)

func TestListCategories(t *testing.T) {
	store := new(mocks.MockCatalogStore)
	svc := NewCatalogService(store, StatsDefaults{})

	store.On("ListCategories", mock.Anything).Return([]model.CategoryRow{
		{Category: model.Category{ID: 1, Slug: "soupes", Name: "Soupes"}, RecipeCount: 2},
	}, nil)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []types.Category{{ID: 1, Slug: "soupes", Name: "Soupes", RecipeCount: 2}}, categories)
}

func TestListCategoriesEmpty(t *testing.T) {
	store := new(mocks.MockCatalogStore)
	store.On("ListCategories", mock.Anything).Return(nil, nil)

	categories, err := NewCatalogService(store, StatsDefaults{}).ListCategories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestGetStats(t *testing.T) {
	store := new(mocks.MockCatalogStore)
	svc := NewCatalogService(store, StatsDefaults{AverageRating: 4.8, AverageTime: 30})

	store.On("CountPublishedRecipes", mock.Anything).Return(int64(12), nil)
	store.On("CountCategories", mock.Anything).Return(int64(5), nil)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &types.Stats{TotalRecipes: 12, TotalCategories: 5, AverageRating: 4.8, AverageTime: 30}, stats)
}

func TestGetStatsFailsWhenACountFails(t *testing.T) {
	store := new(mocks.MockCatalogStore)
	svc := NewCatalogService(store, StatsDefaults{})

	boom := errors.New("database is closed")
	store.On("CountPublishedRecipes", mock.Anything).Return(int64(0), boom)
	store.On("CountCategories", mock.Anything).Return(int64(5), nil)

	stats, err := svc.GetStats(context.Background())
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, boom)
}

func TestCreateCategory(t *testing.T) {
	store := new(mocks.MockCatalogStore)
	store.On("CreateCategory", mock.Anything, mock.AnythingOfType("*model.Category")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Category).ID = 9
		}).
		Return(nil)

	id, err := NewCatalogService(store, StatsDefaults{}).CreateCategory(context.Background(), &types.CreateCategoryRequest{Slug: "tajines", Name: "Tajines"})
	require.NoError(t, err)
	assert.Equal(t, uint(9), id)
}
