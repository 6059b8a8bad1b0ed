package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recettes/backend/internal/model"
	"github.com/pageza/recettes/backend/internal/repository"
	"github.com/pageza/recettes/backend/internal/testhelpers"
	"github.com/pageza/recettes/backend/internal/types"
)

func TestRepositoryOnPostgres(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)
	ctx := context.Background()

	tajines := testhelpers.CreateCategory(t, db, "tajines", "Tajines")
	testhelpers.CreateRecipe(t, db, model.Recipe{Slug: "tajine-poulet", Title: "Tajine de Poulet", CategoryID: &tajines.ID, PrepTime: 20, CookTime: 60, IsPublished: true, IsFeatured: true})
	testhelpers.CreateRecipe(t, db, model.Recipe{Slug: "zaalouk", Title: "Zaalouk", PrepTime: 10, CookTime: 20, Difficulty: "facile", IsPublished: true})
	testhelpers.CreateRecipe(t, db, model.Recipe{Slug: "brouillon", Title: "Brouillon", IsPublished: false})

	recipes := repository.NewRecipeRepository(db)

	rows, total, err := recipes.List(ctx, types.FilterSpec{Search: "POULET"}.Normalize())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].CategorySlug)
	assert.Equal(t, "tajines", *rows[0].CategorySlug)

	rows, total, err = recipes.List(ctx, types.FilterSpec{MaxTime: 30}.Normalize())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "zaalouk", rows[0].Slug)

	_, err = recipes.FindBySlug(ctx, "brouillon")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = recipes.Create(ctx, &model.Recipe{Slug: "zaalouk", Title: "Encore"})
	var storeErr *repository.StoreError
	assert.ErrorAs(t, err, &storeErr)

	catalog := repository.NewCatalogRepository(db)
	published, err := catalog.CountPublishedRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), published)

	categories, err := catalog.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, int64(1), categories[0].RecipeCount)
}
