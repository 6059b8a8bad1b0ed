package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recettes/backend/internal/model"
)

func TestDatabaseSetup(t *testing.T) {
	db := SetupTestDatabase(t)
	require.NotNil(t, db)

	cat := CreateCategory(t, db, "tajines", "Tajines")
	assert.NotZero(t, cat.ID)

	r := CreateRecipe(t, db, model.Recipe{
		Slug:        "tajine-poulet",
		CategoryID:  &cat.ID,
		IsPublished: true,
	})
	assert.NotZero(t, r.ID)
	assert.Equal(t, "tajine-poulet", r.Title)
	assert.Equal(t, BaseTime, r.CreatedAt)

	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Where("is_published = ?", true).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
