package testhelpers

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/pageza/recettes/backend/internal/model"
)

// BaseTime anchors fixture creation times so ordering is deterministic.
var BaseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// CreateCategory inserts a category row
func CreateCategory(t *testing.T, db *gorm.DB, slug, name string) *model.Category {
	t.Helper()

	c := &model.Category{Slug: slug, Name: name, CreatedAt: BaseTime}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to create category %s: %v", slug, err)
	}
	return c
}

// CreateRecipe inserts a recipe row, filling a title and creation time when
// they are left empty. Boolean flags are written exactly as given.
func CreateRecipe(t *testing.T, db *gorm.DB, r model.Recipe) *model.Recipe {
	t.Helper()

	if r.Title == "" {
		r.Title = r.Slug
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = BaseTime
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("failed to create recipe %s: %v", r.Slug, err)
	}
	return &r
}

// StrPtr returns a pointer to s
func StrPtr(s string) *string {
	return &s
}

// UintPtr returns a pointer to v
func UintPtr(v uint) *uint {
	return &v
}
