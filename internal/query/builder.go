// Package query turns a FilterSpec into gorm scopes for the recipe store.
// Every filter is an independent predicate builder; the page query and the
// count query share the same filtered scope so totals always match the
// filtered page.
package query

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/recettes/backend/internal/types"
)

// Scope narrows or shapes a query; apply it with db.Scopes.
type Scope func(*gorm.DB) *gorm.DB

// Predicate contributes a WHERE expression for a filter, or reports false
// when the filter is absent.
type Predicate func(types.FilterSpec) (clause.Expr, bool)

const recipeColumns = "r.id, r.slug, r.title, r.description, r.content, r.category_id, r.image_url, " +
	"r.prep_time, r.cook_time, r.servings, r.difficulty, r.is_published, r.is_featured, " +
	"r.created_at, r.updated_at, c.name AS category_name, c.slug AS category_slug"

const categoryColumns = "c.id, c.slug, c.name, c.description, c.created_at"

// Predicates lists the additive filters in the order they are applied.
var Predicates = []Predicate{
	ByCategory,
	ByDifficulty,
	BySearch,
	ByFeatured,
	ByMaxTime,
}

// Published is the base predicate every read starts from.
func Published() clause.Expr {
	return gorm.Expr("r.is_published = ?", true)
}

// ByCategory matches the joined category slug.
func ByCategory(f types.FilterSpec) (clause.Expr, bool) {
	if f.Category == "" {
		return clause.Expr{}, false
	}
	return gorm.Expr("c.slug = ?", f.Category), true
}

// ByDifficulty matches the exact difficulty value.
func ByDifficulty(f types.FilterSpec) (clause.Expr, bool) {
	if f.Difficulty == "" {
		return clause.Expr{}, false
	}
	return gorm.Expr("r.difficulty = ?", f.Difficulty), true
}

// BySearch is a case-insensitive substring match on title or description.
// gorm parenthesizes the OR when it is folded with the other predicates.
func BySearch(f types.FilterSpec) (clause.Expr, bool) {
	if f.Search == "" {
		return clause.Expr{}, false
	}
	like := "%" + strings.ToLower(f.Search) + "%"
	return gorm.Expr("LOWER(r.title) LIKE ? OR LOWER(r.description) LIKE ?", like, like), true
}

// ByFeatured restricts to featured recipes when requested.
func ByFeatured(f types.FilterSpec) (clause.Expr, bool) {
	if !f.Featured {
		return clause.Expr{}, false
	}
	return gorm.Expr("r.is_featured = ?", true), true
}

// ByMaxTime bounds the total preparation and cooking time.
func ByMaxTime(f types.FilterSpec) (clause.Expr, bool) {
	if f.MaxTime <= 0 {
		return clause.Expr{}, false
	}
	return gorm.Expr("r.prep_time + r.cook_time <= ?", f.MaxTime), true
}

// Conditions returns the base predicate followed by every present filter.
func Conditions(f types.FilterSpec) []clause.Expr {
	conds := []clause.Expr{Published()}
	for _, build := range Predicates {
		if expr, ok := build(f); ok {
			conds = append(conds, expr)
		}
	}
	return conds
}

func recipes(db *gorm.DB) *gorm.DB {
	return db.Table("recipes r").Joins("LEFT JOIN categories c ON r.category_id = c.id")
}

// Filtered selects published recipes joined with their category, ANDing
// every present filter.
func Filtered(f types.FilterSpec) Scope {
	return func(db *gorm.DB) *gorm.DB {
		db = recipes(db)
		for _, cond := range Conditions(f) {
			db = db.Where(cond)
		}
		return db
	}
}

// Page selects one page of matching recipes, newest first.
func Page(f types.FilterSpec) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return Filtered(f)(db).
			Select(recipeColumns).
			Order("r.created_at DESC, r.id DESC").
			Limit(f.Limit).
			Offset(f.Offset())
	}
}

// Count matches the same rows as Page without ordering or paging; finish it
// with Count.
func Count(f types.FilterSpec) Scope {
	return Filtered(f)
}

// BySlug selects a single published recipe.
func BySlug(slug string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return recipes(db).
			Select(recipeColumns).
			Where("r.slug = ?", slug).
			Where(Published()).
			Limit(1)
	}
}

// Categories lists every category with its published recipe count, by name.
func Categories(db *gorm.DB) *gorm.DB {
	return db.Table("categories c").
		Select(categoryColumns+", COUNT(r.id) AS recipe_count").
		Joins("LEFT JOIN recipes r ON c.id = r.category_id AND r.is_published = ?", true).
		Group(categoryColumns).
		Order("c.name")
}

// PublishedRecipes matches every published recipe; finish it with Count.
func PublishedRecipes(db *gorm.DB) *gorm.DB {
	return db.Table("recipes r").Where(Published())
}

// AllCategories matches every category; finish it with Count.
func AllCategories(db *gorm.DB) *gorm.DB {
	return db.Table("categories")
}
