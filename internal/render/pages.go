package render

import (
	"html/template"

	"github.com/pageza/recettes/backend/internal/types"
)

// Difficulties offered by the filter form
var Difficulties = []string{"facile", "moyen", "difficile"}

// TimeLimits offered by the filter form, in minutes
var TimeLimits = []int{30, 60, 120}

// FilterForm renders the list filters with the current values selected
func FilterForm(filters types.FilterSpec, categories []types.Category) (template.HTML, error) {
	return execute("filters", struct {
		Filters      types.FilterSpec
		Categories   []types.Category
		Difficulties []string
		TimeLimits   []int
	}{filters, categories, Difficulties, TimeLimits})
}

// Pager renders previous/next links that keep the current filters
func Pager(filters types.FilterSpec, pagination types.Pagination) (template.HTML, error) {
	data := struct {
		Pagination types.Pagination
		Prev, Next template.URL
	}{Pagination: pagination}

	if pagination.Page > 1 {
		prev := filters
		prev.Page = pagination.Page - 1
		data.Prev = template.URL(prev.Values().Encode())
	}
	if pagination.Page < pagination.TotalPages {
		next := filters
		next.Page = pagination.Page + 1
		data.Next = template.URL(next.Values().Encode())
	}
	return execute("pager", data)
}

// StatsBlock renders the catalog figures
func StatsBlock(stats types.Stats) (template.HTML, error) {
	return execute("stats", stats)
}
