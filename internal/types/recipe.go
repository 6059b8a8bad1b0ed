package types

import (
	"time"

	"github.com/pageza/recettes/backend/internal/content"
)

// Recipe is a published recipe as served by the API, with its content decoded
type Recipe struct {
	ID           uint                       `json:"id"`
	Slug         string                     `json:"slug"`
	Title        string                     `json:"title"`
	Description  string                     `json:"description"`
	Content      *content.StructuredContent `json:"content"`
	CategoryID   *uint                      `json:"category_id"`
	CategoryName *string                    `json:"category_name"`
	CategorySlug *string                    `json:"category_slug"`
	ImageURL     string                     `json:"image_url"`
	PrepTime     int                        `json:"prep_time"`
	CookTime     int                        `json:"cook_time"`
	Servings     int                        `json:"servings"`
	Difficulty   string                     `json:"difficulty"`
	IsPublished  bool                       `json:"is_published"`
	IsFeatured   bool                       `json:"is_featured"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

// TotalTime is preparation plus cooking time in minutes
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// Pagination describes the page returned by a listing
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// RecipeList is one page of recipes
type RecipeList struct {
	Recipes    []Recipe   `json:"recipes"`
	Pagination Pagination `json:"pagination"`
}

// Category is a recipe category with the number of published recipes in it
type Category struct {
	ID          uint   `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RecipeCount int64  `json:"recipe_count"`
}

// Stats are the aggregate figures shown on the home page
type Stats struct {
	TotalRecipes    int64   `json:"totalRecipes"`
	TotalCategories int64   `json:"totalCategories"`
	AverageRating   float64 `json:"averageRating"`
	AverageTime     int     `json:"averageTime"`
}
