package types

import "github.com/pageza/recettes/backend/internal/content"

// CreateRecipeRequest represents the request body for creating a recipe.
// Only the store enforces constraints; nothing is validated here.
type CreateRecipeRequest struct {
	Slug        string                     `json:"slug"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Content     *content.StructuredContent `json:"content"`
	CategoryID  *uint                      `json:"category_id"`
	ImageURL    string                     `json:"image_url"`
	PrepTime    int                        `json:"prep_time"`
	CookTime    int                        `json:"cook_time"`
	Servings    int                        `json:"servings"`
	Difficulty  string                     `json:"difficulty"`
	IsPublished *bool                      `json:"is_published"`
	IsFeatured  *bool                      `json:"is_featured"`
}

// CreateRecipeResponse is returned after a successful insert
type CreateRecipeResponse struct {
	Success bool   `json:"success"`
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// CreateCategoryRequest is used by the seeder to insert categories
type CreateCategoryRequest struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
