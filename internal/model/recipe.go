package model

import "time"

// Recipe is a row of the recipes table. Content holds the encoded
// ingredients/instructions document and may be NULL.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Content     *string   `gorm:"type:text" json:"content"`
	CategoryID  *uint     `gorm:"index" json:"category_id"`
	ImageURL    string    `gorm:"size:512" json:"image_url"`
	PrepTime    int       `gorm:"not null;default:0" json:"prep_time"`
	CookTime    int       `gorm:"not null;default:0" json:"cook_time"`
	Servings    int       `gorm:"not null;default:0" json:"servings"`
	Difficulty  string    `gorm:"size:20;index" json:"difficulty"`
	IsPublished bool      `gorm:"not null;index" json:"is_published"`
	IsFeatured  bool      `gorm:"not null" json:"is_featured"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for the Recipe model
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeRow is a recipe joined with its category, as read by listing and
// detail queries.
type RecipeRow struct {
	Recipe
	CategoryName *string `gorm:"column:category_name"`
	CategorySlug *string `gorm:"column:category_slug"`
}
