package model

import "time"

// Category is a row of the categories table
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// CategoryRow is a category with its published recipe count
type CategoryRow struct {
	Category
	RecipeCount int64 `gorm:"column:recipe_count"`
}
