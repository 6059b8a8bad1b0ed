package api

import (
	"gorm.io/gorm"

	"github.com/pageza/recettes/backend/internal/service"
)

// Dependencies are the services the API handlers are built from
type Dependencies struct {
	DB      *gorm.DB
	Recipes service.IRecipeService
	Catalog service.ICatalogService
	Errors  *ErrorPolicy
}
