package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recettes/backend/internal/database"
)

// HealthCheck reports whether the API and its store are reachable
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Recettes API is running",
			"version": "v1.0.0",
		})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", HealthCheck(deps.DB))

	apiGroup := router.Group("/api")
	apiGroup.GET("/health", HealthCheck(deps.DB))

	NewRecipeHandler(deps.Recipes, deps.Errors).RegisterRoutes(apiGroup)
	NewCatalogHandler(deps.Catalog, deps.Errors).RegisterRoutes(apiGroup)
}
