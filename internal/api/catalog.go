package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recettes/backend/internal/service"
)

// CatalogHandler serves categories and stats
type CatalogHandler struct {
	catalog service.ICatalogService
	errors  *ErrorPolicy
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog service.ICatalogService, errors *ErrorPolicy) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		errors:  errors,
	}
}

// RegisterRoutes registers the category and stats routes
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", h.ListCategories)
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		router.Handle(method, "/categories", MethodNotAllowed)
	}

	router.GET("/stats", h.GetStats)
}

// ListCategories returns every category with its published recipe count
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

// GetStats returns the home page figures
func (h *CatalogHandler) GetStats(c *gin.Context) {
	stats, err := h.catalog.GetStats(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"totalRecipes":    stats.TotalRecipes,
		"totalCategories": stats.TotalCategories,
		"averageRating":   stats.AverageRating,
		"averageTime":     stats.AverageTime,
	})
}
