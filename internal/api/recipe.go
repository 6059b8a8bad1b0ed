package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recettes/backend/internal/service"
	"github.com/pageza/recettes/backend/internal/types"
)

// RecipeHandler serves the recipe endpoints
type RecipeHandler struct {
	recipes service.IRecipeService
	errors  *ErrorPolicy
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipes service.IRecipeService, errors *ErrorPolicy) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		errors:  errors,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/:slug", h.GetRecipe)
	}
}

// ListRecipes returns a filtered page of published recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filters := types.ParseFilterSpec(c.Request.URL.Query())

	list, err := h.recipes.ListRecipes(c.Request.Context(), filters)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"recipes":    list.Recipes,
		"pagination": list.Pagination,
	})
}

// GetRecipe returns a single published recipe
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.GetRecipeBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"recipe":  recipe,
	})
}

// CreateRecipe inserts a recipe. Fields are stored as sent; only the store
// rejects anything.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := h.recipes.CreateRecipe(c.Request.Context(), &req)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.CreateRecipeResponse{
		Success: true,
		ID:      id,
		Message: "recipe created successfully",
	})
}
