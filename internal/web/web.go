// Package web serves the server-rendered recipe pages.
package web

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recettes/backend/internal/render"
	"github.com/pageza/recettes/backend/internal/service"
	"github.com/pageza/recettes/backend/internal/types"
)

const loadFailedMessage = "Erreur lors du chargement des recettes"

// Handler renders the list, detail and home pages
type Handler struct {
	recipes service.IRecipeService
	catalog service.ICatalogService
	log     *zap.Logger
}

// NewHandler creates a new web Handler
func NewHandler(recipes service.IRecipeService, catalog service.ICatalogService, log *zap.Logger) *Handler {
	return &Handler{recipes: recipes, catalog: catalog, log: log}
}

// RegisterRoutes registers the page routes
func (h *Handler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.Home)
	router.GET("/recipes", h.List)
	router.GET("/recipes/:slug", h.Detail)
}

// Home shows the catalog figures and featured recipes
func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.catalog.GetStats(ctx)
	if err != nil {
		h.fail(c, "Recettes", err)
		return
	}
	featured, err := h.recipes.ListRecipes(ctx, types.FilterSpec{Featured: true, Limit: 6})
	if err != nil {
		h.fail(c, "Recettes", err)
		return
	}

	statsHTML, err := render.StatsBlock(*stats)
	if err != nil {
		h.fail(c, "Recettes", err)
		return
	}
	cards, err := render.RecipeList(featured.Recipes)
	if err != nil {
		h.fail(c, "Recettes", err)
		return
	}

	h.page(c, http.StatusOK, "Accueil", statsHTML, `<h2>Recettes à la une</h2>`, `<div class="recipes-grid">`, cards, `</div>`)
}

// List shows one filtered page of recipes
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	filters := types.ParseFilterSpec(c.Request.URL.Query())

	categories, err := h.catalog.ListCategories(ctx)
	if err != nil {
		h.fail(c, "Recettes", err)
		return
	}
	list, err := h.recipes.ListRecipes(ctx, filters)
	if err != nil {
		h.fail(c, "Recettes", err)
		return
	}

	form, err := render.FilterForm(filters, categories)
	if err != nil {
		h.fail(c, "Recettes", err)
		return
	}
	cards, err := render.RecipeList(list.Recipes)
	if err != nil {
		h.fail(c, "Recettes", err)
		return
	}
	pager, err := render.Pager(filters, list.Pagination)
	if err != nil {
		h.fail(c, "Recettes", err)
		return
	}

	h.page(c, http.StatusOK, "Recettes", form, `<div id="recipesContainer" class="recipes-grid">`, cards, `</div>`, pager)
}

// Detail shows a recipe, or the not-found block with a 404
func (h *Handler) Detail(c *gin.Context) {
	recipe, err := h.recipes.GetRecipeBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, service.ErrRecipeNotFound) {
		h.page(c, http.StatusNotFound, "Recette introuvable", render.NotFound())
		return
	}
	if err != nil {
		h.fail(c, "Recette", err)
		return
	}

	body, err := render.RecipeDetail(*recipe)
	if err != nil {
		h.fail(c, recipe.Title, err)
		return
	}
	h.page(c, http.StatusOK, recipe.Title, `<div id="recipeContainer">`, body, `</div>`)
}

// NotFound answers unmatched page routes
func (h *Handler) NotFound(c *gin.Context) {
	h.page(c, http.StatusNotFound, "Page introuvable", render.NotFound())
}

func (h *Handler) fail(c *gin.Context, title string, err error) {
	h.log.Error("failed to render page", zap.String("path", c.Request.URL.Path), zap.Error(err))
	_ = c.Error(err)

	toast, rerr := render.Notification(render.Failure, loadFailedMessage)
	if rerr != nil {
		c.String(http.StatusInternalServerError, loadFailedMessage)
		return
	}
	h.page(c, http.StatusInternalServerError, title, toast)
}

func (h *Handler) page(c *gin.Context, status int, title string, parts ...template.HTML) {
	var body template.HTML
	for _, p := range parts {
		body += p
	}

	html, err := render.Page(title, body)
	if err != nil {
		h.log.Error("failed to render layout", zap.Error(err))
		c.String(http.StatusInternalServerError, loadFailedMessage)
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(html))
}
