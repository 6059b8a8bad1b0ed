package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recettes/backend/internal/content"
	"github.com/pageza/recettes/backend/internal/types"
)

func TestFormatTime(t *testing.T) {
	tests := map[int]string{
		0:   "0min",
		45:  "45min",
		59:  "59min",
		60:  "1h",
		90:  "1h30min",
		125: "2h5min",
		180: "3h",
	}
	for minutes, want := range tests {
		assert.Equal(t, want, FormatTime(minutes), "minutes=%d", minutes)
	}
}

func TestFormatDifficulty(t *testing.T) {
	tests := map[string]string{
		"moyen":     "Moyen",
		"facile":    "Facile",
		"difficile": "Difficile",
		"easy":      "Facile",
		"medium":    "Moyen",
		"hard":      "Difficile",
		"unknown":   "unknown",
		"":          "",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDifficulty(in), "difficulty=%q", in)
	}
}

func TestRecipeListEmpty(t *testing.T) {
	for _, recipes := range [][]types.Recipe{nil, {}} {
		html, err := RecipeList(recipes)
		require.NoError(t, err)
		assert.Contains(t, string(html), "Aucune recette trouvée")
		assert.NotContains(t, string(html), "recipe-card")
	}
}

func TestRecipeList(t *testing.T) {
	html, err := RecipeList([]types.Recipe{
		{Slug: "tajine-pruneaux", Title: "Tajine aux pruneaux", Description: "Sucré-salé", PrepTime: 30, CookTime: 60, Servings: 6, Difficulty: "moyen", ImageURL: "/img/tajine.jpg", IsFeatured: true},
		{Slug: "harira", Title: "Harira <script>", PrepTime: 15, CookTime: 30, Servings: 4, Difficulty: "inconnue"},
	})
	require.NoError(t, err)
	out := string(html)

	assert.Equal(t, 2, strings.Count(out, `class="recipe-card"`))
	assert.Contains(t, out, `href="/recipes/tajine-pruneaux"`)
	assert.Contains(t, out, "1h30min")
	assert.Contains(t, out, "45min")
	assert.Contains(t, out, "6 pers.")
	assert.Contains(t, out, ">Moyen<")
	assert.Contains(t, out, ">inconnue<")
	assert.Contains(t, out, `src="/img/tajine.jpg"`)
	assert.Contains(t, out, `src="`+DefaultImage+`"`)
	assert.Equal(t, 1, strings.Count(out, "recipe-badge"))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "Harira &lt;script&gt;")
}

func TestRecipeDetail(t *testing.T) {
	category, categorySlug := "Soupes", "soupes"
	html, err := RecipeDetail(types.Recipe{
		Slug:         "harira",
		Title:        "Harira",
		CategoryName: &category,
		CategorySlug: &categorySlug,
		PrepTime:     20,
		CookTime:     75,
		Servings:     8,
		Difficulty:   "facile",
		Content: &content.StructuredContent{
			Ingredients: []content.IngredientGroup{
				{Group: "Base", Items: []content.Ingredient{{Text: "Pois chiches"}, {Text: "Lentilles"}}},
				{Items: []content.Ingredient{{Text: "Coriandre"}}},
			},
			Instructions: []content.Instruction{
				{Name: "Tremper", Text: "La veille"},
				{Name: "Cuire", Text: "Une heure"},
			},
		},
	})
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, "<h1>Harira</h1>")
	assert.Contains(t, out, `href="/recipes?category=soupes"`)
	assert.Contains(t, out, "Préparation: 20min")
	assert.Contains(t, out, "Cuisson: 1h15min")
	assert.Contains(t, out, "8 personnes")
	assert.Contains(t, out, "<h4>Base</h4>")
	assert.Equal(t, 2, strings.Count(out, `class="ingredient-group"`))
	assert.Equal(t, 1, strings.Count(out, "<h4>Base</h4>"))
	assert.Contains(t, out, "<span>Coriandre</span>")
	assert.Contains(t, out, `<div class="step-number">1</div>`)
	assert.Contains(t, out, `<div class="step-number">2</div>`)
	assert.Contains(t, out, "<h4>Cuire</h4>")
}

func TestRecipeDetailWithoutContent(t *testing.T) {
	html, err := RecipeDetail(types.Recipe{Slug: "vide", Title: "Vide"})
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, "Ingrédients")
	assert.NotContains(t, out, "ingredient-group")
	assert.NotContains(t, out, "step-number")
	assert.NotContains(t, out, "recipe-category")
}

func TestNotFound(t *testing.T) {
	out := string(NotFound())
	assert.Contains(t, out, "Recette introuvable")
	assert.Contains(t, out, `href="/recipes"`)
}

func TestNotificationAndPage(t *testing.T) {
	toast, err := Notification(Failure, "Erreur lors du chargement des recettes")
	require.NoError(t, err)
	assert.Contains(t, string(toast), `class="toast error"`)
	assert.Contains(t, string(toast), "exclamation-circle")

	page, err := Page("Harira", NotFound())
	require.NoError(t, err)
	assert.Contains(t, string(page), "<title>Harira - Recettes du Maroc</title>")
	assert.Contains(t, string(page), "Recette introuvable")
}
