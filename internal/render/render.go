// Package render maps recipes to HTML fragments. It performs no I/O beyond
// executing templates compiled into the binary.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/pageza/recettes/backend/internal/types"
)

// DefaultImage is shown for recipes without an image
const DefaultImage = "/assets/images/default-recipe.jpg"

//go:embed templates/*.html
var files embed.FS

var templates = template.Must(template.New("render").Funcs(template.FuncMap{
	"formatTime":       FormatTime,
	"formatDifficulty": FormatDifficulty,
	"imageOr":          imageOr,
	"inc":              func(i int) int { return i + 1 },
}).ParseFS(files, "templates/*.html"))

var difficultyLabels = map[string]string{
	"easy":      "Facile",
	"facile":    "Facile",
	"medium":    "Moyen",
	"moyen":     "Moyen",
	"hard":      "Difficile",
	"difficile": "Difficile",
}

// FormatTime renders minutes as "45min", "1h" or "1h30min"
func FormatTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	hours, mins := minutes/60, minutes%60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dmin", hours, mins)
}

// FormatDifficulty returns the display label for a difficulty; unknown
// values are returned unchanged.
func FormatDifficulty(difficulty string) string {
	if label, ok := difficultyLabels[difficulty]; ok {
		return label
	}
	return difficulty
}

// RecipeList renders recipe cards, or the "no results" block when empty
func RecipeList(recipes []types.Recipe) (template.HTML, error) {
	return execute("recipe_list", recipes)
}

// RecipeDetail renders the full recipe with its ingredients and steps
func RecipeDetail(recipe types.Recipe) (template.HTML, error) {
	return execute("recipe_detail", recipe)
}

// NotFound renders the missing recipe block with a link back to the list
func NotFound() template.HTML {
	html, err := execute("not_found", nil)
	if err != nil {
		// The template takes no data; failing here means it does not parse.
		panic(err)
	}
	return html
}

// Kind selects the style of a notification
type Kind string

const (
	Success Kind = "success"
	Failure Kind = "error"
)

// Notification renders a transient message
func Notification(kind Kind, message string) (template.HTML, error) {
	return execute("notification", struct {
		Kind    Kind
		Message string
	}{kind, message})
}

// Page wraps a fragment in the site layout
func Page(title string, body template.HTML) (template.HTML, error) {
	return execute("page", struct {
		Title string
		Body  template.HTML
	}{title, body})
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

func imageOr(url string) string {
	if url == "" {
		return DefaultImage
	}
	return url
}
