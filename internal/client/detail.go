package client

import (
	"context"
	"errors"
	"html/template"

	"github.com/pageza/recettes/backend/internal/render"
	"github.com/pageza/recettes/backend/internal/types"
)

// Getter fetches a single recipe
type Getter interface {
	GetRecipe(ctx context.Context, slug string) (*types.Recipe, error)
}

// LoadDetail renders the recipe with the given slug. A missing recipe
// renders the not-found block with no error; any other failure renders the
// same block and returns the error so the caller can notify.
func LoadDetail(ctx context.Context, getter Getter, slug string) (template.HTML, error) {
	recipe, err := getter.GetRecipe(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return render.NotFound(), nil
		}
		return render.NotFound(), err
	}
	return render.RecipeDetail(*recipe)
}
