package main

import (
	"github.com/pageza/recettes/backend/internal/content"
	"github.com/pageza/recettes/backend/internal/types"
)

var seedCategories = []types.CreateCategoryRequest{
	{Slug: "tajines", Name: "Tajines", Description: "Plats mijotés dans le tajine en terre cuite."},
	{Slug: "couscous", Name: "Couscous", Description: "La semoule du vendredi et ses légumes."},
	{Slug: "soupes", Name: "Soupes", Description: "Harira, bissara et autres soupes réconfortantes."},
	{Slug: "patisseries", Name: "Pâtisseries", Description: "Douceurs au miel et aux amandes."},
	{Slug: "salades", Name: "Salades", Description: "Salades cuites et crues servies en entrée."},
}

// seedRecipe pairs a request with the slug of the category it belongs to.
type seedRecipe struct {
	category string
	request  types.CreateRecipeRequest
}

func items(lines ...string) []content.Ingredient {
	out := make([]content.Ingredient, len(lines))
	for i, l := range lines {
		out[i] = content.Ingredient{Text: l}
	}
	return out
}

func yes() *bool { v := true; return &v }

var seedRecipes = []seedRecipe{
	{
		category: "tajines",
		request: types.CreateRecipeRequest{
			Slug:        "tajine-poulet-citron",
			Title:       "Tajine de poulet au citron confit",
			Description: "Le classique aux olives violettes et citron confit.",
			PrepTime:    20,
			CookTime:    70,
			Servings:    4,
			Difficulty:  "moyen",
			IsPublished: yes(),
			IsFeatured:  yes(),
			Content: &content.StructuredContent{
				Ingredients: []content.IngredientGroup{
					{Items: items("1 poulet fermier découpé", "2 citrons confits", "150 g d'olives violettes", "2 oignons")},
					{Group: "Épices", Items: items("1 c. à café de gingembre", "1 pincée de safran", "1 bouquet de coriandre")},
				},
				Instructions: []content.Instruction{
					{Name: "Mariner", Text: "Frotter le poulet avec les épices, l'huile et l'ail écrasé."},
					{Name: "Mijoter", Text: "Faire revenir les oignons puis cuire le poulet à couvert une heure."},
					{Name: "Finir", Text: "Ajouter citrons et olives et laisser réduire dix minutes."},
				},
			},
		},
	},
	{
		category: "tajines",
		request: types.CreateRecipeRequest{
			Slug:        "tajine-kefta-oeufs",
			Title:       "Tajine de kefta aux œufs",
			Description: "Boulettes de viande hachée en sauce tomate épicée.",
			PrepTime:    15,
			CookTime:    30,
			Servings:    4,
			Difficulty:  "facile",
			IsPublished: yes(),
			Content: &content.StructuredContent{
				Ingredients: []content.IngredientGroup{
					{Items: items("500 g de viande hachée", "4 œufs", "4 tomates", "1 c. à café de cumin")},
				},
				Instructions: []content.Instruction{
					{Name: "Boulettes", Text: "Assaisonner la viande et former de petites boulettes."},
					{Name: "Sauce", Text: "Cuire les tomates râpées avec les épices quinze minutes."},
					{Name: "Œufs", Text: "Ajouter les boulettes puis casser les œufs par-dessus."},
				},
			},
		},
	},
	{
		category: "couscous",
		request: types.CreateRecipeRequest{
			Slug:        "couscous-sept-legumes",
			Title:       "Couscous aux sept légumes",
			Description: "Le couscous familial du vendredi.",
			PrepTime:    40,
			CookTime:    90,
			Servings:    6,
			Difficulty:  "difficile",
			IsPublished: yes(),
			IsFeatured:  yes(),
			Content: &content.StructuredContent{
				Ingredients: []content.IngredientGroup{
					{Group: "Bouillon", Items: items("800 g d'épaule d'agneau", "2 navets", "3 carottes", "1 morceau de potiron", "2 courgettes")},
					{Group: "Semoule", Items: items("1 kg de semoule moyenne", "50 g de beurre")},
				},
				Instructions: []content.Instruction{
					{Name: "Bouillon", Text: "Cuire la viande avec oignons et épices puis ajouter les légumes par ordre de cuisson."},
					{Name: "Semoule", Text: "Cuire la semoule à la vapeur en trois fois en l'aérant entre chaque passage."},
					{Name: "Service", Text: "Dresser la semoule en dôme et disposer viande et légumes au centre."},
				},
			},
		},
	},
	{
		category: "soupes",
		request: types.CreateRecipeRequest{
			Slug:        "harira",
			Title:       "Harira",
			Description: "La soupe de la rupture du jeûne.",
			PrepTime:    20,
			CookTime:    60,
			Servings:    6,
			Difficulty:  "moyen",
			IsPublished: yes(),
			Content: &content.StructuredContent{
				Ingredients: []content.IngredientGroup{
					{Items: items("200 g de pois chiches trempés", "100 g de lentilles", "4 tomates", "1 bouquet de céleri", "50 g de farine")},
				},
				Instructions: []content.Instruction{
					{Name: "Base", Text: "Cuire la viande, les légumineuses et les herbes dans deux litres d'eau."},
					{Name: "Tedouira", Text: "Lier la soupe avec la farine délayée dans l'eau en remuant sans arrêt."},
				},
			},
		},
	},
	{
		category: "soupes",
		request: types.CreateRecipeRequest{
			Slug:        "bissara",
			Title:       "Bissara",
			Description: "Purée de fèves sèches à l'huile d'olive et au cumin.",
			PrepTime:    10,
			CookTime:    50,
			Servings:    4,
			Difficulty:  "facile",
			IsPublished: yes(),
			Content: &content.StructuredContent{
				Ingredients: []content.IngredientGroup{
					{Items: items("400 g de fèves sèches pelées", "4 gousses d'ail", "Huile d'olive", "Cumin et paprika")},
				},
				Instructions: []content.Instruction{
					{Name: "Cuisson", Text: "Cuire les fèves avec l'ail jusqu'à ce qu'elles s'écrasent."},
					{Name: "Mixer", Text: "Mixer, rectifier l'assaisonnement et servir arrosé d'huile."},
				},
			},
		},
	},
	{
		category: "patisseries",
		request: types.CreateRecipeRequest{
			Slug:        "cornes-de-gazelle",
			Title:       "Cornes de gazelle",
			Description: "Pâte fine fourrée à la pâte d'amande parfumée à la fleur d'oranger.",
			PrepTime:    60,
			CookTime:    15,
			Servings:    30,
			Difficulty:  "difficile",
			IsPublished: yes(),
			Content: &content.StructuredContent{
				Ingredients: []content.IngredientGroup{
					{Group: "Farce", Items: items("500 g d'amandes mondées", "200 g de sucre", "Eau de fleur d'oranger")},
					{Group: "Pâte", Items: items("300 g de farine", "50 g de beurre fondu")},
				},
				Instructions: []content.Instruction{
					{Name: "Farce", Text: "Mixer amandes et sucre puis lier à la fleur d'oranger."},
					{Name: "Façonner", Text: "Envelopper des boudins de farce dans la pâte étirée et former des croissants."},
					{Name: "Cuire", Text: "Cuire quinze minutes sans coloration."},
				},
			},
		},
	},
	{
		category: "salades",
		request: types.CreateRecipeRequest{
			Slug:        "zaalouk",
			Title:       "Zaalouk",
			Description: "Caviar d'aubergines à la tomate et au cumin.",
			PrepTime:    15,
			CookTime:    30,
			Servings:    4,
			Difficulty:  "facile",
			IsPublished: yes(),
			IsFeatured:  yes(),
			Content: &content.StructuredContent{
				Ingredients: []content.IngredientGroup{
					{Items: items("2 aubergines", "3 tomates", "2 gousses d'ail", "Cumin, paprika, coriandre")},
				},
				Instructions: []content.Instruction{
					{Name: "Cuisson", Text: "Cuire les aubergines en dés avec les tomates et l'ail."},
					{Name: "Écraser", Text: "Écraser à la fourchette et laisser compoter jusqu'à évaporation."},
				},
			},
		},
	},
	{
		category: "salades",
		request: types.CreateRecipeRequest{
			Slug:        "taktouka",
			Title:       "Taktouka",
			Description: "Poivrons grillés et tomates confites.",
			PrepTime:    20,
			CookTime:    25,
			Servings:    4,
			Difficulty:  "facile",
			IsPublished: yes(),
			Content: &content.StructuredContent{
				Ingredients: []content.IngredientGroup{
					{Items: items("4 poivrons", "4 tomates", "3 gousses d'ail", "Huile d'olive")},
				},
				Instructions: []content.Instruction{
					{Name: "Griller", Text: "Griller les poivrons, les peler et les couper en lanières."},
					{Name: "Confire", Text: "Cuire avec les tomates et l'ail jusqu'à obtenir une compotée."},
				},
			},
		},
	},
}
