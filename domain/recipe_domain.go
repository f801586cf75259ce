package domain

import "errors"

var (
	MessageSuccessGetRecipes     = "recipes retrieved successfully"
	MessageSuccessGetRecipe      = "recipe retrieved successfully"
	MessageSuccessGetSuggestions = "recipe suggestions retrieved successfully"

	MessageFailedGetRecipes     = "failed to retrieve recipes"
	MessageFailedGetRecipe      = "failed to retrieve recipe"
	MessageFailedGetSuggestions = "failed to retrieve recipe suggestions"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	RecipeResponse struct {
		ID                 string   `json:"id"`
		Name               string   `json:"name"`
		Description        string   `json:"description"`
		Category           string   `json:"category"`
		CookingTimeMinutes int      `json:"cooking_time_minutes"`
		Servings           int      `json:"servings"`
		Difficulty         string   `json:"difficulty"`
		Ingredients        []string `json:"ingredients,omitempty"`
		Instructions       []string `json:"instructions,omitempty"`
	}

	RecipeSuggestionsResponse struct {
		ProductID   string           `json:"product_id"`
		ProductName string           `json:"product_name"`
		Status      string           `json:"status"`
		Recipes     []RecipeResponse `json:"recipes"`
	}
)
