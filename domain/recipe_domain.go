package domain

import "errors"

var (
	MessageSuccessGetRecipes   = "success get recipes"
	MessageSuccessGetRecipe    = "success get recipe"
	MessageSuccessCreateRecipe = "recipe created successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"

	MessageFailedGetRecipes   = "failed to get recipes"
	MessageFailedGetRecipe    = "failed to get recipe"
	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	RecipeCreateRequest struct {
		Name        string `json:"name" validate:"required"`
		CookingTime int    `json:"cooking_time" validate:"required"`
		Description string `json:"description" validate:"required"`
	}

	RecipeDeleteResponse struct {
		Message string `json:"message"`
	}
)
