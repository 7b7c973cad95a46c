package domain

var (
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageFailedCreateIngredient  = "failed to create ingredient"
)

type (
	IngredientCreateRequest struct {
		Name              string `json:"name" validate:"required"`
		ListOfIngredients string `json:"list_of_ingredients" validate:"required"`
		RecipeID          uint   `json:"recipe_id" validate:"required"`
	}
)
