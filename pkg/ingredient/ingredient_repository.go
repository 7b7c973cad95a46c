package ingredient

import (
	"Recipe-Catalog-Service/entities"
	"context"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		CreateIngredientForRecipe(ctx context.Context, recipeID uint, name, listOfIngredients string) (*entities.Ingredient, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

// CreateIngredientForRecipe looks up the parent recipe and inserts the
// ingredient in a single transaction. CookingTime and Description come from
// the parent row; a missing parent aborts before anything is written.
func (r *ingredientRepository) CreateIngredientForRecipe(ctx context.Context, recipeID uint, name, listOfIngredients string) (*entities.Ingredient, error) {
	var ingredient *entities.Ingredient

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.Where("id = ?", recipeID).First(&recipe).Error; err != nil {
			return err
		}

		ingredient = &entities.Ingredient{
			Name:              name,
			CookingTime:       recipe.CookingTime,
			Description:       recipe.Description,
			ListOfIngredients: listOfIngredients,
			RecipeID:          recipe.ID,
		}
		return tx.Create(ingredient).Error
	})
	if err != nil {
		return nil, err
	}

	return ingredient, nil
}
