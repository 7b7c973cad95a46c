package ingredient

import (
	"Recipe-Catalog-Service/domain"
	"Recipe-Catalog-Service/entities"
	"Recipe-Catalog-Service/internal/metrics"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.IngredientCreateRequest) (*entities.Ingredient, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.IngredientCreateRequest) (*entities.Ingredient, error) {
	ingredient, err := s.ingredientRepository.CreateIngredientForRecipe(ctx, req.RecipeID, req.Name, req.ListOfIngredients)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	metrics.IngredientsCreated.Inc()
	return ingredient, nil
}
