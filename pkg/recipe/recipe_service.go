package recipe

import (
	"Recipe-Catalog-Service/domain"
	"Recipe-Catalog-Service/entities"
	"Recipe-Catalog-Service/internal/metrics"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeDetail(ctx context.Context, id uint) (*entities.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.RecipeCreateRequest) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint) (domain.RecipeDeleteResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []*entities.Recipe{}
	}
	return recipes, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeCreateRequest) (*entities.Recipe, error) {
	recipe := &entities.Recipe{
		Name:        req.Name,
		CookingTime: req.CookingTime,
		Description: req.Description,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}

	metrics.RecipesCreated.Inc()
	return recipe, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) (domain.RecipeDeleteResponse, error) {
	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDeleteResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDeleteResponse{}, err
	}

	metrics.RecipesDeleted.Inc()
	return domain.RecipeDeleteResponse{
		Message: fmt.Sprintf("Recipe with id %d was successfully deleted.", id),
	}, nil
}
