package usecase

import (
	"context"
	"fmt"

	"github.com/familyplate/backend/internal/domain"
)

// IngredientInput is one ingredient in a recipe write.
type IngredientInput struct {
	FoodID    uint    `json:"food_id"`
	QuantityG float64 `json:"quantity_g"`
}

// RecipeInput is the payload for creating or updating a recipe.
type RecipeInput struct {
	Name               string            `json:"name"`
	Category           string            `json:"category"`
	TotalCookedWeightG float64           `json:"total_cooked_weight_g"`
	Ingredients        []IngredientInput `json:"ingredients"`
}

// RecipeService handles recipe CRUD. Writes touching the ingredient list
// are transactional in the repository.
type RecipeService struct {
	recipes domain.RecipeRepository
}

// NewRecipeService creates a recipe service.
func NewRecipeService(recipes domain.RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

// List returns all recipes, newest first.
func (s *RecipeService) List(ctx context.Context) ([]domain.Recipe, error) {
	return s.recipes.List(ctx)
}

// Get returns one recipe with its resolved ingredient list.
func (s *RecipeService) Get(ctx context.Context, id uint) (*domain.RecipeDetail, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.recipes.Ingredients(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.RecipeDetail{Recipe: *recipe, Ingredients: ingredients}, nil
}

// Create inserts a recipe with its ingredients in one transaction.
func (s *RecipeService) Create(ctx context.Context, creatorID uint, in RecipeInput) (*domain.Recipe, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	}

	recipe := &domain.Recipe{
		Name:               in.Name,
		Category:           in.Category,
		CreatedByUserID:    creatorID,
		TotalCookedWeightG: in.TotalCookedWeightG,
		IsPublic:           true,
	}
	if err := s.recipes.CreateWithIngredients(ctx, recipe, toIngredients(in.Ingredients)); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update rewrites the recipe fields and replaces the whole ingredient list,
// after an ownership check.
func (s *RecipeService) Update(ctx context.Context, actorID uint, actorAdmin bool, recipeID uint, in RecipeInput) (*domain.Recipe, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	}

	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if !actorAdmin && recipe.CreatedByUserID != actorID {
		return nil, domain.ErrForbidden
	}

	recipe.Name = in.Name
	recipe.Category = in.Category
	recipe.TotalCookedWeightG = in.TotalCookedWeightG

	if err := s.recipes.UpdateWithIngredients(ctx, recipe, toIngredients(in.Ingredients)); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Delete removes a recipe and its ingredients after an ownership check.
func (s *RecipeService) Delete(ctx context.Context, actorID uint, actorAdmin bool, recipeID uint) error {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if !actorAdmin && recipe.CreatedByUserID != actorID {
		return domain.ErrForbidden
	}
	return s.recipes.Delete(ctx, recipeID)
}

func toIngredients(inputs []IngredientInput) []domain.RecipeIngredient {
	ingredients := make([]domain.RecipeIngredient, 0, len(inputs))
	for _, in := range inputs {
		ingredients = append(ingredients, domain.RecipeIngredient{
			FoodID:    in.FoodID,
			QuantityG: in.QuantityG,
		})
	}
	return ingredients
}
