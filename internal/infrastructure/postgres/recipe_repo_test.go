package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyplate/backend/internal/domain"
)

func recipeFixture(t *testing.T) (context.Context, *RecipeRepo, []uint) {
	t.Helper()
	ctx := context.Background()
	db := testDB(t)
	foods := NewFoodRepo(db)

	var foodIDs []uint
	for _, name := range []string{"Lentils", "Onion", "Carrot"} {
		food := &domain.Food{Name: name}
		require.NoError(t, foods.Create(ctx, food))
		foodIDs = append(foodIDs, food.ID)
	}
	return ctx, NewRecipeRepo(db), foodIDs
}

func TestRecipeRepoCreateWithIngredients(t *testing.T) {
	ctx, repo, foodIDs := recipeFixture(t)

	recipe := &domain.Recipe{Name: "Lentil soup", CreatedByUserID: 1, IsPublic: true}
	err := repo.CreateWithIngredients(ctx, recipe, []domain.RecipeIngredient{
		{FoodID: foodIDs[0], QuantityG: 300},
		{FoodID: foodIDs[1], QuantityG: 80},
	})
	require.NoError(t, err)
	require.NotZero(t, recipe.ID)

	ingredients, err := repo.Ingredients(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "Lentils", ingredients[0].FoodName)
	assert.Equal(t, 300.0, ingredients[0].QuantityG)
}

func TestRecipeRepoUpdateReplacesIngredients(t *testing.T) {
	ctx, repo, foodIDs := recipeFixture(t)

	recipe := &domain.Recipe{Name: "Lentil soup", CreatedByUserID: 1}
	require.NoError(t, repo.CreateWithIngredients(ctx, recipe, []domain.RecipeIngredient{
		{FoodID: foodIDs[0], QuantityG: 300},
		{FoodID: foodIDs[1], QuantityG: 80},
	}))

	recipe.Name = "Hearty lentil soup"
	require.NoError(t, repo.UpdateWithIngredients(ctx, recipe, []domain.RecipeIngredient{
		{FoodID: foodIDs[2], QuantityG: 120},
	}))

	got, err := repo.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hearty lentil soup", got.Name)

	ingredients, err := repo.Ingredients(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "Carrot", ingredients[0].FoodName)
}

func TestRecipeRepoDelete(t *testing.T) {
	ctx, repo, foodIDs := recipeFixture(t)

	recipe := &domain.Recipe{Name: "Lentil soup", CreatedByUserID: 1}
	require.NoError(t, repo.CreateWithIngredients(ctx, recipe, []domain.RecipeIngredient{
		{FoodID: foodIDs[0], QuantityG: 300},
	}))

	require.NoError(t, repo.Delete(ctx, recipe.ID))

	_, err := repo.GetByID(ctx, recipe.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	ingredients, err := repo.Ingredients(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, ingredients)

	assert.True(t, errors.Is(repo.Delete(ctx, recipe.ID), domain.ErrNotFound))
}

func TestRecipeRepoListNewestFirst(t *testing.T) {
	ctx, repo, _ := recipeFixture(t)

	first := &domain.Recipe{Name: "First"}
	second := &domain.Recipe{Name: "Second"}
	require.NoError(t, repo.CreateWithIngredients(ctx, first, nil))
	require.NoError(t, repo.CreateWithIngredients(ctx, second, nil))

	recipes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Second", recipes[0].Name)
	assert.Equal(t, "First", recipes[1].Name)
}
