package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/familyplate/backend/internal/domain"
)

// RecipeRepo implements domain.RecipeRepository. All multi-row writes run
// inside a transaction so a mid-sequence failure leaves prior state intact.
type RecipeRepo struct {
	db *gorm.DB
}

// NewRecipeRepo creates a recipe repository.
func NewRecipeRepo(db *gorm.DB) *RecipeRepo {
	return &RecipeRepo{db: db}
}

func (r *RecipeRepo) List(ctx context.Context) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *RecipeRepo) GetByID(ctx context.Context, id uint) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &recipe, nil
}

func (r *RecipeRepo) Ingredients(ctx context.Context, recipeID uint) ([]domain.RecipeIngredientDetail, error) {
	var rows []domain.RecipeIngredientDetail
	err := r.db.WithContext(ctx).Model(&domain.RecipeIngredient{}).
		Select("recipe_ingredients.food_id, foods.name AS food_name, recipe_ingredients.quantity_g").
		Joins("JOIN foods ON foods.id = recipe_ingredients.food_id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *RecipeRepo) CreateWithIngredients(ctx context.Context, recipe *domain.Recipe, ingredients []domain.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateWithIngredients replaces the whole ingredient list. A diff would be
// cheaper but full replace keeps the write simple and safe.
func (r *RecipeRepo) UpdateWithIngredients(ctx context.Context, recipe *domain.Recipe, ingredients []domain.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&domain.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].ID = 0
			ingredients[i].RecipeID = recipe.ID
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RecipeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.RecipeIngredient{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
