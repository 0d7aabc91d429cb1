package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/familyplate/backend/internal/domain"
)

// NutrientRepo implements domain.NutrientRepository.
type NutrientRepo struct {
	db *gorm.DB
}

// NewNutrientRepo creates a nutrient catalog repository.
func NewNutrientRepo(db *gorm.DB) *NutrientRepo {
	return &NutrientRepo{db: db}
}

func (r *NutrientRepo) Create(ctx context.Context, nutrient *domain.Nutrient) error {
	return r.db.WithContext(ctx).Create(nutrient).Error
}

func (r *NutrientRepo) List(ctx context.Context) ([]domain.Nutrient, error) {
	var nutrients []domain.Nutrient
	err := r.db.WithContext(ctx).Order("category, name").Find(&nutrients).Error
	if err != nil {
		return nil, err
	}
	return nutrients, nil
}

func (r *NutrientRepo) GetByCodes(ctx context.Context, codes []string) ([]domain.Nutrient, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	var nutrients []domain.Nutrient
	err := r.db.WithContext(ctx).Where("code IN ?", codes).Find(&nutrients).Error
	if err != nil {
		return nil, err
	}
	return nutrients, nil
}

func (r *NutrientRepo) GetByIDs(ctx context.Context, ids []uint) ([]domain.Nutrient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var nutrients []domain.Nutrient
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&nutrients).Error
	if err != nil {
		return nil, err
	}
	return nutrients, nil
}

// FoodNutrientRepo implements domain.FoodNutrientRepository.
type FoodNutrientRepo struct {
	db *gorm.DB
}

// NewFoodNutrientRepo creates a food-nutrient repository.
func NewFoodNutrientRepo(db *gorm.DB) *FoodNutrientRepo {
	return &FoodNutrientRepo{db: db}
}

func (r *FoodNutrientRepo) HasAny(ctx context.Context, foodID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.FoodNutrient{}).
		Where("food_id = ?", foodID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FoodNutrientRepo) Has(ctx context.Context, foodID, nutrientID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.FoodNutrient{}).
		Where("food_id = ? AND nutrient_id = ?", foodID, nutrientID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert adds a row; the ON CONFLICT DO NOTHING clause makes racing
// enrichment attempts for the same (food, nutrient) pair harmless.
func (r *FoodNutrientRepo) Insert(ctx context.Context, row *domain.FoodNutrient) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
}

func (r *FoodNutrientRepo) ForFoods(ctx context.Context, foodIDs []uint) ([]domain.FoodNutrient, error) {
	if len(foodIDs) == 0 {
		return nil, nil
	}
	var rows []domain.FoodNutrient
	err := r.db.WithContext(ctx).Where("food_id IN ?", foodIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *FoodNutrientRepo) AmountsByCode(ctx context.Context, foodIDs []uint, codes []string) (map[uint]map[string]float64, error) {
	result := make(map[uint]map[string]float64)
	if len(foodIDs) == 0 || len(codes) == 0 {
		return result, nil
	}

	var rows []struct {
		FoodID        uint
		Code          string
		AmountPer100g float64 `gorm:"column:amount_per_100g"`
	}
	err := r.db.WithContext(ctx).Model(&domain.FoodNutrient{}).
		Select("food_nutrients.food_id, nutrients.code, food_nutrients.amount_per_100g").
		Joins("JOIN nutrients ON nutrients.id = food_nutrients.nutrient_id").
		Where("food_nutrients.food_id IN ? AND nutrients.code IN ?", foodIDs, codes).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if result[row.FoodID] == nil {
			result[row.FoodID] = make(map[string]float64)
		}
		result[row.FoodID][row.Code] = row.AmountPer100g
	}
	return result, nil
}
