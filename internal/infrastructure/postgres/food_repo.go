package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/familyplate/backend/internal/domain"
)

// FoodRepo implements domain.FoodRepository.
type FoodRepo struct {
	db *gorm.DB
}

// NewFoodRepo creates a food repository.
func NewFoodRepo(db *gorm.DB) *FoodRepo {
	return &FoodRepo{db: db}
}

func (r *FoodRepo) Create(ctx context.Context, food *domain.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *FoodRepo) GetByID(ctx context.Context, id uint) (*domain.Food, error) {
	var food domain.Food
	if err := r.db.WithContext(ctx).First(&food, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &food, nil
}

func (r *FoodRepo) GetByName(ctx context.Context, name string) (*domain.Food, error) {
	var food domain.Food
	// lower() instead of ILIKE keeps this portable across postgres and sqlite
	err := r.db.WithContext(ctx).
		Where("lower(name) = ?", strings.ToLower(name)).
		First(&food).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &food, nil
}

func (r *FoodRepo) Search(ctx context.Context, query string, limit int) ([]domain.Food, error) {
	var foods []domain.Food
	err := r.db.WithContext(ctx).
		Where("lower(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("name").
		Limit(limit).
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *FoodRepo) ListAll(ctx context.Context) ([]domain.Food, error) {
	var foods []domain.Food
	if err := r.db.WithContext(ctx).Order("id").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *FoodRepo) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&domain.Food{}).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *FoodRepo) NamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var foods []domain.Food
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Where("id IN ?", ids).
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	for _, f := range foods {
		names[f.ID] = f.Name
	}
	return names, nil
}
