package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/familyplate/backend/internal/domain"
)

// TargetRepo implements domain.TargetRepository.
type TargetRepo struct {
	db *gorm.DB
}

// NewTargetRepo creates a target/RDA repository.
func NewTargetRepo(db *gorm.DB) *TargetRepo {
	return &TargetRepo{db: db}
}

func (r *TargetRepo) OverridesForUser(ctx context.Context, userID uint) ([]domain.UserNutrientTarget, error) {
	var overrides []domain.UserNutrientTarget
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&overrides).Error
	if err != nil {
		return nil, err
	}
	return overrides, nil
}

func (r *TargetRepo) SeedOverride(ctx context.Context, userID, nutrientID uint, dailyTarget float64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.UserNutrientTarget{
			UserID:      userID,
			NutrientID:  nutrientID,
			DailyTarget: dailyTarget,
		}).Error
}

func (r *TargetRepo) ProfileFor(ctx context.Context, sex string, age int) (*domain.RdaProfile, error) {
	var profile domain.RdaProfile
	err := r.db.WithContext(ctx).
		Where("sex = ? AND age_min <= ? AND age_max >= ?", sex, age, age).
		Order("age_min").
		First(&profile).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

func (r *TargetRepo) ProfileByLabel(ctx context.Context, label string) (*domain.RdaProfile, error) {
	var profile domain.RdaProfile
	err := r.db.WithContext(ctx).Where("label = ?", label).First(&profile).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

func (r *TargetRepo) ValuesForProfile(ctx context.Context, profileID uint) ([]domain.RdaValue, error) {
	var values []domain.RdaValue
	err := r.db.WithContext(ctx).Where("rda_profile_id = ?", profileID).Find(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}
