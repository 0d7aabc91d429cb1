package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/familyplate/backend/internal/domain"
)

// LogRepo implements domain.LogRepository.
type LogRepo struct {
	db *gorm.DB
}

// NewLogRepo creates an intake log repository.
func NewLogRepo(db *gorm.DB) *LogRepo {
	return &LogRepo{db: db}
}

func (r *LogRepo) Create(ctx context.Context, log *domain.IntakeLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *LogRepo) GetByID(ctx context.Context, id uint) (*domain.IntakeLog, error) {
	var log domain.IntakeLog
	if err := r.db.WithContext(ctx).First(&log, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &log, nil
}

func (r *LogRepo) Recent(ctx context.Context, userID uint, limit int) ([]domain.RecentLog, error) {
	var logs []domain.RecentLog
	err := r.db.WithContext(ctx).Model(&domain.IntakeLog{}).
		Select("intake_logs.id, intake_logs.food_id, foods.name AS food_name, intake_logs.grams, intake_logs.eaten_at").
		Joins("LEFT JOIN foods ON foods.id = intake_logs.food_id").
		Where("intake_logs.user_id = ?", userID).
		Order("intake_logs.eaten_at DESC").
		Limit(limit).
		Scan(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// ForDay bounds eaten_at with a half-open local-midnight interval instead of
// casting to date, which keeps the query portable across drivers.
func (r *LogRepo) ForDay(ctx context.Context, userID uint, day time.Time) ([]domain.IntakeLog, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var logs []domain.IntakeLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND eaten_at >= ? AND eaten_at < ?", userID, start, end).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *LogRepo) ForRange(ctx context.Context, userID uint, start, end time.Time) ([]domain.IntakeLog, error) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)

	var logs []domain.IntakeLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND eaten_at >= ? AND eaten_at < ?", userID, from, to).
		Order("eaten_at").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *LogRepo) UpdateGrams(ctx context.Context, id uint, grams float64) error {
	res := r.db.WithContext(ctx).Model(&domain.IntakeLog{}).
		Where("id = ?", id).
		Update("grams", grams)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LogRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.IntakeLog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
