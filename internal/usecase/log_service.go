package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/familyplate/backend/internal/domain"
)

// LogInput is the payload for creating an intake log.
type LogInput struct {
	UserID   uint
	FoodID   *uint
	RecipeID *uint
	Grams    float64
	MealType string
	EatenAt  time.Time
}

// LogService handles intake log CRUD and triggers background enrichment
// after writes.
type LogService struct {
	logs   domain.LogRepository
	worker *EnrichmentWorker
}

// NewLogService creates a log service.
func NewLogService(logs domain.LogRepository, worker *EnrichmentWorker) *LogService {
	return &LogService{logs: logs, worker: worker}
}

// Create validates and persists a log, then enqueues enrichment for the
// referenced food. Validation happens before any persistence.
func (s *LogService) Create(ctx context.Context, in LogInput) (*domain.IntakeLog, error) {
	if in.Grams <= 0 {
		return nil, fmt.Errorf("%w: grams must be positive", domain.ErrInvalidRequest)
	}
	if in.FoodID == nil && in.RecipeID == nil {
		return nil, fmt.Errorf("%w: a food or recipe reference is required", domain.ErrInvalidRequest)
	}

	eatenAt := in.EatenAt
	if eatenAt.IsZero() {
		eatenAt = time.Now()
	}

	entry := &domain.IntakeLog{
		UserID:   in.UserID,
		FoodID:   in.FoodID,
		RecipeID: in.RecipeID,
		Grams:    in.Grams,
		MealType: in.MealType,
		EatenAt:  eatenAt,
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, err
	}

	// Fire-and-forget: the log response never waits on the estimator
	if entry.FoodID != nil {
		s.worker.Enqueue(*entry.FoodID)
	}
	return entry, nil
}

// Recent returns the user's five most recent logs with food names.
func (s *LogService) Recent(ctx context.Context, userID uint) ([]domain.RecentLog, error) {
	return s.logs.Recent(ctx, userID, 5)
}

// UpdateGrams edits a log's grams after an ownership check.
func (s *LogService) UpdateGrams(ctx context.Context, actorID uint, actorAdmin bool, logID uint, grams float64) (*domain.IntakeLog, error) {
	if grams <= 0 {
		return nil, fmt.Errorf("%w: grams must be positive", domain.ErrInvalidRequest)
	}

	entry, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	if !actorAdmin && entry.UserID != actorID {
		return nil, domain.ErrForbidden
	}

	if err := s.logs.UpdateGrams(ctx, logID, grams); err != nil {
		return nil, err
	}
	entry.Grams = grams
	return entry, nil
}

// Delete removes a log after an ownership check.
func (s *LogService) Delete(ctx context.Context, actorID uint, actorAdmin bool, logID uint) error {
	entry, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return err
	}
	if !actorAdmin && entry.UserID != actorID {
		return domain.ErrForbidden
	}
	return s.logs.Delete(ctx, logID)
}
