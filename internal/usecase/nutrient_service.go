package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/familyplate/backend/internal/domain"
)

// nonAlphanumericRegex normalizes nutrient names into codes.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]`)

// NutrientService exposes the nutrient catalog and the admin flow that adds
// a new tracked nutrient.
type NutrientService struct {
	nutrients domain.NutrientRepository
	users     domain.UserRepository
	targets   domain.TargetRepository
	worker    *EnrichmentWorker
}

// NewNutrientService creates a nutrient catalog service.
func NewNutrientService(
	nutrients domain.NutrientRepository,
	users domain.UserRepository,
	targets domain.TargetRepository,
	worker *EnrichmentWorker,
) *NutrientService {
	return &NutrientService{
		nutrients: nutrients,
		users:     users,
		targets:   targets,
		worker:    worker,
	}
}

// List returns the full catalog ordered by category and name.
func (s *NutrientService) List(ctx context.Context) ([]domain.Nutrient, error) {
	return s.nutrients.List(ctx)
}

// AddTracked creates a new nutrient definition, seeds the given daily
// target as an override for every existing user, and detaches a backfill
// sweep over all foods lacking the nutrient. The sweep outlives the
// request.
func (s *NutrientService) AddTracked(ctx context.Context, name, unit, category string, dailyTarget float64) (*domain.Nutrient, error) {
	if name == "" || unit == "" || dailyTarget <= 0 {
		return nil, fmt.Errorf("%w: name, unit and daily_target are required", domain.ErrInvalidRequest)
	}
	if category == "" {
		category = "mineral"
	}

	code := nonAlphanumericRegex.ReplaceAllString(strings.ToLower(name), "_")

	if existing, err := s.nutrients.GetByCodes(ctx, []string{code}); err != nil {
		return nil, err
	} else if len(existing) > 0 {
		return nil, domain.ErrDuplicateCode
	}

	nutrient := &domain.Nutrient{
		Code:     code,
		Name:     name,
		Unit:     unit,
		Category: category,
	}
	if err := s.nutrients.Create(ctx, nutrient); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if err := s.targets.SeedOverride(ctx, u.ID, nutrient.ID, dailyTarget); err != nil {
			log.Printf("[Nutrient] seeding target for user %d failed: %v", u.ID, err)
		}
	}

	// Detached: the sweep must not be bound to this request's context
	go s.worker.BackfillNutrient(context.Background(), nutrient)

	return nutrient, nil
}
