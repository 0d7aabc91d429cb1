package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/familyplate/backend/internal/domain"
)

// FoodService covers food search, custom creation and the AI smart-match
// flow.
type FoodService struct {
	foods     domain.FoodRepository
	estimator domain.Estimator
	worker    *EnrichmentWorker
}

// NewFoodService creates a food service.
func NewFoodService(foods domain.FoodRepository, estimator domain.Estimator, worker *EnrichmentWorker) *FoodService {
	return &FoodService{
		foods:     foods,
		estimator: estimator,
		worker:    worker,
	}
}

// Search returns up to 20 foods whose name contains the query,
// case-insensitively.
func (s *FoodService) Search(ctx context.Context, query string) ([]domain.Food, error) {
	return s.foods.Search(ctx, query, 20)
}

// CreateCustom creates a bare custom food and then tries to enrich it
// inline. Estimation failures are swallowed: the creation succeeds and the
// food stays hollow for the log-triggered retry path.
func (s *FoodService) CreateCustom(ctx context.Context, name string) (*domain.Food, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	}

	food := &domain.Food{
		Name:         name,
		Category:     "custom",
		DefaultUnit:  "g",
		GramsPerUnit: 1,
	}
	if err := s.foods.Create(ctx, food); err != nil {
		return nil, err
	}

	if err := s.worker.EnsureFoodNutrients(ctx, food.ID); err != nil {
		log.Printf("[Food] auto-enrichment of %q failed: %v", food.Name, err)
	}
	return food, nil
}

// ParseMeal delegates a free-text meal description to the estimator. Unlike
// enrichment, a failure here propagates: the user explicitly asked for it.
func (s *FoodService) ParseMeal(ctx context.Context, text string) ([]domain.ParsedMealItem, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrInvalidRequest)
	}
	return s.estimator.ParseMeal(ctx, text)
}

// Smart match result types.
const (
	SmartMatchTypeMatch   = "match"
	SmartMatchTypeCreated = "created"
)

// SmartMatchResult is the outcome of a smart-match query.
type SmartMatchResult struct {
	Type    string       `json:"type"`
	Food    *domain.Food `json:"food"`
	Warning string       `json:"warning,omitempty"`
}

// SmartMatch asks the estimator whether the query names an existing food or
// a new one. On any estimator failure it falls back to creating a bare
// custom food, which the single-food enrichment path will pick up later.
func (s *FoodService) SmartMatch(ctx context.Context, query string) (*SmartMatchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrInvalidRequest)
	}

	names, err := s.foods.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf("[SmartMatch] querying estimator for %q", query)
	decision, err := s.estimator.MatchOrCreate(ctx, query, names)
	if err != nil {
		log.Printf("[SmartMatch] estimator failed, falling back to bare food: %v", err)
		return s.fallbackCreate(ctx, query)
	}

	if decision.Action == domain.MatchActionMatch && decision.ExistingFoodName != "" {
		food, err := s.foods.GetByName(ctx, decision.ExistingFoodName)
		if err == nil {
			return &SmartMatchResult{Type: SmartMatchTypeMatch, Food: food}, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		// Estimator matched a name that is not in the DB; treat as create
		log.Printf("[SmartMatch] estimator matched %q but it is not in the database", decision.ExistingFoodName)
	}

	name := decision.NewFoodName
	if name == "" {
		name = query
	}

	// Catch races and estimator hallucinations before inserting
	if existing, err := s.foods.GetByName(ctx, name); err == nil {
		return &SmartMatchResult{Type: SmartMatchTypeMatch, Food: existing}, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	food := &domain.Food{
		Name:         name,
		Category:     "custom",
		DefaultUnit:  "g",
		GramsPerUnit: 1,
	}
	if err := s.foods.Create(ctx, food); err != nil {
		return nil, err
	}

	if len(decision.Nutrients) > 0 {
		if _, err := s.worker.InsertEstimates(ctx, food.ID, decision.Nutrients); err != nil {
			log.Printf("[SmartMatch] storing estimates for %q failed: %v", food.Name, err)
		}
	}

	return &SmartMatchResult{Type: SmartMatchTypeCreated, Food: food}, nil
}

// fallbackCreate creates a bare custom food from the raw query when the
// estimator is unavailable.
func (s *FoodService) fallbackCreate(ctx context.Context, query string) (*SmartMatchResult, error) {
	name := titleCase(query)

	if existing, err := s.foods.GetByName(ctx, name); err == nil {
		return &SmartMatchResult{Type: SmartMatchTypeMatch, Food: existing}, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	food := &domain.Food{
		Name:         name,
		Category:     "custom",
		DefaultUnit:  "g",
		GramsPerUnit: 1,
	}
	if err := s.foods.Create(ctx, food); err != nil {
		return nil, err
	}

	return &SmartMatchResult{
		Type:    SmartMatchTypeCreated,
		Food:    food,
		Warning: "AI enrichment failed. Added as basic item.",
	}, nil
}

// titleCase uppercases the first letter only, matching how bare custom
// foods are named.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
