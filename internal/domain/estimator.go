package domain

import "context"

// ParsedMealItem is one food identified in a free-text meal description.
type ParsedMealItem struct {
	FoodName   string  `json:"food_name"`
	QuantityG  float64 `json:"quantity_g"`
	Confidence string  `json:"confidence"`
}

// Match-or-create decision actions.
const (
	MatchActionMatch  = "match"
	MatchActionCreate = "create"
)

// FoodMatchDecision is the estimator's answer to a smart-match query:
// either the name of an existing food the query is a synonym of, or a new
// food name with full nutrient estimates.
type FoodMatchDecision struct {
	Action           string             `json:"action"`
	ExistingFoodName string             `json:"existing_food_name,omitempty"`
	NewFoodName      string             `json:"new_food_name,omitempty"`
	Nutrients        map[string]float64 `json:"nutrients,omitempty"`
}

// Estimator is the narrow interface over the external AI model. Callers
// must treat any error as "no answer": meal-parse failures propagate to the
// user, while enrichment failures are swallowed and retried on a later log.
type Estimator interface {
	// EstimateNutrients returns nutrient code -> amount per 100g raw weight.
	EstimateNutrients(ctx context.Context, foodName string) (map[string]float64, error)

	// EstimateSingleNutrient returns the amount per 100g of one named
	// nutrient, used by the catalog backfill sweep.
	EstimateSingleNutrient(ctx context.Context, foodName, nutrientName string) (float64, error)

	// ParseMeal splits a free-text meal description into food items with
	// gram quantities.
	ParseMeal(ctx context.Context, text string) ([]ParsedMealItem, error)

	// MatchOrCreate decides whether query is a synonym of an existing food
	// or a new food needing creation.
	MatchOrCreate(ctx context.Context, query string, existing []string) (*FoodMatchDecision, error)
}
