package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/familyplate/backend/internal/domain"
)

// IntakeAggregator turns raw intake logs into per-nutrient totals. Both
// modes are pure reads with no side effects.
type IntakeAggregator struct {
	logs          domain.LogRepository
	foods         domain.FoodRepository
	foodNutrients domain.FoodNutrientRepository
}

// NewIntakeAggregator creates an intake aggregator.
func NewIntakeAggregator(
	logs domain.LogRepository,
	foods domain.FoodRepository,
	foodNutrients domain.FoodNutrientRepository,
) *IntakeAggregator {
	return &IntakeAggregator{
		logs:          logs,
		foods:         foods,
		foodNutrients: foodNutrients,
	}
}

// DayIntake is the single-day aggregation result.
type DayIntake struct {
	// GramsByFood sums logged grams per food, including hollow foods.
	GramsByFood map[uint]float64
	// NutrientTotals maps nutrient id to the day's total intake.
	NutrientTotals map[uint]float64
	// MissingFoods lists logged foods with zero nutrient rows.
	MissingFoods []domain.MissingFood
}

// Day aggregates one calendar day. Logs without a food reference (pure
// recipe logs) are skipped; hollow foods keep their grams in GramsByFood
// but contribute zero to every nutrient and are reported in MissingFoods.
func (a *IntakeAggregator) Day(ctx context.Context, userID uint, day time.Time) (*DayIntake, error) {
	logs, err := a.logs.ForDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	gramsByFood := make(map[uint]float64)
	for _, l := range logs {
		if l.FoodID != nil {
			gramsByFood[*l.FoodID] += l.Grams
		}
	}

	foodIDs := make([]uint, 0, len(gramsByFood))
	for id := range gramsByFood {
		foodIDs = append(foodIDs, id)
	}

	rows, err := a.foodNutrients.ForFoods(ctx, foodIDs)
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]float64)
	enriched := make(map[uint]bool)
	for _, row := range rows {
		enriched[row.FoodID] = true
		totals[row.NutrientID] += gramsByFood[row.FoodID] * (row.AmountPer100g / 100.0)
	}

	var hollowIDs []uint
	for _, id := range foodIDs {
		if !enriched[id] {
			hollowIDs = append(hollowIDs, id)
		}
	}

	missing := []domain.MissingFood{}
	if len(hollowIDs) > 0 {
		names, err := a.foods.NamesByIDs(ctx, hollowIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range hollowIDs {
			missing = append(missing, domain.MissingFood{ID: id, Name: names[id]})
		}
		sort.Slice(missing, func(i, j int) bool { return missing[i].ID < missing[j].ID })
	}

	return &DayIntake{
		GramsByFood:    gramsByFood,
		NutrientTotals: totals,
		MissingFoods:   missing,
	}, nil
}

// Range aggregates the four macro codes per calendar day across an
// inclusive date range. Days with no logs are absent from the result; the
// series is sparse by contract and charting clients zero-fill as needed.
func (a *IntakeAggregator) Range(ctx context.Context, userID uint, start, end time.Time) ([]domain.DailyMacroSummary, error) {
	logs, err := a.logs.ForRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	var foodIDs []uint
	for _, l := range logs {
		if l.FoodID != nil && !seen[*l.FoodID] {
			seen[*l.FoodID] = true
			foodIDs = append(foodIDs, *l.FoodID)
		}
	}

	amounts, err := a.foodNutrients.AmountsByCode(ctx, foodIDs, domain.MacroCodes)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*domain.DailyMacroSummary)
	for _, l := range logs {
		if l.FoodID == nil {
			continue
		}
		date := l.EatenAt.Format("2006-01-02")
		summary := byDate[date]
		if summary == nil {
			summary = &domain.DailyMacroSummary{Date: date}
			byDate[date] = summary
		}

		factor := l.Grams / 100.0
		macros := amounts[*l.FoodID]
		summary.EnergyKcal += macros[domain.CodeEnergyKcal] * factor
		summary.Protein += macros[domain.CodeProtein] * factor
		summary.FatTotal += macros[domain.CodeFatTotal] * factor
		summary.Carbohydrates += macros[domain.CodeCarbohydrates] * factor
	}

	result := make([]domain.DailyMacroSummary, 0, len(byDate))
	for _, s := range byDate {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}
