package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/familyplate/backend/internal/domain"
)

// AnalyticsService merges aggregated intake with resolved targets into the
// dashboard report structures.
type AnalyticsService struct {
	aggregator *IntakeAggregator
	resolver   *TargetResolver
	nutrients  domain.NutrientRepository
}

// NewAnalyticsService creates an analytics service.
func NewAnalyticsService(
	aggregator *IntakeAggregator,
	resolver *TargetResolver,
	nutrients domain.NutrientRepository,
) *AnalyticsService {
	return &AnalyticsService{
		aggregator: aggregator,
		resolver:   resolver,
		nutrients:  nutrients,
	}
}

// DayReport builds the single-day report: one record per nutrient seen in
// either intake or targets (union), joined with catalog metadata. Nutrients
// with no target from any tier are reported with target 0 and no source.
func (s *AnalyticsService) DayReport(ctx context.Context, userID uint, date time.Time) (*domain.DayReport, error) {
	intake, err := s.aggregator.Day(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	targets, err := s.resolver.Resolve(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	idSet := make(map[uint]bool)
	for id := range intake.NutrientTotals {
		idSet[id] = true
	}
	for id := range targets.ByNutrient {
		idSet[id] = true
	}

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	meta, err := s.nutrients.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.NutrientReport, 0, len(meta))
	for _, n := range meta {
		target := targets.ByNutrient[n.ID] // zero value means "no known target"
		reports = append(reports, domain.NutrientReport{
			Code:        n.Code,
			Name:        n.Name,
			Unit:        n.Unit,
			TotalAmount: intake.NutrientTotals[n.ID],
			DailyTarget: target.DailyTarget,
			UpperLimit:  target.UpperLimit,
			Source:      target.Source,
		})
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].Code < reports[j].Code })

	return &domain.DayReport{
		UserID:            userID,
		Date:              date.Format("2006-01-02"),
		TotalGramsByFood:  intake.GramsByFood,
		Nutrients:         reports,
		MissingFoods:      intake.MissingFoods,
		RdaProfileUsed:    targets.ProfileLabel,
		CalculatedTargets: targets.Calculated,
	}, nil
}

// History returns the per-day macro series for an inclusive date range.
func (s *AnalyticsService) History(ctx context.Context, userID uint, start, end time.Time) ([]domain.DailyMacroSummary, error) {
	return s.aggregator.Range(ctx, userID, start, end)
}
