package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/familyplate/backend/internal/domain"
)

// TargetResolver produces per-nutrient daily targets for a user, falling
// through three tiers: explicit user override, calculated biometric TDEE
// (macros only), then the matching RDA profile.
type TargetResolver struct {
	users               domain.UserRepository
	targets             domain.TargetRepository
	nutrients           domain.NutrientRepository
	defaultProfileLabel string
}

// NewTargetResolver creates a target resolver. defaultProfileLabel names
// the RDA profile used when none matches the user's sex and age.
func NewTargetResolver(
	users domain.UserRepository,
	targets domain.TargetRepository,
	nutrients domain.NutrientRepository,
	defaultProfileLabel string,
) *TargetResolver {
	if defaultProfileLabel == "" {
		defaultProfileLabel = domain.DefaultRdaProfileLabel
	}
	return &TargetResolver{
		users:               users,
		targets:             targets,
		nutrients:           nutrients,
		defaultProfileLabel: defaultProfileLabel,
	}
}

// ResolvedTargets is the full resolution result for one user and date.
type ResolvedTargets struct {
	ByNutrient map[uint]domain.ResolvedTarget
	// ProfileLabel is the RDA profile consulted, if any, so the UI can
	// explain provenance.
	ProfileLabel string
	// Calculated reports whether the biometric tier produced targets.
	Calculated bool
}

// Resolve computes targets for the user as of the given report date.
func (r *TargetResolver) Resolve(ctx context.Context, userID uint, asOf time.Time) (*ResolvedTargets, error) {
	result := &ResolvedTargets{
		ByNutrient: make(map[uint]domain.ResolvedTarget),
	}

	// Tier 1: explicit user overrides
	overrides, err := r.targets.OverridesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		result.ByNutrient[o.NutrientID] = domain.ResolvedTarget{
			DailyTarget: o.DailyTarget,
			Source:      domain.SourceUserOverride,
		}
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Tier 2: biometric TDEE, macro codes only
	calculated := macroTargets(user, asOf)
	if calculated != nil {
		result.Calculated = true

		codes := make([]string, 0, len(calculated))
		for code := range calculated {
			codes = append(codes, code)
		}
		macros, err := r.nutrients.GetByCodes(ctx, codes)
		if err != nil {
			return nil, err
		}
		for _, n := range macros {
			if _, taken := result.ByNutrient[n.ID]; taken {
				continue
			}
			result.ByNutrient[n.ID] = domain.ResolvedTarget{
				DailyTarget: calculated[n.Code],
				Source:      domain.SourceCalculated,
			}
		}
	}

	// Tier 3: RDA profile by sex and age, with a fixed fallback
	var profile *domain.RdaProfile
	if user.Sex != nil && user.DateOfBirth != nil {
		age := ageAt(*user.DateOfBirth, asOf)
		profile, err = r.targets.ProfileFor(ctx, *user.Sex, age)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	if profile == nil {
		profile, err = r.targets.ProfileByLabel(ctx, r.defaultProfileLabel)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return result, nil
			}
			return nil, err
		}
	}

	result.ProfileLabel = profile.Label
	values, err := r.targets.ValuesForProfile(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if _, taken := result.ByNutrient[v.NutrientID]; taken {
			continue
		}
		result.ByNutrient[v.NutrientID] = domain.ResolvedTarget{
			DailyTarget: v.DailyTarget,
			UpperLimit:  v.UpperLimit,
			Source:      domain.SourceRdaProfile,
		}
	}

	return result, nil
}

// ageAt computes whole years between dob and asOf, subtracting one when the
// birthday has not occurred yet that year.
func ageAt(dob, asOf time.Time) int {
	age := asOf.Year() - dob.Year()
	if asOf.Month() < dob.Month() ||
		(asOf.Month() == dob.Month() && asOf.Day() < dob.Day()) {
		age--
	}
	return age
}

// macroTargets computes TDEE via Mifflin-St Jeor and splits it into the
// four macro targets (20% protein / 30% fat / 50% carbs at 4/9/4 kcal per
// gram). Returns nil unless weight, height, date of birth and sex are all
// present.
func macroTargets(user *domain.User, asOf time.Time) map[string]float64 {
	if user.WeightKG == nil || user.HeightCM == nil || user.DateOfBirth == nil || user.Sex == nil {
		return nil
	}

	age := ageAt(*user.DateOfBirth, asOf)

	bmr := 10**user.WeightKG + 6.25**user.HeightCM - 5*float64(age)
	if *user.Sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier := domain.DefaultActivityMultiplier
	if user.ActivityLevel != nil {
		if m, ok := domain.ActivityMultipliers[*user.ActivityLevel]; ok {
			multiplier = m
		}
	}
	tdee := math.Round(bmr * multiplier)

	return map[string]float64{
		domain.CodeEnergyKcal:    tdee,
		domain.CodeProtein:       math.Round(tdee * 0.20 / 4),
		domain.CodeFatTotal:      math.Round(tdee * 0.30 / 9),
		domain.CodeCarbohydrates: math.Round(tdee * 0.50 / 4),
	}
}
