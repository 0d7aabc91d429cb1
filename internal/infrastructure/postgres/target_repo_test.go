package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyplate/backend/internal/domain"
)

func TestTargetRepoSeedOverride(t *testing.T) {
	ctx := context.Background()
	repo := NewTargetRepo(testDB(t))

	require.NoError(t, repo.SeedOverride(ctx, 1, 2, 100))
	// Conflict on (user, nutrient): the original target survives
	require.NoError(t, repo.SeedOverride(ctx, 1, 2, 999))

	overrides, err := repo.OverridesForUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	assert.Equal(t, 100.0, overrides[0].DailyTarget)

	require.NoError(t, repo.SeedOverride(ctx, 2, 2, 100))
	other, err := repo.OverridesForUser(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestTargetRepoProfileFor(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewTargetRepo(db)

	profiles := []domain.RdaProfile{
		{Sex: "male", AgeMin: 19, AgeMax: 50, Label: "male_19_50"},
		{Sex: "male", AgeMin: 51, AgeMax: 60, Label: "male_51_60"},
		{Sex: "female", AgeMin: 19, AgeMax: 50, Label: "female_19_50"},
	}
	for i := range profiles {
		require.NoError(t, db.Create(&profiles[i]).Error)
	}

	t.Run("age band boundaries are inclusive", func(t *testing.T) {
		for _, age := range []int{19, 35, 50} {
			profile, err := repo.ProfileFor(ctx, "male", age)
			require.NoError(t, err)
			assert.Equal(t, "male_19_50", profile.Label, "age %d", age)
		}
		profile, err := repo.ProfileFor(ctx, "male", 51)
		require.NoError(t, err)
		assert.Equal(t, "male_51_60", profile.Label)
	})

	t.Run("sex is matched", func(t *testing.T) {
		profile, err := repo.ProfileFor(ctx, "female", 30)
		require.NoError(t, err)
		assert.Equal(t, "female_19_50", profile.Label)
	})

	t.Run("no band contains the age", func(t *testing.T) {
		_, err := repo.ProfileFor(ctx, "male", 12)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("lookup by label", func(t *testing.T) {
		profile, err := repo.ProfileByLabel(ctx, "male_51_60")
		require.NoError(t, err)
		assert.Equal(t, 51, profile.AgeMin)

		_, err = repo.ProfileByLabel(ctx, "nope")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestTargetRepoValuesForProfile(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := NewTargetRepo(db)

	profile := domain.RdaProfile{Sex: "male", AgeMin: 19, AgeMax: 50, Label: "male_19_50"}
	require.NoError(t, db.Create(&profile).Error)

	limit := 45.0
	require.NoError(t, db.Create(&domain.RdaValue{RdaProfileID: profile.ID, NutrientID: 1, DailyTarget: 8, UpperLimit: &limit}).Error)
	require.NoError(t, db.Create(&domain.RdaValue{RdaProfileID: profile.ID, NutrientID: 2, DailyTarget: 90}).Error)

	values, err := repo.ValuesForProfile(ctx, profile.ID)
	require.NoError(t, err)
	require.Len(t, values, 2)

	none, err := repo.ValuesForProfile(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
