package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/nutriscancore/internal/domain"
)

var _ domain.HistoryRepository = (*Repository)(nil)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)

	repo := NewRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testProfile(name string, created time.Time) *domain.ProfileRecord {
	height, weight, age := 175.0, 70.0, 30
	return &domain.ProfileRecord{
		ID:   uuid.NewString(),
		Name: name,
		Profile: domain.UserProfile{
			Height:        &height,
			Weight:        &weight,
			Age:           &age,
			Gender:        domain.GenderMale,
			Goal:          domain.GoalMaintain,
			ActivityLevel: domain.ActivitySedentary,
			UnitSystem:    domain.UnitMetric,
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func testAnalysis(profileID, query string, created time.Time) *domain.AnalysisRecord {
	daily, portion, bmi := 2035, 214, 22.9
	return &domain.AnalysisRecord{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		Query:     query,
		Result: domain.NutritionResult{
			FoodID:                 "butter-chicken",
			Name:                   "Butter Chicken",
			Calories:               285,
			Protein:                22.5,
			Carbs:                  8.2,
			Fats:                   18.5,
			PortionSize:            "150g",
			HealthScore:            6.8,
			DailyCalorieNeeds:      &daily,
			RecommendedPortionSize: &portion,
			BMI:                    &bmi,
			BMICategory:            domain.BMINormal,
		},
		CreatedAt: created,
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)

	_, err = Open(DriverNone, "")
	assert.Error(t, err)
}

func TestProfileLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	p := testProfile("Asha", now)
	require.NoError(t, repo.CreateProfile(ctx, p))

	got, err := repo.GetProfile(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
	require.NotNil(t, got.Profile.Height)
	assert.Equal(t, 175.0, *got.Profile.Height)
	require.NotNil(t, got.Profile.Age)
	assert.Equal(t, 30, *got.Profile.Age)
	assert.Equal(t, domain.GenderMale, got.Profile.Gender)
	assert.Equal(t, domain.ActivitySedentary, got.Profile.ActivityLevel)
	assert.Equal(t, domain.UnitMetric, got.Profile.UnitSystem)
	assert.WithinDuration(t, now, got.CreatedAt, time.Second)

	p.Name = "Asha R"
	p.Profile.Weight = nil
	p.Profile.Goal = domain.GoalLoss
	p.UpdatedAt = now.Add(time.Hour)
	require.NoError(t, repo.UpdateProfile(ctx, p))

	got, err = repo.GetProfile(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha R", got.Name)
	assert.Nil(t, got.Profile.Weight)
	assert.Equal(t, domain.GoalLoss, got.Profile.Goal)
	assert.WithinDuration(t, now, got.CreatedAt, time.Second)
	assert.WithinDuration(t, now.Add(time.Hour), got.UpdatedAt, time.Second)

	require.NoError(t, repo.DeleteProfile(ctx, p.ID))
	_, err = repo.GetProfile(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestProfileNotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := repo.GetProfile(ctx, id)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	missing := testProfile("ghost", time.Now())
	assert.ErrorIs(t, repo.UpdateProfile(ctx, missing), domain.ErrRecordNotFound)
	assert.ErrorIs(t, repo.DeleteProfile(ctx, id), domain.ErrRecordNotFound)
}

func TestListProfiles(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	names := []string{"first", "second", "third"}
	for i, name := range names {
		require.NoError(t, repo.CreateProfile(ctx, testProfile(name, base.Add(time.Duration(i)*time.Minute))))
	}

	all, err := repo.ListProfiles(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Name)
	assert.Equal(t, "first", all[2].Name)

	page, err := repo.ListProfiles(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].Name)
}

func TestAnalysisLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	a := testAnalysis("", "butter chicken", now)
	require.NoError(t, repo.SaveAnalysis(ctx, a))

	got, err := repo.GetAnalysis(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ProfileID)
	assert.Equal(t, "butter chicken", got.Query)
	assert.Equal(t, "butter-chicken", got.Result.FoodID)
	assert.Equal(t, 285, got.Result.Calories)
	assert.Equal(t, "150g", got.Result.PortionSize)
	require.NotNil(t, got.Result.DailyCalorieNeeds)
	assert.Equal(t, 2035, *got.Result.DailyCalorieNeeds)
	require.NotNil(t, got.Result.RecommendedPortionSize)
	assert.Equal(t, 214, *got.Result.RecommendedPortionSize)
	require.NotNil(t, got.Result.BMI)
	assert.InDelta(t, 22.9, *got.Result.BMI, 1e-9)
	assert.Equal(t, domain.BMINormal, got.Result.BMICategory)

	require.NoError(t, repo.DeleteAnalysis(ctx, a.ID))
	_, err = repo.GetAnalysis(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.ErrorIs(t, repo.DeleteAnalysis(ctx, a.ID), domain.ErrRecordNotFound)
}

func TestAnalysisWithoutProfileMetrics(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	a := testAnalysis("", "idli", time.Now())
	a.Result.DailyCalorieNeeds = nil
	a.Result.RecommendedPortionSize = nil
	a.Result.BMI = nil
	a.Result.BMICategory = ""
	require.NoError(t, repo.SaveAnalysis(ctx, a))

	got, err := repo.GetAnalysis(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Result.DailyCalorieNeeds)
	assert.Nil(t, got.Result.RecommendedPortionSize)
	assert.Nil(t, got.Result.BMI)
}

func TestListAnalyses(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	owner := testProfile("owner", base)
	require.NoError(t, repo.CreateProfile(ctx, owner))

	require.NoError(t, repo.SaveAnalysis(ctx, testAnalysis(owner.ID, "dosa", base)))
	require.NoError(t, repo.SaveAnalysis(ctx, testAnalysis(owner.ID, "idli", base.Add(time.Minute))))
	require.NoError(t, repo.SaveAnalysis(ctx, testAnalysis("", "naan", base.Add(2*time.Minute))))

	all, err := repo.ListAnalyses(ctx, "", 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "naan", all[0].Query)

	mine, err := repo.ListAnalyses(ctx, owner.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "idli", mine[0].Query)
	assert.Equal(t, owner.ID, mine[0].ProfileID)

	// deleting the profile keeps its analyses, unlinked
	require.NoError(t, repo.DeleteProfile(ctx, owner.ID))

	mine, err = repo.ListAnalyses(ctx, owner.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, mine)

	all, err = repo.ListAnalyses(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
