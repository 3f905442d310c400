package usecase

import (
	"fmt"
	"math"
	"slices"

	"github.com/apper-canvas/nutriscancore/internal/catalog"
	"github.com/apper-canvas/nutriscancore/internal/domain"
)

// Unit conversion factors
const (
	kgPerPound  = 0.453592
	metresPerIn = 0.0254
	cmPerIn     = 2.54
)

// BMI band lower bounds; each bound belongs to the band it starts
const (
	bmiNormalFrom     = 18.5
	bmiOverweightFrom = 25.0
	bmiObeseFrom      = 30.0
)

// Harris-Benedict coefficients
const (
	maleBase, maleWeight, maleHeight, maleAge         = 88.362, 13.397, 4.799, 5.677
	femaleBase, femaleWeight, femaleHeight, femaleAge = 447.593, 9.247, 3.098, 4.330
)

// Goal adjustments in kcal/day
const (
	goalLossDelta = -500
	goalGainDelta = 500
)

// Recommendation defaults
const (
	DefaultAge               = 30
	DefaultMealAllocation    = 0.30
	DefaultAlternativesLimit = 3
)

// RecommendationConfig holds configuration for the recommendation service
type RecommendationConfig struct {
	MealAllocation    float64 // share of daily calories in one meal
	AlternativesLimit int
	DefaultAge        int
}

// RecommendationService computes calorie targets, portions and healthier
// alternatives. Every method is a pure function of its inputs and the
// immutable catalog.
type RecommendationService struct {
	catalog           *catalog.Catalog
	mealAllocation    float64
	alternativesLimit int
	defaultAge        int
}

// NewRecommendationService creates a recommendation service over the catalog
func NewRecommendationService(c *catalog.Catalog, config RecommendationConfig) *RecommendationService {
	allocation := config.MealAllocation
	if allocation <= 0 || allocation > 1 {
		allocation = DefaultMealAllocation
	}

	limit := config.AlternativesLimit
	if limit <= 0 {
		limit = DefaultAlternativesLimit
	}

	age := config.DefaultAge
	if age <= 0 {
		age = DefaultAge
	}

	return &RecommendationService{
		catalog:           c,
		mealAllocation:    allocation,
		alternativesLimit: limit,
		defaultAge:        age,
	}
}

// BMI returns weight(kg) / height(m)^2. Height and weight must be present
// and positive, otherwise ErrMissingInput is returned.
func (s *RecommendationService) BMI(profile domain.UserProfile) (float64, error) {
	if !profile.HasBodyMetrics() {
		return 0, fmt.Errorf("%w: height and weight must be positive", domain.ErrMissingInput)
	}

	weightKg := *profile.Weight
	var heightM float64
	switch profile.UnitSystem {
	case domain.UnitImperial:
		weightKg *= kgPerPound
		heightM = *profile.Height * metresPerIn
	case domain.UnitMetric:
		heightM = *profile.Height / 100
	default:
		return 0, fmt.Errorf("%w: unknown unit system %q", domain.ErrInvalidRequest, profile.UnitSystem)
	}

	return weightKg / (heightM * heightM), nil
}

// ClassifyBMI maps a BMI value to its band. Band lower bounds are inclusive.
func ClassifyBMI(bmi float64) domain.BMICategory {
	switch {
	case bmi < bmiNormalFrom:
		return domain.BMIUnderweight
	case bmi < bmiOverweightFrom:
		return domain.BMINormal
	case bmi < bmiObeseFrom:
		return domain.BMIOverweight
	default:
		return domain.BMIObese
	}
}

// BMR returns the Harris-Benedict basal metabolic rate in kcal/day.
// Males use the male coefficients; every other gender uses the female set.
func (s *RecommendationService) BMR(profile domain.UserProfile) (float64, error) {
	if !profile.HasBodyMetrics() {
		return 0, fmt.Errorf("%w: height and weight must be positive", domain.ErrMissingInput)
	}

	weightKg, heightCm := *profile.Weight, *profile.Height
	switch profile.UnitSystem {
	case domain.UnitImperial:
		weightKg *= kgPerPound
		heightCm *= cmPerIn
	case domain.UnitMetric:
	default:
		return 0, fmt.Errorf("%w: unknown unit system %q", domain.ErrInvalidRequest, profile.UnitSystem)
	}

	age := float64(s.defaultAge)
	if profile.Age != nil && *profile.Age > 0 {
		age = float64(*profile.Age)
	}

	switch profile.Gender {
	case domain.GenderMale:
		return maleBase + maleWeight*weightKg + maleHeight*heightCm - maleAge*age, nil
	case domain.GenderFemale, domain.GenderOther, domain.GenderUnspecified:
		return femaleBase + femaleWeight*weightKg + femaleHeight*heightCm - femaleAge*age, nil
	}
	return 0, fmt.Errorf("%w: unknown gender %q", domain.ErrInvalidRequest, profile.Gender)
}

// ActivityMultiplier returns the BMR multiplier for an activity level.
// An unspecified level counts as sedentary.
func ActivityMultiplier(level domain.ActivityLevel) (float64, error) {
	switch level {
	case domain.ActivitySedentary, domain.ActivityUnspecified:
		return 1.2, nil
	case domain.ActivityLightlyActive:
		return 1.375, nil
	case domain.ActivityModeratelyActive:
		return 1.55, nil
	case domain.ActivityVeryActive:
		return 1.725, nil
	case domain.ActivityExtraActive:
		return 1.9, nil
	}
	return 0, fmt.Errorf("%w: unknown activity level %q", domain.ErrInvalidRequest, level)
}

// GoalAdjustment returns the kcal/day delta applied for a goal
func GoalAdjustment(goal domain.Goal) (int, error) {
	switch goal {
	case domain.GoalLoss:
		return goalLossDelta, nil
	case domain.GoalGain:
		return goalGainDelta, nil
	case domain.GoalMaintain, domain.GoalUnspecified:
		return 0, nil
	}
	return 0, fmt.Errorf("%w: unknown goal %q", domain.ErrInvalidRequest, goal)
}

// DailyCalorieNeeds returns round(BMR * activity multiplier) plus the goal
// adjustment, in kcal/day
func (s *RecommendationService) DailyCalorieNeeds(profile domain.UserProfile) (int, error) {
	bmr, err := s.BMR(profile)
	if err != nil {
		return 0, err
	}

	multiplier, err := ActivityMultiplier(profile.ActivityLevel)
	if err != nil {
		return 0, err
	}

	delta, err := GoalAdjustment(profile.Goal)
	if err != nil {
		return 0, err
	}

	return int(math.Round(bmr*multiplier)) + delta, nil
}

// RecommendedPortion returns the grams of food that fill one meal's share
// of the daily calorie needs. Food calories are treated as per 100g.
func (s *RecommendationService) RecommendedPortion(profile domain.UserProfile, food domain.FoodRecord) (int, error) {
	daily, err := s.DailyCalorieNeeds(profile)
	if err != nil {
		return 0, err
	}
	return s.portionFor(daily, food)
}

func (s *RecommendationService) portionFor(dailyCalories int, food domain.FoodRecord) (int, error) {
	if food.Calories <= 0 {
		return 0, fmt.Errorf("%w: %s has no calorie data", domain.ErrMissingInput, food.ID)
	}

	mealCalories := float64(dailyCalories) * s.mealAllocation
	caloriesPerGram := float64(food.Calories) / 100
	return int(math.Round(mealCalories / caloriesPerGram)), nil
}

// Alternatives returns up to limit catalog records with a strictly higher
// health score than food, excluding food itself. Records in the same
// category are preferred; when there are none the whole catalog is used.
// Results are ordered by health score, descending, ties in catalog order.
// A non-positive limit uses the configured default.
func (s *RecommendationService) Alternatives(food domain.FoodRecord, limit int) []domain.FoodRecord {
	if limit <= 0 {
		limit = s.alternativesLimit
	}

	healthier := func(f domain.FoodRecord) bool {
		return f.ID != food.ID && f.HealthScore > food.HealthScore
	}

	var alternatives []domain.FoodRecord
	for _, f := range s.catalog.SearchByCategory(food.Category) {
		if food.Category != "" && healthier(f) {
			alternatives = append(alternatives, f)
		}
	}

	if len(alternatives) == 0 {
		for _, f := range s.catalog.All() {
			if healthier(f) {
				alternatives = append(alternatives, f)
			}
		}
	}

	slices.SortStableFunc(alternatives, func(a, b domain.FoodRecord) int {
		switch {
		case a.HealthScore > b.HealthScore:
			return -1
		case a.HealthScore < b.HealthScore:
			return 1
		}
		return 0
	})

	if len(alternatives) > limit {
		alternatives = alternatives[:limit]
	}
	if alternatives == nil {
		alternatives = []domain.FoodRecord{}
	}
	return alternatives
}

// Evaluate combines a matched record with the profile into a
// NutritionResult. Profile-derived fields stay nil when the profile lacks
// body metrics; other profile errors are returned.
func (s *RecommendationService) Evaluate(profile domain.UserProfile, food domain.FoodRecord) (domain.NutritionResult, error) {
	result := domain.NutritionResult{
		FoodID:      food.ID,
		Name:        food.Name,
		Calories:    food.Calories,
		Protein:     food.Protein,
		Carbs:       food.Carbs,
		Fats:        food.Fats,
		PortionSize: food.PortionSize,
		HealthScore: food.HealthScore,
	}

	if !profile.HasBodyMetrics() {
		return result, nil
	}

	bmi, err := s.BMI(profile)
	if err != nil {
		return result, err
	}
	bmi = math.Round(bmi*10) / 10
	result.BMI = &bmi
	result.BMICategory = ClassifyBMI(bmi)

	daily, err := s.DailyCalorieNeeds(profile)
	if err != nil {
		return result, err
	}
	result.DailyCalorieNeeds = &daily

	if portion, err := s.portionFor(daily, food); err == nil {
		result.RecommendedPortionSize = &portion
	}

	return result, nil
}
