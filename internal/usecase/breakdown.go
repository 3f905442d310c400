package usecase

import (
	"math"

	"github.com/apper-canvas/nutriscancore/internal/domain"
)

// Energy per gram of macronutrient, kcal
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

const (
	nutrientDenseScore = 8.0
	highProteinGrams   = 10.0
)

// Breakdown describes a record's energy split, benefits and serving tips
func Breakdown(food domain.FoodRecord) domain.NutritionalBreakdown {
	b := domain.NutritionalBreakdown{
		Food:           food,
		HealthBenefits: healthBenefits(food),
		CookingTips:    cookingTips(food),
	}

	if food.Calories > 0 {
		calories := float64(food.Calories)
		b.CaloriesPerGram = calories / 100
		b.ProteinPercentage = roundTo1(food.Protein * kcalPerGramProtein / calories * 100)
		b.CarbsPercentage = roundTo1(food.Carbs * kcalPerGramCarbs / calories * 100)
		b.FatsPercentage = roundTo1(food.Fats * kcalPerGramFat / calories * 100)
	}

	return b
}

func healthBenefits(food domain.FoodRecord) []string {
	benefits := []string{}

	switch food.Category {
	case domain.CategoryLentils:
		benefits = append(benefits, "High in plant-based protein", "Rich in fiber", "Good source of folate")
	case domain.CategorySouthIndian:
		benefits = append(benefits, "Fermented foods aid digestion", "Probiotic benefits")
	}

	if food.HealthScore >= nutrientDenseScore {
		benefits = append(benefits, "Nutrient-dense", "Supports overall health")
	}
	if food.Protein >= highProteinGrams {
		benefits = append(benefits, "Good protein source")
	}

	return benefits
}

func cookingTips(food domain.FoodRecord) []string {
	switch food.Category {
	case domain.CategoryIndianBread:
		return []string{"Best served hot", "Can be made with whole wheat for added nutrition"}
	case domain.CategoryNorthIndianCurry:
		return []string{"Pair with rice or bread", "Adjust spice level to taste"}
	case domain.CategorySouthIndian:
		return []string{"Serve with coconut chutney and sambar", "Best consumed fresh"}
	}
	return []string{}
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
