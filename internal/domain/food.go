package domain

import (
	"fmt"
	"strings"
)

// Category is the cuisine or ingredient type tag of a catalog record
type Category string

const (
	CategoryNorthIndianCurry Category = "North Indian Curry"
	CategoryBiryani          Category = "Biryani"
	CategorySouthIndian      Category = "South Indian"
	CategoryIndianBread      Category = "Indian Bread"
	CategoryIndianSnack      Category = "Indian Snack"
	CategoryLentils          Category = "Lentils"
	CategoryIndianBeverage   Category = "Indian Beverage"
	CategoryGrain            Category = "Grain"
	CategorySpice            Category = "Spice"
)

// Categories lists every known category tag
var Categories = []Category{
	CategoryNorthIndianCurry,
	CategoryBiryani,
	CategorySouthIndian,
	CategoryIndianBread,
	CategoryIndianSnack,
	CategoryLentils,
	CategoryIndianBeverage,
	CategoryGrain,
	CategorySpice,
}

// ParseCategory converts a tag into a Category. Matching is exact.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidRequest, s)
}

// FoodRecord is one dish or ingredient in the food catalog.
// Nutrition values are stated for PortionSize; Calories is treated as a
// per-100g figure by the portion recommendation.
type FoodRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	Region      string   `json:"region" yaml:"region"`
	Image       string   `json:"image,omitempty" yaml:"image"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Calories    int      `json:"calories" yaml:"calories"`
	Protein     float64  `json:"protein" yaml:"protein"`
	Carbs       float64  `json:"carbs" yaml:"carbs"`
	Fats        float64  `json:"fats" yaml:"fats"`
	PortionSize string   `json:"portionSize" yaml:"portion_size"`
	HealthScore float64  `json:"healthScore" yaml:"health_score"`
}

// Clone returns a deep copy so callers cannot alias catalog state
func (f FoodRecord) Clone() FoodRecord {
	if f.Keywords != nil {
		f.Keywords = append([]string(nil), f.Keywords...)
	}
	return f
}

// Validate checks the record invariants
func (f FoodRecord) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("%w: record %q has no id", ErrInvalidCatalog, f.Name)
	}
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: record %q has no name", ErrInvalidCatalog, f.ID)
	}
	if _, err := ParseCategory(string(f.Category)); err != nil {
		return fmt.Errorf("%w: record %q has unknown category %q", ErrInvalidCatalog, f.ID, f.Category)
	}
	if f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fats < 0 {
		return fmt.Errorf("%w: record %q has negative nutrition values", ErrInvalidCatalog, f.ID)
	}
	if f.HealthScore < 0 || f.HealthScore > 10 {
		return fmt.Errorf("%w: record %q health score %.1f outside [0,10]", ErrInvalidCatalog, f.ID, f.HealthScore)
	}
	return nil
}

// NutritionalBreakdown is the detailed view of a single catalog record
type NutritionalBreakdown struct {
	Food              FoodRecord `json:"food"`
	CaloriesPerGram   float64    `json:"caloriesPerGram"`
	ProteinPercentage float64    `json:"proteinPercentage"`
	CarbsPercentage   float64    `json:"carbsPercentage"`
	FatsPercentage    float64    `json:"fatsPercentage"`
	HealthBenefits    []string   `json:"healthBenefits"`
	CookingTips       []string   `json:"cookingTips"`
}
