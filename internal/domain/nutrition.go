package domain

import "time"

// BMICategory is the weight band a BMI value falls into
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// NutritionResult is the matched record combined with values derived from
// the user profile. Derived fields are nil when the profile lacks inputs.
type NutritionResult struct {
	FoodID                 string      `json:"foodId"`
	Name                   string      `json:"name"`
	Calories               int         `json:"calories"`
	Protein                float64     `json:"protein"`
	Carbs                  float64     `json:"carbs"`
	Fats                   float64     `json:"fats"`
	PortionSize            string      `json:"portionSize"`
	HealthScore            float64     `json:"healthScore"`
	DailyCalorieNeeds      *int        `json:"dailyCalorieNeeds,omitempty"`
	RecommendedPortionSize *int        `json:"recommendedPortionSize,omitempty"`
	BMI                    *float64    `json:"bmi,omitempty"`
	BMICategory            BMICategory `json:"bmiCategory,omitempty"`
}

// Analysis is the full answer to an analyze request
type Analysis struct {
	ID           string          `json:"id,omitempty"`
	Query        string          `json:"query"`
	Result       NutritionResult `json:"result"`
	Alternatives []FoodRecord    `json:"alternatives"`
	Source       string          `json:"source"` // "Catalog" or "Cache"
}

// AnalyzeRequest represents a nutrition analysis request
type AnalyzeRequest struct {
	Query      string          `json:"query" binding:"required"`
	ProfileID  string          `json:"profileId,omitempty"`
	Profile    *ProfileRequest `json:"profile,omitempty"`
	UnitSystem string          `json:"unitSystem,omitempty"`
}

// ProfileRequest is the raw form input for a user profile
type ProfileRequest struct {
	Name          string   `json:"name,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Age           *int     `json:"age,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	Goal          string   `json:"goal,omitempty"`
	ActivityLevel string   `json:"activityLevel,omitempty"`
	UnitSystem    string   `json:"unitSystem,omitempty"`
}

// ProfileRecord is a stored user profile
type ProfileRecord struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Profile   UserProfile `json:"profile"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// AnalysisRecord is a stored nutrition analysis
type AnalysisRecord struct {
	ID        string          `json:"id"`
	ProfileID string          `json:"profileId,omitempty"`
	Query     string          `json:"query"`
	Result    NutritionResult `json:"result"`
	CreatedAt time.Time       `json:"createdAt"`
}
