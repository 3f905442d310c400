package persistence

import (
	"time"

	"github.com/apper-canvas/nutriscancore/internal/domain"
)

// userProfile is the user_profiles row
type userProfile struct {
	ID            string    `gorm:"type:varchar(36);primarykey"`
	Name          string    `gorm:"size:100"`
	Height        *float64
	Weight        *float64
	Age           *int
	Gender        string    `gorm:"size:16"`
	Goal          string    `gorm:"size:16"`
	ActivityLevel string    `gorm:"size:32"`
	UnitSystem    string    `gorm:"size:16;not null;default:'metric'"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the table name for userProfile
func (userProfile) TableName() string {
	return "user_profiles"
}

// analyzedFood is the analyzed_foods row: one stored NutritionResult
type analyzedFood struct {
	ID                     string  `gorm:"type:varchar(36);primarykey"`
	UserProfileID          *string `gorm:"type:varchar(36);index"`
	Query                  string  `gorm:"size:255;not null"`
	FoodID                 string  `gorm:"size:64;not null"`
	Name                   string  `gorm:"size:100;not null"`
	Calories               int     `gorm:"not null"`
	Protein                float64 `gorm:"not null"`
	Carbs                  float64 `gorm:"not null"`
	Fats                   float64 `gorm:"not null"`
	PortionSize            string  `gorm:"size:32"`
	HealthScore            float64 `gorm:"not null"`
	RecommendedPortionSize *int
	DailyCalorieNeeds      *int
	BMI                    *float64
	BMICategory            string    `gorm:"size:16"`
	CreatedAt              time.Time `gorm:"autoCreateTime:false;index"`
}

// TableName specifies the table name for analyzedFood
func (analyzedFood) TableName() string {
	return "analyzed_foods"
}

func newUserProfile(r *domain.ProfileRecord) userProfile {
	p := r.Profile
	return userProfile{
		ID:            r.ID,
		Name:          r.Name,
		Height:        p.Height,
		Weight:        p.Weight,
		Age:           p.Age,
		Gender:        string(p.Gender),
		Goal:          string(p.Goal),
		ActivityLevel: string(p.ActivityLevel),
		UnitSystem:    string(p.UnitSystem),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (m userProfile) record() domain.ProfileRecord {
	return domain.ProfileRecord{
		ID:   m.ID,
		Name: m.Name,
		Profile: domain.UserProfile{
			Height:        m.Height,
			Weight:        m.Weight,
			Age:           m.Age,
			Gender:        domain.Gender(m.Gender),
			Goal:          domain.Goal(m.Goal),
			ActivityLevel: domain.ActivityLevel(m.ActivityLevel),
			UnitSystem:    domain.UnitSystem(m.UnitSystem),
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func newAnalyzedFood(r *domain.AnalysisRecord) analyzedFood {
	res := r.Result
	m := analyzedFood{
		ID:                     r.ID,
		Query:                  r.Query,
		FoodID:                 res.FoodID,
		Name:                   res.Name,
		Calories:               res.Calories,
		Protein:                res.Protein,
		Carbs:                  res.Carbs,
		Fats:                   res.Fats,
		PortionSize:            res.PortionSize,
		HealthScore:            res.HealthScore,
		RecommendedPortionSize: res.RecommendedPortionSize,
		DailyCalorieNeeds:      res.DailyCalorieNeeds,
		BMI:                    res.BMI,
		BMICategory:            string(res.BMICategory),
		CreatedAt:              r.CreatedAt,
	}
	if r.ProfileID != "" {
		id := r.ProfileID
		m.UserProfileID = &id
	}
	return m
}

func (m analyzedFood) record() domain.AnalysisRecord {
	r := domain.AnalysisRecord{
		ID:    m.ID,
		Query: m.Query,
		Result: domain.NutritionResult{
			FoodID:                 m.FoodID,
			Name:                   m.Name,
			Calories:               m.Calories,
			Protein:                m.Protein,
			Carbs:                  m.Carbs,
			Fats:                   m.Fats,
			PortionSize:            m.PortionSize,
			HealthScore:            m.HealthScore,
			DailyCalorieNeeds:      m.DailyCalorieNeeds,
			RecommendedPortionSize: m.RecommendedPortionSize,
			BMI:                    m.BMI,
			BMICategory:            domain.BMICategory(m.BMICategory),
		},
		CreatedAt: m.CreatedAt,
	}
	if m.UserProfileID != nil {
		r.ProfileID = *m.UserProfileID
	}
	return r
}
