package domain

import (
	"fmt"
	"strings"
)

// UnitSystem selects how profile height and weight are interpreted
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"   // centimetres, kilograms
	UnitImperial UnitSystem = "imperial" // inches, pounds
)

// Gender selects the BMR formula branch
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
)

// Goal selects the calorie adjustment applied on top of maintenance
type Goal string

const (
	GoalUnspecified Goal = ""
	GoalLoss        Goal = "loss"
	GoalMaintain    Goal = "maintain"
	GoalGain        Goal = "gain"
)

// ActivityLevel selects the BMR activity multiplier
type ActivityLevel string

const (
	ActivityUnspecified      ActivityLevel = ""
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly-active"
	ActivityModeratelyActive ActivityLevel = "moderately-active"
	ActivityVeryActive       ActivityLevel = "very-active"
	ActivityExtraActive      ActivityLevel = "extra-active"
)

// UserProfile is the biometric input to the recommendation engine.
// Nil numeric fields are absent; computations that need them fail with
// ErrMissingInput.
type UserProfile struct {
	Height        *float64      `json:"height,omitempty"`
	Weight        *float64      `json:"weight,omitempty"`
	Age           *int          `json:"age,omitempty"`
	Gender        Gender        `json:"gender,omitempty"`
	Goal          Goal          `json:"goal,omitempty"`
	ActivityLevel ActivityLevel `json:"activityLevel,omitempty"`
	UnitSystem    UnitSystem    `json:"unitSystem"`
}

// HasBodyMetrics reports whether height and weight are both present and positive
func (p UserProfile) HasBodyMetrics() bool {
	return p.Height != nil && p.Weight != nil && *p.Height > 0 && *p.Weight > 0
}

// ParseUnitSystem converts a selector value. Empty input yields fallback.
func ParseUnitSystem(s string, fallback UnitSystem) (UnitSystem, error) {
	switch UnitSystem(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return fallback, nil
	case UnitMetric:
		return UnitMetric, nil
	case UnitImperial:
		return UnitImperial, nil
	}
	return "", fmt.Errorf("%w: unknown unit system %q", ErrInvalidRequest, s)
}

// ParseGender converts a form value; empty input is unspecified
func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case GenderUnspecified, GenderMale, GenderFemale, GenderOther:
		return g, nil
	}
	return "", fmt.Errorf("%w: unknown gender %q", ErrInvalidRequest, s)
}

// ParseGoal converts a form value; empty input is unspecified
func ParseGoal(s string) (Goal, error) {
	switch g := Goal(strings.ToLower(strings.TrimSpace(s))); g {
	case GoalUnspecified, GoalLoss, GoalMaintain, GoalGain:
		return g, nil
	}
	return "", fmt.Errorf("%w: unknown goal %q", ErrInvalidRequest, s)
}

// ParseActivityLevel converts a form value; empty input is unspecified
func ParseActivityLevel(s string) (ActivityLevel, error) {
	switch a := ActivityLevel(strings.ToLower(strings.TrimSpace(s))); a {
	case ActivityUnspecified, ActivitySedentary, ActivityLightlyActive,
		ActivityModeratelyActive, ActivityVeryActive, ActivityExtraActive:
		return a, nil
	}
	return "", fmt.Errorf("%w: unknown activity level %q", ErrInvalidRequest, s)
}
