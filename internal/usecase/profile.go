package usecase

import (
	"fmt"

	"github.com/apper-canvas/nutriscancore/internal/domain"
)

// ParseProfile converts raw form input into a UserProfile. This is the
// single place where string enums are checked and defaults applied.
func ParseProfile(req *domain.ProfileRequest, fallbackUnits domain.UnitSystem) (domain.UserProfile, error) {
	if req == nil {
		return domain.UserProfile{UnitSystem: fallbackUnits}, nil
	}

	units, err := domain.ParseUnitSystem(req.UnitSystem, fallbackUnits)
	if err != nil {
		return domain.UserProfile{}, err
	}
	gender, err := domain.ParseGender(req.Gender)
	if err != nil {
		return domain.UserProfile{}, err
	}
	goal, err := domain.ParseGoal(req.Goal)
	if err != nil {
		return domain.UserProfile{}, err
	}
	activity, err := domain.ParseActivityLevel(req.ActivityLevel)
	if err != nil {
		return domain.UserProfile{}, err
	}

	if req.Height != nil && *req.Height < 0 {
		return domain.UserProfile{}, fmt.Errorf("%w: height must not be negative", domain.ErrInvalidRequest)
	}
	if req.Weight != nil && *req.Weight < 0 {
		return domain.UserProfile{}, fmt.Errorf("%w: weight must not be negative", domain.ErrInvalidRequest)
	}
	if req.Age != nil && *req.Age < 0 {
		return domain.UserProfile{}, fmt.Errorf("%w: age must not be negative", domain.ErrInvalidRequest)
	}

	return domain.UserProfile{
		Height:        req.Height,
		Weight:        req.Weight,
		Age:           req.Age,
		Gender:        gender,
		Goal:          goal,
		ActivityLevel: activity,
		UnitSystem:    units,
	}, nil
}
