package domain

import "errors"

var (
	// ErrFoodNotFound is returned when no catalog record matches a query
	ErrFoodNotFound = errors.New("food not found in catalog")

	// ErrMissingInput is returned when a profile lacks a numeric field a
	// computation needs, or the field is not positive
	ErrMissingInput = errors.New("required profile input missing")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidCatalog is returned when catalog records violate catalog invariants
	ErrInvalidCatalog = errors.New("invalid food catalog")

	// ErrRecordNotFound is returned when a stored profile or analysis does not exist
	ErrRecordNotFound = errors.New("record not found")

	// ErrHistoryDisabled is returned when history endpoints are used without a database
	ErrHistoryDisabled = errors.New("history storage is not configured")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
