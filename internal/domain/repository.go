package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ProfileRepository persists user profiles
type ProfileRepository interface {
	CreateProfile(ctx context.Context, record *ProfileRecord) error
	GetProfile(ctx context.Context, id string) (*ProfileRecord, error)
	ListProfiles(ctx context.Context, limit, offset int) ([]ProfileRecord, error)
	UpdateProfile(ctx context.Context, record *ProfileRecord) error
	DeleteProfile(ctx context.Context, id string) error
}

// AnalysisRepository persists analysis results
type AnalysisRepository interface {
	SaveAnalysis(ctx context.Context, record *AnalysisRecord) error
	GetAnalysis(ctx context.Context, id string) (*AnalysisRecord, error)
	ListAnalyses(ctx context.Context, profileID string, limit, offset int) ([]AnalysisRecord, error)
	DeleteAnalysis(ctx context.Context, id string) error
}

// HistoryRepository combines profile and analysis storage
type HistoryRepository interface {
	ProfileRepository
	AnalysisRepository
}
