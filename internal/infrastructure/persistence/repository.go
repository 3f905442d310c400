package persistence

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/apper-canvas/nutriscancore/internal/domain"
)

// Supported database drivers
const (
	DriverNone     = "none"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the database and migrates the history tables
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Printf("[DB] Connected to %s database", driver)
	return db, nil
}

// Migrate creates or updates the history tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userProfile{}, &analyzedFood{}); err != nil {
		return fmt.Errorf("failed to migrate history tables: %w", err)
	}
	return nil
}

// Repository stores profiles and analyses with gorm. It implements
// domain.HistoryRepository.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over an open, migrated database
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Close closes the underlying connection pool
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateProfile inserts a profile
func (r *Repository) CreateProfile(ctx context.Context, record *domain.ProfileRecord) error {
	m := newUserProfile(record)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetProfile loads a profile by id
func (r *Repository) GetProfile(ctx context.Context, id string) (*domain.ProfileRecord, error) {
	var m userProfile
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translate(err, "profile", id)
	}
	record := m.record()
	return &record, nil
}

// ListProfiles returns profiles, newest first
func (r *Repository) ListProfiles(ctx context.Context, limit, offset int) ([]domain.ProfileRecord, error) {
	var rows []userProfile
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("id").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	records := make([]domain.ProfileRecord, len(rows))
	for i, m := range rows {
		records[i] = m.record()
	}
	return records, nil
}

// UpdateProfile overwrites every mutable column of a stored profile
func (r *Repository) UpdateProfile(ctx context.Context, record *domain.ProfileRecord) error {
	m := newUserProfile(record)
	res := r.db.WithContext(ctx).
		Model(&userProfile{}).
		Where("id = ?", m.ID).
		Select("name", "height", "weight", "age", "gender", "goal", "activity_level", "unit_system", "updated_at").
		Updates(&m)
	if res.Error != nil {
		return fmt.Errorf("failed to update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: profile %s", domain.ErrRecordNotFound, m.ID)
	}
	return nil
}

// DeleteProfile removes a profile. Its analyses are kept and unlinked.
func (r *Repository) DeleteProfile(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&analyzedFood{}).
			Where("user_profile_id = ?", id).
			Update("user_profile_id", nil).Error; err != nil {
			return fmt.Errorf("failed to unlink analyses: %w", err)
		}

		res := tx.Delete(&userProfile{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete profile: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: profile %s", domain.ErrRecordNotFound, id)
		}
		return nil
	})
}

// SaveAnalysis inserts an analysis
func (r *Repository) SaveAnalysis(ctx context.Context, record *domain.AnalysisRecord) error {
	m := newAnalyzedFood(record)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetAnalysis loads an analysis by id
func (r *Repository) GetAnalysis(ctx context.Context, id string) (*domain.AnalysisRecord, error) {
	var m analyzedFood
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translate(err, "analysis", id)
	}
	record := m.record()
	return &record, nil
}

// ListAnalyses returns analyses, newest first. A non-empty profileID
// restricts the list to that profile.
func (r *Repository) ListAnalyses(ctx context.Context, profileID string, limit, offset int) ([]domain.AnalysisRecord, error) {
	q := r.db.WithContext(ctx).Model(&analyzedFood{})
	if profileID != "" {
		q = q.Where("user_profile_id = ?", profileID)
	}

	var rows []analyzedFood
	if err := q.Order("created_at DESC").Order("id").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}

	records := make([]domain.AnalysisRecord, len(rows))
	for i, m := range rows {
		records[i] = m.record()
	}
	return records, nil
}

// DeleteAnalysis removes an analysis
func (r *Repository) DeleteAnalysis(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&analyzedFood{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete analysis: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: analysis %s", domain.ErrRecordNotFound, id)
	}
	return nil
}

func translate(err error, kind, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %s", domain.ErrRecordNotFound, kind, id)
	}
	return fmt.Errorf("failed to load %s %s: %w", kind, id, err)
}
