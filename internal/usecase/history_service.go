package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/apper-canvas/nutriscancore/internal/domain"
)

// Paging bounds for history listings
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// HistoryService manages stored profiles and analyses
type HistoryService struct {
	repo              domain.HistoryRepository
	defaultUnitSystem domain.UnitSystem
}

// NewHistoryService creates a history service. repo may be nil, in which
// case every method returns ErrHistoryDisabled.
func NewHistoryService(repo domain.HistoryRepository, defaultUnitSystem domain.UnitSystem) *HistoryService {
	if defaultUnitSystem == "" {
		defaultUnitSystem = domain.UnitMetric
	}
	return &HistoryService{repo: repo, defaultUnitSystem: defaultUnitSystem}
}

// Enabled reports whether a repository is configured
func (s *HistoryService) Enabled() bool {
	return s != nil && s.repo != nil
}

// CreateProfile validates and stores a new profile
func (s *HistoryService) CreateProfile(ctx context.Context, req *domain.ProfileRequest) (*domain.ProfileRecord, error) {
	if !s.Enabled() {
		return nil, domain.ErrHistoryDisabled
	}

	profile, err := ParseProfile(req, s.defaultUnitSystem)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &domain.ProfileRecord{
		ID:        uuid.NewString(),
		Name:      profileName(req),
		Profile:   profile,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateProfile(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetProfile returns a stored profile
func (s *HistoryService) GetProfile(ctx context.Context, id string) (*domain.ProfileRecord, error) {
	if !s.Enabled() {
		return nil, domain.ErrHistoryDisabled
	}
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.repo.GetProfile(ctx, id)
}

// ListProfiles returns stored profiles, newest first
func (s *HistoryService) ListProfiles(ctx context.Context, limit, offset int) ([]domain.ProfileRecord, error) {
	if !s.Enabled() {
		return nil, domain.ErrHistoryDisabled
	}
	limit, offset = clampPage(limit, offset)
	return s.repo.ListProfiles(ctx, limit, offset)
}

// UpdateProfile replaces the fields of a stored profile
func (s *HistoryService) UpdateProfile(ctx context.Context, id string, req *domain.ProfileRequest) (*domain.ProfileRecord, error) {
	existing, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := ParseProfile(req, existing.Profile.UnitSystem)
	if err != nil {
		return nil, err
	}

	existing.Name = profileName(req)
	existing.Profile = profile
	existing.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateProfile(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteProfile removes a stored profile
func (s *HistoryService) DeleteProfile(ctx context.Context, id string) error {
	if !s.Enabled() {
		return domain.ErrHistoryDisabled
	}
	if err := validateID(id); err != nil {
		return err
	}
	return s.repo.DeleteProfile(ctx, id)
}

// GetAnalysis returns a stored analysis
func (s *HistoryService) GetAnalysis(ctx context.Context, id string) (*domain.AnalysisRecord, error) {
	if !s.Enabled() {
		return nil, domain.ErrHistoryDisabled
	}
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.repo.GetAnalysis(ctx, id)
}

// ListAnalyses returns stored analyses, newest first, optionally for one profile
func (s *HistoryService) ListAnalyses(ctx context.Context, profileID string, limit, offset int) ([]domain.AnalysisRecord, error) {
	if !s.Enabled() {
		return nil, domain.ErrHistoryDisabled
	}
	if profileID != "" {
		if err := validateID(profileID); err != nil {
			return nil, err
		}
	}
	limit, offset = clampPage(limit, offset)
	return s.repo.ListAnalyses(ctx, profileID, limit, offset)
}

// DeleteAnalysis removes a stored analysis
func (s *HistoryService) DeleteAnalysis(ctx context.Context, id string) error {
	if !s.Enabled() {
		return domain.ErrHistoryDisabled
	}
	if err := validateID(id); err != nil {
		return err
	}
	return s.repo.DeleteAnalysis(ctx, id)
}

// profileName title-cases the display name, keeping existing capitals
// ("mcDonald" stays "McDonald")
func profileName(req *domain.ProfileRequest) string {
	if req == nil {
		return ""
	}
	name := strings.Join(strings.Fields(req.Name), " ")
	return cases.Title(language.Und, cases.NoLower).String(name)
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed id %q", domain.ErrInvalidRequest, id)
	}
	return nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
