package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/apper-canvas/nutriscancore/internal/catalog"
	"github.com/apper-canvas/nutriscancore/internal/domain"
)

// Result sources reported on an Analysis
const (
	SourceCatalog = "Catalog"
	SourceCache   = "Cache"
)

// Cached recognition outcomes. Matches are stored as foodPrefix+id so no
// catalog id can collide with the no-match marker.
const (
	foodPrefix = "food:"
	noMatch    = "none"
)

// NutritionServiceConfig holds configuration for the nutrition service
type NutritionServiceConfig struct {
	CacheTTL            time.Duration
	EnablePreprocessing bool
	EnableDebugLogging  bool
}

// NutritionService resolves food queries and builds analyses.
// Flow: check cache -> recognize -> cache -> evaluate -> store history
type NutritionService struct {
	cache               domain.CacheRepository
	catalog             *catalog.Catalog
	matchingService     *MatchingService
	preprocessor        *QueryPreprocessor
	recommender         *RecommendationService
	history             domain.AnalysisRepository
	cacheTTL            time.Duration
	enablePreprocessing bool
	enableDebugLogging  bool
}

// NewNutritionService creates a new nutrition service with dependencies.
// history may be nil, in which case analyses are not stored.
func NewNutritionService(
	cache domain.CacheRepository,
	c *catalog.Catalog,
	recommender *RecommendationService,
	history domain.AnalysisRepository,
	config NutritionServiceConfig,
) *NutritionService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &NutritionService{
		cache:               cache,
		catalog:             c,
		matchingService:     NewMatchingService(c, MatchConfig{EnableDebugLogging: config.EnableDebugLogging}),
		preprocessor:        NewQueryPreprocessor(config.EnableDebugLogging),
		recommender:         recommender,
		history:             history,
		cacheTTL:            cacheTTL,
		enablePreprocessing: config.EnablePreprocessing,
		enableDebugLogging:  config.EnableDebugLogging,
	}
}

// Recognize resolves a query to a catalog record, consulting the cache
// first. The raw query is matched before the preprocessed one so cleaning
// never changes a direct hit. Returns the record and its source.
func (s *NutritionService) Recognize(ctx context.Context, query string) (domain.FoodRecord, string, error) {
	normalized := catalog.Normalize(query)
	if normalized == "" {
		return domain.FoodRecord{}, "", domain.ErrInvalidRequest
	}

	cacheKey := generateCacheKey(normalized)

	if id, err := s.getFromCache(ctx, cacheKey); err == nil {
		if id == noMatch {
			return domain.FoodRecord{}, SourceCache, domain.ErrFoodNotFound
		}
		if food, ok := s.catalog.ByID(id); ok {
			return food, SourceCache, nil
		}
	}

	food, ok := s.matchingService.Recognize(query)
	if !ok && s.enablePreprocessing {
		if cleaned := s.preprocessor.PreprocessQuery(query); cleaned != "" && catalog.Normalize(cleaned) != normalized {
			food, ok = s.matchingService.Recognize(cleaned)
		}
	}

	cached := noMatch
	if ok {
		cached = foodPrefix + food.ID
	}
	if err := s.setInCache(ctx, cacheKey, cached); err != nil {
		log.Printf("[CACHE] Failed to store %q: %v", cacheKey, err)
	}

	if !ok {
		return domain.FoodRecord{}, SourceCatalog, domain.ErrFoodNotFound
	}
	return food, SourceCatalog, nil
}

// Analyze recognizes the query and evaluates it against the profile.
// profileID links the stored analysis to a stored profile and may be empty.
func (s *NutritionService) Analyze(
	ctx context.Context,
	query string,
	profile domain.UserProfile,
	profileID string,
) (*domain.Analysis, error) {
	food, source, err := s.Recognize(ctx, query)
	if err != nil {
		return nil, err
	}

	result, err := s.recommender.Evaluate(profile, food)
	if err != nil {
		return nil, err
	}

	analysis := &domain.Analysis{
		Query:        query,
		Result:       result,
		Alternatives: s.recommender.Alternatives(food, 0),
		Source:       source,
	}

	if s.enableDebugLogging {
		log.Printf("[ANALYZE] %q -> %s (source: %s, alternatives: %d)", query, food.ID, source, len(analysis.Alternatives))
	}

	if s.history != nil {
		record := &domain.AnalysisRecord{
			ID:        uuid.NewString(),
			ProfileID: profileID,
			Query:     query,
			Result:    result,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.history.SaveAnalysis(ctx, record); err != nil {
			// The analysis is still useful without a history entry
			log.Printf("[ANALYZE] Failed to store analysis for %q: %v", query, err)
		} else {
			analysis.ID = record.ID
		}
	}

	return analysis, nil
}

// generateCacheKey creates the cache key for a folded query.
// Format: "recognize:{folded_query}"
func generateCacheKey(normalized string) string {
	return fmt.Sprintf("recognize:%s", normalized)
}

// getFromCache retrieves a cached outcome: a record id, or noMatch.
// Values in any other form count as a miss.
func (s *NutritionService) getFromCache(ctx context.Context, key string) (string, error) {
	if s.cache == nil {
		return "", domain.ErrCacheMiss
	}

	value, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			log.Printf("[CACHE] Lookup of %q failed: %v", key, err)
		}
		return "", err
	}

	raw, ok := value.(string)
	if !ok {
		return "", domain.ErrCacheMiss
	}
	if raw == noMatch {
		return noMatch, nil
	}
	if id, found := strings.CutPrefix(raw, foodPrefix); found && id != "" {
		return id, nil
	}
	return "", domain.ErrCacheMiss
}

// setInCache stores an encoded outcome
func (s *NutritionService) setInCache(ctx context.Context, key, id string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, key, id, s.cacheTTL)
}
