package usecase

import (
	"log"
	"strings"

	"github.com/apper-canvas/nutriscancore/internal/catalog"
	"github.com/apper-canvas/nutriscancore/internal/domain"
)

// MatchTier identifies which matching strategy produced a hit
type MatchTier string

const (
	TierNone    MatchTier = ""
	TierExact   MatchTier = "exact"   // folded query equals the folded name
	TierKeyword MatchTier = "keyword" // query and a keyword contain one another
	TierPartial MatchTier = "partial" // query and the name contain one another
)

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	EnableDebugLogging bool
}

// MatchingService resolves free-text food names to catalog records
type MatchingService struct {
	catalog            *catalog.Catalog
	enableDebugLogging bool
}

// NewMatchingService creates a matching service over the given catalog
func NewMatchingService(c *catalog.Catalog, config MatchConfig) *MatchingService {
	return &MatchingService{
		catalog:            c,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Recognize resolves a query to at most one record. Tiers are tried in
// order and the first record in catalog order that satisfies a tier wins:
//  1. exact name match
//  2. keyword match (either string contains the other)
//  3. partial name match (either string contains the other)
//
// A blank query or no hit yields ok=false.
func (s *MatchingService) Recognize(query string) (domain.FoodRecord, bool) {
	food, tier := s.RecognizeWithTier(query)
	return food, tier != TierNone
}

// RecognizeWithTier is Recognize that also reports the tier that matched
func (s *MatchingService) RecognizeWithTier(query string) (domain.FoodRecord, MatchTier) {
	term := catalog.Normalize(query)
	if term == "" {
		return domain.FoodRecord{}, TierNone
	}

	tiers := []struct {
		tier  MatchTier
		match func(name string, keywords []string) bool
	}{
		{TierExact, func(name string, _ []string) bool {
			return name == term
		}},
		{TierKeyword, func(_ string, keywords []string) bool {
			for _, k := range keywords {
				if strings.Contains(k, term) || strings.Contains(term, k) {
					return true
				}
			}
			return false
		}},
		{TierPartial, func(name string, _ []string) bool {
			return strings.Contains(name, term) || strings.Contains(term, name)
		}},
	}

	for _, t := range tiers {
		if food, ok := s.catalog.Find(t.match); ok {
			if s.enableDebugLogging {
				log.Printf("[MATCH] %q -> %s (%s)", query, food.ID, t.tier)
			}
			return food, t.tier
		}
	}

	if s.enableDebugLogging {
		log.Printf("[MATCH] %q -> no match", query)
	}
	return domain.FoodRecord{}, TierNone
}
