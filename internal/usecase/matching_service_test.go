package usecase

import (
	"testing"

	"github.com/apper-canvas/nutriscancore/internal/catalog"
	"github.com/apper-canvas/nutriscancore/internal/domain"
)

func TestNewMatchingService(t *testing.T) {
	t.Run("creates service with debug logging disabled", func(t *testing.T) {
		svc := NewMatchingService(catalog.Default(), MatchConfig{})
		if svc.enableDebugLogging {
			t.Error("expected debug logging to be disabled")
		}
	})

	t.Run("creates service with debug logging enabled", func(t *testing.T) {
		svc := NewMatchingService(catalog.Default(), MatchConfig{EnableDebugLogging: true})
		if !svc.enableDebugLogging {
			t.Error("expected debug logging to be enabled")
		}
	})
}

func TestRecognize(t *testing.T) {
	svc := NewMatchingService(catalog.Default(), MatchConfig{})

	testCases := []struct {
		name     string
		query    string
		wantID   string
		wantTier MatchTier
	}{
		{name: "exact name", query: "butter chicken", wantID: "butter-chicken", wantTier: TierExact},
		{name: "exact name uppercase", query: "BUTTER CHICKEN", wantID: "butter-chicken", wantTier: TierExact},
		{name: "exact name with surrounding whitespace", query: "  Palak Paneer\t", wantID: "palak-paneer", wantTier: TierExact},
		{name: "exact name with punctuation", query: "chapati/roti", wantID: "roti", wantTier: TierExact},
		{name: "exact match beats earlier keyword hit", query: "Dal Makhani", wantID: "dal-makhani", wantTier: TierExact},
		{name: "query inside keyword", query: "makhani", wantID: "butter-chicken", wantTier: TierKeyword},
		{name: "keyword inside query", query: "masala dosa with chutney", wantID: "dosa", wantTier: TierKeyword},
		{name: "first record in catalog order wins", query: "biryani", wantID: "chicken-biryani", wantTier: TierKeyword},
		{name: "alias", query: "Murgh Makhani", wantID: "butter-chicken", wantTier: TierKeyword},
		{name: "accent folded", query: "Pálak Panéer", wantID: "palak-paneer", wantTier: TierExact},
		{name: "partial name", query: "ric (hal", wantID: "turmeric", wantTier: TierPartial},
		{name: "no match", query: "xyzzy-not-a-food", wantTier: TierNone},
		{name: "empty query", query: "", wantTier: TierNone},
		{name: "blank query", query: "   ", wantTier: TierNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			food, tier := svc.RecognizeWithTier(tc.query)
			if tier != tc.wantTier {
				t.Errorf("tier = %q, want %q", tier, tc.wantTier)
			}
			if food.ID != tc.wantID {
				t.Errorf("ID = %q, want %q", food.ID, tc.wantID)
			}

			_, ok := svc.Recognize(tc.query)
			if ok != (tc.wantTier != TierNone) {
				t.Errorf("Recognize ok = %v, want %v", ok, tc.wantTier != TierNone)
			}
		})
	}
}

func TestRecognizeTierOrder(t *testing.T) {
	fixture := catalog.MustNew([]domain.FoodRecord{
		{ID: "tea-cake", Name: "Tea Cake", Category: domain.CategoryIndianSnack, Keywords: []string{"cake"}},
		{ID: "chai", Name: "Masala Chai", Category: domain.CategoryIndianBeverage, Keywords: []string{"spiced tea"}},
		{ID: "tea", Name: "Tea", Category: domain.CategoryIndianBeverage},
	})
	svc := NewMatchingService(fixture, MatchConfig{})

	t.Run("exact name is preferred over keyword match in earlier record", func(t *testing.T) {
		food, tier := svc.RecognizeWithTier("tea")
		if food.ID != "tea" || tier != TierExact {
			t.Errorf("got %s/%s, want tea/exact", food.ID, tier)
		}
	})

	t.Run("keyword match is preferred over partial name match", func(t *testing.T) {
		food, tier := svc.RecognizeWithTier("spiced")
		if food.ID != "chai" || tier != TierKeyword {
			t.Errorf("got %s/%s, want chai/keyword", food.ID, tier)
		}
	})

	t.Run("partial name match when no keyword applies", func(t *testing.T) {
		food, tier := svc.RecognizeWithTier("chai")
		if food.ID != "chai" || tier != TierPartial {
			t.Errorf("got %s/%s, want chai/partial", food.ID, tier)
		}
	})

	t.Run("name inside query", func(t *testing.T) {
		food, tier := svc.RecognizeWithTier("a cup of masala chai please")
		if food.ID != "chai" || tier != TierPartial {
			t.Errorf("got %s/%s, want chai/partial", food.ID, tier)
		}
	})
}

func TestRecognizeIsIdempotent(t *testing.T) {
	svc := NewMatchingService(catalog.Default(), MatchConfig{})

	for _, query := range []string{"butter chicken", "idly", "chai latte", "xyzzy-not-a-food"} {
		first, ok1 := svc.Recognize(query)
		second, ok2 := svc.Recognize(query)
		if ok1 != ok2 || first.ID != second.ID {
			t.Errorf("Recognize(%q) not idempotent: %v/%s then %v/%s", query, ok1, first.ID, ok2, second.ID)
		}
	}
}

func TestRecognizeReturnsCopy(t *testing.T) {
	svc := NewMatchingService(catalog.Default(), MatchConfig{})

	food, ok := svc.Recognize("butter chicken")
	if !ok {
		t.Fatal("expected a match")
	}
	food.Keywords[0] = "mutated"
	food.Name = "mutated"

	again, _ := svc.Recognize("butter chicken")
	if again.Name != "Butter Chicken" || again.Keywords[0] != "butter chicken" {
		t.Errorf("catalog state was modified through a returned record: %+v", again)
	}
}
