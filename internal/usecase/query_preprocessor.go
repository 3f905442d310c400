package usecase

import (
	"log"
	"regexp"
	"strings"
	"unicode/utf8"
)

// QueryPreprocessor strips serving and presentation noise from food names
// produced by recognition or typed by users ("2 pieces of hot samosa")
type QueryPreprocessor struct {
	enableDebugLogging bool
}

// Compiled regex patterns for query preprocessing
var (
	// Matches quantity patterns like "150g", "250 ml", "1.5 kg", "2 cups"
	quantityPattern = regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s*(g|gm|gms|grams?|kg|ml|l|litres?|liters?|oz|cups?|tbsp|tsp)\b`)

	// Matches count patterns like "2 pieces", "3 pcs", "1 plate", "x2"
	countPattern = regexp.MustCompile(`(?i)\b\d+\s*(pieces?|pcs?|plates?|bowls?|servings?|glass(es)?|nos?)\b|\bx\s*\d+\b|\b\d+\s*x\b`)

	// Matches a leading bare number ("2 samosa")
	leadingNumberPattern = regexp.MustCompile(`^\d+(\.\d+)?\s+`)

	// Matches characters that never occur in catalog names or keywords
	symbolPattern = regexp.MustCompile(`[^\p{L}\p{N}\s/()'-]`)

	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// queryNoiseWords are serving, vessel and marketing terms that do not
// identify a dish
var queryNoiseWords = map[string]bool{
	// Articles and fillers
	"a": true, "an": true, "the": true, "of": true, "some": true,

	// Serving vessels
	"plate": true, "bowl": true, "cup": true, "glass": true, "serving": true,
	"portion": true, "piece": true, "pieces": true, "slice": true,

	// Preparation descriptors
	"homemade": true, "home-made": true, "fresh": true, "hot": true,
	"warm": true, "leftover": true, "restaurant": true, "style": true,

	// Marketing terms
	"special": true, "authentic": true, "delicious": true, "tasty": true,
	"famous": true, "classic": true,

	// Size descriptors
	"small": true, "medium": true, "large": true, "big": true, "full": true,
	"half": true, "mini": true,
}

// maxQueryLength caps the preprocessed query length
const maxQueryLength = 100

// NewQueryPreprocessor creates a new query preprocessor
func NewQueryPreprocessor(enableDebugLogging bool) *QueryPreprocessor {
	return &QueryPreprocessor{
		enableDebugLogging: enableDebugLogging,
	}
}

// PreprocessQuery cleans a food name before a second recognition attempt.
// Removes quantities, counts, vessels and descriptors, and normalizes
// whitespace. The result may be empty.
func (p *QueryPreprocessor) PreprocessQuery(query string) string {
	if strings.TrimSpace(query) == "" {
		return ""
	}

	original := query

	// Step 1: Remove quantities and counts
	cleaned := quantityPattern.ReplaceAllString(query, " ")
	cleaned = countPattern.ReplaceAllString(cleaned, " ")
	cleaned = leadingNumberPattern.ReplaceAllString(strings.TrimSpace(cleaned), "")

	// Step 2: Drop stray symbols
	cleaned = symbolPattern.ReplaceAllString(cleaned, " ")

	// Step 3: Remove noise words
	cleaned = p.removeNoiseWords(cleaned)

	// Step 4: Normalize whitespace
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	// Step 5: Cap length at a word boundary, never inside a rune
	if len(cleaned) > maxQueryLength {
		cut := maxQueryLength
		for cut > 0 && !utf8.RuneStart(cleaned[cut]) {
			cut--
		}
		cleaned = cleaned[:cut]
		if lastSpace := strings.LastIndex(cleaned, " "); lastSpace > maxQueryLength/2 {
			cleaned = cleaned[:lastSpace]
		}
	}

	if p.enableDebugLogging {
		log.Printf("[PREPROCESS] Input: %q -> Output: %q", original, cleaned)
	}

	return cleaned
}

// removeNoiseWords removes serving and marketing terms from the query
func (p *QueryPreprocessor) removeNoiseWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	kept := make([]string, 0, len(words))

	for _, word := range words {
		if !queryNoiseWords[strings.Trim(word, "-'")] {
			kept = append(kept, word)
		}
	}

	return strings.Join(kept, " ")
}
