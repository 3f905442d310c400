// Package catalog holds the static food catalog and its lookup queries.
package catalog

import (
	"fmt"
	"strings"

	"github.com/apper-canvas/nutriscancore/internal/domain"
)

// entry pairs a record with its pre-folded text fields
type entry struct {
	food        domain.FoodRecord
	name        string
	description string
	category    string
	region      string
	keywords    []string
}

// Catalog is an immutable, ordered set of food records. Record order is
// the match priority and is preserved by every query. A Catalog is safe for
// concurrent use.
type Catalog struct {
	entries []entry
	byID    map[string]int
}

// New validates records and builds a catalog from them. The records are
// copied; later changes to the input slice do not affect the catalog.
func New(records []domain.FoodRecord) (*Catalog, error) {
	c := &Catalog{
		entries: make([]entry, 0, len(records)),
		byID:    make(map[string]int, len(records)),
	}

	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidCatalog, r.ID)
		}

		food := r.Clone()
		keywords := make([]string, 0, len(food.Keywords))
		for _, k := range food.Keywords {
			if nk := Normalize(k); nk != "" {
				keywords = append(keywords, nk)
			}
		}

		c.byID[food.ID] = len(c.entries)
		c.entries = append(c.entries, entry{
			food:        food,
			name:        Normalize(food.Name),
			description: Normalize(food.Description),
			category:    Normalize(string(food.Category)),
			region:      Normalize(food.Region),
			keywords:    keywords,
		})
	}

	return c, nil
}

// MustNew is like New but panics on invalid records. Intended for
// package-level fixtures.
func MustNew(records []domain.FoodRecord) *Catalog {
	c, err := New(records)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns every record in catalog order
func (c *Catalog) All() []domain.FoodRecord {
	return c.filter(func(entry) bool { return true })
}

// ByID returns the record with the given id
func (c *Catalog) ByID(id string) (domain.FoodRecord, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.FoodRecord{}, false
	}
	return c.entries[idx].food.Clone(), true
}

// SearchByCategory returns records with exactly this category tag.
// An empty category returns the full catalog.
func (c *Catalog) SearchByCategory(category domain.Category) []domain.FoodRecord {
	if category == "" {
		return c.All()
	}
	return c.filter(func(e entry) bool { return e.food.Category == category })
}

// SearchByRegion returns records whose region contains region,
// case-insensitively. An empty region returns the full catalog.
func (c *Catalog) SearchByRegion(region string) []domain.FoodRecord {
	needle := Normalize(region)
	if needle == "" {
		return c.All()
	}
	return c.filter(func(e entry) bool { return strings.Contains(e.region, needle) })
}

// Search returns records where any of name, description, category, region
// or a keyword contains the folded query. An empty query matches nothing.
func (c *Catalog) Search(query string) []domain.FoodRecord {
	needle := Normalize(query)
	if needle == "" {
		return []domain.FoodRecord{}
	}
	return c.filter(func(e entry) bool {
		if strings.Contains(e.name, needle) ||
			strings.Contains(e.description, needle) ||
			strings.Contains(e.category, needle) ||
			strings.Contains(e.region, needle) {
			return true
		}
		for _, k := range e.keywords {
			if strings.Contains(k, needle) {
				return true
			}
		}
		return false
	})
}

// Categories returns the distinct category tags in first-seen order
func (c *Catalog) Categories() []domain.Category {
	seen := make(map[domain.Category]bool)
	var out []domain.Category
	for _, e := range c.entries {
		if !seen[e.food.Category] {
			seen[e.food.Category] = true
			out = append(out, e.food.Category)
		}
	}
	return out
}

// Find returns the first record, in catalog order, for which match holds.
// match receives the folded name and keywords of each record and must not
// modify the keyword slice.
func (c *Catalog) Find(match func(name string, keywords []string) bool) (domain.FoodRecord, bool) {
	for _, e := range c.entries {
		if match(e.name, e.keywords) {
			return e.food.Clone(), true
		}
	}
	return domain.FoodRecord{}, false
}

func (c *Catalog) filter(keep func(entry) bool) []domain.FoodRecord {
	out := make([]domain.FoodRecord, 0)
	for _, e := range c.entries {
		if keep(e) {
			out = append(out, e.food.Clone())
		}
	}
	return out
}
