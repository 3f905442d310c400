package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/nutriscancore/internal/domain"
)

func ids(foods []domain.FoodRecord) []string {
	out := make([]string, 0, len(foods))
	for _, f := range foods {
		out = append(out, f.ID)
	}
	return out
}

func TestNew(t *testing.T) {
	valid := domain.FoodRecord{
		ID:          "idli",
		Name:        "Idli",
		Category:    domain.CategorySouthIndian,
		Calories:    58,
		HealthScore: 9.5,
	}

	tests := []struct {
		name    string
		records []domain.FoodRecord
		wantErr bool
	}{
		{name: "valid single record", records: []domain.FoodRecord{valid}},
		{name: "empty catalog", records: nil},
		{
			name:    "duplicate id",
			records: []domain.FoodRecord{valid, valid},
			wantErr: true,
		},
		{
			name:    "missing id",
			records: []domain.FoodRecord{{Name: "Idli", Category: domain.CategorySouthIndian}},
			wantErr: true,
		},
		{
			name: "negative calories",
			records: []domain.FoodRecord{{
				ID: "x", Name: "X", Category: domain.CategoryGrain, Calories: -1,
			}},
			wantErr: true,
		},
		{
			name: "health score above ten",
			records: []domain.FoodRecord{{
				ID: "x", Name: "X", Category: domain.CategoryGrain, HealthScore: 10.5,
			}},
			wantErr: true,
		},
		{
			name: "unknown category",
			records: []domain.FoodRecord{{
				ID: "x", Name: "X", Category: "Dessert",
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.records)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidCatalog), "error = %v, want ErrInvalidCatalog", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.records), c.Len())
		})
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	records := []domain.FoodRecord{{
		ID:       "roti",
		Name:     "Chapati/Roti",
		Category: domain.CategoryIndianBread,
		Keywords: []string{"roti", "chapati"},
	}}
	c := MustNew(records)

	records[0].Name = "Changed"
	records[0].Keywords[0] = "changed"

	got, ok := c.ByID("roti")
	require.True(t, ok)
	assert.Equal(t, "Chapati/Roti", got.Name)
	assert.Equal(t, "roti", got.Keywords[0])

	got.Keywords[1] = "mutated"
	again, _ := c.ByID("roti")
	assert.Equal(t, "chapati", again.Keywords[1])
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, len(DefaultRecords), c.Len())

	all := c.All()
	assert.Equal(t, "butter-chicken", all[0].ID, "catalog order must be preserved")
	assert.Equal(t, "turmeric", all[len(all)-1].ID)

	for _, f := range all {
		assert.NoError(t, f.Validate(), "record %s", f.ID)
	}
}

func TestSearchByCategory(t *testing.T) {
	c := Default()

	t.Run("exact tag match", func(t *testing.T) {
		got := c.SearchByCategory(domain.CategoryLentils)
		assert.Equal(t, []string{"toor-dal", "moong-dal"}, ids(got))
	})

	t.Run("empty category returns everything", func(t *testing.T) {
		assert.Len(t, c.SearchByCategory(""), c.Len())
	})

	t.Run("tag match is exact", func(t *testing.T) {
		assert.Empty(t, c.SearchByCategory("lentils"))
	})
}

func TestSearchByRegion(t *testing.T) {
	c := Default()

	t.Run("case-insensitive substring", func(t *testing.T) {
		got := c.SearchByRegion("south")
		assert.Equal(t, []string{"dosa", "idli", "sambar", "vada"}, ids(got))
	})

	t.Run("matches inside region tag", func(t *testing.T) {
		got := c.SearchByRegion("HYDERABAD")
		assert.Equal(t, []string{"chicken-biryani"}, ids(got))
	})

	t.Run("empty region returns everything", func(t *testing.T) {
		assert.Len(t, c.SearchByRegion("  "), c.Len())
	})
}

func TestSearch(t *testing.T) {
	c := Default()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "keyword", query: "chole", want: []string{"chana-masala"}},
		{name: "description", query: "pigeon peas", want: []string{"toor-dal"}},
		{name: "category", query: "beverage", want: []string{"lassi", "chai"}},
		{name: "region", query: "lucknow", want: []string{"mutton-biryani"}},
		{name: "case and spaces ignored", query: "  MASALA  ", want: []string{"chana-masala", "dosa", "chai"}},
		{name: "no hits", query: "pizza", want: []string{}},
		{name: "empty query", query: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.Search(tt.query)))
		})
	}
}

func TestCategories(t *testing.T) {
	got := Default().Categories()
	assert.Len(t, got, len(domain.Categories))
	assert.Equal(t, domain.CategoryNorthIndianCurry, got[0])

	seen := map[domain.Category]bool{}
	for _, c := range got {
		assert.False(t, seen[c], "duplicate category %s", c)
		seen[c] = true
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Butter Chicken", "butter chicken"},
		{"  BUTTER   CHICKEN \n", "butter chicken"},
		{"Panéer Tikka", "paneer tikka"},
		{"Pane\u0301er", "paneer"},
		{"CRÈME  Brûlée", "creme brulee"},
		{"Chapati/Roti", "chapati/roti"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path loads default catalog", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, len(DefaultRecords), c.Len())
	})

	t.Run("loads yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		content := `
foods:
  - id: upma
    name: Upma
    description: Semolina porridge
    category: South Indian
    region: South India
    keywords: [upma, rava upma]
    calories: 190
    protein: 5.1
    carbs: 28.4
    fats: 6.2
    portion_size: 150g
    health_score: 7.8
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		c, err := Load(path)
		require.NoError(t, err)
		got, ok := c.ByID("upma")
		require.True(t, ok)
		assert.Equal(t, domain.CategorySouthIndian, got.Category)
		assert.Equal(t, "150g", got.PortionSize)
		assert.InDelta(t, 7.8, got.HealthScore, 1e-9)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := Decode(strings.NewReader("foods:\n  - id: a\n    name: A\n    category: Grain\n    calries: 10\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		_, err := Decode(strings.NewReader("foods: []\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
