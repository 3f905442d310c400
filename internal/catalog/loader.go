package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/apper-canvas/nutriscancore/internal/domain"
)

// catalogFile is the on-disk layout of a catalog file
type catalogFile struct {
	Foods []domain.FoodRecord `yaml:"foods"`
}

// Load builds a catalog from the YAML file at path. An empty path yields
// the built-in default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a YAML catalog document. Unknown fields are rejected so a
// misspelled key fails at startup instead of silently defaulting to zero.
func Decode(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}
	if len(file.Foods) == 0 {
		return nil, fmt.Errorf("%w: no foods defined", domain.ErrInvalidCatalog)
	}

	return New(file.Foods)
}
