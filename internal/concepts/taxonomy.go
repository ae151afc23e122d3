// Package concepts tags paragraphs with taxonomy categories using keyword
// heuristics.
package concepts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/infoai1/taliq/internal/manuscript"
)

// Category is one taxonomy category and its subcategories.
type Category struct {
	DisplayName   string   `yaml:"display_name"`
	Subcategories []string `yaml:"subcategories"`
}

// Taxonomy is the loaded concept taxonomy.
type Taxonomy struct {
	Categories map[string]Category `yaml:"categories"`
}

// LoadTaxonomy reads a taxonomy YAML file.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: taxonomy %s", manuscript.ErrNotFound, path)
		}
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}

	var tax Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("%w: parse taxonomy: %v", manuscript.ErrInvalidFormat, err)
	}
	return &tax, nil
}

// Has reports whether the taxonomy knows a category key.
func (t *Taxonomy) Has(category string) bool {
	if t == nil {
		return false
	}
	_, ok := t.Categories[category]
	return ok
}
