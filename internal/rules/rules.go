// Package rules holds the per-category design contract tables and their
// optional YAML overrides. Validators take a *Set so hosts can ship their
// own contract without forking the validators.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iconlint/iconlint/pkg/domain"
)

// StrokePolicy describes how stroke widths are judged for one category.
type StrokePolicy struct {
	// Required is the only fully conforming width.
	Required float64 `yaml:"required"`
	// Tolerated widths degrade to a warning instead of an error.
	// Empty for categories with no warning tier.
	Tolerated []float64 `yaml:"tolerated"`
}

// CategoryRules is the design contract for one icon category.
type CategoryRules struct {
	// Sizes are the valid square container sizes, cardinal plus scaled.
	Sizes []float64 `yaml:"sizes"`

	// ContentInset caps nested content at container size minus this value.
	// Zero means the content holder must match the container exactly.
	ContentInset float64 `yaml:"contentInset"`

	// ContentHolderName is the required name of the container's single
	// child frame holding the visible geometry.
	ContentHolderName string `yaml:"contentHolderName"`

	Stroke StrokePolicy `yaml:"stroke"`

	// FillSafety and StrokeSafety are the minimum edge clearances in px.
	FillSafety   float64 `yaml:"fillSafety"`
	StrokeSafety float64 `yaml:"strokeSafety"`

	// Separator is the word separator of the category's naming grammar.
	Separator rune `yaml:"-"`
}

// Thresholds are the canonical color-classification cutoffs.
// The observed host behavior used inconsistent values per call site
// (black <0.1 vs <0.2, red r>0.5 vs r>0.7); one pair is canonical here.
type Thresholds struct {
	// BlackMax is the inclusive upper bound for every channel of a
	// black/dark-gray color.
	BlackMax float64 `yaml:"blackMax"`
	// RedMin is the inclusive lower bound of the red channel and
	// RedOtherMax the inclusive upper bound of green and blue.
	RedMin      float64 `yaml:"redMin"`
	RedOtherMax float64 `yaml:"redOtherMax"`
}

// Set bundles everything a validation pass needs.
type Set struct {
	Glyph  CategoryRules `yaml:"glyph"`
	Spot   CategoryRules `yaml:"spot"`
	Colors Thresholds    `yaml:"colors"`
}

// Default returns the built-in contract.
func Default() *Set {
	return &Set{
		Glyph: CategoryRules{
			Sizes:             []float64{32, 24, 20, 28, 16, 14, 12},
			ContentHolderName: "Container",
			Stroke: StrokePolicy{
				Required:  2,
				Tolerated: []float64{1.75, 1.5},
			},
			FillSafety:   2,
			StrokeSafety: 3,
			Separator:    '-',
		},
		Spot: CategoryRules{
			Sizes:             []float64{64},
			ContentInset:      8,
			ContentHolderName: "Container",
			Stroke: StrokePolicy{
				Required: 2,
			},
			FillSafety:   2,
			StrokeSafety: 3,
			Separator:    '_',
		},
		Colors: Thresholds{
			BlackMax:    0.2,
			RedMin:      0.5,
			RedOtherMax: 0.3,
		},
	}
}

// ForCategory returns the rules of one category.
func (s *Set) ForCategory(c domain.Category) CategoryRules {
	if c == domain.CategorySpot {
		return s.Spot
	}
	return s.Glyph
}

// Load reads a YAML override file on top of the defaults.
// Absent fields keep their built-in values.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	set := Default()
	if err := yaml.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	// Separators are part of the naming grammar, not configuration.
	set.Glyph.Separator = '-'
	set.Spot.Separator = '_'
	return set, nil
}
