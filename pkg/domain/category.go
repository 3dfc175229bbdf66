package domain

import "fmt"

// Category selects which design contract applies to an icon.
type Category string

const (
	// CategoryGlyph is the small single/dual-color UI icon family.
	// Cardinal sizes 32/24/20 plus scaled variants, kebab-case names.
	CategoryGlyph Category = "glyph"

	// CategorySpot is the 64px spot-illustration family.
	// Single fixed size, snake_case names, strict stroke policy.
	CategorySpot Category = "spot"
)

// ParseCategory converts user input into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryGlyph, CategorySpot:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown icon category %q (expected %q or %q)", s, CategoryGlyph, CategorySpot)
	}
}
