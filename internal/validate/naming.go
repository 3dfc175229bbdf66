package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iconlint/iconlint/internal/rules"
	"github.com/iconlint/iconlint/pkg/domain"
)

const (
	nameMinLen = 3
	nameMaxLen = 50

	// nameFallback replaces suggestions that normalize to nothing usable.
	nameFallback = "icon"
)

var (
	kebabCase = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	snakeCase = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

	// nameAlphabet is the cross-category allowed character set.
	nameAlphabet = regexp.MustCompile(`^[a-z0-9_-]*$`)
)

// NameValidator checks icon identifiers against the category casing
// grammar and produces corrected suggestions.
type NameValidator struct {
	set *rules.Set
}

// NewNameValidator wires the validator.
func NewNameValidator(set *rules.Set) *NameValidator {
	return &NameValidator{set: set}
}

// Validate runs the independent checks; several errors may fire together.
func (v *NameValidator) Validate(name string, category domain.Category) *domain.ValidationResult {
	result := domain.NewValidationResult()

	grammar, label := kebabCase, "kebab-case"
	if category == domain.CategorySpot {
		grammar, label = snakeCase, "snake_case"
	}

	if !grammar.MatchString(name) {
		result.AddError(fmt.Sprintf("name %q must be %s", name, label), name)
	}
	if len(name) < nameMinLen || len(name) > nameMaxLen {
		result.AddError(
			fmt.Sprintf("name length must be between %d and %d characters, got %d", nameMinLen, nameMaxLen, len(name)),
			name)
	}
	if !nameAlphabet.MatchString(name) {
		result.AddError(fmt.Sprintf("name %q contains characters outside [a-z0-9_-]", name), name)
	}

	if !result.IsValid {
		suggestion := v.Suggest(name, category)
		result.AddWarning(fmt.Sprintf("suggested name: `%s`", suggestion), name)
	}
	return result
}

// Suggest normalizes a candidate into a conforming identifier. Applying it
// twice yields the same string as once.
func (v *NameValidator) Suggest(name string, category domain.Category) string {
	sep := v.set.ForCategory(category).Separator

	var b strings.Builder
	lastWasSep := true // swallow leading separators
	for _, r := range strings.ToLower(name) {
		allowed := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if allowed {
			b.WriteRune(r)
			lastWasSep = false
			continue
		}
		// Anything else (including the other category's separator)
		// becomes this category's separator, collapsed.
		if !lastWasSep {
			b.WriteRune(sep)
			lastWasSep = true
		}
	}

	out := strings.TrimRight(b.String(), string(sep))
	if len(out) > nameMaxLen {
		out = strings.TrimRight(out[:nameMaxLen], string(sep))
	}
	if len(out) < nameMinLen {
		return nameFallback
	}
	return out
}
