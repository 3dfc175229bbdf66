package validate

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/iconlint/iconlint/internal/analysis"
	"github.com/iconlint/iconlint/internal/logging"
	"github.com/iconlint/iconlint/internal/rules"
	"github.com/iconlint/iconlint/pkg/domain"
)

// SizingValidator enforces the per-category canvas size, stroke width and
// safety-zone contract over the container subtree.
type SizingValidator struct {
	set    *rules.Set
	logger *slog.Logger
}

// NewSizingValidator wires the validator.
func NewSizingValidator(set *rules.Set, logger *slog.Logger) *SizingValidator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &SizingValidator{set: set, logger: logger}
}

// Validate runs the checks in contract order: frame geometry, content
// holder, primitive presence, stroke widths, safety zones. Later checks
// still run when earlier ones fail, so one pass reports everything fixable.
func (v *SizingValidator) Validate(container *domain.Node, category domain.Category) *domain.ValidationResult {
	result := domain.NewValidationResult()
	r := v.set.ForCategory(category)

	// (a) container squareness and size-set membership
	if container.Width != container.Height {
		result.AddError(
			fmt.Sprintf("icon frame must be square, got %gx%g", container.Width, container.Height),
			container.Name)
	} else if !containsSize(r.Sizes, container.Width) {
		result.AddError(
			fmt.Sprintf("invalid icon size %g, valid sizes for category %s: %s", container.Width, category, formatSizes(r.Sizes)),
			container.Name)
	}

	// (b) content holder present, correctly named, same size as parent
	content := container.ChildNamed(r.ContentHolderName)
	if content == nil {
		result.AddError(
			fmt.Sprintf("missing content frame: the icon must contain a child frame named %q", r.ContentHolderName),
			container.Name)
	} else if content.Width != container.Width || content.Height != container.Height {
		result.AddError(
			fmt.Sprintf("content frame %q must match the icon size %gx%g, got %gx%g",
				r.ContentHolderName, container.Width, container.Height, content.Width, content.Height),
			content.Name)
	}

	// (c) at least one primitive anywhere under the content holder
	refs := analysis.FindPrimitives(container)
	if len(refs) == 0 {
		result.AddError("no vector content found inside the container", container.Name)
		return result
	}

	// (d)+(e) per-node stroke and position checks, merged per node
	for _, ref := range refs {
		v.checkPrimitive(container, ref, r, category, result)
	}

	v.logger.Debug("sizing validated",
		"category", category,
		"primitives", len(refs),
		"errors", len(result.Errors),
		"warnings", len(result.Warnings),
	)
	return result
}

// checkPrimitive merges every stroke and safety-zone violation of one node
// into a single error listing each failing edge, so a human can locate the
// shape without re-deriving the geometry.
func (v *SizingValidator) checkPrimitive(container *domain.Node, ref analysis.PrimitiveRef, r rules.CategoryRules, category domain.Category, result *domain.ValidationResult) {
	n := ref.Node
	var problems []string

	if n.HasVisibleStroke() {
		switch {
		case n.StrokeWeight == r.Stroke.Required:
			// conforming
		case containsSize(r.Stroke.Tolerated, n.StrokeWeight):
			result.AddWarning(
				fmt.Sprintf("stroke width %g is tolerated but %g is preferred", n.StrokeWeight, r.Stroke.Required),
				n.Name)
		default:
			problems = append(problems,
				fmt.Sprintf("stroke width must be %g, got %g", r.Stroke.Required, n.StrokeWeight))
		}
	}

	// Spot illustrations cap the content extent below the frame size.
	if r.ContentInset > 0 {
		max := container.Width - r.ContentInset
		if n.Width > max || n.Height > max {
			problems = append(problems,
				fmt.Sprintf("content size %gx%g exceeds the %gpx maximum", n.Width, n.Height, max))
		}
	}

	info := analysis.PositionInfo(container, ref)
	if info.EdgesKnown {
		minDist := r.FillSafety
		if n.HasVisibleStroke() {
			minDist = r.StrokeSafety
		}
		if violated := violatedEdges(info.Edges, minDist); len(violated) > 0 {
			problems = append(problems,
				fmt.Sprintf("inside the %gpx safety zone on edges: %s", minDist, strings.Join(violated, ", ")))
		}
	}

	if len(problems) > 0 {
		result.AddError(fmt.Sprintf("shape `%s`: %s", n.Name, strings.Join(problems, "; ")), n.Name)
	}
}

// violatedEdges lists every failing edge with its measured distance,
// not just the first.
func violatedEdges(edges domain.EdgeDistances, min float64) []string {
	var out []string
	for _, e := range [...]struct {
		name string
		dist float64
	}{
		{"left", edges.Left},
		{"top", edges.Top},
		{"right", edges.Right},
		{"bottom", edges.Bottom},
	} {
		if e.dist < min {
			out = append(out, fmt.Sprintf("%s (%.2fpx)", e.name, e.dist))
		}
	}
	return out
}

func containsSize(sizes []float64, v float64) bool {
	for _, s := range sizes {
		if s == v {
			return true
		}
	}
	return false
}

func formatSizes(sizes []float64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprintf("%g", s)
	}
	return strings.Join(parts, ", ")
}
