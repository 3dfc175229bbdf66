package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iconlint/iconlint/internal/rules"
	"github.com/iconlint/iconlint/internal/validate"
	"github.com/iconlint/iconlint/pkg/domain"
)

func blackFill() domain.Paints {
	return domain.Paints{Items: []domain.Paint{{Type: domain.PaintSolid, Color: domain.RGB{}, Visible: true}}}
}

func redFill() domain.Paints {
	return domain.Paints{Items: []domain.Paint{{Type: domain.PaintSolid, Color: domain.RGB{R: 1}, Visible: true}}}
}

func iconContainer(children ...*domain.Node) *domain.Node {
	content := &domain.Node{Type: domain.NodeTypeFrame, Name: "Container", Width: 32, Height: 32, Children: children}
	return &domain.Node{Type: domain.NodeTypeFrame, Name: "icon", Width: 32, Height: 32, Children: []*domain.Node{content}}
}

func TestStructureValidator_Terminal(t *testing.T) {
	v := validate.NewStructureValidator(rules.Default(), nil)

	t.Run("Empty Container", func(t *testing.T) {
		container := &domain.Node{Type: domain.NodeTypeFrame, Name: "icon", Width: 32, Height: 32}
		result := v.Validate(container, domain.CategoryGlyph)
		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0].Message, "empty container")
	})

	t.Run("No Vector Content", func(t *testing.T) {
		result := v.Validate(iconContainer(), domain.CategoryGlyph)
		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0].Message, "no vector content")
	})
}

func TestStructureValidator_Remediation(t *testing.T) {
	v := validate.NewStructureValidator(rules.Default(), nil)

	t.Run("Ready Single Shape", func(t *testing.T) {
		container := iconContainer(
			&domain.Node{Type: domain.NodeTypeVector, Name: "Vector", Fills: blackFill()},
		)
		result, ready := v.ValidateWithReadiness(container, domain.CategoryGlyph)
		assert.True(t, result.IsValid)
		assert.Empty(t, ready.Steps)
	})

	t.Run("Stroke Requires Outline", func(t *testing.T) {
		container := iconContainer(&domain.Node{
			Type: domain.NodeTypeVector, Name: "Vector",
			Fills:        blackFill(),
			StrokeWeight: 2,
			Strokes:      blackFill(),
		})
		result, ready := v.ValidateWithReadiness(container, domain.CategoryGlyph)
		assert.False(t, result.IsValid)
		assert.Contains(t, ready.Steps, validate.StepOutline)
	})

	t.Run("Two Black Shapes Require Union And Not Flatten", func(t *testing.T) {
		container := iconContainer(
			&domain.Node{Type: domain.NodeTypeVector, Name: "a", Fills: blackFill()},
			&domain.Node{Type: domain.NodeTypeVector, Name: "b", Fills: blackFill()},
		)
		result, ready := v.ValidateWithReadiness(container, domain.CategoryGlyph)
		assert.False(t, result.IsValid)
		assert.Contains(t, ready.Steps, validate.StepUnion)
		// A hypothetical union leaves a single shape, so no flatten.
		assert.NotContains(t, ready.Steps, validate.StepFlatten)
	})

	t.Run("Black Plus Unclassified Requires Flatten", func(t *testing.T) {
		gray := domain.Paints{Items: []domain.Paint{{Type: domain.PaintSolid, Color: domain.RGB{R: 0.5, G: 0.5, B: 0.5}, Visible: true}}}
		container := iconContainer(
			&domain.Node{Type: domain.NodeTypeVector, Name: "a", Fills: blackFill()},
			&domain.Node{Type: domain.NodeTypeVector, Name: "b", Fills: gray},
		)
		_, ready := v.ValidateWithReadiness(container, domain.CategoryGlyph)
		assert.Contains(t, ready.Steps, validate.StepFlatten)
		assert.NotContains(t, ready.Steps, validate.StepUnion)
	})

	t.Run("Combined Message Is One Error", func(t *testing.T) {
		container := iconContainer(
			&domain.Node{Type: domain.NodeTypeVector, Name: "a", Fills: blackFill(), StrokeWeight: 2, Strokes: blackFill()},
			&domain.Node{Type: domain.NodeTypeVector, Name: "b", Fills: blackFill()},
		)
		result, ready := v.ValidateWithReadiness(container, domain.CategoryGlyph)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, []string{validate.StepOutline, validate.StepUnion}, ready.Steps)
		// The checklist is ordered and numbered.
		msg := result.Errors[0].Message
		assert.Less(t, strings.Index(msg, "Outline"), strings.Index(msg, "Union"))
	})
}

func TestStructureValidator_DualColor(t *testing.T) {
	v := validate.NewStructureValidator(rules.Default(), nil)

	spotContainer := func(children ...*domain.Node) *domain.Node {
		content := &domain.Node{Type: domain.NodeTypeFrame, Name: "Container", Width: 64, Height: 64, Children: children}
		return &domain.Node{Type: domain.NodeTypeFrame, Name: "icon", Width: 64, Height: 64, Children: []*domain.Node{content}}
	}

	t.Run("One Black One Red Requires Flatten", func(t *testing.T) {
		container := spotContainer(
			&domain.Node{Type: domain.NodeTypeVector, Name: "black", Fills: blackFill()},
			&domain.Node{Type: domain.NodeTypeVector, Name: "red", Fills: redFill()},
		)
		_, ready := v.ValidateWithReadiness(container, domain.CategorySpot)
		assert.Contains(t, ready.Steps, validate.StepFlatten)
	})

	t.Run("Single Multi Region Shape Is Ready", func(t *testing.T) {
		// One flattened shape whose boolean children carry both colors:
		// it belongs to both groups but is literally the same node.
		container := spotContainer(&domain.Node{
			Type: domain.NodeTypeBoolean, Name: "shape",
			Children: []*domain.Node{
				{Type: domain.NodeTypeVector, Name: "b", Fills: blackFill()},
				{Type: domain.NodeTypeVector, Name: "r", Fills: redFill()},
			},
		})
		result, ready := v.ValidateWithReadiness(container, domain.CategorySpot)
		assert.True(t, result.IsValid)
		assert.Empty(t, ready.Steps)
	})

	t.Run("Red Group Ignored For Glyph", func(t *testing.T) {
		container := iconContainer(
			&domain.Node{Type: domain.NodeTypeVector, Name: "red1", Fills: redFill()},
			&domain.Node{Type: domain.NodeTypeVector, Name: "red2", Fills: redFill()},
		)
		_, ready := v.ValidateWithReadiness(container, domain.CategoryGlyph)
		// Red is not tracked for glyphs: both shapes are unclassified,
		// so flatten applies but no union.
		assert.NotContains(t, ready.Steps, validate.StepUnion)
		assert.Contains(t, ready.Steps, validate.StepFlatten)
	})
}
