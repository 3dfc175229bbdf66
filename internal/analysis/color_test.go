package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iconlint/iconlint/internal/analysis"
	"github.com/iconlint/iconlint/internal/rules"
	"github.com/iconlint/iconlint/pkg/domain"
)

func newClassifier() *analysis.Classifier {
	return analysis.NewClassifier(rules.Default().Colors)
}

func TestClassifier_Predicates(t *testing.T) {
	c := newClassifier()

	t.Run("Black And Dark Gray", func(t *testing.T) {
		assert.True(t, c.IsBlackOrDarkGray(domain.RGB{}))
		assert.True(t, c.IsBlackOrDarkGray(domain.RGB{R: 0.2, G: 0.2, B: 0.2}))
		assert.False(t, c.IsBlackOrDarkGray(domain.RGB{R: 0.21, G: 0.1, B: 0.1}))
		assert.False(t, c.IsBlackOrDarkGray(domain.RGB{R: 1, G: 1, B: 1}))
	})

	t.Run("Red", func(t *testing.T) {
		assert.True(t, c.IsRed(domain.RGB{R: 1}))
		assert.True(t, c.IsRed(domain.RGB{R: 0.5, G: 0.3, B: 0.3}))
		assert.False(t, c.IsRed(domain.RGB{R: 0.49}))
		assert.False(t, c.IsRed(domain.RGB{R: 1, G: 0.4}))
		assert.False(t, c.IsRed(domain.RGB{R: 1, B: 0.4}))
	})

	t.Run("Dark Red Stays In The Black Group", func(t *testing.T) {
		col := domain.RGB{R: 0.2}
		assert.True(t, c.IsBlackOrDarkGray(col))
		assert.False(t, c.IsRed(col))
	})
}

func TestClassifier_ClassifyNode(t *testing.T) {
	c := newClassifier()

	solid := func(col domain.RGB) domain.Paints {
		return domain.Paints{Items: []domain.Paint{{Type: domain.PaintSolid, Color: col, Visible: true}}}
	}

	t.Run("Fill Only", func(t *testing.T) {
		n := &domain.Node{Type: domain.NodeTypeVector, Fills: solid(domain.RGB{})}
		got := c.ClassifyNode(n)
		assert.True(t, got.HasBlack)
		assert.False(t, got.HasRed)
	})

	t.Run("Stroke Counts Too", func(t *testing.T) {
		n := &domain.Node{Type: domain.NodeTypeVector, Strokes: solid(domain.RGB{R: 1})}
		got := c.ClassifyNode(n)
		assert.True(t, got.HasRed)
	})

	t.Run("Invisible Paint Ignored", func(t *testing.T) {
		n := &domain.Node{Type: domain.NodeTypeVector, Fills: domain.Paints{
			Items: []domain.Paint{{Type: domain.PaintSolid, Color: domain.RGB{}, Visible: false}},
		}}
		got := c.ClassifyNode(n)
		assert.False(t, got.HasBlack)
	})

	t.Run("Non Solid Paint Ignored By Classification", func(t *testing.T) {
		n := &domain.Node{Type: domain.NodeTypeVector, Fills: domain.Paints{
			Items: []domain.Paint{{Type: domain.PaintOther, Color: domain.RGB{}, Visible: true}},
		}}
		got := c.ClassifyNode(n)
		assert.False(t, got.HasBlack)
		assert.False(t, got.HasRed)
	})

	t.Run("Mixed Sentinel Passes Both", func(t *testing.T) {
		n := &domain.Node{Type: domain.NodeTypeVector, Fills: domain.Paints{Mixed: true}}
		got := c.ClassifyNode(n)
		assert.True(t, got.HasBlack)
		assert.True(t, got.HasRed)
	})

	t.Run("Boolean Children Contribute", func(t *testing.T) {
		n := &domain.Node{
			Type: domain.NodeTypeBoolean,
			Children: []*domain.Node{
				{Type: domain.NodeTypeVector, Fills: solid(domain.RGB{})},
				{Type: domain.NodeTypeVector, Fills: solid(domain.RGB{R: 1})},
			},
		}
		got := c.ClassifyNode(n)
		assert.True(t, got.HasBlack)
		assert.True(t, got.HasRed)
	})
}
