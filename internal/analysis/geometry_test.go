package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iconlint/iconlint/internal/analysis"
	"github.com/iconlint/iconlint/pkg/domain"
)

func TestFindPrimitives(t *testing.T) {
	t.Run("Flat Container", func(t *testing.T) {
		container := &domain.Node{
			Type: domain.NodeTypeFrame, Name: "icon", Width: 32, Height: 32,
			Children: []*domain.Node{
				{Type: domain.NodeTypeVector, Name: "a"},
				{Type: domain.NodeTypeEllipse, Name: "b"},
			},
		}
		refs := analysis.FindPrimitives(container)
		require.Len(t, refs, 2)
		assert.Equal(t, "a", refs[0].Node.Name)
		assert.Empty(t, refs[0].Ancestors)
	})

	t.Run("Nested Groups Build The Ancestor Chain", func(t *testing.T) {
		leaf := &domain.Node{Type: domain.NodeTypeVector, Name: "leaf"}
		inner := &domain.Node{Type: domain.NodeTypeGroup, Name: "inner", Children: []*domain.Node{leaf}}
		outer := &domain.Node{Type: domain.NodeTypeGroup, Name: "outer", Children: []*domain.Node{inner}}
		container := &domain.Node{Type: domain.NodeTypeFrame, Name: "icon", Children: []*domain.Node{outer}}

		refs := analysis.FindPrimitives(container)
		require.Len(t, refs, 1)
		require.Len(t, refs[0].Ancestors, 2)
		assert.Equal(t, "outer", refs[0].Ancestors[0].Name)
		assert.Equal(t, "inner", refs[0].Ancestors[1].Name)
	})

	t.Run("Boolean Op Is A Single Primitive", func(t *testing.T) {
		boolean := &domain.Node{
			Type: domain.NodeTypeBoolean, Name: "union",
			Children: []*domain.Node{
				{Type: domain.NodeTypeVector, Name: "x"},
				{Type: domain.NodeTypeVector, Name: "y"},
			},
		}
		container := &domain.Node{Type: domain.NodeTypeFrame, Children: []*domain.Node{boolean}}
		refs := analysis.FindPrimitives(container)
		require.Len(t, refs, 1)
		assert.Equal(t, "union", refs[0].Node.Name)
	})

	t.Run("Empty Container", func(t *testing.T) {
		container := &domain.Node{Type: domain.NodeTypeFrame}
		assert.Empty(t, analysis.FindPrimitives(container))
	})
}

func TestPositionInfo(t *testing.T) {
	t.Run("Local Offset Accumulation", func(t *testing.T) {
		leaf := &domain.Node{Type: domain.NodeTypeVector, Name: "leaf", X: 2, Y: 3, Width: 10, Height: 10}
		group := &domain.Node{Type: domain.NodeTypeGroup, Name: "g", X: 4, Y: 5, Children: []*domain.Node{leaf}}
		container := &domain.Node{Type: domain.NodeTypeFrame, Width: 32, Height: 32, Children: []*domain.Node{group}}

		refs := analysis.FindPrimitives(container)
		require.Len(t, refs, 1)

		info := analysis.PositionInfo(container, refs[0])
		require.True(t, info.EdgesKnown)
		assert.Equal(t, domain.Point{X: 6, Y: 8}, info.Absolute)
		assert.Equal(t, domain.Point{X: 2, Y: 3}, info.Relative)
		assert.Equal(t, domain.EdgeDistances{Left: 6, Top: 8, Right: 16, Bottom: 14}, info.Edges)
		assert.Equal(t, []string{"g"}, info.AncestorPath)
		assert.False(t, info.InsideNestedFrame)
	})

	t.Run("Absolute Bounds Preferred", func(t *testing.T) {
		leaf := &domain.Node{
			Type: domain.NodeTypeVector, Name: "leaf",
			// Stale local offsets on purpose: bounds win.
			X: 99, Y: 99, Width: 10, Height: 10,
			AbsoluteBounds: &domain.Rect{X: 104, Y: 106, Width: 10, Height: 10},
		}
		container := &domain.Node{
			Type: domain.NodeTypeFrame, Width: 32, Height: 32,
			AbsoluteBounds: &domain.Rect{X: 100, Y: 100, Width: 32, Height: 32},
			Children:       []*domain.Node{leaf},
		}

		info := analysis.PositionInfo(container, analysis.FindPrimitives(container)[0])
		require.True(t, info.EdgesKnown)
		assert.Equal(t, domain.Point{X: 4, Y: 6}, info.Absolute)
	})

	t.Run("Stroke Half Width Adjustment", func(t *testing.T) {
		leaf := &domain.Node{
			Type: domain.NodeTypeVector, Name: "leaf", X: 4, Y: 4, Width: 24, Height: 24,
			StrokeWeight: 2,
			Strokes:      domain.Paints{Items: []domain.Paint{{Type: domain.PaintSolid, Visible: true}}},
		}
		container := &domain.Node{Type: domain.NodeTypeFrame, Width: 32, Height: 32, Children: []*domain.Node{leaf}}

		info := analysis.PositionInfo(container, analysis.FindPrimitives(container)[0])
		require.True(t, info.EdgesKnown)
		assert.Equal(t, domain.EdgeDistances{Left: 5, Top: 5, Right: 5, Bottom: 5}, info.Edges)
	})

	t.Run("Invisible Stroke Is Not Adjusted", func(t *testing.T) {
		leaf := &domain.Node{
			Type: domain.NodeTypeVector, Name: "leaf", X: 4, Y: 4, Width: 24, Height: 24,
			StrokeWeight: 2,
		}
		container := &domain.Node{Type: domain.NodeTypeFrame, Width: 32, Height: 32, Children: []*domain.Node{leaf}}

		info := analysis.PositionInfo(container, analysis.FindPrimitives(container)[0])
		assert.Equal(t, domain.EdgeDistances{Left: 4, Top: 4, Right: 4, Bottom: 4}, info.Edges)
	})

	t.Run("Two Decimal Rounding", func(t *testing.T) {
		// 0.1+0.2 is the classic float64 drift case: 0.30000000000000004.
		leaf := &domain.Node{Type: domain.NodeTypeVector, Name: "leaf", X: 0.1, Y: 0.1, Width: 10, Height: 10}
		group := &domain.Node{Type: domain.NodeTypeGroup, X: 0.2, Y: 0.2, Children: []*domain.Node{leaf}}
		container := &domain.Node{Type: domain.NodeTypeFrame, Width: 32, Height: 32, Children: []*domain.Node{group}}

		info := analysis.PositionInfo(container, analysis.FindPrimitives(container)[0])
		assert.Equal(t, 0.3, info.Edges.Left)
		assert.Equal(t, 0.3, info.Edges.Top)
	})

	t.Run("Unknown Container Extent Skips Distances", func(t *testing.T) {
		leaf := &domain.Node{Type: domain.NodeTypeVector, Name: "leaf", X: 1, Y: 1}
		container := &domain.Node{Type: domain.NodeTypeFrame, Children: []*domain.Node{leaf}}

		info := analysis.PositionInfo(container, analysis.FindPrimitives(container)[0])
		assert.False(t, info.EdgesKnown)
	})

	t.Run("Nested Frame Flag", func(t *testing.T) {
		leaf := &domain.Node{Type: domain.NodeTypeVector, Name: "leaf"}
		frame := &domain.Node{Type: domain.NodeTypeFrame, Name: "badge", Children: []*domain.Node{leaf}}
		container := &domain.Node{Type: domain.NodeTypeFrame, Width: 32, Height: 32, Children: []*domain.Node{frame}}

		info := analysis.PositionInfo(container, analysis.FindPrimitives(container)[0])
		assert.True(t, info.InsideNestedFrame)
	})
}
