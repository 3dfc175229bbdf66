package analysis

import (
	"math"

	"github.com/iconlint/iconlint/pkg/domain"
)

// PrimitiveRef pairs a primitive node with the ordered chain of ancestors
// between the container (excluded) and the node's direct parent (included).
type PrimitiveRef struct {
	Node      *domain.Node
	Ancestors []*domain.Node
}

// FindPrimitives walks the container subtree depth-first and returns every
// primitive node together with its ancestor chain. Primitives nested under
// a boolean op are not re-collected: the boolean result is the primitive.
func FindPrimitives(container *domain.Node) []PrimitiveRef {
	var out []PrimitiveRef
	var walk func(n *domain.Node, chain []*domain.Node)
	walk = func(n *domain.Node, chain []*domain.Node) {
		for _, child := range n.Children {
			if child.Type.IsPrimitive() {
				ref := PrimitiveRef{Node: child}
				ref.Ancestors = append(ref.Ancestors, chain...)
				out = append(out, ref)
				continue
			}
			if child.Type.IsContainer() {
				walk(child, append(chain, child))
			}
		}
	}
	walk(container, nil)
	return out
}

// round2 rounds to two decimals to keep float drift out of threshold
// comparisons.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PositionInfo computes the primitive's placement inside the container.
// Absolute render bounds are preferred when both the node and the
// container expose them; otherwise local offsets are accumulated along the
// ancestor chain. When a visible stroke is present, half its weight is
// added to every edge distance: render bounds include the outward stroke
// extension while the safety-zone contract measures from the path
// center-line. A container with unknown (zero) size yields EdgesKnown=false.
func PositionInfo(container *domain.Node, ref PrimitiveRef) domain.VectorPositionInfo {
	n := ref.Node

	info := domain.VectorPositionInfo{
		Node:     n,
		Relative: domain.Point{X: n.X, Y: n.Y},
		Size:     domain.Size{Width: n.Width, Height: n.Height},
	}

	for _, anc := range ref.Ancestors {
		info.AncestorPath = append(info.AncestorPath, anc.Name)
		if anc.Type == domain.NodeTypeFrame {
			info.InsideNestedFrame = true
		}
	}

	width, height := n.Width, n.Height
	var absX, absY float64
	switch {
	case n.AbsoluteBounds != nil && container.AbsoluteBounds != nil:
		absX = n.AbsoluteBounds.X - container.AbsoluteBounds.X
		absY = n.AbsoluteBounds.Y - container.AbsoluteBounds.Y
		width = n.AbsoluteBounds.Width
		height = n.AbsoluteBounds.Height
	default:
		absX, absY = n.X, n.Y
		for _, anc := range ref.Ancestors {
			absX += anc.X
			absY += anc.Y
		}
	}
	info.Absolute = domain.Point{X: absX, Y: absY}

	if container.Width <= 0 || container.Height <= 0 {
		// Geometry is best-effort: without a container extent there is
		// nothing to measure against.
		return info
	}

	adjust := 0.0
	if n.HasVisibleStroke() {
		adjust = n.StrokeWeight / 2
	}

	info.Edges = domain.EdgeDistances{
		Left:   round2(absX + adjust),
		Top:    round2(absY + adjust),
		Right:  round2(container.Width - (absX + width) + adjust),
		Bottom: round2(container.Height - (absY + height) + adjust),
	}
	info.EdgesKnown = true
	return info
}
