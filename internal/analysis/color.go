// Package analysis implements the read-only scene-tree analyzers: color
// classification and absolute geometry. Everything here is pure over the
// in-memory snapshot and safe for concurrent use.
package analysis

import (
	"github.com/iconlint/iconlint/internal/rules"
	"github.com/iconlint/iconlint/pkg/domain"
)

// Classifier buckets paint colors into the two tracked icon color groups.
type Classifier struct {
	t rules.Thresholds
}

// NewClassifier creates a classifier with the given thresholds.
func NewClassifier(t rules.Thresholds) *Classifier {
	return &Classifier{t: t}
}

// IsBlackOrDarkGray reports whether every channel sits at or below the
// black threshold.
func (c *Classifier) IsBlackOrDarkGray(col domain.RGB) bool {
	return col.R <= c.t.BlackMax && col.G <= c.t.BlackMax && col.B <= c.t.BlackMax
}

// IsRed reports whether the color reads as the accent red: a strong red
// channel with both other channels suppressed.
func (c *Classifier) IsRed(col domain.RGB) bool {
	return col.R >= c.t.RedMin && col.G <= c.t.RedOtherMax && col.B <= c.t.RedOtherMax
}

// NodeColors is the per-node classification over all inspectable paints,
// including those of boolean-op children. A "mixed" paint list passes both
// predicates optimistically: its sub-region colors cannot be inspected.
type NodeColors struct {
	HasBlack bool
	HasRed   bool
}

// ClassifyNode inspects the node's fills and strokes (recursing into
// children for combined shapes) and reports which color groups it touches.
func (c *Classifier) ClassifyNode(n *domain.Node) NodeColors {
	var out NodeColors
	c.accumulate(n, &out)
	return out
}

func (c *Classifier) accumulate(n *domain.Node, out *NodeColors) {
	for _, list := range [...]domain.Paints{n.Fills, n.Strokes} {
		if list.Mixed {
			out.HasBlack = true
			out.HasRed = true
			continue
		}
		for _, p := range list.VisibleSolids() {
			if c.IsBlackOrDarkGray(p.Color) {
				out.HasBlack = true
			}
			if c.IsRed(p.Color) {
				out.HasRed = true
			}
		}
	}
	for _, child := range n.Children {
		c.accumulate(child, out)
	}
}
