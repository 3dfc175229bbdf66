// Package memory provides in-memory reference implementations of the
// engine ports: a SceneMutator operating directly on the domain.Node tree
// and a RunStore backed by a map. Both are used by tests, the CLI and the
// HTTP adapter; real hosts supply their own SceneMutator over the live
// scene graph.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/iconlint/iconlint/internal/analysis"
	"github.com/iconlint/iconlint/internal/rules"
	"github.com/iconlint/iconlint/pkg/domain"
	"github.com/iconlint/iconlint/pkg/ports"
)

// Mutator implements ports.SceneMutator over the borrowed node tree.
// It performs structural stand-ins for the host's geometry kernel: merges
// use bounding extents, it computes no path booleans (that is the host's
// job and an explicit non-goal here).
type Mutator struct {
	classifier *analysis.Classifier

	mu sync.Mutex
	// bindings records paint-variable assignments per color group, since
	// the in-memory model has no variable storage of its own.
	bindings map[ports.ColorGroup]string
	// descriptions keyed by container name.
	descriptions map[string]string
}

// NewMutator creates a mutator using the rule set's color thresholds.
func NewMutator(set *rules.Set) *Mutator {
	return &Mutator{
		classifier:   analysis.NewClassifier(set.Colors),
		bindings:     make(map[ports.ColorGroup]string),
		descriptions: make(map[string]string),
	}
}

var _ ports.SceneMutator = (*Mutator)(nil)

// content returns the container's content holder.
func content(container *domain.Node) (*domain.Node, error) {
	if len(container.Children) == 0 {
		return nil, fmt.Errorf("container %q has no content", container.Name)
	}
	return container.Children[0], nil
}

// OutlineStroke folds every visible stroke into the shape's fill extent:
// the path grows by the stroke width and the stroke is removed.
func (m *Mutator) OutlineStroke(ctx context.Context, container *domain.Node) error {
	holder, err := content(container)
	if err != nil {
		return err
	}
	for _, ref := range analysis.FindPrimitives(holder) {
		n := ref.Node
		if !n.HasVisibleStroke() {
			continue
		}
		half := n.StrokeWeight / 2
		n.X -= half
		n.Y -= half
		n.Width += n.StrokeWeight
		n.Height += n.StrokeWeight
		if !n.HasFill() {
			n.Fills = n.Strokes
		}
		n.StrokeWeight = 0
		n.Strokes = domain.Paints{}
	}
	if holder.Type.IsPrimitive() && holder.HasVisibleStroke() {
		holder.Width += holder.StrokeWeight
		holder.Height += holder.StrokeWeight
		if !holder.HasFill() {
			holder.Fills = holder.Strokes
		}
		holder.StrokeWeight = 0
		holder.Strokes = domain.Paints{}
	}
	return nil
}

// Union merges the group's primitives into one bounding shape, keeping
// the first member's paints.
func (m *Mutator) Union(ctx context.Context, container *domain.Node, group ports.ColorGroup) error {
	holder, err := content(container)
	if err != nil {
		return err
	}
	refs := analysis.FindPrimitives(holder)
	var members []*domain.Node
	for _, ref := range refs {
		colors := m.classifier.ClassifyNode(ref.Node)
		if (group == ports.ColorGroupBlack && colors.HasBlack) ||
			(group == ports.ColorGroupRed && colors.HasRed) {
			members = append(members, ref.Node)
		}
	}
	if len(members) < 2 {
		return nil // nothing to combine
	}
	merged := boundingNode(members)
	merged.Name = "Union"
	merged.Fills = members[0].Fills
	replacePrimitives(holder, members, merged)
	return nil
}

// Flatten collapses every primitive under the content holder into a
// single shape carrying the visible fills of all of them, so a dual-color
// icon stays classified in both groups afterwards.
func (m *Mutator) Flatten(ctx context.Context, container *domain.Node) error {
	holder, err := content(container)
	if err != nil {
		return err
	}
	refs := analysis.FindPrimitives(holder)
	if len(refs) == 0 {
		return fmt.Errorf("container %q has no vector content to flatten", container.Name)
	}
	members := make([]*domain.Node, len(refs))
	for i, ref := range refs {
		members[i] = ref.Node
	}
	merged := boundingNode(members)
	merged.Name = "Vector"
	merged.Fills = collectFills(members)
	holder.Children = []*domain.Node{merged}
	return nil
}

// BindPaintVariable records the binding; the in-memory tree has no host
// variable storage to write through to.
func (m *Mutator) BindPaintVariable(ctx context.Context, container *domain.Node, group ports.ColorGroup, variable string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindings[group] = variable
	return nil
}

// Binding returns the variable bound to a group, for assertions in tests.
func (m *Mutator) Binding(group ports.ColorGroup) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bindings[group]
}

// Resize sets the container and its content holder to a square size.
func (m *Mutator) Resize(ctx context.Context, container *domain.Node, size float64) error {
	if size <= 0 {
		return fmt.Errorf("invalid resize target %g", size)
	}
	container.Width, container.Height = size, size
	if holder, err := content(container); err == nil {
		holder.Width, holder.Height = size, size
	}
	return nil
}

// Rescale multiplies all contained geometry by factor, leaving the
// container frame itself untouched.
func (m *Mutator) Rescale(ctx context.Context, container *domain.Node, factor float64) error {
	if factor <= 0 {
		return fmt.Errorf("invalid rescale factor %g", factor)
	}
	holder, err := content(container)
	if err != nil {
		return err
	}
	var scale func(n *domain.Node)
	scale = func(n *domain.Node) {
		n.X *= factor
		n.Y *= factor
		n.Width *= factor
		n.Height *= factor
		for _, c := range n.Children {
			scale(c)
		}
	}
	for _, c := range holder.Children {
		scale(c)
	}
	return nil
}

// Describe attaches a description to the icon.
func (m *Mutator) Describe(ctx context.Context, container *domain.Node, description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.descriptions[container.Name] = description
	return nil
}

// Description returns the stored description for a container name.
func (m *Mutator) Description(name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.descriptions[name]
}

// boundingNode builds a vector node spanning the members' extents in
// content-holder space (local offsets accumulate only within the holder).
func boundingNode(members []*domain.Node) *domain.Node {
	minX, minY := members[0].X, members[0].Y
	maxX := members[0].X + members[0].Width
	maxY := members[0].Y + members[0].Height
	for _, n := range members[1:] {
		if n.X < minX {
			minX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
		if n.X+n.Width > maxX {
			maxX = n.X + n.Width
		}
		if n.Y+n.Height > maxY {
			maxY = n.Y + n.Height
		}
	}
	return &domain.Node{
		Type:   domain.NodeTypeVector,
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// collectFills gathers the distinct visible fills of all members.
// A mixed list on any member keeps the result mixed.
func collectFills(members []*domain.Node) domain.Paints {
	var out domain.Paints
	seen := make(map[domain.RGB]bool)
	for _, n := range members {
		if n.Fills.Mixed {
			return domain.Paints{Mixed: true}
		}
		for _, p := range n.Fills.Items {
			if !p.Visible {
				continue
			}
			if p.Type == domain.PaintSolid && seen[p.Color] {
				continue
			}
			seen[p.Color] = true
			out.Items = append(out.Items, p)
		}
	}
	return out
}

// replacePrimitives removes the members from the holder subtree and
// appends the merged node as a direct child.
func replacePrimitives(holder *domain.Node, members []*domain.Node, merged *domain.Node) {
	drop := make(map[*domain.Node]bool, len(members))
	for _, n := range members {
		drop[n] = true
	}
	var prune func(n *domain.Node)
	prune = func(n *domain.Node) {
		kept := n.Children[:0]
		for _, c := range n.Children {
			if drop[c] {
				continue
			}
			prune(c)
			kept = append(kept, c)
		}
		n.Children = kept
	}
	prune(holder)
	holder.Children = append(holder.Children, merged)
}
