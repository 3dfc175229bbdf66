package domain

// NodeType tags a scene node with its structural kind.
// The vocabulary is closed: hosts may not invent new kinds, so capability
// checks can be exhaustive instead of probing properties at runtime.
type NodeType string

const (
	// NodeTypeFrame is a container frame (the icon artboard or a nested frame).
	NodeTypeFrame NodeType = "frame"
	// NodeTypeGroup is a transparent grouping node.
	NodeTypeGroup NodeType = "group"
	// NodeTypeBoolean is the result of a boolean operation (union, subtract...).
	NodeTypeBoolean NodeType = "boolean"

	// Primitive shape kinds: the leaves that carry visible geometry.
	NodeTypeVector    NodeType = "vector"
	NodeTypeEllipse   NodeType = "ellipse"
	NodeTypeRectangle NodeType = "rectangle"
	NodeTypeStar      NodeType = "star"
	NodeTypeLine      NodeType = "line"
	NodeTypePolygon   NodeType = "polygon"
)

// IsPrimitive reports whether the kind is a leaf shape capable of carrying
// fills and strokes. Boolean results count as primitives: they render as a
// single combined shape.
func (t NodeType) IsPrimitive() bool {
	switch t {
	case NodeTypeVector, NodeTypeEllipse, NodeTypeRectangle,
		NodeTypeStar, NodeTypeLine, NodeTypePolygon, NodeTypeBoolean:
		return true
	}
	return false
}

// IsContainer reports whether the kind may own children.
func (t NodeType) IsContainer() bool {
	switch t {
	case NodeTypeFrame, NodeTypeGroup, NodeTypeBoolean:
		return true
	}
	return false
}

// Rect is an axis-aligned rectangle in the host's render space.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Node is a borrowed snapshot of a host scene-graph node.
// Validators only read it; mutation goes through ports.SceneMutator.
type Node struct {
	Type   NodeType `json:"type" yaml:"type"`
	Name   string   `json:"name" yaml:"name"`
	Width  float64  `json:"width" yaml:"width"`
	Height float64  `json:"height" yaml:"height"`

	// X and Y are the local offset relative to the direct parent.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`

	// AbsoluteBounds is the host-rendered bounding box, when the host
	// exposes one. Geometry prefers it over offset accumulation.
	AbsoluteBounds *Rect `json:"absoluteBounds,omitempty" yaml:"absoluteBounds,omitempty"`

	Fills   Paints `json:"fills,omitempty" yaml:"fills,omitempty"`
	Strokes Paints `json:"strokes,omitempty" yaml:"strokes,omitempty"`

	StrokeWeight float64 `json:"strokeWeight,omitempty" yaml:"strokeWeight,omitempty"`

	// Children is present only on container kinds, ordered back-to-front.
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// HasVisibleStroke reports whether the node renders a stroke: a positive
// weight plus at least one visible stroke paint.
func (n *Node) HasVisibleStroke() bool {
	if n.StrokeWeight <= 0 {
		return false
	}
	if n.Strokes.Mixed {
		return true
	}
	for _, p := range n.Strokes.Items {
		if p.Visible {
			return true
		}
	}
	return false
}

// HasFill reports whether the node carries any visible fill paint.
// Non-solid paint types still count: structurally the region is painted.
func (n *Node) HasFill() bool {
	if n.Fills.Mixed {
		return true
	}
	for _, p := range n.Fills.Items {
		if p.Visible {
			return true
		}
	}
	return false
}

// ChildNamed returns the first direct child with the given name, or nil.
func (n *Node) ChildNamed(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}
