package domain

// Point is a 2D position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a 2D extent.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// EdgeDistances holds the clearance between a primitive and each edge of
// its container, in pixels, already adjusted for stroke half-width and
// rounded to two decimals.
type EdgeDistances struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Min returns the smallest of the four distances.
func (d EdgeDistances) Min() float64 {
	min := d.Left
	for _, v := range [...]float64{d.Top, d.Right, d.Bottom} {
		if v < min {
			min = v
		}
	}
	return min
}

// VectorPositionInfo is a derived, read-only snapshot of one primitive's
// placement inside its declared container. Recomputed on every validation
// pass, never persisted.
type VectorPositionInfo struct {
	Node *Node `json:"-"`

	// Absolute is the position inside the container (container origin = 0,0).
	Absolute Point `json:"absolute"`
	// Relative is the position inside the immediate parent.
	Relative Point `json:"relative"`
	Size     Size  `json:"size"`

	Edges EdgeDistances `json:"edges"`

	// InsideNestedFrame is true when some intermediate ancestor between the
	// container and the node is itself a frame.
	InsideNestedFrame bool `json:"insideNestedFrame"`

	// AncestorPath lists ancestor names from the container (excluded) down
	// to the node's direct parent (included).
	AncestorPath []string `json:"ancestorPath"`

	// EdgesKnown is false when neither local offsets nor absolute bounds
	// were available; distance checks are skipped for such nodes.
	EdgesKnown bool `json:"edgesKnown"`
}
