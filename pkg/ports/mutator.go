package ports

import (
	"context"

	"github.com/iconlint/iconlint/pkg/domain"
)

// ColorGroup selects which classified shapes a mutation targets.
type ColorGroup string

const (
	ColorGroupBlack ColorGroup = "black"
	ColorGroupRed   ColorGroup = "red"
)

// SceneMutator is the write contract with the host scene graph. The core
// validators never call it; only pipeline steps do, and each call is
// assumed individually atomic from the pipeline's point of view. There is
// no rollback: a failed step leaves earlier mutations in place.
type SceneMutator interface {
	// OutlineStroke converts every stroked primitive under the container
	// into an equivalent filled path.
	OutlineStroke(ctx context.Context, container *domain.Node) error

	// Union boolean-combines the container's primitives belonging to the
	// given color group into one shape.
	Union(ctx context.Context, container *domain.Node, group ColorGroup) error

	// Flatten collapses all primitives under the container into a single
	// combined shape.
	Flatten(ctx context.Context, container *domain.Node) error

	// BindPaintVariable binds the fills of the group's shapes to a shared
	// color token instead of a hard-coded color.
	BindPaintVariable(ctx context.Context, container *domain.Node, group ColorGroup, variable string) error

	// Resize sets the container frame to a new square size.
	Resize(ctx context.Context, container *domain.Node, size float64) error

	// Rescale multiplies the contained vector geometry by factor.
	Rescale(ctx context.Context, container *domain.Node, factor float64) error

	// Describe attaches a generated description to the icon component.
	Describe(ctx context.Context, container *domain.Node, description string) error
}
