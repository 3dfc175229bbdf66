package ports

import (
	"context"

	"github.com/iconlint/iconlint/pkg/domain"
)

// RunStore persists pipeline run results so hosts and the HTTP surface
// can inspect finished (or failed) repair runs later.
type RunStore interface {
	// Save persists the result under runID, overwriting any previous one.
	Save(ctx context.Context, runID string, result *domain.RunResult) error

	// Load retrieves a result, or domain.ErrRunNotFound.
	Load(ctx context.Context, runID string) (*domain.RunResult, error)

	// Delete removes a run. Deleting a missing run is not an error.
	Delete(ctx context.Context, runID string) error

	// List returns the known run IDs.
	List(ctx context.Context) ([]string, error)
}
