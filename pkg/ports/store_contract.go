package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iconlint/iconlint/pkg/domain"
)

// RunRunStoreContract runs a suite of tests verifying that a RunStore
// implementation adheres to the interface contract. Adapters call it from
// their own tests so memory and redis stay behaviorally identical.
func RunRunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		result := &domain.RunResult{
			Success:        false,
			CompletedSteps: []string{"outline stroke", "union"},
			FailedStep:     "flatten",
			Error:          "host rejected the operation",
		}

		err := store.Save(ctx, runID, result)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, result.Success, loaded.Success)
		assert.Equal(t, result.CompletedSteps, loaded.CompletedSteps)
		assert.Equal(t, result.FailedStep, loaded.FailedStep)
		assert.Equal(t, result.Error, loaded.Error)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, runID, &domain.RunResult{Success: true, CompletedSteps: []string{}})
		require.NoError(t, err)

		err = store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, id1, &domain.RunResult{Success: true, CompletedSteps: []string{}})
		_ = store.Save(ctx, id2, &domain.RunResult{Success: true, CompletedSteps: []string{}})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}
