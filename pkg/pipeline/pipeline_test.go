package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iconlint/iconlint/pkg/domain"
	"github.com/iconlint/iconlint/pkg/pipeline"
)

type progressCall struct {
	step  string
	index int
	total int
}

func TestPipeline_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Stops On First Failure", func(t *testing.T) {
		p := pipeline.New()
		var cRan bool
		p.Add("A", func(ctx context.Context) error { return nil })
		p.Add("B", func(ctx context.Context) error { return errors.New("boom") })
		p.Add("C", func(ctx context.Context) error { cRan = true; return nil })

		var calls []progressCall
		result := p.Run(ctx, func(step string, index, total int) {
			calls = append(calls, progressCall{step, index, total})
		})

		assert.False(t, result.Success)
		assert.Equal(t, []string{"A"}, result.CompletedSteps)
		assert.Equal(t, "B", result.FailedStep)
		assert.Equal(t, "boom", result.Error)
		assert.False(t, cRan, "C must never execute")

		// Progress fires for A and B only, before each execution.
		require.Len(t, calls, 2)
		assert.Equal(t, progressCall{"A", 1, 3}, calls[0])
		assert.Equal(t, progressCall{"B", 2, 3}, calls[1])
	})

	t.Run("All Steps Succeed", func(t *testing.T) {
		p := pipeline.New()
		p.Add("outline", func(ctx context.Context) error { return nil })
		p.Add("flatten", func(ctx context.Context) error { return nil })

		result := p.Run(ctx, nil)
		assert.True(t, result.Success)
		assert.Equal(t, []string{"outline", "flatten"}, result.CompletedSteps)
		assert.Empty(t, result.FailedStep)
		assert.Empty(t, result.Error)
	})

	t.Run("Empty Queue Succeeds Without Callbacks", func(t *testing.T) {
		p := pipeline.New()
		fired := 0
		result := p.Run(ctx, func(string, int, int) { fired++ })
		assert.True(t, result.Success)
		assert.Empty(t, result.CompletedSteps)
		assert.NotNil(t, result.CompletedSteps)
		assert.Zero(t, fired)
	})

	t.Run("String Panic Is Stringified", func(t *testing.T) {
		p := pipeline.New()
		p.Add("explode", func(ctx context.Context) error { panic("raw failure") })

		result := p.Run(ctx, nil)
		assert.False(t, result.Success)
		assert.Equal(t, "raw failure", result.Error)
	})

	t.Run("Error Panic Keeps Its Message", func(t *testing.T) {
		p := pipeline.New()
		p.Add("explode", func(ctx context.Context) error { panic(errors.New("typed failure")) })

		result := p.Run(ctx, nil)
		assert.Equal(t, "typed failure", result.Error)
	})

	t.Run("Non String Panic Is Rendered", func(t *testing.T) {
		p := pipeline.New()
		p.Add("explode", func(ctx context.Context) error { panic(42) })

		result := p.Run(ctx, nil)
		assert.Equal(t, "42", result.Error)
	})
}

func TestPipeline_Introspection(t *testing.T) {
	p := pipeline.New()
	assert.Zero(t, p.StepCount())

	p.Add("a", func(ctx context.Context) error { return nil })
	p.Add("b", func(ctx context.Context) error { return nil })
	assert.Equal(t, 2, p.StepCount())
	assert.Equal(t, []string{"a", "b"}, p.StepNames())

	p.Clear()
	assert.Zero(t, p.StepCount())
	assert.Empty(t, p.StepNames())

	// Reusable after Clear.
	p.Add("c", func(ctx context.Context) error { return nil })
	result := p.Run(context.Background(), nil)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"c"}, result.CompletedSteps)
}

func TestPipeline_Hooks(t *testing.T) {
	var starts, ends []string
	hooks := domain.LifecycleHooks{
		OnStepStart: func(_ context.Context, e *domain.StepEvent) { starts = append(starts, e.Step) },
		OnStepEnd: func(_ context.Context, e *domain.StepEvent) {
			ends = append(ends, e.Step)
			if e.Step == "bad" {
				assert.Equal(t, "nope", e.Err)
			}
		},
	}

	p := pipeline.New(pipeline.WithLifecycleHooks(hooks))
	p.Add("good", func(ctx context.Context) error { return nil })
	p.Add("bad", func(ctx context.Context) error { return errors.New("nope") })
	p.Add("never", func(ctx context.Context) error { return nil })

	p.Run(context.Background(), nil)
	assert.Equal(t, []string{"good", "bad"}, starts)
	assert.Equal(t, []string{"good", "bad"}, ends)
}
