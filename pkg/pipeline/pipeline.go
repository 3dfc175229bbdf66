// Package pipeline implements the sequential repair workflow runner:
// named steps executed strictly in insertion order, progress reporting
// before each step, and stop-on-first-failure semantics.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iconlint/iconlint/internal/logging"
	"github.com/iconlint/iconlint/pkg/domain"
)

// StepFunc is one effectful pipeline step. Steps receive the run context
// but the pipeline itself imposes no timeout: a hung step hangs the run.
type StepFunc func(ctx context.Context) error

// ProgressFunc is invoked before each step executes. Index is one-based.
type ProgressFunc func(step string, index, total int)

// Step pairs a human-readable name with its operation.
type Step struct {
	Name string
	Run  StepFunc
}

// Pipeline holds an ordered queue of steps. It is built once per run and
// may be cleared and reused; it is not safe for concurrent mutation.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a structured logger for step tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks fired around each step.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Pipeline) {
		p.hooks = hooks
	}
}

// New creates an empty pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add appends a named step to the queue.
func (p *Pipeline) Add(name string, fn StepFunc) {
	p.steps = append(p.steps, Step{Name: name, Run: fn})
}

// Clear empties the queue so the pipeline can be reused.
func (p *Pipeline) Clear() {
	p.steps = nil
}

// StepCount returns the number of queued steps.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the queued step names in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name
	}
	return names
}

// Run executes the queue in order. onProgress (optional) fires before each
// step; on the first failure no later steps execute and no further
// progress callbacks fire. Completed steps are not rolled back: partial
// mutation state is deliberately left in place for the host to inspect.
func (p *Pipeline) Run(ctx context.Context, onProgress ProgressFunc) domain.RunResult {
	result := domain.RunResult{
		Success:        true,
		CompletedSteps: []string{},
		StartedAt:      time.Now(),
	}
	total := len(p.steps)

	for i, step := range p.steps {
		if onProgress != nil {
			onProgress(step.Name, i+1, total)
		}
		p.fireStart(ctx, step.Name, i+1, total)

		started := time.Now()
		err := runStep(ctx, step)
		p.fireEnd(ctx, step.Name, i+1, total, time.Since(started), err)

		if err != nil {
			p.logger.Warn("pipeline step failed", "step", step.Name, "index", i+1, "err", err)
			result.Success = false
			result.FailedStep = step.Name
			result.Error = err.Error()
			break
		}

		p.logger.Debug("pipeline step completed", "step", step.Name, "index", i+1, "total", total)
		result.CompletedSteps = append(result.CompletedSteps, step.Name)
	}

	result.FinishedAt = time.Now()
	return result
}

// runStep converts panics into step failures. A panic value that is not an
// error is rendered with fmt.Sprint so a raw string panic surfaces as-is.
func runStep(ctx context.Context, step Step) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%s", fmt.Sprint(r))
		}
	}()
	return step.Run(ctx)
}

func (p *Pipeline) fireStart(ctx context.Context, name string, index, total int) {
	if p.hooks.OnStepStart == nil {
		return
	}
	p.hooks.OnStepStart(ctx, &domain.StepEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStepStart},
		Step:      name,
		Index:     index,
		Total:     total,
	})
}

func (p *Pipeline) fireEnd(ctx context.Context, name string, index, total int, dur time.Duration, err error) {
	if p.hooks.OnStepEnd == nil {
		return
	}
	e := &domain.StepEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStepEnd},
		Step:      name,
		Index:     index,
		Total:     total,
		Duration:  dur,
	}
	if err != nil {
		e.Err = err.Error()
	}
	p.hooks.OnStepEnd(ctx, e)
}
