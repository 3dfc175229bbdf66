// Package iconlint validates and repairs icon component trees against a
// per-category design contract: canvas sizes, stroke widths, edge safety
// zones, structural readiness and naming grammar. The Engine is the
// single entry point; hosts plug in a ports.SceneMutator to let the
// repair pipeline mutate their live scene graph.
package iconlint

import (
	"context"
	"log/slog"
	"time"

	"github.com/iconlint/iconlint/internal/logging"
	"github.com/iconlint/iconlint/internal/repair"
	"github.com/iconlint/iconlint/internal/rules"
	"github.com/iconlint/iconlint/internal/validate"
	"github.com/iconlint/iconlint/pkg/domain"
	"github.com/iconlint/iconlint/pkg/pipeline"
	"github.com/iconlint/iconlint/pkg/ports"
)

// Engine bundles the validators and the repair planner behind one facade.
// It is safe for concurrent use: validation only reads the tree, and each
// Repair call builds its own pipeline.
type Engine struct {
	set    *rules.Set
	logger *slog.Logger
	hooks  domain.LifecycleHooks

	structure *validate.StructureValidator
	sizing    *validate.SizingValidator
	naming    *validate.NameValidator
	planner   *repair.Planner
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a structured logger. Without it the engine is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability callbacks fired on every
// validator pass and around every repair step.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithRules replaces the built-in design contract.
func WithRules(set *rules.Set) Option {
	return func(e *Engine) {
		if set != nil {
			e.set = set
		}
	}
}

// New creates an Engine with the default contract.
func New(opts ...Option) *Engine {
	e := &Engine{
		set:    rules.Default(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.structure = validate.NewStructureValidator(e.set, e.logger)
	e.sizing = validate.NewSizingValidator(e.set, e.logger)
	e.naming = validate.NewNameValidator(e.set)
	e.planner = repair.NewPlanner(e.set, e.logger, e.hooks)
	return e
}

// Report groups the three validator outcomes of one pass.
type Report struct {
	Structure *domain.ValidationResult `json:"structure"`
	Sizing    *domain.ValidationResult `json:"sizing"`
	Naming    *domain.ValidationResult `json:"naming"`
}

// Combined folds the three results into one.
func (r *Report) Combined() *domain.ValidationResult {
	out := domain.NewValidationResult()
	out.Merge(r.Structure)
	out.Merge(r.Sizing)
	out.Merge(r.Naming)
	return out
}

// IsValid reports whether every validator passed.
func (r *Report) IsValid() bool {
	return r.Structure.IsValid && r.Sizing.IsValid && r.Naming.IsValid
}

// Validate runs all three validators over the container. The container's
// own name is the icon identifier checked by the naming grammar.
func (e *Engine) Validate(ctx context.Context, container *domain.Node, category domain.Category) *Report {
	report := &Report{
		Structure: e.structure.Validate(container, category),
		Sizing:    e.sizing.Validate(container, category),
		Naming:    e.naming.Validate(container.Name, category),
	}
	e.fireValidation(ctx, "structure", category, report.Structure)
	e.fireValidation(ctx, "sizing", category, report.Sizing)
	e.fireValidation(ctx, "naming", category, report.Naming)
	e.logger.Info("icon validated",
		"icon", container.Name,
		"category", category,
		"valid", report.IsValid(),
	)
	return report
}

// SuggestName normalizes a candidate into a conforming identifier.
func (e *Engine) SuggestName(name string, category domain.Category) string {
	return e.naming.Suggest(name, category)
}

// ValidateName checks an identifier without touching a tree.
func (e *Engine) ValidateName(name string, category domain.Category) *domain.ValidationResult {
	return e.naming.Validate(name, category)
}

// Repair validates the icon, plans the needed mutation steps and runs them
// through the mutator. The pre-repair report is returned alongside the run
// so callers can show what triggered each step. Completed steps are never
// rolled back on failure.
func (e *Engine) Repair(ctx context.Context, container *domain.Node, category domain.Category, mut ports.SceneMutator, onProgress pipeline.ProgressFunc) (domain.RunResult, *Report, error) {
	report := e.Validate(ctx, container, category)

	pipe, err := e.planner.Plan(container, category, mut)
	if err != nil {
		return domain.RunResult{}, report, err
	}
	result := pipe.Run(ctx, onProgress)
	e.logger.Info("repair finished",
		"icon", container.Name,
		"success", result.Success,
		"completed", len(result.CompletedSteps),
	)
	return result, report, nil
}

func (e *Engine) fireValidation(ctx context.Context, validator string, category domain.Category, result *domain.ValidationResult) {
	if e.hooks.OnValidation == nil {
		return
	}
	e.hooks.OnValidation(ctx, &domain.ValidationEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventValidation},
		Validator: validator,
		Category:  category,
		IsValid:   result.IsValid,
		Errors:    len(result.Errors),
		Warnings:  len(result.Warnings),
	})
}
