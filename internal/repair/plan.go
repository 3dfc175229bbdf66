// Package repair turns a structural readiness verdict into an executable
// pipeline of host mutations: outline, union, flatten, colorize, scale,
// describe. Planning reads the tree; only the planned steps write to it,
// through the ports.SceneMutator contract.
package repair

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/iconlint/iconlint/internal/logging"
	"github.com/iconlint/iconlint/internal/rules"
	"github.com/iconlint/iconlint/internal/validate"
	"github.com/iconlint/iconlint/pkg/domain"
	"github.com/iconlint/iconlint/pkg/pipeline"
	"github.com/iconlint/iconlint/pkg/ports"
)

// Step names beyond the structural ones from the validate package.
const (
	StepColorize = "colorize"
	StepScale    = "scale"
	StepDescribe = "describe"
)

// Paint variables bound during the colorize step.
const (
	variableBlack = "color/icon-primary"
	variableRed   = "color/icon-accent"
)

// Planner builds repair pipelines from validation verdicts.
type Planner struct {
	set       *rules.Set
	structure *validate.StructureValidator
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
}

// NewPlanner wires a planner. Logger and hooks are optional.
func NewPlanner(set *rules.Set, logger *slog.Logger, hooks domain.LifecycleHooks) *Planner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Planner{
		set:       set,
		structure: validate.NewStructureValidator(set, logger),
		logger:    logger,
		hooks:     hooks,
	}
}

// Plan inspects the icon and queues the steps needed to bring it into a
// conforming state. Terminal structural errors (empty container, no vector
// content) cannot be repaired and abort planning.
func (p *Planner) Plan(container *domain.Node, category domain.Category, mut ports.SceneMutator) (*pipeline.Pipeline, error) {
	result, ready := p.structure.ValidateWithReadiness(container, category)
	if ready == nil {
		return nil, fmt.Errorf("icon is not repairable: %s", result.Errors[0].Message)
	}

	pipe := pipeline.New(
		pipeline.WithLogger(p.logger),
		pipeline.WithLifecycleHooks(p.hooks),
	)

	if ready.HasStrokes {
		pipe.Add(validate.StepOutline, func(ctx context.Context) error {
			return mut.OutlineStroke(ctx, container)
		})
	}
	if ready.BlackCount > 1 {
		pipe.Add(validate.StepUnion+" (black)", func(ctx context.Context) error {
			return mut.Union(ctx, container, ports.ColorGroupBlack)
		})
	}
	if ready.RedCount > 1 {
		pipe.Add(validate.StepUnion+" (red)", func(ctx context.Context) error {
			return mut.Union(ctx, container, ports.ColorGroupRed)
		})
	}
	if containsStep(ready.Steps, validate.StepFlatten) {
		pipe.Add(validate.StepFlatten, func(ctx context.Context) error {
			if err := mut.Flatten(ctx, container); err != nil {
				return err
			}
			// Flatten is the last structural mutation: the tree must be
			// ready afterwards, otherwise the host ignored the request.
			check, _ := p.structure.ValidateWithReadiness(container, category)
			if !check.IsValid {
				return fmt.Errorf("flatten did not produce a ready icon: %s", check.Errors[0].Message)
			}
			return nil
		})
	}

	pipe.Add(StepColorize, p.colorizeStep(container, category, ready, mut))

	if factor, target, needed := scaleTarget(container, p.set.ForCategory(category)); needed {
		pipe.Add(StepScale, func(ctx context.Context) error {
			if err := mut.Rescale(ctx, container, factor); err != nil {
				return err
			}
			return mut.Resize(ctx, container, target)
		})
	}

	pipe.Add(StepDescribe, func(ctx context.Context) error {
		return mut.Describe(ctx, container, describeIcon(container, category, ready))
	})

	p.logger.Debug("repair planned", "icon", container.Name, "category", category, "steps", pipe.StepNames())
	return pipe, nil
}

// colorizeStep binds the tracked color groups to shared paint variables.
func (p *Planner) colorizeStep(container *domain.Node, category domain.Category, ready *validate.Readiness, mut ports.SceneMutator) pipeline.StepFunc {
	return func(ctx context.Context) error {
		if ready.BlackCount > 0 {
			if err := mut.BindPaintVariable(ctx, container, ports.ColorGroupBlack, variableBlack); err != nil {
				return err
			}
		}
		if category == domain.CategorySpot && ready.RedCount > 0 {
			if err := mut.BindPaintVariable(ctx, container, ports.ColorGroupRed, variableRed); err != nil {
				return err
			}
		}
		return nil
	}
}

// scaleTarget picks the nearest valid size when the frame is off-contract.
func scaleTarget(container *domain.Node, r rules.CategoryRules) (factor, target float64, needed bool) {
	size := container.Width
	if size <= 0 || container.Width != container.Height {
		return 0, 0, false // not fixable by uniform scaling
	}
	best := r.Sizes[0]
	for _, s := range r.Sizes {
		if s == size {
			return 0, 0, false
		}
		if math.Abs(s-size) < math.Abs(best-size) {
			best = s
		}
	}
	return best / size, best, true
}

// describeIcon produces the generated component description.
func describeIcon(container *domain.Node, category domain.Category, ready *validate.Readiness) string {
	colors := "single-color"
	if ready.RedCount > 0 {
		colors = "dual-color"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s icon, %gx%g", colors, category, container.Width, container.Height)
	if len(ready.Steps) > 0 {
		fmt.Fprintf(&b, " (repaired: %s)", strings.Join(ready.Steps, ", "))
	}
	return b.String()
}

func containsStep(steps []string, step string) bool {
	for _, s := range steps {
		if s == step {
			return true
		}
	}
	return false
}
