// Package validate implements the three icon validators: structural
// readiness, size/stroke/safety, and naming. Validators never return Go
// errors; every outcome is a domain.ValidationResult.
package validate

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/iconlint/iconlint/internal/analysis"
	"github.com/iconlint/iconlint/internal/logging"
	"github.com/iconlint/iconlint/internal/rules"
	"github.com/iconlint/iconlint/pkg/domain"
)

// Readiness is the structural classification of an icon's content, used
// both for the combined remediation error and for planning repair steps.
type Readiness struct {
	// Steps lists the required repair steps in pipeline order.
	Steps []string

	HasStrokes     bool
	PrimitiveCount int
	BlackCount     int
	RedCount       int
}

// Remediation step names, in the order the pipeline executes them.
const (
	StepOutline = "outline stroke"
	StepUnion   = "union"
	StepFlatten = "flatten"
)

// StructureValidator decides whether an icon's content is structurally
// ready: a single flattened, outlined shape per tracked color group.
type StructureValidator struct {
	classifier *analysis.Classifier
	logger     *slog.Logger
}

// NewStructureValidator wires the validator. A nil logger is replaced with
// a no-op one so validators stay silent by default.
func NewStructureValidator(set *rules.Set, logger *slog.Logger) *StructureValidator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StructureValidator{
		classifier: analysis.NewClassifier(set.Colors),
		logger:     logger,
	}
}

// Validate classifies the container's content state. The container's
// single child is the content holder; its descendants are the shapes.
func (v *StructureValidator) Validate(container *domain.Node, category domain.Category) *domain.ValidationResult {
	result, _ := v.ValidateWithReadiness(container, category)
	return result
}

// ValidateWithReadiness returns the result plus the readiness detail the
// repair planner consumes.
func (v *StructureValidator) ValidateWithReadiness(container *domain.Node, category domain.Category) (*domain.ValidationResult, *Readiness) {
	result := domain.NewValidationResult()

	if len(container.Children) == 0 {
		result.AddError("empty container: the icon frame has no content", container.Name)
		return result, nil
	}

	content := container.Children[0]
	primitives := contentPrimitives(content)
	if len(primitives) == 0 {
		result.AddError("no vector content found inside the container", content.Name)
		return result, nil
	}

	ready := v.classify(primitives, category)
	v.logger.Debug("structure classified",
		"primitives", ready.PrimitiveCount,
		"black", ready.BlackCount,
		"red", ready.RedCount,
		"has_strokes", ready.HasStrokes,
	)

	if len(ready.Steps) > 0 {
		result.AddError(remediationMessage(ready), content.Name)
	}
	return result, ready
}

// contentPrimitives treats the content holder itself as the primitive
// when the author skipped the wrapper frame.
func contentPrimitives(content *domain.Node) []*domain.Node {
	if content.Type.IsPrimitive() {
		return []*domain.Node{content}
	}
	refs := analysis.FindPrimitives(content)
	nodes := make([]*domain.Node, 0, len(refs))
	for _, ref := range refs {
		nodes = append(nodes, ref.Node)
	}
	return nodes
}

func (v *StructureValidator) classify(primitives []*domain.Node, category domain.Category) *Readiness {
	ready := &Readiness{PrimitiveCount: len(primitives)}

	var blackNodes, redNodes []*domain.Node
	unclassified := 0

	trackRed := category == domain.CategorySpot

	for _, p := range primitives {
		if p.HasVisibleStroke() {
			ready.HasStrokes = true
		}
		colors := v.classifier.ClassifyNode(p)
		inGroup := false
		if colors.HasBlack {
			blackNodes = append(blackNodes, p)
			inGroup = true
		}
		if trackRed && colors.HasRed {
			redNodes = append(redNodes, p)
			inGroup = true
		}
		if !inGroup {
			unclassified++
		}
	}
	ready.BlackCount = len(blackNodes)
	ready.RedCount = len(redNodes)

	if ready.HasStrokes {
		ready.Steps = append(ready.Steps, StepOutline)
	}
	if len(blackNodes) > 1 {
		ready.Steps = append(ready.Steps, StepUnion)
	}
	if len(redNodes) > 1 && !containsStep(ready.Steps, StepUnion) {
		ready.Steps = append(ready.Steps, StepUnion)
	}

	// Count after the hypothetical unions: each non-empty group collapses
	// to one node, unclassified shapes stay individual.
	postUnion := unclassified
	if len(blackNodes) > 0 {
		postUnion++
	}
	if len(redNodes) > 0 {
		postUnion++
	}
	// One flattened multi-region shape shows up in both groups at once;
	// that is the finished state, not a flatten candidate.
	if len(blackNodes) == 1 && len(redNodes) == 1 && blackNodes[0] == redNodes[0] {
		postUnion = unclassified + 1
	}
	if postUnion != 1 {
		ready.Steps = append(ready.Steps, StepFlatten)
	}
	return ready
}

func containsStep(steps []string, step string) bool {
	for _, s := range steps {
		if s == step {
			return true
		}
	}
	return false
}

// remediationMessage renders the accumulated steps as one ordered,
// human-readable checklist, not separate errors.
func remediationMessage(ready *Readiness) string {
	var b strings.Builder
	b.WriteString("icon content is not ready, required steps:")
	for i, step := range ready.Steps {
		switch step {
		case StepOutline:
			fmt.Fprintf(&b, "\n%d. Outline all strokes", i+1)
		case StepUnion:
			fmt.Fprintf(&b, "\n%d. Union same-color shapes (%d black, %d red)", i+1, ready.BlackCount, ready.RedCount)
		case StepFlatten:
			fmt.Fprintf(&b, "\n%d. Flatten into a single shape (%d primitives found)", i+1, ready.PrimitiveCount)
		}
	}
	return b.String()
}
