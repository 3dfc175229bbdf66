// Package metrics exposes Prometheus collectors fed by the engine's
// lifecycle hooks, so observability never leaks into the validators.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/iconlint/iconlint/pkg/domain"
)

// Metrics holds the engine collectors. Register them on a registry once,
// then feed events through Hooks.
type Metrics struct {
	Validations   *prometheus.CounterVec
	RepairSteps   *prometheus.CounterVec
	StepDurations *prometheus.HistogramVec
}

// New creates and registers the collectors.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iconlint_validations_total",
				Help: "Total validator passes by category and verdict",
			},
			[]string{"validator", "category", "verdict"},
		),
		RepairSteps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iconlint_repair_steps_total",
				Help: "Total repair pipeline steps by outcome",
			},
			[]string{"step", "outcome"},
		),
		StepDurations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "iconlint_step_duration_seconds",
				Help: "Duration of repair pipeline steps",
			},
			[]string{"step"},
		),
	}
	reg.MustRegister(m.Validations, m.RepairSteps, m.StepDurations)
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnValidation: func(_ context.Context, e *domain.ValidationEvent) {
			verdict := "valid"
			if !e.IsValid {
				verdict = "invalid"
			}
			m.Validations.WithLabelValues(e.Validator, string(e.Category), verdict).Inc()
		},
		OnStepEnd: func(_ context.Context, e *domain.StepEvent) {
			outcome := "ok"
			if e.Err != "" {
				outcome = "error"
			}
			m.RepairSteps.WithLabelValues(e.Step, outcome).Inc()
			m.StepDurations.WithLabelValues(e.Step).Observe(e.Duration.Seconds())
		},
	}
}
