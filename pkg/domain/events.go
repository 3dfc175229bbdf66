package domain

import (
	"context"
	"time"
)

// EventType categorizes lifecycle events.
type EventType string

const (
	EventStepStart  EventType = "step_start"
	EventStepEnd    EventType = "step_end"
	EventValidation EventType = "validation"
)

// EventBase carries fields common to all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// StepEvent describes progress of one pipeline step. Index is one-based,
// matching what progress UIs display ("step 2 of 6").
type StepEvent struct {
	EventBase
	Step     string        `json:"step"`
	Index    int           `json:"index"`
	Total    int           `json:"total"`
	Err      string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// ValidationEvent describes a completed validator pass.
type ValidationEvent struct {
	EventBase
	Validator string   `json:"validator"`
	Category  Category `json:"category"`
	IsValid   bool     `json:"isValid"`
	Errors    int      `json:"errors"`
	Warnings  int      `json:"warnings"`
}

// LifecycleHooks defines callbacks for engine observability.
// All hooks are optional; nil fields are skipped.
type LifecycleHooks struct {
	OnStepStart  func(context.Context, *StepEvent)
	OnStepEnd    func(context.Context, *StepEvent)
	OnValidation func(context.Context, *ValidationEvent)
}
