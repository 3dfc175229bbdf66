package domain

import "time"

// RunResult is the terminal outcome of one pipeline run.
// CompletedSteps lists, in order, the steps that finished before any
// failure. FailedStep and Error are empty on success.
type RunResult struct {
	Success        bool      `json:"success"`
	CompletedSteps []string  `json:"completedSteps"`
	FailedStep     string    `json:"failedStep,omitempty"`
	Error          string    `json:"error,omitempty"`
	StartedAt      time.Time `json:"startedAt,omitempty"`
	FinishedAt     time.Time `json:"finishedAt,omitempty"`
}
