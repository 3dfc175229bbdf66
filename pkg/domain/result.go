package domain

// ValidationError marks a blocking contract violation.
// Message may embed lightweight markup (backticks, bullet lists) for the
// presentation layer; Node identifies the offending node when known.
type ValidationError struct {
	Message string `json:"message"`
	Node    string `json:"node,omitempty"`
}

// ValidationWarning is informational and never blocks. CanProceed is kept
// on the wire for UI consumers; it is always true.
type ValidationWarning struct {
	Message    string `json:"message"`
	Node       string `json:"node,omitempty"`
	CanProceed bool   `json:"canProceed"`
}

// ValidationResult is the outcome of one validator pass.
// Validators never fail with a Go error; every outcome, including "the
// tree is broken", is expressed here.
type ValidationResult struct {
	IsValid  bool                `json:"isValid"`
	Errors   []ValidationError   `json:"errors"`
	Warnings []ValidationWarning `json:"warnings,omitempty"`
}

// NewValidationResult returns an empty, valid result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{IsValid: true, Errors: []ValidationError{}}
}

// AddError appends a blocking error and flips IsValid.
func (r *ValidationResult) AddError(message, node string) {
	r.Errors = append(r.Errors, ValidationError{Message: message, Node: node})
	r.IsValid = false
}

// AddWarning appends a non-blocking warning. IsValid is untouched:
// validity depends on errors alone.
func (r *ValidationResult) AddWarning(message, node string) {
	r.Warnings = append(r.Warnings, ValidationWarning{Message: message, Node: node, CanProceed: true})
}

// Merge folds another result into this one.
func (r *ValidationResult) Merge(other *ValidationResult) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.IsValid = len(r.Errors) == 0
}
