package task

import (
	"fmt"
	"time"

	"github.com/strategix/strategix/internal/errors"
)

// Step is a single schedulable unit of work within a task's plan. A step
// carries the fields produced by plan generation plus mutable execution
// state.
//
// Step methods do not lock: a step is mutated only by the runner executing
// it, via the owning Task's MarkStep* wrappers which serialize access.
type Step struct {
	// ID uniquely identifies the step within its owning task.
	ID string `json:"step_id"`

	// Description is a human-readable summary of the work.
	Description string `json:"description"`

	// Action is an opaque tag identifying the kind of work.
	Action string `json:"action"`

	// Prerequisites lists step IDs that must complete before this step
	// becomes ready.
	Prerequisites []string `json:"prerequisites"`

	// EstimatedDuration is the expected execution time in seconds.
	EstimatedDuration int `json:"estimated_duration"`

	// RequiredTools names the tools or resources the step needs.
	RequiredTools []string `json:"required_tools"`

	// ValidationCriteria lists the criteria used to confirm completion.
	ValidationCriteria []string `json:"validation_criteria"`

	// Status is the current execution state.
	Status Status `json:"status"`

	// Result holds the executor output once the step completes.
	Result string `json:"result,omitempty"`

	// Err holds the failure message once the step fails.
	Err string `json:"error,omitempty"`

	// StartedAt is when execution began.
	StartedAt *time.Time `json:"started_at,omitempty"`

	// CompletedAt is when the step reached a terminal state.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsReady reports whether every prerequisite of this step is present in the
// completed set. Readiness does not consider the step's own status; callers
// filter on pending separately.
func (s *Step) IsReady(completed map[string]bool) bool {
	for _, prereq := range s.Prerequisites {
		if !completed[prereq] {
			return false
		}
	}
	return true
}

// MarkStarted transitions the step from pending to in_progress and records
// the start timestamp.
func (s *Step) MarkStarted() error {
	if s.Status != StatusPending {
		return fmt.Errorf("%w: cannot start step %s from %s", errors.ErrInvalidTransition, s.ID, s.Status)
	}
	now := time.Now()
	s.Status = StatusInProgress
	s.StartedAt = &now
	return nil
}

// MarkCompleted transitions the step from in_progress to completed and
// records the completion timestamp and result.
func (s *Step) MarkCompleted(result string) error {
	if s.Status != StatusInProgress {
		return fmt.Errorf("%w: cannot complete step %s from %s", errors.ErrInvalidTransition, s.ID, s.Status)
	}
	now := time.Now()
	s.Status = StatusCompleted
	s.CompletedAt = &now
	s.Result = result
	return nil
}

// MarkFailed transitions the step to failed and records the completion
// timestamp and error message. Failing is allowed from pending as well as
// in_progress so that dispatch-time errors can be recorded.
func (s *Step) MarkFailed(errMsg string) error {
	if s.Status != StatusInProgress && s.Status != StatusPending {
		return fmt.Errorf("%w: cannot fail step %s from %s", errors.ErrInvalidTransition, s.ID, s.Status)
	}
	now := time.Now()
	s.Status = StatusFailed
	s.CompletedAt = &now
	s.Err = errMsg
	return nil
}

// MarkCancelled transitions the step to cancelled from any non-terminal
// state. Cancellation is driven externally; the core never cancels steps
// on its own.
func (s *Step) MarkCancelled() error {
	if s.Status.IsTerminal() {
		return fmt.Errorf("%w: cannot cancel step %s from %s", errors.ErrInvalidTransition, s.ID, s.Status)
	}
	now := time.Now()
	s.Status = StatusCancelled
	s.CompletedAt = &now
	return nil
}

// Duration returns the wall-clock execution time, or zero if the step has
// not both started and finished.
func (s *Step) Duration() time.Duration {
	if s.StartedAt == nil || s.CompletedAt == nil {
		return 0
	}
	return s.CompletedAt.Sub(*s.StartedAt)
}
