// Package task defines the task/step data model for the strategix engine:
// a Task is an ordered collection of Steps with explicit prerequisite edges,
// derived progress, and a guarded status lifecycle.
package task

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/strategix/strategix/internal/errors"
)

// Task represents a complex piece of work decomposed into dependent steps.
// A Task owns its Steps exclusively; steps are created at assembly time and
// retained for the life of the task.
//
// All exported methods are safe for concurrent use via an internal mutex.
// The identity fields (ID, Description, Category, Priority, Metadata,
// CreatedAt) are immutable after construction and may be read without
// locking.
type Task struct {
	// ID uniquely identifies the task.
	ID string

	// Description is the user-supplied task description.
	Description string

	// Category selects the step executor used for this task.
	Category Category

	// Priority is informational and does not affect scheduling order.
	Priority Priority

	// Metadata carries free-form context supplied at creation.
	Metadata map[string]string

	// CreatedAt is when the task was created.
	CreatedAt time.Time

	mu          sync.RWMutex
	steps       []*Step
	stepsByID   map[string]*Step
	status      Status
	startedAt   *time.Time
	completedAt *time.Time
}

// New creates a task in the planning state with a generated UUID.
func New(description string, category Category, priority Priority, metadata map[string]string) *Task {
	if metadata == nil {
		metadata = make(map[string]string)
	}
	return &Task{
		ID:          uuid.NewString(),
		Description: description,
		Category:    category,
		Priority:    priority,
		Metadata:    metadata,
		CreatedAt:   time.Now(),
		status:      StatusPlanning,
		stepsByID:   make(map[string]*Step),
	}
}

// AddStep appends a step to the task's plan. Returns an error if the step ID
// duplicates an existing step.
func (t *Task) AddStep(step *Step) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.stepsByID[step.ID]; exists {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateStepID, step.ID)
	}
	if step.Status == "" {
		step.Status = StatusPending
	}
	t.steps = append(t.steps, step)
	t.stepsByID[step.ID] = step
	return nil
}

// Validate checks the structural invariants of the assembled plan: every
// prerequisite must reference a step that exists within this task. Dangling
// references are configuration errors and must be caught here rather than
// discovered later as a silent permanent block.
func (t *Task) Validate() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, step := range t.steps {
		for _, prereq := range step.Prerequisites {
			if _, ok := t.stepsByID[prereq]; !ok {
				return errors.NewValidationError(
					fmt.Sprintf("step %s requires %s which does not exist", step.ID, prereq)).
					WithField("prerequisites").
					WithCause(errors.ErrUnknownPrerequisite)
			}
		}
	}
	return nil
}

// Steps returns the task's steps in declaration order. The returned slice is
// a copy; the step pointers are shared.
func (t *Task) Steps() []*Step {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*Step, len(t.steps))
	copy(out, t.steps)
	return out
}

// StepByID returns the step with the given ID, or nil if not found.
func (t *Task) StepByID(id string) *Step {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.stepsByID[id]
}

// StepCount returns the number of steps in the plan.
func (t *Task) StepCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.steps)
}

// ReadySteps returns the steps that are eligible to run now: pending steps
// whose prerequisites are all present in the completed set. The result
// follows the task's original step order, so identical inputs always yield
// identical, order-stable output. The method does not mutate any state.
func (t *Task) ReadySteps(completed map[string]bool) []*Step {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var ready []*Step
	for _, step := range t.steps {
		if step.Status == StatusPending && step.IsReady(completed) {
			ready = append(ready, step)
		}
	}
	return ready
}

// CompletedStepIDs returns the set of step IDs in the completed or cancelled
// state. Failed steps never enter this set, so their dependents can never
// become ready.
func (t *Task) CompletedStepIDs() map[string]bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.completedStepIDs()
}

func (t *Task) completedStepIDs() map[string]bool {
	ids := make(map[string]bool, len(t.steps))
	for _, step := range t.steps {
		if step.Status == StatusCompleted || step.Status == StatusCancelled {
			ids[step.ID] = true
		}
	}
	return ids
}

// IsComplete reports whether every step is completed or cancelled.
// A task with no steps is trivially complete.
func (t *Task) IsComplete() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isComplete()
}

func (t *Task) isComplete() bool {
	for _, step := range t.steps {
		if step.Status != StatusCompleted && step.Status != StatusCancelled {
			return false
		}
	}
	return true
}

// HasPending reports whether any step is still pending.
func (t *Task) HasPending() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, step := range t.steps {
		if step.Status == StatusPending {
			return true
		}
	}
	return false
}

// Progress returns the fraction of steps in a completed or cancelled state,
// in [0, 1]. A task with no steps has progress 0.
func (t *Task) Progress() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.progress()
}

func (t *Task) progress() float64 {
	if len(t.steps) == 0 {
		return 0
	}
	done := 0
	for _, step := range t.steps {
		if step.Status == StatusCompleted || step.Status == StatusCancelled {
			done++
		}
	}
	return float64(done) / float64(len(t.steps))
}

// Status returns the task's current status.
func (t *Task) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

// StartedAt returns when execution began, or nil.
func (t *Task) StartedAt() *time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.startedAt
}

// CompletedAt returns when the task reached a terminal state, or nil.
func (t *Task) CompletedAt() *time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.completedAt
}

// Duration returns the task's wall-clock execution time, or zero if it has
// not both started and finished.
func (t *Task) Duration() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.startedAt == nil || t.completedAt == nil {
		return 0
	}
	return t.completedAt.Sub(*t.startedAt)
}

// MarkEnqueued transitions the task from planning to pending once its step
// plan is populated and it enters the intake queue.
func (t *Task) MarkEnqueued() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusPending
}

// MarkStarted transitions the task to in_progress and records the start
// timestamp.
func (t *Task) MarkStarted() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.status = StatusInProgress
	t.startedAt = &now
}

// MarkCompleted transitions the task to completed and records the
// completion timestamp.
func (t *Task) MarkCompleted() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.status = StatusCompleted
	t.completedAt = &now
}

// MarkBlocked transitions the task to blocked. Blocked tasks retain their
// pending steps; no completion timestamp is recorded.
func (t *Task) MarkBlocked() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusBlocked
}

// MarkFailed transitions the task to failed and records the completion
// timestamp.
func (t *Task) MarkFailed() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.status = StatusFailed
	t.completedAt = &now
}

// MarkStepStarted transitions the identified step to in_progress.
func (t *Task) MarkStepStarted(stepID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	step, ok := t.stepsByID[stepID]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrStepNotFound, stepID)
	}
	return step.MarkStarted()
}

// MarkStepCompleted transitions the identified step to completed with the
// given result.
func (t *Task) MarkStepCompleted(stepID, result string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	step, ok := t.stepsByID[stepID]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrStepNotFound, stepID)
	}
	return step.MarkCompleted(result)
}

// MarkStepFailed transitions the identified step to failed with the given
// error message.
func (t *Task) MarkStepFailed(stepID, errMsg string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	step, ok := t.stepsByID[stepID]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrStepNotFound, stepID)
	}
	return step.MarkFailed(errMsg)
}

// MarkStepCancelled transitions the identified step to cancelled.
func (t *Task) MarkStepCancelled(stepID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	step, ok := t.stepsByID[stepID]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrStepNotFound, stepID)
	}
	return step.MarkCancelled()
}
