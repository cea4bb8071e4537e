// Package errors provides centralized error definitions and error handling
// utilities for strategix. It defines domain-specific errors for the planner,
// scheduler, and executor subsystems, semantic error types, constructors with
// context wrapping, and classification helpers.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - PlanError: errors related to plan generation and assembly
//   - TaskError: errors related to task scheduling and execution
//   - StepError: errors related to individual step execution
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewPlanError("template lookup failed", errors.ErrEmptyPlan)
//	err := errors.NewStepError("executor raised", cause).WithStepID("step_2")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrUnknownPrerequisite) { ... }
//
//	var stepErr *errors.StepError
//	if errors.As(err, &stepErr) { ... }
//
//	if errors.IsRetryable(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Planning-related sentinel errors
var (
	// ErrEmptyPlan indicates that plan generation produced no usable steps.
	ErrEmptyPlan = New("plan contains no steps")
	// ErrDuplicateStepID indicates that a plan contains two steps with the same ID.
	ErrDuplicateStepID = New("duplicate step id")
	// ErrUnknownPrerequisite indicates a prerequisite referencing a nonexistent step.
	ErrUnknownPrerequisite = New("prerequisite references unknown step")
	// ErrTemplateNotFound indicates that a named plan template does not exist.
	ErrTemplateNotFound = New("plan template not found")
)

// Task-related sentinel errors
var (
	// ErrTaskNotFound indicates that a task could not be found.
	ErrTaskNotFound = New("task not found")
	// ErrTaskBlocked indicates that a task has pending steps but none are ready.
	ErrTaskBlocked = New("task is blocked")
	// ErrDependencyCycle indicates a circular dependency between steps.
	ErrDependencyCycle = New("dependency cycle detected")
	// ErrQueueClosed indicates a submission to a scheduler that has shut down.
	ErrQueueClosed = New("intake queue is closed")
)

// Step-related sentinel errors
var (
	// ErrStepNotFound indicates that a step could not be found within a task.
	ErrStepNotFound = New("step not found")
	// ErrInvalidTransition indicates an illegal step or task status transition.
	ErrInvalidTransition = New("invalid status transition")
	// ErrValidationFailed indicates that a step result failed its validation criteria.
	ErrValidationFailed = New("step validation failed")
	// ErrNoExecutor indicates that no executor is registered for a category.
	ErrNoExecutor = New("no executor registered")
)

// General sentinel errors
var (
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// PlanError represents errors related to plan generation and assembly.
//
// Example:
//
//	err := errors.NewPlanError("template expansion failed", errors.ErrTemplateNotFound)
//	err = err.WithTemplate("code_generation")
type PlanError struct {
	baseError
	Template string
	Category string
}

// NewPlanError creates a new PlanError.
func NewPlanError(message string, cause error) *PlanError {
	return &PlanError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithTemplate adds the template name to the error context.
func (e *PlanError) WithTemplate(name string) *PlanError {
	e.Template = name
	return e
}

// WithCategory adds the task category to the error context.
func (e *PlanError) WithCategory(category string) *PlanError {
	e.Category = category
	return e
}

// Error returns the formatted error message.
func (e *PlanError) Error() string {
	var parts []string
	if e.Template != "" {
		parts = append(parts, fmt.Sprintf("template=%s", e.Template))
	}
	if e.Category != "" {
		parts = append(parts, fmt.Sprintf("category=%s", e.Category))
	}

	prefix := "plan error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("plan error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *PlanError) Is(target error) bool {
	if _, ok := target.(*PlanError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// TaskError represents errors related to task scheduling and execution.
type TaskError struct {
	baseError
	TaskID string
}

// NewTaskError creates a new TaskError.
func NewTaskError(message string, cause error) *TaskError {
	return &TaskError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithTaskID adds a task ID to the error context.
func (e *TaskError) WithTaskID(id string) *TaskError {
	e.TaskID = id
	return e
}

// WithSeverity sets the error severity.
func (e *TaskError) WithSeverity(s Severity) *TaskError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *TaskError) Error() string {
	prefix := "task error"
	if e.TaskID != "" {
		prefix = fmt.Sprintf("task error [task=%s]", e.TaskID)
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *TaskError) Is(target error) bool {
	if _, ok := target.(*TaskError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// StepError represents errors related to individual step execution.
//
// Example:
//
//	err := errors.NewStepError("executor raised", cause).
//		WithTaskID("t-1").WithStepID("step_2").WithAction("execute")
type StepError struct {
	baseError
	TaskID string
	StepID string
	Action string
}

// NewStepError creates a new StepError.
func NewStepError(message string, cause error) *StepError {
	return &StepError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithTaskID adds the owning task ID to the error context.
func (e *StepError) WithTaskID(id string) *StepError {
	e.TaskID = id
	return e
}

// WithStepID adds the step ID to the error context.
func (e *StepError) WithStepID(id string) *StepError {
	e.StepID = id
	return e
}

// WithAction adds the step action tag to the error context.
func (e *StepError) WithAction(action string) *StepError {
	e.Action = action
	return e
}

// WithRetryable sets whether the error is retryable.
func (e *StepError) WithRetryable(r bool) *StepError {
	e.retryable = r
	return e
}

// Error returns the formatted error message.
func (e *StepError) Error() string {
	var parts []string
	if e.TaskID != "" {
		parts = append(parts, fmt.Sprintf("task=%s", e.TaskID))
	}
	if e.StepID != "" {
		parts = append(parts, fmt.Sprintf("step=%s", e.StepID))
	}
	if e.Action != "" {
		parts = append(parts, fmt.Sprintf("action=%s", e.Action))
	}

	prefix := "step error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("step error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *StepError) Is(target error) bool {
	if _, ok := target.(*StepError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError indicates that a requested resource does not exist.
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError for the given resource.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s not found", resourceType),
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause attaches an underlying error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s %q not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s %q not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError indicates that input or state validation failed.
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds the offending field name.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the offending value.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause attaches an underlying error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Field != "" {
		msg = fmt.Sprintf("validation error [field=%s]", e.Field)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", msg, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", msg, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// classified is implemented by errors that carry classification metadata.
type classified interface {
	Severity() Severity
	IsRetryable() bool
	IsUserFacing() bool
}

// IsRetryable reports whether the error is transient and the operation may
// succeed on retry. Unclassified errors are not retryable.
func IsRetryable(err error) bool {
	var c classified
	if errors.As(err, &c) {
		return c.IsRetryable()
	}
	return false
}

// IsUserFacing reports whether the error message is safe to display to end
// users. Unclassified errors are treated as internal.
func IsUserFacing(err error) bool {
	var c classified
	if errors.As(err, &c) {
		return c.IsUserFacing()
	}
	return false
}

// SeverityOf returns the severity of the error, defaulting to SeverityError
// for unclassified errors.
func SeverityOf(err error) Severity {
	var c classified
	if errors.As(err, &c) {
		return c.Severity()
	}
	return SeverityError
}
