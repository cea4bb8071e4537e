// Package event defines the lifecycle events the engine publishes.
// These events let observers such as the CLI and the watch UI follow
// task progress without a direct dependency on the scheduler.
package event

import "time"

// Event is the interface that all events must implement.
// It provides a common way to identify and timestamp events.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "task.started", "step.completed")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Task Lifecycle Events
// -----------------------------------------------------------------------------

// TaskCreated is emitted when a task has been planned and enqueued.
type TaskCreated struct {
	baseEvent
	TaskID      string // Unique identifier for the task
	Description string // Task description
	Category    string // Task category
	StepCount   int    // Number of planned steps
}

// NewTaskCreated creates a TaskCreated event.
func NewTaskCreated(taskID, description, category string, stepCount int) TaskCreated {
	return TaskCreated{
		baseEvent:   newBaseEvent("task.created"),
		TaskID:      taskID,
		Description: description,
		Category:    category,
		StepCount:   stepCount,
	}
}

// TaskStarted is emitted when the scheduler begins executing a task.
type TaskStarted struct {
	baseEvent
	TaskID string
}

// NewTaskStarted creates a TaskStarted event.
func NewTaskStarted(taskID string) TaskStarted {
	return TaskStarted{
		baseEvent: newBaseEvent("task.started"),
		TaskID:    taskID,
	}
}

// TaskFinished is emitted when a task reaches a terminal status.
type TaskFinished struct {
	baseEvent
	TaskID   string  // Task that finished
	Status   string  // Terminal status (completed, blocked, failed, cancelled)
	Progress float64 // Fraction of steps completed, 0 to 1
}

// NewTaskFinished creates a TaskFinished event. The event type encodes
// the terminal status, e.g. "task.completed" or "task.blocked".
func NewTaskFinished(taskID, status string, progress float64) TaskFinished {
	return TaskFinished{
		baseEvent: newBaseEvent("task." + status),
		TaskID:    taskID,
		Status:    status,
		Progress:  progress,
	}
}

// -----------------------------------------------------------------------------
// Step Events
// -----------------------------------------------------------------------------

// StepStarted is emitted when a step begins executing.
type StepStarted struct {
	baseEvent
	TaskID string
	StepID string
	Action string
}

// NewStepStarted creates a StepStarted event.
func NewStepStarted(taskID, stepID, action string) StepStarted {
	return StepStarted{
		baseEvent: newBaseEvent("step.started"),
		TaskID:    taskID,
		StepID:    stepID,
		Action:    action,
	}
}

// StepCompleted is emitted when a step finishes successfully.
type StepCompleted struct {
	baseEvent
	TaskID string
	StepID string
	Result string // Executor output for the step
}

// NewStepCompleted creates a StepCompleted event.
func NewStepCompleted(taskID, stepID, result string) StepCompleted {
	return StepCompleted{
		baseEvent: newBaseEvent("step.completed"),
		TaskID:    taskID,
		StepID:    stepID,
		Result:    result,
	}
}

// StepFailed is emitted when a step fails execution or validation.
type StepFailed struct {
	baseEvent
	TaskID string
	StepID string
	Error  string // Failure message recorded on the step
}

// NewStepFailed creates a StepFailed event.
func NewStepFailed(taskID, stepID, errMsg string) StepFailed {
	return StepFailed{
		baseEvent: newBaseEvent("step.failed"),
		TaskID:    taskID,
		StepID:    stepID,
		Error:     errMsg,
	}
}
