package executor

import (
	"context"

	"github.com/strategix/strategix/internal/errors"
	"github.com/strategix/strategix/internal/event"
	"github.com/strategix/strategix/internal/logging"
	"github.com/strategix/strategix/internal/task"
)

// StepRunner executes one step end to end: it transitions the step to
// in progress, dispatches to the category's executor, validates the
// result, and records the terminal status on the task.
type StepRunner struct {
	registry *Registry
	logger   *logging.Logger
	events   *event.Bus
}

// NewStepRunner creates a runner. The logger and event bus are
// optional; nil values disable logging and event publication.
func NewStepRunner(registry *Registry, logger *logging.Logger, events *event.Bus) *StepRunner {
	if registry == nil {
		registry = NewRegistry(nil)
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &StepRunner{registry: registry, logger: logger, events: events}
}

// Run executes a single step of the task. The returned result is the
// executor's output; a non-nil error means the step failed and its
// failure has already been recorded on the task. The error message of
// a failed execution is stored on the step verbatim.
func (r *StepRunner) Run(ctx context.Context, t *task.Task, step *task.Step) (string, error) {
	log := r.logger.WithTask(t.ID).WithStep(step.ID)

	if err := t.MarkStepStarted(step.ID); err != nil {
		return "", err
	}
	log.Debug("step started", "action", step.Action)
	r.publish(event.NewStepStarted(t.ID, step.ID, step.Action))

	result, err := r.registry.For(t.Category).Execute(ctx, t, step)
	if err != nil {
		if markErr := t.MarkStepFailed(step.ID, err.Error()); markErr != nil {
			log.Warn("could not record step failure", "error", markErr)
		}
		log.Warn("step failed", "error", err)
		r.publish(event.NewStepFailed(t.ID, step.ID, err.Error()))
		return "", errors.NewStepError("step execution failed", err).
			WithTaskID(t.ID).
			WithStepID(step.ID).
			WithAction(step.Action)
	}

	if len(step.ValidationCriteria) > 0 && result == "" {
		msg := "validation failed: empty result"
		if markErr := t.MarkStepFailed(step.ID, msg); markErr != nil {
			log.Warn("could not record step failure", "error", markErr)
		}
		log.Warn("step failed validation")
		r.publish(event.NewStepFailed(t.ID, step.ID, msg))
		return "", errors.NewStepError(msg, errors.ErrValidationFailed).
			WithTaskID(t.ID).
			WithStepID(step.ID).
			WithAction(step.Action)
	}

	if err := t.MarkStepCompleted(step.ID, result); err != nil {
		return "", err
	}
	log.Debug("step completed")
	r.publish(event.NewStepCompleted(t.ID, step.ID, result))
	return result, nil
}

func (r *StepRunner) publish(e event.Event) {
	if r.events != nil {
		r.events.Publish(e)
	}
}
