package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/strategix/strategix/internal/errors"
	"github.com/strategix/strategix/internal/task"
	"github.com/strategix/strategix/internal/util"
)

// maxSimulatedWait caps how long the generic executor sleeps for a
// single step regardless of its estimated duration.
const maxSimulatedWait = 5 * time.Second

// Generic executes any step by waiting a fraction of its estimated
// duration and reporting what it did. It is the fallback for categories
// that have no dedicated executor.
type Generic struct {
	// Scale multiplies the simulated wait. Zero or negative disables
	// waiting entirely, which keeps tests fast.
	Scale float64
}

// NewGeneric creates a generic executor with the given time scale.
func NewGeneric(scale float64) *Generic {
	return &Generic{Scale: scale}
}

// Execute waits for a scaled slice of the step's estimated duration,
// then returns a summary of the work performed. Cancelling the context
// aborts the wait.
func (g *Generic) Execute(ctx context.Context, t *task.Task, step *task.Step) (string, error) {
	wait := time.Duration(step.EstimatedDuration) * time.Second / 10
	if wait > maxSimulatedWait {
		wait = maxSimulatedWait
	}
	if g.Scale > 0 && wait > 0 {
		wait = time.Duration(float64(wait) * g.Scale)
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", errors.NewStepError("execution cancelled", errors.ErrCanceled).
				WithTaskID(t.ID).
				WithStepID(step.ID)
		}
	}
	return fmt.Sprintf("Executed %s for %s", step.Action, util.TruncateString(t.Description, 50)), nil
}
