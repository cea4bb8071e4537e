package executor

import (
	"context"
	"sync"
	"time"

	"github.com/strategix/strategix/internal/logging"
	"github.com/strategix/strategix/internal/task"
)

// Result summarizes a completed task run.
type Result struct {
	TaskID   string            `json:"task_id"`
	Status   task.Status       `json:"status"`
	Progress float64           `json:"progress"`
	Results  map[string]string `json:"results"`
	Duration time.Duration     `json:"duration"`
}

// TaskExecutor drives a task through its step graph. Each pass it
// collects the steps whose prerequisites are satisfied, runs up to
// maxConcurrentSteps of them in parallel, and repeats until the task
// completes, blocks, or fails.
type TaskExecutor struct {
	runner             *StepRunner
	maxConcurrentSteps int
	logger             *logging.Logger
}

// NewTaskExecutor creates a task executor. maxConcurrentSteps values
// below one are clamped to one.
func NewTaskExecutor(runner *StepRunner, maxConcurrentSteps int, logger *logging.Logger) *TaskExecutor {
	if runner == nil {
		runner = NewStepRunner(nil, nil, nil)
	}
	if maxConcurrentSteps < 1 {
		maxConcurrentSteps = 1
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &TaskExecutor{
		runner:             runner,
		maxConcurrentSteps: maxConcurrentSteps,
		logger:             logger,
	}
}

// Run executes the task until it reaches a terminal status and returns
// a summary. A failed step never aborts the batch it ran in; its
// dependents simply never become ready, which surfaces as a blocked or
// failed task once no runnable steps remain.
func (e *TaskExecutor) Run(ctx context.Context, t *task.Task) Result {
	log := e.logger.WithTask(t.ID)
	t.MarkStarted()
	log.Info("task started", "steps", t.StepCount())

	results := make(map[string]string)
	var mu sync.Mutex

	for !t.IsComplete() {
		if ctx.Err() != nil {
			t.MarkFailed()
			log.Warn("task aborted", "error", ctx.Err())
			break
		}

		ready := t.ReadySteps(t.CompletedStepIDs())
		if len(ready) == 0 {
			if t.HasPending() {
				t.MarkBlocked()
				log.Warn("task blocked", "progress", t.Progress())
			} else {
				// All remaining steps are terminal and at least one
				// failed, otherwise IsComplete would have been true.
				t.MarkFailed()
				log.Warn("task failed", "progress", t.Progress())
			}
			break
		}

		batch := ready
		if len(batch) > e.maxConcurrentSteps {
			batch = batch[:e.maxConcurrentSteps]
		}

		var wg sync.WaitGroup
		for _, step := range batch {
			wg.Add(1)
			go func(s *task.Step) {
				defer wg.Done()
				result, err := e.runner.Run(ctx, t, s)
				if err != nil {
					return
				}
				mu.Lock()
				results[s.ID] = result
				mu.Unlock()
			}(step)
		}
		wg.Wait()
	}

	if t.IsComplete() {
		t.MarkCompleted()
		log.Info("task completed", "duration", t.Duration())
	}

	return Result{
		TaskID:   t.ID,
		Status:   t.Status(),
		Progress: t.Progress(),
		Results:  results,
		Duration: t.Duration(),
	}
}
