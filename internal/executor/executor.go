package executor

import (
	"context"

	"github.com/strategix/strategix/internal/task"
)

// StepExecutor performs a single step of a task and returns a textual
// result. Implementations must be safe for concurrent use, since the
// TaskExecutor dispatches independent steps in parallel.
type StepExecutor interface {
	Execute(ctx context.Context, t *task.Task, step *task.Step) (string, error)
}

// ExecutorFunc adapts a plain function to the StepExecutor interface.
type ExecutorFunc func(ctx context.Context, t *task.Task, step *task.Step) (string, error)

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, t *task.Task, step *task.Step) (string, error) {
	return f(ctx, t, step)
}

// Registry maps task categories to step executors. Categories without a
// registered executor fall back to a default executor. A Registry is
// built once at startup and read-only afterwards, so lookups need no
// locking.
type Registry struct {
	executors map[task.Category]StepExecutor
	fallback  StepExecutor
}

// NewRegistry creates a registry with the given fallback executor.
// A nil fallback defaults to a Generic executor.
func NewRegistry(fallback StepExecutor) *Registry {
	if fallback == nil {
		fallback = NewGeneric(1.0)
	}
	return &Registry{
		executors: make(map[task.Category]StepExecutor),
		fallback:  fallback,
	}
}

// Register binds an executor to a category, replacing any previous
// binding. A nil executor removes the binding.
func (r *Registry) Register(category task.Category, exec StepExecutor) {
	if exec == nil {
		delete(r.executors, category)
		return
	}
	r.executors[category] = exec
}

// For returns the executor for a category, or the fallback when none
// is registered.
func (r *Registry) For(category task.Category) StepExecutor {
	if exec, ok := r.executors[category]; ok {
		return exec
	}
	return r.fallback
}
