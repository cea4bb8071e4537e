package executor

import (
	"context"
	"fmt"

	"github.com/strategix/strategix/internal/task"
	"github.com/strategix/strategix/internal/util"
)

// Backend answers free-form reasoning prompts. Category executors use
// it to produce real step results when one is configured; without a
// backend they degrade to the generic executor.
type Backend interface {
	Query(ctx context.Context, prompt string) (string, error)
}

// PromptFunc builds the backend prompt for a step.
type PromptFunc func(t *task.Task, step *task.Step) string

// Reasoning delegates step execution to a backend. When the backend is
// nil or returns an error, execution falls back to the generic
// executor so a misbehaving backend never stalls a task.
type Reasoning struct {
	backend  Backend
	prompt   PromptFunc
	fallback *Generic
}

// NewReasoning creates a backend-delegating executor.
func NewReasoning(backend Backend, prompt PromptFunc, fallback *Generic) *Reasoning {
	if fallback == nil {
		fallback = NewGeneric(1.0)
	}
	return &Reasoning{backend: backend, prompt: prompt, fallback: fallback}
}

// Execute queries the backend with the step's prompt. Backend failures
// are not fatal to the step; the generic executor handles it instead.
func (r *Reasoning) Execute(ctx context.Context, t *task.Task, step *task.Step) (string, error) {
	if r.backend == nil {
		return r.fallback.Execute(ctx, t, step)
	}
	result, err := r.backend.Query(ctx, r.prompt(t, step))
	if err != nil || result == "" {
		return r.fallback.Execute(ctx, t, step)
	}
	return result, nil
}

// actionPrompt builds the standard prompt for a category.
func actionPrompt(verb string) PromptFunc {
	return func(t *task.Task, step *task.Step) string {
		return fmt.Sprintf("%s: %s\nStep: %s (%s)",
			verb, util.TruncateString(t.Description, 200), step.Description, step.Action)
	}
}

// NewDefaultRegistry builds the standard category registry. Reasoning
// categories delegate to the backend when one is provided; operational
// categories (system, learning, communication) always use the generic
// executor since they model work the engine only simulates.
func NewDefaultRegistry(backend Backend, scale float64) *Registry {
	generic := NewGeneric(scale)
	reg := NewRegistry(generic)

	prompts := map[task.Category]string{
		task.CategoryResearch: "Research task",
		task.CategoryCoding:   "Implement",
		task.CategoryAnalysis: "Analyze",
		task.CategoryCreative: "Create",
		task.CategoryDecision: "Decide",
	}
	for category, verb := range prompts {
		reg.Register(category, NewReasoning(backend, actionPrompt(verb), generic))
	}

	reg.Register(task.CategorySystem, generic)
	reg.Register(task.CategoryLearning, generic)
	reg.Register(task.CategoryCommunication, generic)
	return reg
}
