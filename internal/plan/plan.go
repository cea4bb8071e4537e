// Package plan defines the plan-generation boundary of the engine: the
// Generator interface consumed by the scheduler, the step specifications a
// generator produces, and the built-in template generator with its default
// fallback plan.
package plan

import (
	"context"

	"github.com/strategix/strategix/internal/task"
)

// StepSpec describes one step of a generated plan. Specs are pure data:
// they carry no execution state and are converted into task steps at
// assembly time.
type StepSpec struct {
	StepID             string   `yaml:"step_id" json:"step_id"`
	Description        string   `yaml:"description" json:"description"`
	Action             string   `yaml:"action" json:"action"`
	Prerequisites      []string `yaml:"prerequisites" json:"prerequisites"`
	EstimatedDuration  int      `yaml:"estimated_duration" json:"estimated_duration"`
	RequiredTools      []string `yaml:"required_tools" json:"required_tools"`
	ValidationCriteria []string `yaml:"validation_criteria" json:"validation_criteria"`
}

// Generator produces an ordered list of step specifications for a task
// description. Implementations may consult templates, heuristics, or an
// external reasoning service.
//
// A generator may fail or return an empty list; callers must fall back to
// DefaultPlan rather than surfacing the failure as a task failure.
type Generator interface {
	GeneratePlan(ctx context.Context, description string, category task.Category, metadata map[string]string) ([]StepSpec, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, description string, category task.Category, metadata map[string]string) ([]StepSpec, error)

// GeneratePlan calls f.
func (f GeneratorFunc) GeneratePlan(ctx context.Context, description string, category task.Category, metadata map[string]string) ([]StepSpec, error) {
	return f(ctx, description, category, metadata)
}

// Assemble populates a task with steps built from the given specs and
// validates the structure of the resulting plan: unique step IDs and no
// prerequisite referencing a nonexistent step. Structural problems are
// returned as configuration errors at assembly time, never discovered later
// as a silent permanent block.
func Assemble(t *task.Task, specs []StepSpec) error {
	for _, spec := range specs {
		step := &task.Step{
			ID:                 spec.StepID,
			Description:        spec.Description,
			Action:             spec.Action,
			Prerequisites:      append([]string(nil), spec.Prerequisites...),
			EstimatedDuration:  spec.EstimatedDuration,
			RequiredTools:      append([]string(nil), spec.RequiredTools...),
			ValidationCriteria: append([]string(nil), spec.ValidationCriteria...),
			Status:             task.StatusPending,
		}
		if err := t.AddStep(step); err != nil {
			return err
		}
	}
	return t.Validate()
}
