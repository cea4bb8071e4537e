package plan

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strategix/strategix/internal/errors"
	"github.com/strategix/strategix/internal/task"
	"github.com/strategix/strategix/internal/util"
)

// TemplateStep is one entry of a plan template: an action tag and its
// expected duration in seconds.
type TemplateStep struct {
	Action   string `yaml:"action"`
	Duration int    `yaml:"duration"`
}

// Template is a reusable plan skeleton. Template steps are expanded into a
// linear chain: each generated step lists the previous one as its sole
// prerequisite.
type Template struct {
	Steps []TemplateStep `yaml:"steps"`
}

// descriptionLimit bounds how much of the task description is echoed into
// generated step descriptions.
const descriptionLimit = 50

// builtinTemplates returns the predefined plan templates.
func builtinTemplates() map[string]Template {
	return map[string]Template{
		"code_generation": {Steps: []TemplateStep{
			{Action: "understand_requirements", Duration: 30},
			{Action: "design_solution", Duration: 60},
			{Action: "implement_code", Duration: 180},
			{Action: "test_implementation", Duration: 120},
			{Action: "refactor_optimize", Duration: 90},
		}},
		"problem_solving": {Steps: []TemplateStep{
			{Action: "analyze_problem", Duration: 60},
			{Action: "identify_constraints", Duration: 30},
			{Action: "generate_solutions", Duration: 90},
			{Action: "evaluate_options", Duration: 60},
			{Action: "implement_solution", Duration: 120},
		}},
		"research": {Steps: []TemplateStep{
			{Action: "define_scope", Duration: 30},
			{Action: "gather_information", Duration: 180},
			{Action: "analyze_findings", Duration: 120},
			{Action: "synthesize_insights", Duration: 90},
			{Action: "create_summary", Duration: 60},
		}},
	}
}

// categoryTemplates maps task categories to template names. Categories
// without a mapping fall back to problem_solving.
var categoryTemplates = map[task.Category]string{
	task.CategoryCoding:   "code_generation",
	task.CategoryResearch: "research",
	task.CategoryAnalysis: "problem_solving",
}

const fallbackTemplate = "problem_solving"

// TemplateGenerator generates plans from a template library. It implements
// Generator and is the standard in-process generator; hosts that plan via an
// external reasoning service provide their own Generator and keep this one
// as the fallback.
type TemplateGenerator struct {
	templates map[string]Template
}

// NewTemplateGenerator creates a generator backed by the built-in template
// library.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{templates: builtinTemplates()}
}

// NewTemplateGeneratorFromFile creates a generator whose library is the
// built-in templates merged with those loaded from a YAML file. File entries
// override built-ins with the same name.
func NewTemplateGeneratorFromFile(path string) (*TemplateGenerator, error) {
	loaded, err := LoadTemplates(path)
	if err != nil {
		return nil, err
	}

	templates := builtinTemplates()
	for name, tmpl := range loaded {
		templates[name] = tmpl
	}
	return &TemplateGenerator{templates: templates}, nil
}

// LoadTemplates reads a template library from a YAML file. The file maps
// template names to step lists:
//
//	code_review:
//	  steps:
//	    - action: read_diff
//	      duration: 60
//	    - action: leave_comments
//	      duration: 120
func LoadTemplates(path string) (map[string]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}

	var templates map[string]Template
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, errors.NewPlanError("failed to parse templates file", err)
	}

	for name, tmpl := range templates {
		if len(tmpl.Steps) == 0 {
			return nil, errors.NewPlanError("template has no steps", errors.ErrEmptyPlan).WithTemplate(name)
		}
		for _, step := range tmpl.Steps {
			if step.Action == "" {
				return nil, errors.NewPlanError("template step missing action", errors.ErrInvalidInput).WithTemplate(name)
			}
		}
	}
	return templates, nil
}

// Template returns the named template and whether it exists.
func (g *TemplateGenerator) Template(name string) (Template, bool) {
	tmpl, ok := g.templates[name]
	return tmpl, ok
}

// TemplateFor returns the template name used for a category.
func TemplateFor(category task.Category) string {
	if name, ok := categoryTemplates[category]; ok {
		return name
	}
	return fallbackTemplate
}

// GeneratePlan expands the template mapped to the task's category into step
// specs. Each step is chained to its predecessor, the description echoes a
// truncated task description, and a single completion criterion is attached
// per step. If the mapped template is missing or empty, the default plan is
// returned.
func (g *TemplateGenerator) GeneratePlan(ctx context.Context, description string, category task.Category, metadata map[string]string) ([]StepSpec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpl, ok := g.templates[TemplateFor(category)]
	if !ok || len(tmpl.Steps) == 0 {
		return DefaultPlan(), nil
	}

	specs := make([]StepSpec, 0, len(tmpl.Steps))
	for i, step := range tmpl.Steps {
		duration := step.Duration
		if duration <= 0 {
			duration = 60
		}

		var prereqs []string
		if i > 0 {
			prereqs = []string{fmt.Sprintf("step_%d", i)}
		} else {
			prereqs = []string{}
		}

		specs = append(specs, StepSpec{
			StepID:             fmt.Sprintf("step_%d", i+1),
			Description:        fmt.Sprintf("%s for %s", util.TitleWords(step.Action), util.TruncateString(description, descriptionLimit)),
			Action:             step.Action,
			Prerequisites:      prereqs,
			EstimatedDuration:  duration,
			RequiredTools:      []string{},
			ValidationCriteria: []string{fmt.Sprintf("Completed %s", step.Action)},
		})
	}
	return specs, nil
}
