package plan

// DefaultPlan returns the fixed fallback plan used whenever plan generation
// fails, returns nothing, or no generator is configured: a three-step
// analyze, execute, validate sequence with a linear dependency chain.
func DefaultPlan() []StepSpec {
	return []StepSpec{
		{
			StepID:             "step_1",
			Description:        "Analyze the task requirements",
			Action:             "analyze",
			Prerequisites:      []string{},
			EstimatedDuration:  30,
			RequiredTools:      []string{},
			ValidationCriteria: []string{"Requirements understood"},
		},
		{
			StepID:             "step_2",
			Description:        "Execute main task",
			Action:             "execute",
			Prerequisites:      []string{"step_1"},
			EstimatedDuration:  120,
			RequiredTools:      []string{},
			ValidationCriteria: []string{"Task executed"},
		},
		{
			StepID:             "step_3",
			Description:        "Validate results",
			Action:             "validate",
			Prerequisites:      []string{"step_2"},
			EstimatedDuration:  30,
			RequiredTools:      []string{},
			ValidationCriteria: []string{"Results validated"},
		},
	}
}
