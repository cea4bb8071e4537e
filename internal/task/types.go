package task

import "fmt"

// Status represents the current state of a task or step in the execution
// pipeline. Tasks and steps share one status vocabulary, though not every
// value is reachable for both: planning is task-only.
type Status string

const (
	// StatusPending indicates the task or step is waiting to run.
	StatusPending Status = "pending"

	// StatusPlanning indicates the task is having its step plan generated.
	StatusPlanning Status = "planning"

	// StatusInProgress indicates the task or step is actively executing.
	StatusInProgress Status = "in_progress"

	// StatusBlocked indicates the task has pending steps but none can become
	// ready, typically because of a dependency cycle or a failed prerequisite.
	StatusBlocked Status = "blocked"

	// StatusCompleted indicates the task or step finished successfully.
	StatusCompleted Status = "completed"

	// StatusFailed indicates the task or step failed.
	StatusFailed Status = "failed"

	// StatusCancelled indicates the task or step was cancelled externally.
	StatusCancelled Status = "cancelled"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal returns true if this status represents a final state for a step.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// Priority represents the scheduling priority of a task. It is informational
// only: the scheduler admits tasks in submission order regardless of priority.
type Priority int

const (
	PriorityCritical   Priority = 1
	PriorityHigh       Priority = 2
	PriorityMedium     Priority = 3
	PriorityLow        Priority = 4
	PriorityBackground Priority = 5
)

// String returns the string representation of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	case PriorityBackground:
		return "background"
	default:
		return "unknown"
	}
}

// ParsePriority converts a priority name to a Priority value.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "critical":
		return PriorityCritical, nil
	case "high":
		return PriorityHigh, nil
	case "medium", "":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	case "background":
		return PriorityBackground, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", s)
	}
}

// Category classifies a task for executor selection. Each category may have
// a specialized step executor registered; unknown categories fall back to
// the generic executor.
type Category string

const (
	CategoryResearch      Category = "research"
	CategoryCoding        Category = "coding"
	CategoryAnalysis      Category = "analysis"
	CategoryCreative      Category = "creative"
	CategorySystem        Category = "system"
	CategoryLearning      Category = "learning"
	CategoryCommunication Category = "communication"
	CategoryDecision      Category = "decision"
)

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// Categories returns all known task categories.
func Categories() []Category {
	return []Category{
		CategoryResearch,
		CategoryCoding,
		CategoryAnalysis,
		CategoryCreative,
		CategorySystem,
		CategoryLearning,
		CategoryCommunication,
		CategoryDecision,
	}
}

// ParseCategory converts a category name to a Category value.
// An empty string defaults to analysis.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryAnalysis, nil
	}
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
