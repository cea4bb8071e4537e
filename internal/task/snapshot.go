package task

import "time"

// StepSnapshot is a point-in-time view of one step, safe to hand across the
// status query boundary.
type StepSnapshot struct {
	ID          string `json:"step_id"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Status      Status `json:"status"`
	Result      string `json:"result,omitempty"`
	Err         string `json:"error,omitempty"`
}

// Snapshot is a point-in-time view of a task and its steps. Timestamps are
// RFC 3339 strings; empty when not yet recorded.
type Snapshot struct {
	ID          string         `json:"task_id"`
	Description string         `json:"description"`
	Category    Category       `json:"category"`
	Priority    Priority       `json:"priority"`
	Status      Status         `json:"status"`
	Progress    float64        `json:"progress"`
	Steps       []StepSnapshot `json:"steps"`
	CreatedAt   string         `json:"created_at"`
	StartedAt   string         `json:"started_at,omitempty"`
	CompletedAt string         `json:"completed_at,omitempty"`
}

// Snapshot returns a consistent point-in-time view of the task. The snapshot
// holds no references into the task and is safe to retain after the task
// continues to mutate.
func (t *Task) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snap := Snapshot{
		ID:          t.ID,
		Description: t.Description,
		Category:    t.Category,
		Priority:    t.Priority,
		Status:      t.status,
		Progress:    t.progress(),
		Steps:       make([]StepSnapshot, 0, len(t.steps)),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.startedAt != nil {
		snap.StartedAt = t.startedAt.Format(time.RFC3339)
	}
	if t.completedAt != nil {
		snap.CompletedAt = t.completedAt.Format(time.RFC3339)
	}

	for _, step := range t.steps {
		snap.Steps = append(snap.Steps, StepSnapshot{
			ID:          step.ID,
			Description: step.Description,
			Action:      step.Action,
			Status:      step.Status,
			Result:      step.Result,
			Err:         step.Err,
		})
	}
	return snap
}
