package display

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/strategix/strategix/internal/plan"
	"github.com/strategix/strategix/internal/task"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		progress float64
		want     string
	}{
		{0, "[░░░░░░░░░░░░░░░░░░░░]   0%"},
		{0.5, "[██████████░░░░░░░░░░]  50%"},
		{1, "[████████████████████] 100%"},
		{1.7, "[████████████████████] 100%"},
		{-0.2, "[░░░░░░░░░░░░░░░░░░░░]   0%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.progress); got != tt.want {
			t.Errorf("ProgressBar(%v) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}

func TestTaskReportContainsStepsAndErrors(t *testing.T) {
	snap := task.Snapshot{
		ID:          "11111111-2222-3333-4444-555555555555",
		Description: "migrate the billing database",
		Category:    task.CategorySystem,
		Priority:    task.PriorityHigh,
		Status:      task.StatusBlocked,
		Progress:    0.5,
		Steps: []task.StepSnapshot{
			{ID: "step_1", Description: "Dump schema", Status: task.StatusCompleted},
			{ID: "step_2", Description: "Apply migration", Status: task.StatusFailed, Err: "connection refused"},
		},
	}

	report := TaskReport(snap)
	for _, want := range []string{
		"migrate the billing database",
		"step_1", "Dump schema",
		"step_2", "Apply migration",
		"connection refused",
		"blocked",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestTaskLineShortensID(t *testing.T) {
	snap := task.Snapshot{
		ID:          "deadbeef-0000-0000-0000-000000000000",
		Description: "short task",
		Status:      task.StatusCompleted,
	}
	line := TaskLine(snap)
	if !strings.Contains(line, "deadbeef") {
		t.Errorf("line %q missing short ID", line)
	}
	if strings.Contains(line, "deadbeef-0000") {
		t.Errorf("line %q contains full UUID", line)
	}
}

func TestTaskLineBoundsWidth(t *testing.T) {
	snap := task.Snapshot{
		ID:          "deadbeef-0000-0000-0000-000000000000",
		Description: strings.Repeat("reconcile ledger entries ", 10),
		Status:      task.StatusInProgress,
	}
	line := TaskLine(snap)
	if w := lipgloss.Width(line); w > taskLineWidth {
		t.Errorf("line width = %d, want at most %d", w, taskLineWidth)
	}
	if !strings.HasSuffix(line, "...") {
		t.Errorf("line %q missing truncation tail", line)
	}
	if !strings.Contains(line, "in_progress") {
		t.Errorf("line %q lost status label to truncation", line)
	}
}

func TestPlanReportListsPrerequisites(t *testing.T) {
	specs := []plan.StepSpec{
		{StepID: "step_1", Description: "Understand Requirements"},
		{StepID: "step_2", Description: "Design Solution", Prerequisites: []string{"step_1"}},
	}
	report := PlanReport("build a widget", specs)
	for _, want := range []string{"build a widget", "step_1", "step_2", "after step_1", "2 steps"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestStatusGlyphFallback(t *testing.T) {
	if got := StatusGlyph(task.Status("mystery")); got != "?" {
		t.Errorf("StatusGlyph(mystery) = %q, want ?", got)
	}
}
