package task

import (
	"testing"

	"github.com/strategix/strategix/internal/errors"
)

func TestStepMarkStarted(t *testing.T) {
	step := &Step{ID: "step_1", Status: StatusPending}

	if err := step.MarkStarted(); err != nil {
		t.Fatalf("MarkStarted failed: %v", err)
	}
	if step.Status != StatusInProgress {
		t.Errorf("status = %s, want in_progress", step.Status)
	}
	if step.StartedAt == nil {
		t.Error("StartedAt should be recorded")
	}

	// Starting twice is a guarded programming error.
	if err := step.MarkStarted(); !errors.Is(err, errors.ErrInvalidTransition) {
		t.Errorf("second MarkStarted = %v, want ErrInvalidTransition", err)
	}
}

func TestStepMarkCompleted(t *testing.T) {
	step := &Step{ID: "step_1", Status: StatusPending}

	// Completing a pending step is invalid.
	if err := step.MarkCompleted("out"); !errors.Is(err, errors.ErrInvalidTransition) {
		t.Errorf("MarkCompleted from pending = %v, want ErrInvalidTransition", err)
	}

	if err := step.MarkStarted(); err != nil {
		t.Fatalf("MarkStarted failed: %v", err)
	}
	if err := step.MarkCompleted("out"); err != nil {
		t.Fatalf("MarkCompleted failed: %v", err)
	}
	if step.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", step.Status)
	}
	if step.Result != "out" {
		t.Errorf("result = %q, want %q", step.Result, "out")
	}
	if step.CompletedAt == nil {
		t.Error("CompletedAt should be recorded")
	}
}

func TestStepMarkFailed(t *testing.T) {
	// Failing directly from pending covers dispatch-time errors.
	step := &Step{ID: "step_1", Status: StatusPending}
	if err := step.MarkFailed("dispatch error"); err != nil {
		t.Fatalf("MarkFailed from pending: %v", err)
	}
	if step.Status != StatusFailed {
		t.Errorf("status = %s, want failed", step.Status)
	}
	if step.Err != "dispatch error" {
		t.Errorf("error = %q, want %q", step.Err, "dispatch error")
	}

	// Failing a terminal step is invalid.
	if err := step.MarkFailed("again"); !errors.Is(err, errors.ErrInvalidTransition) {
		t.Errorf("MarkFailed from failed = %v, want ErrInvalidTransition", err)
	}
}

func TestStepMarkCancelled(t *testing.T) {
	tests := []struct {
		name    string
		status  Status
		wantErr bool
	}{
		{"from pending", StatusPending, false},
		{"from in_progress", StatusInProgress, false},
		{"from completed", StatusCompleted, true},
		{"from failed", StatusFailed, true},
		{"from cancelled", StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := &Step{ID: "s", Status: tt.status}
			err := step.MarkCancelled()
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidTransition) {
					t.Errorf("MarkCancelled = %v, want ErrInvalidTransition", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("MarkCancelled failed: %v", err)
			}
			if step.Status != StatusCancelled {
				t.Errorf("status = %s, want cancelled", step.Status)
			}
		})
	}
}

func TestStepIsReady(t *testing.T) {
	tests := []struct {
		name      string
		prereqs   []string
		completed map[string]bool
		want      bool
	}{
		{"no prerequisites", nil, map[string]bool{}, true},
		{"all complete", []string{"a", "b"}, map[string]bool{"a": true, "b": true}, true},
		{"one missing", []string{"a", "b"}, map[string]bool{"a": true}, false},
		{"none complete", []string{"a"}, map[string]bool{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := &Step{ID: "s", Prerequisites: tt.prereqs}
			if got := step.IsReady(tt.completed); got != tt.want {
				t.Errorf("IsReady = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStepDuration(t *testing.T) {
	step := &Step{ID: "s", Status: StatusPending}
	if step.Duration() != 0 {
		t.Error("duration should be zero before execution")
	}

	if err := step.MarkStarted(); err != nil {
		t.Fatalf("MarkStarted failed: %v", err)
	}
	if step.Duration() != 0 {
		t.Error("duration should be zero while only started")
	}

	if err := step.MarkCompleted(""); err != nil {
		t.Fatalf("MarkCompleted failed: %v", err)
	}
	if step.Duration() < 0 {
		t.Error("duration should be non-negative once finished")
	}
}
