package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Info("task enqueued", "task_id", "t-1")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "strategix.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry["msg"] != "task enqueued" {
		t.Errorf("msg = %v, want %q", entry["msg"], "task enqueued")
	}
	if entry["task_id"] != "t-1" {
		t.Errorf("task_id = %v, want t-1", entry["task_id"])
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelWarn)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "strategix.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(data)

	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Error("messages below WARN should be filtered")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("warn message should be logged")
	}
}

func TestChildLoggerAttributes(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	child := logger.WithTask("t-42").WithStep("step_1").WithComponent("executor")
	child.Info("step dispatched")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "strategix.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry["task_id"] != "t-42" {
		t.Errorf("task_id = %v, want t-42", entry["task_id"])
	}
	if entry["step_id"] != "step_1" {
		t.Errorf("step_id = %v, want step_1", entry["step_id"])
	}
	if entry["component"] != "executor" {
		t.Errorf("component = %v, want executor", entry["component"])
	}
}

func TestChildLoggerDoesNotMutateParent(t *testing.T) {
	logger := NopLogger()
	child := logger.WithTask("t-1")

	if len(logger.attrs) != 0 {
		t.Errorf("parent attrs = %d, want 0", len(logger.attrs))
	}
	if len(child.attrs) != 1 {
		t.Errorf("child attrs = %d, want 1", len(child.attrs))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warn", LevelWarn},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	// Should not panic and Close should be a no-op.
	logger.Info("discarded")
	if err := logger.Close(); err != nil {
		t.Errorf("Close on NopLogger returned %v", err)
	}
}
