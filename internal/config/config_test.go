package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Fatalf("default config failed validation: %v", ValidationErrors(errs))
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Scheduler.MaxConcurrentTasks != 3 {
		t.Errorf("MaxConcurrentTasks = %d, want 3", cfg.Scheduler.MaxConcurrentTasks)
	}
	if cfg.Scheduler.MaxConcurrentSteps != 3 {
		t.Errorf("MaxConcurrentSteps = %d, want 3", cfg.Scheduler.MaxConcurrentSteps)
	}
	if got := cfg.Scheduler.PollInterval(); got != 100*time.Millisecond {
		t.Errorf("PollInterval = %v, want 100ms", got)
	}
	if got := cfg.Scheduler.ErrorBackoff(); got != time.Second {
		t.Errorf("ErrorBackoff = %v, want 1s", got)
	}
	if cfg.Executor.TimeScale != 1.0 {
		t.Errorf("TimeScale = %v, want 1.0", cfg.Executor.TimeScale)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadFromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("scheduler.max_concurrent_tasks", 8)
	viper.Set("executor.time_scale", 0.5)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scheduler.MaxConcurrentTasks != 8 {
		t.Errorf("MaxConcurrentTasks = %d, want 8", cfg.Scheduler.MaxConcurrentTasks)
	}
	if cfg.Executor.TimeScale != 0.5 {
		t.Errorf("TimeScale = %v, want 0.5", cfg.Executor.TimeScale)
	}
	// Untouched keys keep their defaults.
	if cfg.Scheduler.PollIntervalMs != 100 {
		t.Errorf("PollIntervalMs = %d, want default 100", cfg.Scheduler.PollIntervalMs)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("scheduler.max_concurrent_tasks", 0)
	viper.Set("logging.level", "loud")

	_, err := Load()
	if err == nil {
		t.Fatal("Load accepted invalid config")
	}
	msg := err.Error()
	if !strings.Contains(msg, "scheduler.max_concurrent_tasks") {
		t.Errorf("error %q does not mention scheduler.max_concurrent_tasks", msg)
	}
	if !strings.Contains(msg, "logging.level") {
		t.Errorf("error %q does not mention logging.level", msg)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Scheduler.MaxConcurrentTasks = -1
	cfg.Scheduler.MaxConcurrentSteps = 0
	cfg.Executor.TimeScale = -2

	errs := cfg.Validate()
	if len(errs) != 3 {
		t.Fatalf("Validate returned %d errors, want 3: %v", len(errs), ValidationErrors(errs))
	}
}

func TestValidationErrorFormat(t *testing.T) {
	err := ValidationError{
		Field:   "executor.time_scale",
		Value:   -2.0,
		Message: "must be non-negative",
	}
	want := "executor.time_scale: must be non-negative (got: -2)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
