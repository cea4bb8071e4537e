package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "scheduler.max_concurrent_tasks")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateScheduler()...)
	errors = append(errors, c.validateExecutor()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateScheduler validates the SchedulerConfig
func (c *Config) validateScheduler() []ValidationError {
	var errors []ValidationError

	if c.Scheduler.MaxConcurrentTasks < 1 {
		errors = append(errors, ValidationError{
			Field:   "scheduler.max_concurrent_tasks",
			Value:   c.Scheduler.MaxConcurrentTasks,
			Message: "must be at least 1",
		})
	}
	if c.Scheduler.MaxConcurrentSteps < 1 {
		errors = append(errors, ValidationError{
			Field:   "scheduler.max_concurrent_steps",
			Value:   c.Scheduler.MaxConcurrentSteps,
			Message: "must be at least 1",
		})
	}
	if c.Scheduler.PollIntervalMs < 1 {
		errors = append(errors, ValidationError{
			Field:   "scheduler.poll_interval_ms",
			Value:   c.Scheduler.PollIntervalMs,
			Message: "must be at least 1",
		})
	}
	if c.Scheduler.ErrorBackoffMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "scheduler.error_backoff_ms",
			Value:   c.Scheduler.ErrorBackoffMs,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateExecutor validates the ExecutorConfig
func (c *Config) validateExecutor() []ValidationError {
	var errors []ValidationError

	if c.Executor.TimeScale < 0 {
		errors = append(errors, ValidationError{
			Field:   "executor.time_scale",
			Value:   c.Executor.TimeScale,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
