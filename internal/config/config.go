package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete Strategix configuration
type Config struct {
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Executor  ExecutorConfig  `mapstructure:"executor"`
	Planner   PlannerConfig   `mapstructure:"planner"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// SchedulerConfig controls the task scheduling loop
type SchedulerConfig struct {
	// MaxConcurrentTasks is the number of tasks that may execute at once
	MaxConcurrentTasks int `mapstructure:"max_concurrent_tasks"`
	// MaxConcurrentSteps is the number of steps of one task that may execute at once
	MaxConcurrentSteps int `mapstructure:"max_concurrent_steps"`
	// PollIntervalMs is how long the loop sleeps when idle or at capacity (in milliseconds)
	PollIntervalMs int `mapstructure:"poll_interval_ms"`
	// ErrorBackoffMs is how long the loop pauses after an unexpected error (in milliseconds)
	ErrorBackoffMs int `mapstructure:"error_backoff_ms"`
}

// ExecutorConfig controls step execution behavior
type ExecutorConfig struct {
	// TimeScale multiplies the simulated wait of the generic executor.
	// 1.0 is real scale, 0 disables waiting entirely
	TimeScale float64 `mapstructure:"time_scale"`
}

// PlannerConfig controls plan generation
type PlannerConfig struct {
	// TemplatesFile is an optional YAML file of plan templates that
	// override or extend the built-in template library
	TemplatesFile string `mapstructure:"templates_file"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the directory for the log file; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// PollInterval returns the poll interval as a time.Duration
func (c *SchedulerConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// ErrorBackoff returns the error backoff as a time.Duration
func (c *SchedulerConfig) ErrorBackoff() time.Duration {
	return time.Duration(c.ErrorBackoffMs) * time.Millisecond
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			MaxConcurrentTasks: 3,
			MaxConcurrentSteps: 3,
			PollIntervalMs:     100,
			ErrorBackoffMs:     1000,
		},
		Executor: ExecutorConfig{
			TimeScale: 1.0,
		},
		Planner: PlannerConfig{
			TemplatesFile: "", // Empty means built-in templates only
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "", // Empty means stderr
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Scheduler defaults
	viper.SetDefault("scheduler.max_concurrent_tasks", defaults.Scheduler.MaxConcurrentTasks)
	viper.SetDefault("scheduler.max_concurrent_steps", defaults.Scheduler.MaxConcurrentSteps)
	viper.SetDefault("scheduler.poll_interval_ms", defaults.Scheduler.PollIntervalMs)
	viper.SetDefault("scheduler.error_backoff_ms", defaults.Scheduler.ErrorBackoffMs)

	// Executor defaults
	viper.SetDefault("executor.time_scale", defaults.Executor.TimeScale)

	// Planner defaults
	viper.SetDefault("planner.templates_file", defaults.Planner.TemplatesFile)

	// Logging defaults
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "strategix")
	}
	// Fall back to ~/.config/strategix
	home, err := os.UserHomeDir()
	if err != nil {
		return ".strategix"
	}
	return filepath.Join(home, ".config", "strategix")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
