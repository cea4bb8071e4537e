package cmd

import (
	"fmt"

	"github.com/strategix/strategix/internal/config"
	"github.com/strategix/strategix/internal/event"
	"github.com/strategix/strategix/internal/executor"
	"github.com/strategix/strategix/internal/logging"
	"github.com/strategix/strategix/internal/plan"
	"github.com/strategix/strategix/internal/scheduler"
)

// engine bundles the wired-up components a command needs to run tasks.
type engine struct {
	cfg       *config.Config
	logger    *logging.Logger
	events    *event.Bus
	scheduler *scheduler.Scheduler
}

// newEngine assembles planner, executor, and scheduler from the loaded
// configuration. Callers must Close the engine when done.
func newEngine() (*engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	generator, err := newGenerator(cfg)
	if err != nil {
		logger.Close()
		return nil, err
	}

	bus := event.NewBus()
	registry := executor.NewDefaultRegistry(nil, cfg.Executor.TimeScale)
	runner := executor.NewStepRunner(registry, logger, bus)
	taskExec := executor.NewTaskExecutor(runner, cfg.Scheduler.MaxConcurrentSteps, logger)

	sched := scheduler.New(generator, taskExec, scheduler.Options{
		MaxConcurrentTasks: cfg.Scheduler.MaxConcurrentTasks,
		PollInterval:       cfg.Scheduler.PollInterval(),
		ErrorBackoff:       cfg.Scheduler.ErrorBackoff(),
	}, logger, bus)

	return &engine{
		cfg:       cfg,
		logger:    logger,
		events:    bus,
		scheduler: sched,
	}, nil
}

// newGenerator builds the plan generator, loading a template file when
// one is configured.
func newGenerator(cfg *config.Config) (plan.Generator, error) {
	if cfg.Planner.TemplatesFile == "" {
		return plan.NewTemplateGenerator(), nil
	}
	gen, err := plan.NewTemplateGeneratorFromFile(cfg.Planner.TemplatesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan templates: %w", err)
	}
	return gen, nil
}

func (e *engine) Close() {
	e.logger.Close()
}
