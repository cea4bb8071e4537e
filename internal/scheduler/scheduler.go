// Package scheduler owns the process-wide execution loop. It accepts
// task submissions, plans them, and feeds them to the task executor
// while enforcing a global concurrency bound.
package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/strategix/strategix/internal/errors"
	"github.com/strategix/strategix/internal/event"
	"github.com/strategix/strategix/internal/executor"
	"github.com/strategix/strategix/internal/logging"
	"github.com/strategix/strategix/internal/plan"
	"github.com/strategix/strategix/internal/task"
)

const (
	defaultMaxConcurrentTasks = 3
	defaultPollInterval       = 100 * time.Millisecond
	defaultErrorBackoff       = time.Second
)

// Options configures a Scheduler. Zero values fall back to defaults.
type Options struct {
	// MaxConcurrentTasks bounds how many tasks execute at once.
	MaxConcurrentTasks int
	// PollInterval is how long the loop sleeps when the queue is empty
	// or the running set is full.
	PollInterval time.Duration
	// ErrorBackoff is how long the loop pauses after an unexpected
	// panic in one of its iterations.
	ErrorBackoff time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxConcurrentTasks < 1 {
		o.MaxConcurrentTasks = defaultMaxConcurrentTasks
	}
	if o.PollInterval <= 0 {
		o.PollInterval = defaultPollInterval
	}
	if o.ErrorBackoff <= 0 {
		o.ErrorBackoff = defaultErrorBackoff
	}
	return o
}

// Scheduler plans submitted tasks and executes them asynchronously.
// Construct one with New; all methods are safe for concurrent use.
type Scheduler struct {
	opts      Options
	generator plan.Generator
	executor  *executor.TaskExecutor
	logger    *logging.Logger
	events    *event.Bus

	mu      sync.Mutex
	tasks   map[string]*task.Task
	order   []string
	queue   []*task.Task
	running map[string]struct{}
	closed  bool

	wg sync.WaitGroup
}

// New creates a scheduler. The generator may be nil, in which case
// every task gets the default plan. The event bus and logger are
// optional.
func New(generator plan.Generator, exec *executor.TaskExecutor, opts Options, logger *logging.Logger, events *event.Bus) *Scheduler {
	if exec == nil {
		exec = executor.NewTaskExecutor(nil, 1, nil)
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Scheduler{
		opts:      opts.withDefaults(),
		generator: generator,
		executor:  exec,
		logger:    logger.WithComponent("scheduler"),
		events:    events,
		tasks:     make(map[string]*task.Task),
		running:   make(map[string]struct{}),
	}
}

// CreateTask plans a task for the given description and enqueues it
// for execution. Planning is synchronous; execution happens on the
// scheduler loop. If the generator fails or produces an empty plan the
// task falls back to the default plan rather than being rejected. A
// structurally invalid plan (dangling prerequisite, duplicate step ID)
// is a configuration error and is returned to the caller.
func (s *Scheduler) CreateTask(ctx context.Context, description string, category task.Category, priority task.Priority, metadata map[string]string) (*task.Task, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, errors.ErrQueueClosed
	}

	t := task.New(description, category, priority, metadata)
	log := s.logger.WithTask(t.ID)

	specs, err := s.generate(ctx, description, category, metadata)
	if err != nil || len(specs) == 0 {
		log.Warn("plan generation failed, using default plan", "error", err)
		specs = plan.DefaultPlan()
	}

	if err := plan.Assemble(t, specs); err != nil {
		return nil, errors.NewPlanError("invalid plan", err).WithCategory(string(category))
	}
	t.MarkEnqueued()

	s.mu.Lock()
	s.tasks[t.ID] = t
	s.order = append(s.order, t.ID)
	s.queue = append(s.queue, t)
	s.mu.Unlock()

	log.Info("task created", "category", category, "steps", t.StepCount())
	s.publish(event.NewTaskCreated(t.ID, description, string(category), t.StepCount()))
	return t, nil
}

func (s *Scheduler) generate(ctx context.Context, description string, category task.Category, metadata map[string]string) ([]plan.StepSpec, error) {
	if s.generator == nil {
		return plan.DefaultPlan(), nil
	}
	return s.generator.GeneratePlan(ctx, description, category, metadata)
}

// Run drives the scheduling loop until ctx is cancelled, then waits
// for in-flight tasks to finish.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("scheduler started",
		"max_concurrent_tasks", s.opts.MaxConcurrentTasks,
		"poll_interval", s.opts.PollInterval)

	for ctx.Err() == nil {
		s.iterate(ctx)
	}

	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

// iterate runs one pass of the loop. Panics are contained here so a
// bad plan or executor bug cannot kill the whole scheduler.
func (s *Scheduler) iterate(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduler loop panic", "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
			s.sleep(ctx, s.opts.ErrorBackoff)
		}
	}()

	t := s.next()
	if t == nil {
		s.sleep(ctx, s.opts.PollInterval)
		return
	}

	s.wg.Add(1)
	go s.runTask(ctx, t)
}

// next pops the head of the intake queue if a running slot is free.
// When the running set is full the head is requeued at the back so
// the loop keeps cycling rather than head-of-line blocking forever on
// one task.
func (s *Scheduler) next() *task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return nil
	}
	t := s.queue[0]
	s.queue = s.queue[1:]

	if len(s.running) >= s.opts.MaxConcurrentTasks {
		s.queue = append(s.queue, t)
		return nil
	}
	s.running[t.ID] = struct{}{}
	return t
}

func (s *Scheduler) runTask(ctx context.Context, t *task.Task) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		delete(s.running, t.ID)
		s.mu.Unlock()
	}()
	defer func() {
		if r := recover(); r != nil {
			t.MarkFailed()
			s.logger.WithTask(t.ID).Error("task execution panic", "panic", fmt.Sprint(r))
			s.publish(event.NewTaskFinished(t.ID, string(task.StatusFailed), t.Progress()))
		}
	}()

	s.publish(event.NewTaskStarted(t.ID))
	res := s.executor.Run(ctx, t)
	s.logger.WithTask(t.ID).Info("task finished",
		"status", res.Status, "progress", res.Progress, "duration", res.Duration)
	s.publish(event.NewTaskFinished(t.ID, string(res.Status), res.Progress))
}

// TaskStatus returns a point-in-time snapshot of the identified task,
// or nil when the ID is unknown.
func (s *Scheduler) TaskStatus(id string) *task.Snapshot {
	s.mu.Lock()
	t, ok := s.tasks[id]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	snap := t.Snapshot()
	return &snap
}

// AllTasks returns snapshots of every known task in creation order.
func (s *Scheduler) AllTasks() []task.Snapshot {
	s.mu.Lock()
	tasks := make([]*task.Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, s.tasks[id])
	}
	s.mu.Unlock()

	snaps := make([]task.Snapshot, len(tasks))
	for i, t := range tasks {
		snaps[i] = t.Snapshot()
	}
	return snaps
}

// Close stops accepting new tasks. Tasks already submitted still run.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Idle reports whether no tasks are queued or running.
func (s *Scheduler) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue) == 0 && len(s.running) == 0
}

// WaitIdle blocks until the scheduler has no queued or running tasks,
// or ctx is cancelled.
func (s *Scheduler) WaitIdle(ctx context.Context) error {
	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()
	for {
		if s.Idle() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) publish(e event.Event) {
	if s.events != nil {
		s.events.Publish(e)
	}
}

func (s *Scheduler) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
