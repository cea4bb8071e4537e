package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/strategix/strategix/internal/display"
	"github.com/strategix/strategix/internal/task"
)

var (
	runCategory string
	runPriority string
)

var runCmd = &cobra.Command{
	Use:   "run <description> [description...]",
	Short: "Plan and execute one or more tasks",
	Long: `Plan each description into a step graph and execute them all,
respecting dependency order and the configured concurrency bounds.
Prints a report per task when everything has finished.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runCategory, "category", "", "task category (research, coding, analysis, creative, decision, system, learning, communication)")
	runCmd.Flags().StringVar(&runPriority, "priority", "", "task priority (critical, high, medium, low, background)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	category, err := task.ParseCategory(runCategory)
	if err != nil {
		return err
	}
	priority, err := task.ParsePriority(runPriority)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for _, desc := range args {
		if _, err := eng.scheduler.CreateTask(ctx, desc, category, priority, nil); err != nil {
			return fmt.Errorf("failed to create task %q: %w", desc, err)
		}
	}
	eng.scheduler.Close()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		eng.scheduler.Run(runCtx)
		close(done)
	}()

	err = eng.scheduler.WaitIdle(ctx)
	cancel()
	<-done
	if err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}

	failures := 0
	for _, snap := range eng.scheduler.AllTasks() {
		fmt.Println(display.TaskReport(snap))
		if snap.Status != task.StatusCompleted {
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d tasks did not complete", failures, len(args))
	}
	return nil
}
