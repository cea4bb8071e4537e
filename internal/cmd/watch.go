package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/strategix/strategix/internal/display"
	"github.com/strategix/strategix/internal/scheduler"
	"github.com/strategix/strategix/internal/task"
)

var (
	watchCategory string
	watchPriority string
)

var watchCmd = &cobra.Command{
	Use:   "watch <description> [description...]",
	Short: "Execute tasks with a live progress view",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchCategory, "category", "", "task category")
	watchCmd.Flags().StringVar(&watchPriority, "priority", "", "task priority")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	category, err := task.ParseCategory(watchCategory)
	if err != nil {
		return err
	}
	priority, err := task.ParsePriority(watchPriority)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	for _, desc := range args {
		if _, err := eng.scheduler.CreateTask(ctx, desc, category, priority, nil); err != nil {
			return fmt.Errorf("failed to create task %q: %w", desc, err)
		}
	}
	eng.scheduler.Close()

	done := make(chan struct{})
	go func() {
		eng.scheduler.Run(ctx)
		close(done)
	}()

	model := newWatchModel(eng.scheduler)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		cancel()
		<-done
		return fmt.Errorf("watch UI failed: %w", err)
	}
	cancel()
	<-done

	for _, snap := range eng.scheduler.AllTasks() {
		fmt.Println(display.TaskReport(snap))
	}
	return nil
}

// watchTick drives the periodic snapshot refresh.
type watchTick time.Time

type watchModel struct {
	sched *scheduler.Scheduler
	spin  spinner.Model
	snaps []task.Snapshot
	done  bool
}

func newWatchModel(sched *scheduler.Scheduler) watchModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	return watchModel{
		sched: sched,
		spin:  spin,
		snaps: sched.AllTasks(),
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return watchTick(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, tickCmd())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case watchTick:
		m.snaps = m.sched.AllTasks()
		if m.sched.Idle() {
			m.done = true
			return m, tea.Quit
		}
		return m, tickCmd()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder
	if m.done {
		b.WriteString("all tasks finished\n")
	} else {
		b.WriteString(m.spin.View())
		b.WriteString(" executing tasks (q to quit)\n")
	}
	for _, snap := range m.snaps {
		b.WriteString(display.TaskLine(snap))
		b.WriteString("  ")
		b.WriteString(display.ProgressBar(snap.Progress))
		b.WriteString("\n")
	}
	return b.String()
}
