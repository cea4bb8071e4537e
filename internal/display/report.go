package display

import (
	"fmt"
	"strings"

	"github.com/strategix/strategix/internal/plan"
	"github.com/strategix/strategix/internal/task"
	"github.com/strategix/strategix/internal/util"
)

const (
	progressBarWidth = 20
	taskLineWidth    = 100
)

// ProgressBar renders a fixed-width bar for a 0 to 1 fraction.
func ProgressBar(progress float64) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress*progressBarWidth + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
	return fmt.Sprintf("[%s] %3.0f%%", bar, progress*100)
}

// TaskLine renders a one-line summary of a task suitable for lists. The
// description comes last so that width truncation only ever trims it.
func TaskLine(snap task.Snapshot) string {
	style := StatusStyle(snap.Status)
	line := fmt.Sprintf("%s %s %s  %s",
		style.Render(StatusGlyph(snap.Status)),
		mutedStyle.Render(shortID(snap.ID)),
		style.Render(string(snap.Status)),
		snap.Description)
	return util.TruncateANSI(line, taskLineWidth)
}

// TaskReport renders a full multi-line report of a task and its steps.
func TaskReport(snap task.Snapshot) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(util.TruncateString(snap.Description, 80)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("id: %s  category: %s  priority: %s",
		snap.ID, snap.Category, snap.Priority)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		StatusStyle(snap.Status).Render(string(snap.Status)),
		ProgressBar(snap.Progress)))

	for _, step := range snap.Steps {
		style := StatusStyle(step.Status)
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			style.Render(StatusGlyph(step.Status)),
			step.ID,
			step.Description))
		if step.Err != "" {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("      error: %s", step.Err)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// PlanReport renders a generated plan without executing it.
func PlanReport(description string, specs []plan.StepSpec) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(util.TruncateString(description, 80)))
	b.WriteString("\n")
	for _, spec := range specs {
		b.WriteString(fmt.Sprintf("  %s  %s", spec.StepID, spec.Description))
		if len(spec.Prerequisites) > 0 {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  (after %s)", strings.Join(spec.Prerequisites, ", "))))
		}
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d steps", len(specs))))
	b.WriteString("\n")
	return b.String()
}

// shortID returns the leading segment of a UUID for compact display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
