// Package display renders tasks, steps, and plans for terminal output.
package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/strategix/strategix/internal/task"
)

var (
	// Colors chosen for readable contrast on dark terminals.
	primaryColor = lipgloss.Color("#A78BFA") // Purple
	greenColor   = lipgloss.Color("#10B981") // Green
	amberColor   = lipgloss.Color("#F59E0B") // Amber
	redColor     = lipgloss.Color("#F87171") // Red
	blueColor    = lipgloss.Color("#60A5FA") // Blue
	mutedColor   = lipgloss.Color("#9CA3AF") // Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusStyles = map[task.Status]lipgloss.Style{
		task.StatusPending:    lipgloss.NewStyle().Foreground(mutedColor),
		task.StatusPlanning:   lipgloss.NewStyle().Foreground(blueColor),
		task.StatusInProgress: lipgloss.NewStyle().Foreground(amberColor),
		task.StatusBlocked:    lipgloss.NewStyle().Foreground(redColor).Bold(true),
		task.StatusCompleted:  lipgloss.NewStyle().Foreground(greenColor),
		task.StatusFailed:     lipgloss.NewStyle().Foreground(redColor),
		task.StatusCancelled:  lipgloss.NewStyle().Foreground(mutedColor).Strikethrough(true),
	}

	statusGlyphs = map[task.Status]string{
		task.StatusPending:    "·",
		task.StatusPlanning:   "◌",
		task.StatusInProgress: "▶",
		task.StatusBlocked:    "✖",
		task.StatusCompleted:  "✔",
		task.StatusFailed:     "✖",
		task.StatusCancelled:  "−",
	}
)

// StatusStyle returns the lipgloss style for a status. Unknown statuses
// get the muted style.
func StatusStyle(s task.Status) lipgloss.Style {
	if style, ok := statusStyles[s]; ok {
		return style
	}
	return mutedStyle
}

// StatusGlyph returns a one-character marker for a status.
func StatusGlyph(s task.Status) string {
	if g, ok := statusGlyphs[s]; ok {
		return g
	}
	return "?"
}
