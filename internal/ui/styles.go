// Package ui holds the Lip Gloss styles and small rendering helpers shared
// by the CLI output and the chat TUI.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/prata/internal/core"
)

var (
	Title   = lipgloss.NewStyle().Bold(true)
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	Accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	Muted   = lipgloss.NewStyle().Faint(true)
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	Done    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	Help    = lipgloss.NewStyle().Faint(true)

	BoxChecked   = "☑"
	BoxUnchecked = "☐"
)

// OK prints a success line to stdout.
func OK(msg string) {
	fmt.Println(Success.Render("✔ " + msg))
}

// Fail prints an error line to stderr.
func Fail(msg string) {
	fmt.Fprintln(os.Stderr, Error.Render("✖ "+msg))
}

// Panel frames lines in a rounded border.
func Panel(lines []string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// ProgressBar renders a Unicode completion bar with counts.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %d/%d",
		strings.Repeat("█", filled), strings.Repeat("░", width-filled), done, total)
}

// ItemLine renders one item with its 1-based store position. Positions stay
// tied to the full list even when a filter hides neighbors, so the numbers
// on screen are the same ones identifier resolution accepts.
func ItemLine(position int, it core.Item) string {
	box := Muted.Render(BoxUnchecked)
	title := it.Title
	if it.Completed {
		box = Success.Render(BoxChecked)
		title = Done.Render(title)
	}

	var badges strings.Builder
	switch it.Priority {
	case core.PriorityHigh:
		badges.WriteString(" " + Pending.Render("▲ high"))
	case core.PriorityLow:
		badges.WriteString(" " + Muted.Render("▽ low"))
	}
	if it.Category != "" {
		badges.WriteString(" " + Accent.Render("#"+it.Category))
	}

	return fmt.Sprintf("%2d. %s %s%s", position, box, title, badges.String())
}

// StatsLine renders the header counts.
func StatsLine(st core.Stats) string {
	line := fmt.Sprintf("%s %d  %s %d  %s %d",
		Success.Render("✔"), st.Completed,
		Pending.Render("•"), st.Active,
		Title.Render("Total"), st.Total,
	)
	if st.HighPriorityActive > 0 {
		line += fmt.Sprintf("  %s %d", Pending.Render("▲"), st.HighPriorityActive)
	}
	return line
}
