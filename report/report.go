// Package report renders bench results for humans (a styled summary
// table) and for tools (an indented JSON artifact).
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/varbench/bench"
)

var (
	headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// Table renders one row per variant: count, min, median, mean, the
// configured percentile, and max. Failed variants render their cause
// instead of numbers.
func Table(res bench.Result) string {
	var b strings.Builder

	pctHeader := fmt.Sprintf("p%g", res.Config.Percentile*100)
	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"%-24s %6s %10s %10s %10s %10s %10s",
		"VARIANT", "COUNT", "MIN", "MEDIAN", "MEAN", pctHeader, "MAX")))
	b.WriteString("\n")

	for _, rep := range res.Reports {
		label := labelStyle.Render(fmt.Sprintf("%-24s", rep.Label))
		if rep.Failed() {
			b.WriteString(fmt.Sprintf(" %s %s\n", label,
				failStyle.Render(fmt.Sprintf("FAILED: %v", causeOf(rep.Err)))))
			continue
		}
		s := rep.Summary
		b.WriteString(fmt.Sprintf(" %s %6d %10s %10s %10s %10s %10s\n",
			label, s.Count,
			formatDuration(s.Min),
			formatDuration(s.Median),
			formatDuration(s.Mean),
			formatDuration(s.Percentile),
			formatDuration(s.Max)))
	}

	b.WriteString(faintStyle.Render(fmt.Sprintf(
		" generated %s, %d repetitions per variant",
		res.GeneratedAt.Format(time.RFC3339), res.Config.Repetitions)))
	b.WriteString("\n")
	return b.String()
}

// causeOf unwraps the variant error down to the caller's original cause.
func causeOf(err error) error {
	if verr, ok := err.(*bench.VariantError); ok && verr.Cause != nil {
		return verr.Cause
	}
	return err
}

// formatDuration renders a duration at a readable precision for table
// cells: sub-millisecond values keep microsecond detail, everything else
// rounds to 10 microseconds.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}
