package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taperlab/taperplan/taper"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	rowStyle    = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)

	respectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	violatedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Table renders the phase list as an aligned table: index, units per cycle,
// cycle length, average daily dose, and the step down from the previous
// phase. Returns a note instead of an empty table for an empty plan.
func Table(phases []taper.Phase) string {
	if len(phases) == 0 {
		return dimStyle.Render("(no phases)")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-3s  %-14s  %-6s  %-9s  %s",
		"#", "units/cycle", "days", "avg/day", "step")))
	b.WriteByte('\n')

	prev := -1.0
	for _, p := range phases {
		step := "—"
		if prev >= 0 {
			d := prev - p.AverageDailyDose
			if d == 0 {
				step = "hold"
			} else {
				step = fmt.Sprintf("-%.3f", d)
			}
		}
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-3d  %-14s  %-6d  %-9.3f  %s",
			p.Index, formatUnits(p.DoseCombination), p.CycleLength, p.AverageDailyDose, step)))
		b.WriteByte('\n')
		prev = p.AverageDailyDose
	}

	return b.String()
}

// formatUnits renders a combination's per-cycle units, e.g. "21", "2 + 1×½"
// or "3×½".
func formatUnits(c taper.DoseCombination) string {
	switch {
	case c.WholeUnits == 0 && c.HalfUnits == 0:
		return "0"
	case c.HalfUnits == 0:
		return fmt.Sprintf("%d", c.WholeUnits)
	case c.WholeUnits == 0:
		return fmt.Sprintf("%d×½", c.HalfUnits)
	default:
		return fmt.Sprintf("%d + %d×½", c.WholeUnits, c.HalfUnits)
	}
}

// Status renders the constraint audit as one icon-prefixed line per entry:
// ✓ respected, ✗ violated, ⚠ warnings, and a dimmed reasoning block.
func Status(cs taper.ConstraintStatus) string {
	var b strings.Builder

	for _, s := range cs.Respected {
		b.WriteString(respectedStyle.Render("✓ " + s))
		b.WriteByte('\n')
	}
	for _, s := range cs.Violated {
		b.WriteString(violatedStyle.Render("✗ " + s))
		b.WriteByte('\n')
	}
	for _, s := range cs.Warnings {
		b.WriteString(warningStyle.Render("⚠ " + s))
		b.WriteByte('\n')
	}
	for _, s := range cs.Reasoning {
		b.WriteString(dimStyle.Render("• " + s))
		b.WriteByte('\n')
	}

	if b.Len() == 0 {
		return dimStyle.Render("(no constraints requested)")
	}

	return b.String()
}
