// Package render draws taper plans for the terminal: a phase table, a dose
// chart, and the constraint audit as an icon-prefixed status block.
//
// All output is plain strings; callers decide where to print them. Styling
// uses lipgloss and degrades gracefully on dumb terminals.
package render
