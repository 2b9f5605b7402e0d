// Package schedule expands a generated taper into a day-by-day dosing
// calendar.
//
// 🚀 What does it add?
//
//	A taper phase only fixes totals: so many whole and half units spread
//	over a cycle of days. This package decides the per-day amounts — a
//	deterministic, even spread in half-unit granularity — and lays the
//	phases out on real dates:
//	  • Pattern: one phase → per-day unit amounts summing to the exact total
//	  • Expand:  whole plan + start date → one entry per calendar day
//
// ✨ Guarantees:
//   - exact: each cycle's pattern sums to the phase total, no drift
//   - deterministic: the same plan and date always yield the same calendar
//   - read-only: the phase list is never modified
//
// ⚙️ Usage:
//
//	res := taper.Generate(2.0, 0.5, taper.Constraints{})
//	days, err := schedule.Expand(res.Phases, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
//	for _, d := range days {
//	    fmt.Println(d.Date.Format("2006-01-02"), d.Units)
//	}
package schedule
