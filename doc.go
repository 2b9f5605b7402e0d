// Package taperplan builds monotonically decreasing dosage-reduction plans —
// from a starting daily amount down to a goal, phase by phase.
//
// 🚀 What is taperplan?
//
//	A small, deterministic planning library plus CLI that brings together:
//		• Core engine: constraint-aware greedy search over discrete dose shapes
//		• Repair passes: duration stabilization & step splitting
//		• Constraint audit: respected / violated / warnings with reasoning
//		• Calendar expansion: phase list → day-by-day dosing schedule
//		• Presentation: terminal tables, dose charts, status blocks
//
// ✨ Why choose taperplan?
//
//   - Deterministic – same inputs, byte-identical plans, every time
//   - Safe by construction – doses never increase, hard caps fail closed
//   - Honest diagnostics – unmet constraints are reported, never dropped
//   - Pure core – the engine does no I/O and keeps no state between calls
//
// Everything is organized under five packages:
//
//	taper/     — the plan-generation engine (validation, search, repair, audit)
//	schedule/  — calendar expansion of a generated plan
//	planfile/  — YAML request & plan files for the CLI
//	render/    — terminal rendering of plans and constraint status
//	cmd/       — the taperplan command-line tool
//
// Quick ASCII example of a generated taper:
//
//	2.000 │████████████████████ 14d
//	1.750 │█████████████████▌   14d
//	1.500 │███████████████      14d
//	 ...
//
// Dive into the per-package docs for contracts, edge cases and examples.
//
//	go get github.com/taperlab/taperplan/taper
package taperplan
