// SPDX-License-Identifier: MIT
// Package: taperplan/taper
//
// types.go — public data model of the taper engine.
//
// Precision contract: every dose-valued field is stored and compared at
// 3-decimal precision (see round3). Two combinations are "the same dose"
// exactly when their rounded AverageDailyDose values are equal.

package taper

import "math"

// DoseCombination is one achievable dosing shape: a count of whole and half
// units consumed over a cycle of days.
//
// Invariant: AverageDailyDose == round3(TotalUnits()/CycleLength); the field
// is precomputed once by the combination generator and never recomputed with
// different precision elsewhere.
type DoseCombination struct {
	// WholeUnits is the number of whole units per cycle (>= 0).
	WholeUnits int

	// HalfUnits is the number of half units per cycle (>= 0).
	HalfUnits int

	// CycleLength is the number of days the shape is held (>= 1).
	CycleLength int

	// AverageDailyDose is TotalUnits()/CycleLength rounded to 3 decimals.
	AverageDailyDose float64
}

// TotalUnits returns the dose units consumed in one full cycle.
func (c DoseCombination) TotalUnits() float64 {
	return float64(c.WholeUnits) + 0.5*float64(c.HalfUnits)
}

// Phase is a DoseCombination annotated with its 1-based position in a plan.
//
// Invariants over any returned plan:
//   - AverageDailyDose is non-increasing from phase to phase;
//   - phase 1 sits strictly below the starting dose;
//   - no two phases share all four combination fields, except stabilization
//     repeats deliberately inserted by the duration reconciler.
type Phase struct {
	// Index is the 1-based sequence position.
	Index int

	DoseCombination
}

// Range bounds a continuous constraint dimension. A nil bound means "no
// bound on that side"; a Range with both bounds nil is treated exactly like
// an absent Range (fully unconstrained).
type Range struct {
	Min *float64
	Max *float64
}

// empty reports whether the range carries no bound at all.
func (r *Range) empty() bool { return r == nil || (r.Min == nil && r.Max == nil) }

// IntRange bounds an integer constraint dimension; same absence semantics
// as Range.
type IntRange struct {
	Min *int
	Max *int
}

func (r *IntRange) empty() bool { return r == nil || (r.Min == nil && r.Max == nil) }

// Constraints collects the caller's optional bounds, one per dimension.
// Any nil (or bound-less) range leaves that dimension to auto-optimization.
type Constraints struct {
	// StepSize bounds the per-phase dose reduction, in units.
	StepSize *Range

	// CycleLength bounds each phase's length, in days.
	CycleLength *IntRange

	// Steps bounds the number of phases.
	Steps *IntRange

	// Duration bounds the plan's total span, in days.
	Duration *IntRange
}

// Float returns a pointer bound for Range literals.
func Float(v float64) *float64 { return &v }

// Int returns a pointer bound for IntRange literals.
func Int(v int) *int { return &v }

// ConstraintStatus is the audit of a generated plan against every bound the
// caller supplied. It is purely descriptive: the engine never reads it back.
type ConstraintStatus struct {
	// Respected lists bounds the final plan satisfies.
	Respected []string

	// Violated lists bounds the final plan does not satisfy. A plan with no
	// phases always carries at least one entry here or in Warnings.
	Violated []string

	// Warnings carries advisory notices that do not indicate failure.
	Warnings []string

	// Reasoning explains, in order, why the plan looks the way it does.
	Reasoning []string
}

// Result is the outcome of one Generate call.
type Result struct {
	// Phases is the ordered taper; empty when validation fails closed or no
	// admissible combination exists.
	Phases []Phase

	// Status is always populated, even for an empty plan.
	Status ConstraintStatus
}

// TotalDuration returns the plan's span in days.
func (r Result) TotalDuration() int {
	var days int
	for i := range r.Phases {
		days += r.Phases[i].CycleLength
	}

	return days
}

// FinalDose returns the last phase's average daily dose, or 0 for an empty
// plan.
func (r Result) FinalDose() float64 {
	if len(r.Phases) == 0 {
		return 0
	}

	return r.Phases[len(r.Phases)-1].AverageDailyDose
}

// round3 rounds to 3 decimal places — the single precision used for every
// dose comparison and equality check in this package.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
