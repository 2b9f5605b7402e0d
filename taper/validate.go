// SPDX-License-Identifier: MIT
// Package: taperplan/taper
//
// validate.go — dose-pair validation, the first pipeline stage.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No panics on user input — only sentinel errors from errors.go.
//   - Checks run in a fixed order and the first failure wins, so a given
//     bad input always yields the same single diagnostic.

package taper

import "fmt"

// validateDoses rejects globally unsafe or nonsensical (start, goal) pairs
// before any search begins. Inputs are already rounded to 3 decimals.
//
// Order of checks (first failure returns):
//  1. start above the MaxStartDose hard cap
//  2. negative goal
//  3. reduction below MinReduction
//  4. goal not strictly below start (kept for contract completeness;
//     subsumed by check 3 while MinReduction > 0)
//
// Complexity: O(1).
func validateDoses(start, goal float64) error {
	if start > MaxStartDose {
		return ErrDoseTooHigh
	}
	if goal < 0 {
		return ErrGoalNegative
	}
	if start-goal < MinReduction {
		return ErrReductionTooSmall
	}
	if start <= goal {
		return ErrNotDecreasing
	}

	return nil
}

// failClosed translates a validation sentinel into the one violation string
// and one reasoning string that accompany an empty plan.
func failClosed(err error, start, goal float64) ConstraintStatus {
	var violation, reasoning string

	switch err {
	case ErrDoseTooHigh:
		violation = fmt.Sprintf(
			"Starting dose too high: %.3f exceeds the maximum of %.2f units/day", start, MaxStartDose)
		reasoning = fmt.Sprintf(
			"Starting doses above %.2f units/day are outside the safe range this planner is validated for.",
			MaxStartDose)
	case ErrGoalNegative:
		violation = fmt.Sprintf("Goal dose invalid: %.3f is below zero", goal)
		reasoning = "A daily dose cannot be negative; use 0 to taper off completely."
	case ErrReductionTooSmall:
		violation = fmt.Sprintf(
			"Reduction too small: %.3f units is below the minimum of %.2f", start-goal, MinReduction)
		reasoning = fmt.Sprintf(
			"Reductions under %.2f units do not leave room for a meaningful multi-phase taper.",
			MinReduction)
	case ErrNotDecreasing:
		violation = fmt.Sprintf(
			"Goal dose %.3f is not below the starting dose %.3f", goal, start)
		reasoning = "A taper must move the dose downward; raise the starting dose or lower the goal."
	default:
		violation = "Invalid input"
		reasoning = err.Error()
	}

	return ConstraintStatus{
		Violated:  []string{violation},
		Reasoning: []string{reasoning},
	}
}
