// SPDX-License-Identifier: MIT
// Package: taperplan/taper
//
// errors.go — sentinel errors for dose validation.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • These sentinels never escape Generate: the engine reports failures
//     through ConstraintStatus only. They exist so the validation layer has
//     testable semantics independent of message wording.

package taper

import "errors"

// ErrDoseTooHigh indicates startDose exceeds the hard MaxStartDose cap.
// Usage: if errors.Is(err, ErrDoseTooHigh) { /* reject input */ }.
var ErrDoseTooHigh = errors.New("taper: starting dose too high")

// ErrGoalNegative indicates a goal dose below zero.
var ErrGoalNegative = errors.New("taper: goal dose negative")

// ErrReductionTooSmall indicates startDose−goalDose is below MinReduction,
// too small a gap for a multi-phase taper to be meaningful.
var ErrReductionTooSmall = errors.New("taper: reduction too small")

// ErrNotDecreasing indicates the goal dose is at or above the starting dose.
// Unreachable in practice while MinReduction > 0 (a non-positive reduction
// trips ErrReductionTooSmall first), but kept so the contract is explicit.
var ErrNotDecreasing = errors.New("taper: goal dose not below starting dose")
