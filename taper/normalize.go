// SPDX-License-Identifier: MIT
// Package: taperplan/taper
//
// normalize.go — constraint normalization, the second pipeline stage.
//
// Every unset bound receives an adaptive default derived from the total
// reduction, and self-contradictory ranges are repaired so the search never
// sees an empty window. The resolved limits plus "which bounds the caller
// actually supplied" flags feed the rest of the pipeline.

package taper

import "math"

// limits is the fully resolved constraint window the search runs inside.
// All four dimensions carry concrete, non-inverted bounds; the exp* flags
// remember which of them the caller supplied explicitly — only those are
// audited by the status reporter.
type limits struct {
	start          float64
	goal           float64
	totalReduction float64

	minStep float64
	maxStep float64

	minCycle int
	maxCycle int

	minSteps int
	maxSteps int

	minDuration int
	maxDuration int

	expMinStep, expMaxStep         bool
	expMinCycle, expMaxCycle       bool
	expMinSteps, expMaxSteps       bool
	expMinDuration, expMaxDuration bool
}

// idealStep returns the target per-phase reduction: the total reduction
// spread over the midpoint of the allowed step-count window.
func (ls limits) idealStep() float64 {
	return ls.totalReduction / (float64(ls.minSteps+ls.maxSteps) / 2)
}

// normalizeConstraints collapses present-but-empty ranges to absent ones.
// An explicitly empty range object carries no different semantics than an
// absent one, so downstream code only ever sees nil or a bounded range.
func normalizeConstraints(c Constraints) Constraints {
	if c.StepSize.empty() {
		c.StepSize = nil
	}
	if c.CycleLength.empty() {
		c.CycleLength = nil
	}
	if c.Steps.empty() {
		c.Steps = nil
	}
	if c.Duration.empty() {
		c.Duration = nil
	}

	return c
}

// resolveLimits fills unset bounds with adaptive defaults, repairs inverted
// ranges, and applies two pre-search biases that make the greedy builder
// likelier to satisfy an explicit duration floor without repair passes:
//
//   - cycle-length bias: with a duration floor but no explicit cycle
//     constraint, the cycle window narrows around the cycle length that
//     would meet the floor in the estimated number of steps;
//   - steps-ceiling lift: with a duration floor but no explicit steps
//     constraint, the default phase budget rises to what the floor needs at
//     the shortest allowed cycle (the stock ceiling of 15 phases can be
//     arithmetically unable to span a long floor over short cycles).
//
// Caller-supplied bounds are never overridden, only repaired when inverted.
//
// Complexity: O(1).
func resolveLimits(start, goal float64, c Constraints) limits {
	var (
		reduction = round3(start - goal)
		ls        = limits{start: start, goal: goal, totalReduction: reduction}
	)

	// Step size: adaptive defaults scale with the reduction.
	ls.minStep = math.Max(minStepFloor, reduction/20)
	ls.maxStep = math.Min(reduction, math.Max(reduction/3, 0.02))
	if c.StepSize != nil {
		if c.StepSize.Min != nil {
			ls.minStep, ls.expMinStep = *c.StepSize.Min, true
		}
		if c.StepSize.Max != nil {
			ls.maxStep, ls.expMaxStep = *c.StepSize.Max, true
		}
	}
	if ls.minStep > ls.maxStep {
		// Rebuild a non-empty window around a mid-size step; never leave an
		// inverted range behind.
		mid := reduction / 8
		spread := mid / 2
		ls.minStep = math.Max(minStepFloor, mid-spread)
		ls.maxStep = math.Min(reduction, mid+spread)
	}

	// Cycle length.
	ls.minCycle, ls.maxCycle = defaultMinCycle, defaultMaxCycle
	if c.CycleLength != nil {
		if c.CycleLength.Min != nil {
			ls.minCycle, ls.expMinCycle = *c.CycleLength.Min, true
		}
		if c.CycleLength.Max != nil {
			ls.maxCycle, ls.expMaxCycle = *c.CycleLength.Max, true
		}
	}
	if ls.minCycle < 1 {
		ls.minCycle = 1
	}
	if ls.minCycle > ls.maxCycle {
		// Repair toward whichever side the caller pinned; a caller max below
		// the default min must win (maximums are hard limits).
		if ls.expMaxCycle && !ls.expMinCycle {
			ls.minCycle = ls.maxCycle
		} else {
			ls.maxCycle = ls.minCycle
		}
	}

	// Step count.
	ls.minSteps, ls.maxSteps = defaultMinSteps, defaultMaxSteps
	if c.Steps != nil {
		if c.Steps.Min != nil {
			ls.minSteps, ls.expMinSteps = *c.Steps.Min, true
		}
		if c.Steps.Max != nil {
			ls.maxSteps, ls.expMaxSteps = *c.Steps.Max, true
		}
	}
	if ls.minSteps > ls.maxSteps {
		if ls.expMaxSteps && !ls.expMinSteps {
			ls.minSteps = ls.maxSteps
		} else {
			ls.maxSteps = ls.minSteps
		}
	}

	// Duration.
	ls.minDuration, ls.maxDuration = defaultMinDuration, defaultMaxDuration
	if c.Duration != nil {
		if c.Duration.Min != nil {
			ls.minDuration, ls.expMinDuration = *c.Duration.Min, true
		}
		if c.Duration.Max != nil {
			ls.maxDuration, ls.expMaxDuration = *c.Duration.Max, true
		}
	}
	if ls.minDuration > ls.maxDuration {
		if ls.expMaxDuration && !ls.expMinDuration {
			ls.minDuration = ls.maxDuration
		} else {
			ls.maxDuration = ls.minDuration
		}
	}

	// Cycle-length bias toward an explicit duration floor.
	if ls.expMinDuration && !ls.expMinCycle && !ls.expMaxCycle {
		estSteps := int(math.Max(6, math.Ceil(reduction/(ls.maxStep*1.5))))
		target := ceilDiv(ls.minDuration, estSteps)
		if target > 14 {
			lo := clampInt(target-4, ls.minCycle, ls.maxCycle)
			hi := clampInt(target+2, ls.minCycle, ls.maxCycle)
			if lo <= hi {
				ls.minCycle, ls.maxCycle = lo, hi
			}
		}
	}

	// Steps-ceiling lift toward an explicit duration floor.
	if ls.expMinDuration && !ls.expMinSteps && !ls.expMaxSteps {
		need := ceilDiv(ls.minDuration, ls.minCycle)
		if need > ls.maxSteps {
			ls.maxSteps = need
		}
	}

	return ls
}

// ceilDiv returns ceil(a/b) for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// clampInt clips v into [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
