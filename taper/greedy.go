// SPDX-License-Identifier: MIT
// Package: taperplan/taper
//
// greedy.go — the greedy path builder, the core of the engine.
//
// One phase at a time, the builder scores every admissible combination with
// a weighted multi-criterion cost and accepts the cheapest. Lower dose drops
// that match the previous step and previous cycle length score well, which
// is what keeps unconstrained plans smooth. The loop ends when the goal is
// within one minimum step, a hard ceiling (duration or phase count) is hit,
// or no admissible candidate remains — an early stop is not an error here;
// the status reporter describes the shortfall afterwards.

package taper

import "math"

// buildPath constructs the phase sequence greedily over the sorted
// combination space.
//
// Candidate filter (any hit discards the combination):
//   - non-positive step, or step outside [minStep, maxStep];
//   - cycle outside [minCycle, maxCycle] (pre-guaranteed by the generator
//     window but kept as a cheap invariant check);
//   - the phase would push total duration past maxDuration;
//   - the exact combination was already chosen (no accidental repeats).
//
// Tie-break: strict "<" on the score, so the first-seen candidate in the
// descending-dose order wins — required for determinism.
//
// Complexity: O(maxSteps · k) for k combinations.
func buildPath(ls limits, combos []DoseCombination) []Phase {
	var (
		path   []Phase
		chosen = make(map[comboKey]struct{})

		current  = ls.start
		duration = 0
		ideal    = ls.idealStep()

		prevStep  float64 // 0 until the first phase is accepted
		prevCycle int     // 0 until the first phase is accepted
	)

	for current > ls.goal+ls.minStep && duration < ls.maxDuration && len(path) < ls.maxSteps {
		var (
			best      DoseCombination
			bestScore = math.Inf(1)
			found     bool
		)

		for _, c := range combos {
			step := current - c.AverageDailyDose
			if step <= eps || step < ls.minStep-eps || step > ls.maxStep+eps {
				continue
			}
			if c.CycleLength < ls.minCycle || c.CycleLength > ls.maxCycle {
				continue
			}
			if duration+c.CycleLength > ls.maxDuration {
				continue
			}
			if _, dup := chosen[keyOf(c)]; dup {
				continue
			}

			score := scoreCandidate(c, step, ideal, prevStep, prevCycle, current, duration, len(path), ls)
			if score < bestScore {
				best, bestScore, found = c, score, true
			}
		}

		if !found {
			break // nothing admissible; report the shortfall later
		}

		path = append(path, Phase{Index: len(path) + 1, DoseCombination: best})
		chosen[keyOf(best)] = struct{}{}
		prevStep = current - best.AverageDailyDose
		prevCycle = best.CycleLength
		current = best.AverageDailyDose
		duration += best.CycleLength
	}

	return path
}

// scoreCandidate computes the weighted cost of taking c as the next phase.
// Lower is better.
//
//	score = 1.0·|step − ideal|            (step error)
//	      + 2.0·|step − prevStep|         (step consistency)
//	      + 1.5·|cycle − prevCycle|       (cycle consistency)
//	      + 0.8·feasibility               (projected remaining descent)
//	      + 0.5·durationBias              (outstanding duration floor pull)
//
// Consistency terms are zero for the first phase.
func scoreCandidate(
	c DoseCombination,
	step, ideal, prevStep float64,
	prevCycle int,
	current float64,
	duration, steps int,
	ls limits,
) float64 {
	score := weightStepError * math.Abs(step-ideal)

	if steps > 0 {
		score += weightStepCons * math.Abs(step-prevStep)
		score += weightCycleCons * math.Abs(float64(c.CycleLength-prevCycle))
	}

	score += weightFeasibility * feasibility(c, ideal, duration, steps, ls)
	score += weightDurationBias * durationBias(c, ideal, prevCycle, duration, steps, ls)

	return score
}

// feasibility projects the descent left after accepting c. Zero when the
// goal is within one minimum step; the large fixed penalty when the steps
// still allowed cannot cover the remainder even at the maximum step size;
// otherwise the error between the forced future step and the ideal one.
func feasibility(c DoseCombination, ideal float64, duration, steps int, ls limits) float64 {
	remaining := c.AverageDailyDose - ls.goal
	if remaining <= ls.minStep+eps {
		return 0
	}

	stepsLeft := ls.maxSteps - (steps + 1)
	if stepsLeft < 1 || remaining > float64(stepsLeft)*ls.maxStep+eps {
		return infeasiblePenalty
	}

	return math.Abs(remaining/float64(stepsLeft) - ideal)
}

// durationBias pulls the cycle length toward whatever value would let the
// remaining phases exactly meet an outstanding minimum-duration floor; with
// no floor outstanding it pulls toward the previous cycle length instead
// (fallbackCycle before any phase exists).
func durationBias(c DoseCombination, ideal float64, prevCycle, duration, steps int, ls limits) float64 {
	after := duration + c.CycleLength
	if ls.minDuration > 0 && after < ls.minDuration {
		remaining := c.AverageDailyDose - ls.goal
		phasesLeft := 1
		if remaining > eps && ideal > eps {
			phasesLeft = int(math.Ceil(remaining / ideal))
			if phasesLeft < 1 {
				phasesLeft = 1
			}
		}
		target := float64(ls.minDuration-after) / float64(phasesLeft)

		return math.Abs(float64(c.CycleLength) - target)
	}

	anchor := prevCycle
	if steps == 0 {
		anchor = fallbackCycle
	}

	return math.Abs(float64(c.CycleLength - anchor))
}
