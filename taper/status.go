// SPDX-License-Identifier: MIT
// Package: taperplan/taper
//
// status.go — the constraint audit, the last pipeline stage.
//
// Only dimensions the caller explicitly bounded are audited; an absent
// dimension is never reported as respected or violated. Continuous
// quantities compare with statusTol; integer quantities compare exactly.
// The audit is purely descriptive and never feeds back into generation.

package taper

import "fmt"

// report compares the realized metrics of the final phase list against every
// caller-supplied bound and assembles the four status lists.
func report(req Constraints, ls limits, path []Phase, notes reconcileNotes) ConstraintStatus {
	var (
		cs ConstraintStatus

		minStep, maxStep   = realizedSteps(ls.start, path)
		minCycle, maxCycle = realizedCycles(path)
		steps              = len(path)
		duration           = pathDuration(path)
	)

	if req.StepSize != nil {
		if req.StepSize.Min != nil {
			cs.add(minStep >= *req.StepSize.Min-statusTol,
				fmt.Sprintf("Minimum step size %.3f units (smallest step: %.3f)", *req.StepSize.Min, minStep))
		}
		if req.StepSize.Max != nil {
			cs.add(maxStep <= *req.StepSize.Max+statusTol,
				fmt.Sprintf("Maximum step size %.3f units (largest step: %.3f)", *req.StepSize.Max, maxStep))
		}
	}

	if req.CycleLength != nil {
		if req.CycleLength.Min != nil {
			cs.add(minCycle >= *req.CycleLength.Min,
				fmt.Sprintf("Minimum cycle length %d days (shortest cycle: %d)", *req.CycleLength.Min, minCycle))
		}
		if req.CycleLength.Max != nil {
			cs.add(maxCycle <= *req.CycleLength.Max,
				fmt.Sprintf("Maximum cycle length %d days (longest cycle: %d)", *req.CycleLength.Max, maxCycle))
		}
	}

	if req.Steps != nil {
		if req.Steps.Min != nil {
			violatedMin := steps < *req.Steps.Min
			cs.add(!violatedMin,
				fmt.Sprintf("Minimum of %d steps (plan has %d)", *req.Steps.Min, steps))
			if violatedMin {
				cs.Reasoning = append(cs.Reasoning,
					"Could not reach the minimum number of steps without breaking the step size or duration limits.")
			}
		}
		if req.Steps.Max != nil {
			cs.add(steps <= *req.Steps.Max,
				fmt.Sprintf("Maximum of %d steps (plan has %d)", *req.Steps.Max, steps))
		}
	}

	if req.Duration != nil {
		if req.Duration.Min != nil {
			violatedMin := duration < *req.Duration.Min
			cs.add(!violatedMin,
				fmt.Sprintf("Minimum duration %d days (plan spans %d)", *req.Duration.Min, duration))
			if violatedMin {
				cs.Reasoning = append(cs.Reasoning, durationShortfallCause(steps, duration, ls))
			}
		}
		if req.Duration.Max != nil {
			cs.add(duration <= *req.Duration.Max,
				fmt.Sprintf("Maximum duration %d days (plan spans %d)", *req.Duration.Max, duration))
		}
	}

	if notes.stabilization > 0 {
		cs.Reasoning = append(cs.Reasoning, fmt.Sprintf(
			"Inserted %d stabilization phases (repeats of existing doses) to extend the plan toward the minimum duration.",
			notes.stabilization))
	}
	if notes.splits > 0 {
		cs.Reasoning = append(cs.Reasoning, fmt.Sprintf(
			"Split %d larger drops with additional phases to raise the step count.", notes.splits))
	}

	if len(cs.Violated) > 0 {
		cs.Warnings = append(cs.Warnings,
			"Some requested constraints could not be satisfied due to mathematical limits of the achievable dose combinations.")
		cs.Reasoning = append(cs.Reasoning,
			"Maximum bounds are treated as hard limits and take priority over minimum bounds when they conflict.")
	}

	return cs
}

// add routes one audited bound into Respected or Violated.
func (cs *ConstraintStatus) add(ok bool, what string) {
	if ok {
		cs.Respected = append(cs.Respected, what+" — respected")
	} else {
		cs.Violated = append(cs.Violated, what+" — violated")
	}
}

// durationShortfallCause names the ceiling that stopped the duration repair.
func durationShortfallCause(steps, duration int, ls limits) string {
	switch {
	case steps >= ls.maxSteps:
		return "Exceeded the maximum number of steps while trying to meet the minimum duration requirement."
	case duration >= ls.maxDuration:
		return "Reached the maximum duration before the minimum duration target."
	default:
		return "No dose combination could extend the plan to the minimum duration."
	}
}

// realizedSteps returns the smallest and largest consecutive dose drop,
// including the implicit first drop from the starting dose. Stabilization
// plateaus hold a dose rather than stepping it, so their zero drops are not
// steps and do not enter the extrema. Zeroes for an empty plan.
func realizedSteps(start float64, path []Phase) (minStep, maxStep float64) {
	if len(path) == 0 {
		return 0, 0
	}

	var (
		prev  = start
		step  float64
		first = true
	)
	for i := range path {
		step = round3(prev - path[i].AverageDailyDose)
		prev = path[i].AverageDailyDose
		if step < eps && i > 0 {
			continue // plateau repeat, not a step
		}
		if first || step < minStep {
			minStep = step
		}
		if first || step > maxStep {
			maxStep = step
		}
		first = false
	}

	return minStep, maxStep
}

// realizedCycles returns the shortest and longest cycle length. Zeroes for
// an empty plan.
func realizedCycles(path []Phase) (minCycle, maxCycle int) {
	if len(path) == 0 {
		return 0, 0
	}

	minCycle, maxCycle = path[0].CycleLength, path[0].CycleLength
	for i := 1; i < len(path); i++ {
		if path[i].CycleLength < minCycle {
			minCycle = path[i].CycleLength
		}
		if path[i].CycleLength > maxCycle {
			maxCycle = path[i].CycleLength
		}
	}

	return minCycle, maxCycle
}
