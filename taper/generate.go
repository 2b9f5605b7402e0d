// SPDX-License-Identifier: MIT
// Package: taperplan/taper
//
// generate.go — the single entry point and fixed pipeline of the engine.
//
// Design principles:
//   - One pure function: same inputs always yield byte-identical output.
//   - No error values cross this boundary; every failure mode travels in
//     the returned ConstraintStatus (empty plans always carry at least one
//     violation or warning — no silent failures).
//   - Stage order is part of the contract: validate → normalize →
//     enumerate → greedy build → duration reconcile → step reconcile →
//     status report. The reconcilers interact (plateaus raise the step
//     count), so the audit runs only after both complete.

package taper

// Generate computes a taper from currentDose down to goalDose under the
// given optional constraints.
//
// Contracts:
//   - currentDose ≤ MaxStartDose, goalDose ≥ 0 and at least MinReduction
//     below currentDose; otherwise the call fails closed with an empty
//     phase list and one violation explaining why.
//   - A nil or bound-less range in c behaves identically to an absent one.
//   - Result.Phases is non-increasing in AverageDailyDose; maximum bounds
//     are never exceeded, unmet minimum bounds are reported in Status.
//
// Complexity: bounded by the combination space (≈ cycles·(3·cycle)² shapes)
// times the phase budget; small constants throughout, no allocation beyond
// the returned slices.
func Generate(currentDose, goalDose float64, c Constraints) Result {
	var (
		start = round3(currentDose)
		goal  = round3(goalDose)
	)

	if err := validateDoses(start, goal); err != nil {
		return Result{Status: failClosed(err, start, goal)}
	}

	var (
		req    = normalizeConstraints(c)
		ls     = resolveLimits(start, goal, req)
		combos = combinations(start, goal, ls.minCycle, ls.maxCycle)

		notes reconcileNotes
	)

	path := buildPath(ls, combos)
	path, notes.stabilization = reconcileDuration(path, ls, combos)
	path, notes.splits = reconcileSteps(path, ls, combos)

	status := report(req, ls, path, notes)

	// No-silent-failure invariant: an empty plan must explain itself even
	// when the caller supplied no auditable bounds.
	if len(path) == 0 && len(status.Violated) == 0 {
		status.Violated = append(status.Violated,
			"No plan could be generated: no achievable dose combination satisfies the requested constraints.")
		status.Reasoning = append(status.Reasoning,
			"The step size, cycle length and duration windows leave no admissible first step below the starting dose.")
	}

	return Result{Phases: path, Status: status}
}
