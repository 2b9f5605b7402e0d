package taper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// phase is a test shorthand for building hand-rolled paths.
func phase(whole, half, cycle int) Phase {
	return Phase{DoseCombination: DoseCombination{
		WholeUnits:       whole,
		HalfUnits:        half,
		CycleLength:      cycle,
		AverageDailyDose: round3((float64(whole) + 0.5*float64(half)) / float64(cycle)),
	}}
}

// doses projects a path onto its dose values.
func doses(path []Phase) []float64 {
	out := make([]float64, len(path))
	for i := range path {
		out[i] = path[i].AverageDailyDose
	}

	return out
}

// TestReconcileDuration_InsertsPlateaus extends a 28-day plan to a 70-day
// floor and checks only plateaus were added: the distinct dose values and
// their order must survive untouched.
func TestReconcileDuration_InsertsPlateaus(t *testing.T) {
	ls := limits{
		start: 2.0, goal: 1.0, totalReduction: 1.0,
		minStep: 0.05, maxStep: 0.5,
		minCycle: 7, maxCycle: 28,
		minSteps: 3, maxSteps: 15,
		minDuration: 70, maxDuration: 365,
	}
	combos := combinations(ls.start, ls.goal, ls.minCycle, ls.maxCycle)

	path := []Phase{phase(21, 0, 14), phase(14, 0, 14)} // 1.5, 1.0 over 28 days
	out, inserted := reconcileDuration(reindex(path), ls, combos)

	assert.Equal(t, 3, inserted, "a 42-day deficit over 14-day plateaus needs 3 inserts")
	assert.GreaterOrEqual(t, pathDuration(out), 70)

	// Plateaus repeat doses; the non-increasing order must hold and no new
	// dose value may appear.
	prev := ls.start
	for _, p := range out {
		assert.LessOrEqual(t, p.AverageDailyDose, prev+1e-9)
		assert.Contains(t, []float64{1.5, 1.0}, p.AverageDailyDose,
			"duration repair must never invent a new dose")
		prev = p.AverageDailyDose
	}

	for i, p := range out {
		assert.Equal(t, i+1, p.Index, "indices must be rewritten after splicing")
	}
}

// TestReconcileDuration_NoTriggerWhenLongEnough leaves a satisfied plan
// untouched.
func TestReconcileDuration_NoTriggerWhenLongEnough(t *testing.T) {
	ls := limits{
		start: 2.0, goal: 1.0, totalReduction: 1.0,
		minStep: 0.05, maxStep: 0.5,
		minCycle: 7, maxCycle: 28,
		minSteps: 3, maxSteps: 15,
		minDuration: 20, maxDuration: 365,
	}
	combos := combinations(ls.start, ls.goal, ls.minCycle, ls.maxCycle)

	path := reindex([]Phase{phase(21, 0, 14), phase(14, 0, 14)})
	out, inserted := reconcileDuration(path, ls, combos)

	assert.Zero(t, inserted)
	assert.Equal(t, doses(path), doses(out))
}

// TestReconcileDuration_CappedByStepBudget verifies the phase-count ceiling
// caps the plateau budget even when the floor is far away.
func TestReconcileDuration_CappedByStepBudget(t *testing.T) {
	ls := limits{
		start: 2.0, goal: 1.0, totalReduction: 1.0,
		minStep: 0.05, maxStep: 0.5,
		minCycle: 7, maxCycle: 28,
		minSteps: 3, maxSteps: 3,
		minDuration: 200, maxDuration: 365,
	}
	combos := combinations(ls.start, ls.goal, ls.minCycle, ls.maxCycle)

	path := reindex([]Phase{phase(21, 0, 14), phase(14, 0, 14)})
	out, inserted := reconcileDuration(path, ls, combos)

	assert.Equal(t, 1, inserted, "only one phase of headroom exists")
	assert.Len(t, out, 3)
	assert.Less(t, pathDuration(out), 200, "the floor stays unmet — reported, not forced")
}

// TestReconcileSteps_SplitsLargestDrop splits a one-phase plan up to the
// three-step minimum, halving the largest drop each time.
func TestReconcileSteps_SplitsLargestDrop(t *testing.T) {
	ls := limits{
		start: 2.0, goal: 1.0, totalReduction: 1.0,
		minStep: 0.1, maxStep: 0.6,
		minCycle: 7, maxCycle: 28,
		minSteps: 3, maxSteps: 15,
		minDuration: 0, maxDuration: 365,
	}
	combos := combinations(ls.start, ls.goal, ls.minCycle, ls.maxCycle)

	path := reindex([]Phase{phase(14, 0, 14)}) // one 1.0-dose phase: drop of 1.0
	out, splits := reconcileSteps(path, ls, combos)

	assert.Equal(t, 2, splits)
	require.Len(t, out, 3)

	// First split lands on the 1.5 midpoint; the second halves the larger
	// remaining drop.
	assert.InDelta(t, 1.5, out[1].AverageDailyDose, 0.01)

	prev := ls.start
	for _, p := range out {
		step := prev - p.AverageDailyDose
		assert.GreaterOrEqual(t, step, ls.minStep-1e-9, "split steps must stay above the floor")
		assert.LessOrEqual(t, step, ls.maxStep+1e-9, "split steps must stay below the ceiling")
		prev = p.AverageDailyDose
	}
	assert.InDelta(t, 1.0, out[2].AverageDailyDose, 1e-9, "the landing dose must not move")
}

// TestReconcileSteps_NoSplittableDrop leaves a plan of small steps alone:
// nothing is twice the minimum step.
func TestReconcileSteps_NoSplittableDrop(t *testing.T) {
	ls := limits{
		start: 2.0, goal: 1.0, totalReduction: 1.0,
		minStep: 0.3, maxStep: 0.5,
		minCycle: 7, maxCycle: 28,
		minSteps: 6, maxSteps: 15,
		minDuration: 0, maxDuration: 365,
	}
	combos := combinations(ls.start, ls.goal, ls.minCycle, ls.maxCycle)

	// Drops of 0.5 each: below 2·minStep = 0.6, so nothing may be split.
	path := reindex([]Phase{phase(21, 0, 14), phase(14, 0, 14)})
	out, splits := reconcileSteps(path, ls, combos)

	assert.Zero(t, splits)
	assert.Equal(t, doses(path), doses(out))
}

// TestReconcileSteps_EmptyPathUntouched guards the trigger condition.
func TestReconcileSteps_EmptyPathUntouched(t *testing.T) {
	ls := limits{minSteps: 3, maxSteps: 15, maxDuration: 365}

	out, splits := reconcileSteps(nil, ls, nil)

	assert.Zero(t, splits)
	assert.Empty(t, out)
}

// TestStabilizerFor_PrefersOwnCycle checks a plateau repeats the preceding
// phase's dose at the nearest possible cycle length.
func TestStabilizerFor_PrefersOwnCycle(t *testing.T) {
	ls := limits{
		start: 2.0, goal: 0.5,
		minCycle: 7, maxCycle: 28,
	}
	combos := combinations(ls.start, ls.goal, ls.minCycle, ls.maxCycle)

	p := phase(14, 0, 14) // dose 1.0
	rep, ok := stabilizerFor(p, combos, ls)

	require.True(t, ok)
	assert.Equal(t, p.AverageDailyDose, rep.AverageDailyDose, "a plateau holds the dose exactly")
	assert.Equal(t, 14, rep.CycleLength, "the nearest cycle to 14 holding 1.0 is 14 itself")
}
