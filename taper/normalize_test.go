package taper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveLimits_Defaults verifies the adaptive defaults for a fully
// unconstrained call.
func TestResolveLimits_Defaults(t *testing.T) {
	ls := resolveLimits(2.0, 1.0, Constraints{})

	assert.InDelta(t, 0.05, ls.minStep, 1e-9, "min step = reduction/20")
	assert.InDelta(t, 1.0/3, ls.maxStep, 1e-9, "max step = reduction/3")
	assert.Equal(t, defaultMinCycle, ls.minCycle)
	assert.Equal(t, defaultMaxCycle, ls.maxCycle)
	assert.Equal(t, defaultMinSteps, ls.minSteps)
	assert.Equal(t, defaultMaxSteps, ls.maxSteps)
	assert.Equal(t, defaultMinDuration, ls.minDuration)
	assert.Equal(t, defaultMaxDuration, ls.maxDuration)

	assert.False(t, ls.expMinStep || ls.expMaxStep || ls.expMinCycle || ls.expMaxCycle,
		"nothing was supplied explicitly")
}

// TestResolveLimits_StepFloorForTinyReductions checks the absolute step
// floor kicks in below reduction/20.
func TestResolveLimits_StepFloorForTinyReductions(t *testing.T) {
	ls := resolveLimits(0.5, 0.25, Constraints{})

	assert.GreaterOrEqual(t, ls.minStep, minStepFloor)
	assert.LessOrEqual(t, ls.minStep, ls.maxStep, "window must never invert")
}

// TestResolveLimits_InvertedStepRangeRepaired supplies min > max and expects
// a rebuilt, non-empty window.
func TestResolveLimits_InvertedStepRangeRepaired(t *testing.T) {
	ls := resolveLimits(2.0, 1.0, Constraints{
		StepSize: &Range{Min: Float(0.5), Max: Float(0.1)},
	})

	assert.Less(t, ls.minStep, ls.maxStep, "inverted range must be repaired")
	assert.GreaterOrEqual(t, ls.minStep, minStepFloor)
	assert.LessOrEqual(t, ls.maxStep, 1.0, "repaired max cannot exceed the total reduction")
}

// TestResolveLimits_CycleMaxBelowDefaultMin pins only a low maximum; the
// default minimum must be clamped down to it, not the other way round.
func TestResolveLimits_CycleMaxBelowDefaultMin(t *testing.T) {
	ls := resolveLimits(2.0, 0.5, Constraints{
		CycleLength: &IntRange{Max: Int(6)},
	})

	assert.Equal(t, 6, ls.maxCycle, "explicit maximums are hard limits")
	assert.Equal(t, 6, ls.minCycle, "default minimum must clamp to the caller's maximum")
}

// TestResolveLimits_DurationBiasNarrowsCycleWindow checks the pre-search
// cycle bias: a long duration floor with free cycles narrows the window
// around the target plateau length.
func TestResolveLimits_DurationBiasNarrowsCycleWindow(t *testing.T) {
	ls := resolveLimits(2.0, 1.0, Constraints{
		Duration: &IntRange{Min: Int(180)},
	})

	// reduction 1.0, maxStep 1/3 → estimated steps max(6, ceil(1/0.5)) = 6,
	// target ceil(180/6) = 30 > 14 → window [26, 32] clipped to [7, 28].
	require.True(t, ls.expMinDuration)
	assert.Equal(t, 26, ls.minCycle)
	assert.Equal(t, 28, ls.maxCycle)
}

// TestResolveLimits_DurationBiasSkippedWithExplicitCycle verifies the bias
// never touches a caller-pinned cycle window.
func TestResolveLimits_DurationBiasSkippedWithExplicitCycle(t *testing.T) {
	ls := resolveLimits(2.0, 1.0, Constraints{
		Duration:    &IntRange{Min: Int(180)},
		CycleLength: &IntRange{Min: Int(7), Max: Int(10)},
	})

	assert.Equal(t, 7, ls.minCycle)
	assert.Equal(t, 10, ls.maxCycle)
}

// TestResolveLimits_StepsCeilingLiftsForDurationFloor checks that a duration
// floor no stock phase budget can span lifts the default ceiling.
func TestResolveLimits_StepsCeilingLiftsForDurationFloor(t *testing.T) {
	ls := resolveLimits(2.0, 0.5, Constraints{
		Duration:    &IntRange{Min: Int(180)},
		CycleLength: &IntRange{Max: Int(6)},
	})

	// 180 days over 6-day cycles needs 30 phases; the stock ceiling of 15
	// could never satisfy the floor.
	assert.Equal(t, 30, ls.maxSteps)
}

// TestResolveLimits_ExplicitStepsNeverLifted pins the ceiling explicitly and
// expects it untouched even when a duration floor wants more.
func TestResolveLimits_ExplicitStepsNeverLifted(t *testing.T) {
	ls := resolveLimits(2.0, 0.5, Constraints{
		Duration: &IntRange{Min: Int(180)},
		Steps:    &IntRange{Max: Int(10)},
	})

	assert.Equal(t, 10, ls.maxSteps, "caller bounds are never overridden")
}

// TestNormalizeConstraints_CollapsesEmptyRanges checks present-but-empty
// ranges normalize to absent ones.
func TestNormalizeConstraints_CollapsesEmptyRanges(t *testing.T) {
	c := normalizeConstraints(Constraints{
		StepSize:    &Range{},
		CycleLength: &IntRange{},
		Steps:       nil,
		Duration:    &IntRange{Min: Int(30)},
	})

	assert.Nil(t, c.StepSize)
	assert.Nil(t, c.CycleLength)
	assert.Nil(t, c.Steps)
	require.NotNil(t, c.Duration, "a bounded range must survive")
	assert.Equal(t, 30, *c.Duration.Min)
}

// TestLimits_IdealStep checks the ideal step is the reduction spread over
// the step-window midpoint.
func TestLimits_IdealStep(t *testing.T) {
	ls := resolveLimits(2.0, 1.1, Constraints{})

	assert.InDelta(t, 0.9/9.0, ls.idealStep(), 1e-9)
}
