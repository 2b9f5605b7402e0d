// SPDX-License-Identifier: MIT
// Package: taperplan/taper
//
// constants.go — hard caps, adaptive-default parameters and search weights.
//
// Changing any value here changes every generated plan; all of them are part
// of the determinism contract and are exercised directly by the test suite.

package taper

// Hard safety caps enforced by the dose validator. Exceeding either fails
// closed with an empty plan.
const (
	// MaxStartDose is the highest starting daily dose the engine accepts.
	MaxStartDose = 2.0

	// MinReduction is the smallest start−goal gap worth a taper.
	MinReduction = 0.25
)

// Adaptive defaults used when a dimension is left unconstrained.
const (
	defaultMinCycle    = 7   // days
	defaultMaxCycle    = 28  // days
	defaultMinSteps    = 3   // phases
	defaultMaxSteps    = 15  // phases
	defaultMinDuration = 0   // days
	defaultMaxDuration = 365 // days

	// minStepFloor is the absolute floor for the per-phase reduction.
	minStepFloor = 0.005

	// maxDailyUnits caps the enumerated units-per-day of any combination.
	maxDailyUnits = 3

	// fallbackCycle seeds cycle-length preferences before any phase exists.
	fallbackCycle = 14
)

// Weighted-score coefficients of the greedy path builder. A candidate's
// score is the weighted sum of the five criteria; lowest score wins.
const (
	weightStepError    = 1.0 // distance from the ideal step size
	weightStepCons     = 2.0 // deviation from the previous step size
	weightCycleCons    = 1.5 // deviation from the previous cycle length
	weightFeasibility  = 0.8 // projected error of the remaining descent
	weightDurationBias = 0.5 // pull toward an outstanding duration floor

	// infeasiblePenalty marks candidates whose remainder cannot be covered
	// by the steps still allowed.
	infeasiblePenalty = 1000.0
)

// statusTol is the comparison tolerance for continuous quantities in the
// constraint audit; integer dimensions compare exactly.
const statusTol = 0.001

// eps guards strict float comparisons between 3-decimal dose values.
const eps = 1e-9
