// SPDX-License-Identifier: MIT
// Package: taperplan/taper
//
// combos.go — the combination space generator, third pipeline stage.
//
// Enumerates every achievable (wholeUnits, halfUnits, cycleLength) triple
// within the cycle window, keeps the ones whose average daily dose falls
// inside [goal, start], and sorts them by descending dose. The sorted slice
// is shared read-only by the search and both repair passes, and its order is
// the package-wide tie-break: whenever two candidates score equally, the one
// earlier in this slice wins.

package taper

import (
	"math"
	"sort"
)

// combinations enumerates the admissible dose shapes for the given window.
//
// Bounds per cycle c:
//   - wholeUnits ∈ [0, min(ceil(start·maxCycle), c·maxDailyUnits)]
//   - halfUnits  ∈ [0, (c·maxDailyUnits − wholeUnits)·2]
//
// The result is sorted by AverageDailyDose descending; equal doses keep
// enumeration order (cycle, then wholeUnits, then halfUnits ascending), so
// the whole slice is deterministic.
//
// Complexity: O(maxCycle³) enumeration, O(k log k) sort for k retained.
func combinations(start, goal float64, minCycle, maxCycle int) []DoseCombination {
	var (
		out      []DoseCombination
		wholeCap = int(math.Ceil(start * float64(maxCycle)))

		cycle, whole, half int
		unitCap, halfCap   int
		avg                float64
	)

	for cycle = minCycle; cycle <= maxCycle; cycle++ {
		unitCap = cycle * maxDailyUnits
		for whole = 0; whole <= unitCap && whole <= wholeCap; whole++ {
			halfCap = (unitCap - whole) * 2
			for half = 0; half <= halfCap; half++ {
				avg = round3((float64(whole) + 0.5*float64(half)) / float64(cycle))
				if avg < goal-eps || avg > start+eps {
					continue
				}
				out = append(out, DoseCombination{
					WholeUnits:       whole,
					HalfUnits:        half,
					CycleLength:      cycle,
					AverageDailyDose: avg,
				})
			}
		}
	}

	// Stable keeps enumeration order among equal doses — the tie-break the
	// greedy builder and both reconcilers rely on.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageDailyDose > out[j].AverageDailyDose
	})

	return out
}

// comboKey identifies a combination by its three integer fields;
// AverageDailyDose is derived from them, so it never enters the key.
type comboKey struct {
	whole, half, cycle int
}

func keyOf(c DoseCombination) comboKey {
	return comboKey{whole: c.WholeUnits, half: c.HalfUnits, cycle: c.CycleLength}
}
