// SPDX-License-Identifier: MIT
// Package: taperplan/taper
//
// reconcile.go — the two repair passes that run after the greedy build.
//
// Pass order is fixed: duration first, then step count. Duration repair
// inserts stabilization plateaus (repeats of an existing dose), which raises
// the phase count as a side effect; step-count repair splits the largest
// remaining drop in two. Neither pass ever changes a dose value the search
// already chose, and neither treats its own shortfall as an error — the
// status reporter audits the final sequence once both have finished.

package taper

import "math"

// reconcileNotes records what the repair passes did, for the reasoning
// section of the status report.
type reconcileNotes struct {
	stabilization int // plateaus inserted by reconcileDuration
	splits        int // intermediate phases inserted by reconcileSteps
}

// reconcileDuration extends a plan that under-shoots the minimum duration by
// inserting repeats of existing phases ("stabilization" plateaus).
//
// The extra-phase budget is deficit divided by the typical plateau length —
// the shorter of 14 days and the shortest cycle already in the plan — and is
// further capped by the phase-count ceiling. Insertion walks the interior
// positions in rounds, one plateau after each phase except the last, so the
// plateaus spread evenly instead of piling at the front; rounds repeat until
// the floor is met, the budget runs out, or a full round inserts nothing.
//
// Returns the (re-indexed) path and the number of plateaus inserted.
func reconcileDuration(path []Phase, ls limits, combos []DoseCombination) ([]Phase, int) {
	duration := pathDuration(path)
	if len(path) == 0 || duration >= ls.minDuration {
		return path, 0
	}

	divisor := fallbackCycle
	if sc := shortestCycle(path); sc < divisor {
		divisor = sc
	}
	budget := (ls.minDuration - duration) / divisor
	if room := ls.maxSteps - len(path); room < budget {
		budget = room
	}
	if budget <= 0 {
		return path, 0
	}

	inserted := 0
	for duration < ls.minDuration && inserted < budget {
		var (
			out        = make([]Phase, 0, len(path)+budget-inserted)
			progressed bool
		)
		for i := range path {
			out = append(out, path[i])
			if i == len(path)-1 || inserted >= budget || duration >= ls.minDuration {
				continue
			}
			rep, ok := stabilizerFor(path[i], combos, ls)
			if !ok || duration+rep.CycleLength > ls.maxDuration {
				continue
			}
			out = append(out, Phase{DoseCombination: rep})
			duration += rep.CycleLength
			inserted++
			progressed = true
		}
		path = out
		if !progressed {
			break
		}
	}

	return reindex(path), inserted
}

// stabilizerFor picks the combination holding exactly the dose of p whose
// cycle length deviates least from p's own; ties fall to the earlier entry
// in the descending-dose order. p itself is always a candidate, so ok is
// false only if p's dose somehow left the combination space.
func stabilizerFor(p Phase, combos []DoseCombination, ls limits) (DoseCombination, bool) {
	var (
		best     DoseCombination
		bestDiff = math.MaxInt32
		found    bool
	)
	for _, c := range combos {
		if math.Abs(c.AverageDailyDose-p.AverageDailyDose) > eps {
			continue
		}
		if diff := absInt(c.CycleLength - p.CycleLength); diff < bestDiff {
			best, bestDiff, found = c, diff, true
		}
	}

	return best, found
}

// reconcileSteps raises the phase count of a plan that has fewer steps than
// the minimum by splitting its largest dose drop in two via an intermediate
// combination.
//
// Per iteration: find the largest drop between consecutive doses (including
// the implicit first drop from the starting dose) that is at least twice the
// minimum step; pick the combination closest to the drop's midpoint that
// keeps both resulting half-steps inside [minStep, maxStep] and fits the
// duration ceiling; splice it in. Stops at the ceilings, when no drop is
// twice the minimum step, or when the best drop admits no valid midpoint
// (no smaller drop can admit one either once the largest fails on range
// grounds alone, and a no-progress iteration must terminate the loop).
func reconcileSteps(path []Phase, ls limits, combos []DoseCombination) ([]Phase, int) {
	if len(path) == 0 {
		return path, 0
	}

	var (
		duration = pathDuration(path)
		splits   int
	)

	for len(path) < ls.minSteps && len(path) < ls.maxSteps && duration < ls.maxDuration {
		pos, upper, lower, ok := largestDrop(path, ls)
		if !ok {
			break
		}

		mid, found := midpointCombo(upper, lower, duration, combos, ls)
		if !found {
			break
		}

		path = append(path, Phase{})
		copy(path[pos+1:], path[pos:])
		path[pos] = Phase{DoseCombination: mid}
		duration += mid.CycleLength
		splits++
	}

	return reindex(path), splits
}

// largestDrop locates the biggest consecutive dose drop of at least
// 2·minStep. pos is the insertion index (the phase the drop lands on);
// upper/lower are the doses bounding it.
func largestDrop(path []Phase, ls limits) (pos int, upper, lower float64, ok bool) {
	var (
		prev     = ls.start
		bestDrop = 2*ls.minStep - eps
	)
	for i := range path {
		drop := prev - path[i].AverageDailyDose
		if drop > bestDrop {
			pos, upper, lower, ok = i, prev, path[i].AverageDailyDose, true
			bestDrop = drop
		}
		prev = path[i].AverageDailyDose
	}

	return pos, upper, lower, ok
}

// midpointCombo finds the combination nearest the drop's midpoint dose such
// that both half-steps stay inside the step window and the plan still fits
// the duration ceiling. First-wins on equal distance.
func midpointCombo(upper, lower float64, duration int, combos []DoseCombination, ls limits) (DoseCombination, bool) {
	var (
		target   = round3((upper + lower) / 2)
		best     DoseCombination
		bestDist = math.Inf(1)
		found    bool
	)
	for _, c := range combos {
		hi := upper - c.AverageDailyDose
		lo := c.AverageDailyDose - lower
		if hi < ls.minStep-eps || hi > ls.maxStep+eps {
			continue
		}
		if lo < ls.minStep-eps || lo > ls.maxStep+eps {
			continue
		}
		if duration+c.CycleLength > ls.maxDuration {
			continue
		}
		if dist := math.Abs(c.AverageDailyDose - target); dist < bestDist {
			best, bestDist, found = c, dist, true
		}
	}

	return best, found
}

// reindex rewrites 1-based phase indices after structural edits.
func reindex(path []Phase) []Phase {
	for i := range path {
		path[i].Index = i + 1
	}

	return path
}

// pathDuration sums the cycle lengths of a plan.
func pathDuration(path []Phase) int {
	var days int
	for i := range path {
		days += path[i].CycleLength
	}

	return days
}

// shortestCycle returns the smallest cycle length in a non-empty plan.
func shortestCycle(path []Phase) int {
	sc := path[0].CycleLength
	for i := 1; i < len(path); i++ {
		if path[i].CycleLength < sc {
			sc = path[i].CycleLength
		}
	}

	return sc
}

// absInt returns |x|.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
