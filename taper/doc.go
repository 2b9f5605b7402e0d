// Package taper computes monotonically decreasing dosage-reduction plans
// ("tapers") from a starting daily dose down to a goal daily dose.
//
// 🚀 What is a taper?
//
//	A taper is an ordered sequence of phases. Each phase fixes a discrete
//	dosing shape — whole units, half units, and a cycle length in days —
//	and is held for that many days before the next, lower phase begins.
//	The engine picks the sequence; callers may bound any of four
//	independent dimensions, or bound none and let the engine optimize:
//	  • step size     — how much the average daily dose drops per phase
//	  • cycle length  — how many days each phase lasts
//	  • step count    — how many phases the plan contains
//	  • duration      — how many days the whole plan spans
//
// ✨ Key properties:
//   - deterministic: identical inputs yield byte-identical plans
//   - safe: doses never increase; unsafe inputs fail closed
//   - honest: every requested bound is audited after generation and
//     reported as respected or violated, with reasoning — never dropped
//   - pure: no I/O, no shared state, one synchronous call
//
// ⚙️ Usage:
//
//	res := taper.Generate(2.0, 0.5, taper.Constraints{
//	    CycleLength: &taper.IntRange{Min: taper.Int(14), Max: taper.Int(14)},
//	})
//	for _, p := range res.Phases {
//	    fmt.Println(p.Index, p.AverageDailyDose, p.CycleLength)
//	}
//	fmt.Println(res.Status.Violated) // empty when all bounds were met
//
// Pipeline (fixed order, §Generate):
//
//	validate → normalize → enumerate combinations → greedy build →
//	duration reconcile → step-count reconcile → status report
//
// Maximum bounds are hard limits; when a minimum and a maximum conflict,
// the maximum wins and the unmet minimum is reported in Status.
//
// All dose arithmetic is carried at 3-decimal precision; worst-case work is
// bounded by the small combination space (cycle ≤ a few dozen days, units
// per cycle ≤ 3·cycle), so a call completes in well under a millisecond.
package taper
