package schedule

import (
	"errors"
	"time"

	"github.com/taperlab/taperplan/taper"
)

// ErrNoPhases indicates an empty plan cannot be laid out on a calendar.
var ErrNoPhases = errors.New("schedule: plan has no phases")

// ErrZeroDate indicates the start date was left unset.
var ErrZeroDate = errors.New("schedule: start date is zero")

// Day is one calendar day of a dosing schedule.
type Day struct {
	// Date is the calendar day (midnight, caller's location preserved).
	Date time.Time

	// PhaseIndex is the 1-based phase this day belongs to.
	PhaseIndex int

	// DayOfPhase is the 1-based day within the phase's cycle.
	DayOfPhase int

	// Units is the dose to take this day, in half-unit granularity.
	Units float64

	// Cumulative is the running unit total since the schedule began.
	Cumulative float64
}

// Pattern spreads a combination's units across its cycle as evenly as
// possible in half-unit granularity. The spread is a largest-remainder walk:
// day i receives the half-units between ⌊i·H/L⌋ and ⌊(i+1)·H/L⌋ of the
// cycle's H total halves over L days, so the slice always sums to the exact
// cycle total and heavier days interleave deterministically.
//
// Complexity: O(CycleLength).
func Pattern(c taper.DoseCombination) []float64 {
	var (
		halves = c.WholeUnits*2 + c.HalfUnits
		days   = c.CycleLength
		out    = make([]float64, days)
		acc    int
	)

	for i := 0; i < days; i++ {
		next := (i + 1) * halves / days
		out[i] = float64(next-acc) * 0.5
		acc = next
	}

	return out
}

// Expand lays the plan out on real dates, one entry per day, starting at
// start. Each phase's pattern repeats once for its cycle; the cumulative
// total is carried exactly (in half units internally, so no float drift).
//
// Errors: ErrNoPhases for an empty plan, ErrZeroDate for a zero start.
//
// Complexity: O(total days).
func Expand(phases []taper.Phase, start time.Time) ([]Day, error) {
	if len(phases) == 0 {
		return nil, ErrNoPhases
	}
	if start.IsZero() {
		return nil, ErrZeroDate
	}

	var (
		out       []Day
		date      = start
		cumHalves int
	)

	for _, p := range phases {
		pattern := Pattern(p.DoseCombination)
		for d, units := range pattern {
			cumHalves += int(units * 2)
			out = append(out, Day{
				Date:       date,
				PhaseIndex: p.Index,
				DayOfPhase: d + 1,
				Units:      units,
				Cumulative: float64(cumHalves) * 0.5,
			})
			date = date.AddDate(0, 0, 1)
		}
	}

	return out, nil
}

// Span returns the total number of days the plan covers.
func Span(phases []taper.Phase) int {
	var days int
	for i := range phases {
		days += phases[i].CycleLength
	}

	return days
}
