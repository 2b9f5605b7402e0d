package render

import (
	"fmt"
	"strings"

	"github.com/taperlab/taperplan/taper"
)

// defaultChartWidth is the bar width used when the caller passes width <= 0.
const defaultChartWidth = 40

// Chart renders the descent as one bar per phase, scaled to the first
// phase's dose:
//
//	1.893 │████████████████████████████████████████ 14d
//	1.786 │█████████████████████████████████████▋   14d
//
// The last visible cell uses eighth-block glyphs so small dose differences
// still move the bar. Empty plans render a short note.
func Chart(phases []taper.Phase, width int) string {
	if len(phases) == 0 {
		return dimStyle.Render("(no phases)")
	}
	if width <= 0 {
		width = defaultChartWidth
	}

	top := phases[0].AverageDailyDose
	if top <= 0 {
		top = 1 // all-zero plans still get a (flat) chart
	}

	var b strings.Builder
	for _, p := range phases {
		b.WriteString(fmt.Sprintf("%6.3f │%s %dd\n",
			p.AverageDailyDose,
			bar(p.AverageDailyDose/top, width),
			p.CycleLength))
	}

	return b.String()
}

// eighths are the partial block glyphs, coarsest to finest.
var eighths = []rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉'}

// bar renders a ratio in [0,1] as width cells with eighth-block precision,
// padded to constant width so cycle annotations align.
func bar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	var (
		cells = ratio * float64(width)
		full  = int(cells)
		rem   = int((cells - float64(full)) * 8)
		b     strings.Builder
	)

	b.WriteString(strings.Repeat("█", full))
	if full < width {
		b.WriteRune(eighths[rem])
		b.WriteString(strings.Repeat(" ", width-full-1))
	}

	return b.String()
}
