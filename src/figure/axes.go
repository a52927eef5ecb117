package figure

import (
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/28H4/plot-playground/src/config"
)

const tickTarget = 7

// axisRange returns a fixed range and ticks for one axis. Explicit limits are
// used as given; otherwise the data extent is widened to nice numbers.
func axisRange(lim *config.Limits, lo, hi float64) (chart.Range, []chart.Tick) {
	var min, max float64
	if lim != nil {
		min, max = lim.Min, lim.Max
	} else {
		min, max = paddedBounds(lo, hi)
	}
	return &chart.ContinuousRange{Min: min, Max: max}, ticksWithin(min, max, tickTarget)
}

// ticksWithin labels nice positions inside [min,max]. go-chart derives the
// axis range from the outermost ticks, so unlabeled ticks pin both limits.
func ticksWithin(min, max float64, n int) []chart.Tick {
	eps := (max - min) * 1e-9
	var labeled []chart.Tick
	for _, v := range gridTicks(min, max, n) {
		labeled = append(labeled, chart.Tick{Value: v, Label: FormatNumericTick(v)})
	}
	if len(labeled) == 0 {
		return []chart.Tick{{Value: min}, {Value: max}}
	}
	ticks := make([]chart.Tick, 0, len(labeled)+2)
	if labeled[0].Value > min+eps {
		ticks = append(ticks, chart.Tick{Value: min})
	}
	ticks = append(ticks, labeled...)
	if labeled[len(labeled)-1].Value < max-eps {
		ticks = append(ticks, chart.Tick{Value: max})
	}
	return ticks
}

// paddedBounds widens the data extent by 5% on each side and snaps both ends
// outward onto the tick grid.
func paddedBounds(lo, hi float64) (float64, float64) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return lo, hi
	}
	if hi <= lo {
		lo, hi = lo-0.5, lo+0.5
	}
	pad := (hi - lo) * 0.05
	step := tickStep(hi-lo+2*pad, tickTarget)
	return math.Floor((lo-pad)/step) * step, math.Ceil((hi+pad)/step) * step
}

// tickStep is the 1, 2, 2.5, 5 (times a power of ten) step that splits span
// into the interval count closest to n-1.
func tickStep(span float64, n int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	best, bestDiff := mag, math.Inf(1)
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		step := m * mag
		if d := math.Abs(span/step - float64(n-1)); d < bestDiff {
			best, bestDiff = step, d
		}
	}
	return best
}

// gridTicks returns the multiples of the tick step that lie inside [min,max].
func gridTicks(min, max float64, n int) []float64 {
	if n < 2 || !(max > min) {
		return nil
	}
	step := tickStep(max-min, n)
	first := math.Ceil(min/step - 1e-9)
	last := math.Floor(max/step + 1e-9)
	var out []float64
	for k := first; k <= last; k++ {
		out = append(out, snap(k*step))
	}
	return out
}

// snap removes the float noise of k*step (0.6000000000000001 -> 0.6).
func snap(v float64) float64 { return math.Round(v*1e9) / 1e9 }

// FormatNumericTick gives a compact tick label.
func FormatNumericTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100 || v == math.Trunc(v):
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
}
