package viz

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

// linspace returns n evenly spaced values from lo to hi inclusive.
// n must be at least 2.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi // avoid drift on the last tick
	return out
}

// epochTicks returns the 11 integer x-axis ticks spanning a series of the
// given length, matching numpy's linspace(0, n, 11).astype(int).
func epochTicks(length int) []chart.Tick {
	ticks := make([]chart.Tick, 0, 11)
	for _, v := range linspace(0, float64(length), 11) {
		iv := int(v)
		ticks = append(ticks, chart.Tick{Value: float64(iv), Label: fmt.Sprintf("%d", iv)})
	}
	return ticks
}

// valueTicks returns 6 evenly spaced y-axis ticks across [lo, hi],
// labeled with the given fmt verb (e.g. "%.3f").
func valueTicks(lo, hi float64, format string) []chart.Tick {
	ticks := make([]chart.Tick, 0, 6)
	for _, v := range linspace(lo, hi, 6) {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf(format, v)})
	}
	return ticks
}

// seriesRange returns the min and max across all given series.
func seriesRange(series ...[]float64) (lo, hi float64) {
	first := true
	for _, s := range series {
		for _, v := range s {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}
