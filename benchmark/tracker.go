package benchmark

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// timeTracker accumulates the timed-run durations for one operation.
type timeTracker struct {
	durations []time.Duration
	minTime   time.Duration
	maxTime   time.Duration
}

func (tt *timeTracker) record(d time.Duration) {
	if len(tt.durations) == 0 || d < tt.minTime {
		tt.minTime = d
	}
	if d > tt.maxTime {
		tt.maxTime = d
	}
	tt.durations = append(tt.durations, d)
}

// meanMS returns the arithmetic mean of the recorded durations in
// milliseconds.
func (tt *timeTracker) meanMS() float64 {
	if len(tt.durations) == 0 {
		return 0
	}
	ms := make([]float64, len(tt.durations))
	for i, d := range tt.durations {
		ms[i] = float64(d.Nanoseconds()) / 1e6
	}
	return stat.Mean(ms, nil)
}
