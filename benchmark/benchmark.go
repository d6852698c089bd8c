package benchmark

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/zmohammed5/fpga-image-processor/fpga"
	"github.com/zmohammed5/fpga-image-processor/raster"
)

// DefaultIterations is the number of timed runs per comparison.
const DefaultIterations = 10

// Operation names a kernel under test. Fn must be pure: same input, same
// output, no side effects.
type Operation struct {
	Name string
	Fn   func(*raster.Image) *raster.Image
}

// Session runs CPU-versus-accelerator comparisons against one input image
// and one accelerator design point, accumulating results in execution order.
//
// A session is single-threaded by design: comparisons run strictly
// sequentially so cache and scheduler contention cannot bias the timing, and
// the result list has exactly one writer. Each session owns its own results,
// so independent sessions can run and be tested in isolation.
type Session struct {
	params     fpga.TimingParameters
	input      *raster.Image
	iterations int
	results    []Result
}

// NewSession creates a benchmark session.
//
// Arguments:
//   - input: The image every comparison runs against. Read-only for the
//     session's lifetime.
//   - params: The accelerator design point. Validated up front.
//   - iterations: Timed runs per comparison; <= 0 selects DefaultIterations.
//
// Returns:
//   - *Session: The session.
//   - error: Parameter validation failure.
func NewSession(input *raster.Image, params fpga.TimingParameters, iterations int) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &Session{
		params:     params,
		input:      input,
		iterations: iterations,
		results:    make([]Result, 0),
	}, nil
}

// RunComparison measures one operation and appends the outcome to the
// session's results.
//
// The protocol: one untimed warm-up invocation (discarded, so first-call
// allocation and cache-population costs stay out of the samples), then the
// configured number of sequential timed runs with the clock tight around the
// kernel call only, then a single timing-model evaluation. Cancellation via
// ctx aborts the remaining runs without appending; results from earlier
// comparisons stay intact and reportable.
func (s *Session) RunComparison(ctx context.Context, op Operation) (Result, error) {
	if err := s.input.CheckPixelCount(s.params.PixelsPerFrame); err != nil {
		return Result{}, errors.WithMessagef(err, "benchmark %s", op.Name)
	}

	// Warm-up run, untimed.
	_ = op.Fn(s.input)

	tracker := &timeTracker{}
	for i := 0; i < s.iterations; i++ {
		select {
		case <-ctx.Done():
			return Result{}, errors.Wrapf(ctx.Err(),
				"benchmark %s cancelled after %d of %d runs", op.Name, i, s.iterations)
		default:
		}

		start := time.Now()
		_ = op.Fn(s.input)
		tracker.record(time.Since(start))
	}

	result := Result{
		Operation:  op.Name,
		Timestamp:  time.Now(),
		CPUTimeMS:  tracker.meanMS(),
		FPGATimeMS: s.params.FrameTime(),
		Width:      s.input.Width,
		Height:     s.input.Height,
	}
	result.Speedup = result.CPUTimeMS / result.FPGATimeMS

	s.results = append(s.results, result)
	return result, nil
}

// Results returns a copy of all results in execution order.
func (s *Session) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// AverageSpeedup returns the arithmetic mean of the per-result speedups, or
// 0 when no comparison has run.
func (s *Session) AverageSpeedup() float64 {
	if len(s.results) == 0 {
		return 0
	}
	speedups := make([]float64, len(s.results))
	for i, r := range s.results {
		speedups[i] = r.Speedup
	}
	return stat.Mean(speedups, nil)
}

// Parameters returns the session's accelerator design point.
func (s *Session) Parameters() fpga.TimingParameters {
	return s.params
}

// Iterations returns the configured number of timed runs per comparison.
func (s *Session) Iterations() int {
	return s.iterations
}
