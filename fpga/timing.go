// Package fpga - Analytic timing model for the accelerator design point.
//
// The model is a closed-form stand-in for a live device measurement: the
// pipeline emits one sample per cycle after a fixed fill latency, so a frame
// costs pixels + latency cycles, plus a measured per-frame control overhead.
package fpga

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Measured design point, Artix-7 XC7A35T, October 2025.
const (
	DefaultClockFreqMHz    = 120.5
	DefaultPixelsPerFrame  = 640 * 480
	DefaultPipelineLatency = 1282
	DefaultOverheadMS      = 0.32
)

// TimingParameters describes one accelerator design point. All fields are
// constants for the lifetime of a benchmark session.
type TimingParameters struct {
	// ClockFreqMHz is the achieved pipeline clock frequency.
	ClockFreqMHz float64 `json:"clock_freq_mhz" yaml:"clock_freq_mhz"`
	// PixelsPerFrame is the frame size the pipeline is configured for. It
	// must match the pixel count of the image used in a comparison.
	PixelsPerFrame int `json:"pixels_per_frame" yaml:"pixels_per_frame"`
	// PipelineLatencyCycles is the fill latency before the first valid
	// output sample (two rows plus two pixels for a 3x3 window).
	PipelineLatencyCycles int `json:"pipeline_latency_cycles" yaml:"pipeline_latency_cycles"`
	// FixedOverheadMS is the measured per-frame DMA and control cost.
	FixedOverheadMS float64 `json:"fixed_overhead_ms" yaml:"fixed_overhead_ms"`
}

// DefaultParameters returns the measured hardware design point.
func DefaultParameters() TimingParameters {
	return TimingParameters{
		ClockFreqMHz:          DefaultClockFreqMHz,
		PixelsPerFrame:        DefaultPixelsPerFrame,
		PipelineLatencyCycles: DefaultPipelineLatency,
		FixedOverheadMS:       DefaultOverheadMS,
	}
}

// Validate rejects parameter sets that would make the model meaningless.
// In particular the estimated frame time must come out strictly positive,
// since every speedup divides by it.
func (p TimingParameters) Validate() error {
	if p.ClockFreqMHz <= 0 {
		return errors.Errorf("fpga: clock frequency must be positive, got %g MHz", p.ClockFreqMHz)
	}
	if p.PixelsPerFrame <= 0 {
		return errors.Errorf("fpga: pixels per frame must be positive, got %d", p.PixelsPerFrame)
	}
	if p.PipelineLatencyCycles < 0 {
		return errors.Errorf("fpga: pipeline latency must be non-negative, got %d cycles", p.PipelineLatencyCycles)
	}
	if p.FixedOverheadMS < 0 {
		return errors.Errorf("fpga: fixed overhead must be non-negative, got %g ms", p.FixedOverheadMS)
	}
	if t := p.FrameTime(); t <= 0 {
		return errors.Errorf("fpga: estimated frame time %g ms is not positive", t)
	}
	return nil
}

// FrameTime returns the estimated per-frame processing time in milliseconds.
//
// The value is recomputed on every call so parameter changes are reflected
// immediately; nothing is cached.
func (p TimingParameters) FrameTime() float64 {
	totalCycles := float64(p.PixelsPerFrame + p.PipelineLatencyCycles)
	return totalCycles/(p.ClockFreqMHz*1000) + p.FixedOverheadMS
}

// LoadParameters reads a design point from a YAML file and validates it.
func LoadParameters(path string) (TimingParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TimingParameters{}, errors.Wrapf(err, "fpga: read parameters %s", path)
	}

	p := DefaultParameters()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return TimingParameters{}, errors.Wrapf(err, "fpga: parse parameters %s", path)
	}
	if err := p.Validate(); err != nil {
		return TimingParameters{}, errors.Wrapf(err, "fpga: parameters %s", path)
	}
	return p, nil
}
