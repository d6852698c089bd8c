// Package benchmark - CPU-versus-accelerator comparison harness and reporting.
package benchmark

import "time"

// Result captures the outcome of one completed comparison. Results are
// immutable once constructed.
type Result struct {
	// Operation is the display name of the kernel under test.
	Operation string `json:"operation"`
	// Timestamp records when the comparison finished.
	Timestamp time.Time `json:"timestamp"`
	// CPUTimeMS is the mean wall-clock time of the timed CPU runs.
	CPUTimeMS float64 `json:"cpu_time_ms"`
	// FPGATimeMS is the model-estimated accelerator frame time.
	FPGATimeMS float64 `json:"fpga_time_ms"`
	// Speedup is CPUTimeMS / FPGATimeMS.
	Speedup float64 `json:"speedup"`
	// Width and Height record the input image dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`
}
