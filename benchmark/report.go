package benchmark

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DesignName identifies the accelerator the timing model describes.
const DesignName = "Xilinx Artix-7 (XC7A35T)"

// Report renders the session's results as a Markdown document: a system
// configuration header, one table row per comparison in execution order, and
// the aggregate speedup line. The table layout is a persisted contract other
// tooling parses, so field widths and precisions are fixed.
func (s *Session) Report() string {
	var b strings.Builder

	b.WriteString("# FPGA Image Processing Benchmark Results\n\n")
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))

	b.WriteString("\n## System Configuration\n\n")
	fmt.Fprintf(&b, "- FPGA: %s\n", DesignName)
	fmt.Fprintf(&b, "- Clock Frequency: %.1f MHz\n", s.params.ClockFreqMHz)
	fmt.Fprintf(&b, "- Image Resolution: %dx%d\n", s.input.Width, s.input.Height)
	fmt.Fprintf(&b, "- CPU: %s/%s, %d cores, %s\n",
		runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), runtime.Version())
	fmt.Fprintf(&b, "- Iterations per operation: %d\n", s.iterations)

	b.WriteString("\n## Performance Results\n\n")
	b.WriteString("| Operation | CPU Time (ms) | FPGA Time (ms) | Speedup |\n")
	b.WriteString("|-----------|--------------|----------------|----------|\n")
	for _, r := range s.results {
		fmt.Fprintf(&b, "| %-20s | %8.2f | %9.2f | %7.1fx |\n",
			r.Operation, r.CPUTimeMS, r.FPGATimeMS, r.Speedup)
	}

	fmt.Fprintf(&b, "\n**Average Speedup: %.1fx**\n", s.AverageSpeedup())

	return b.String()
}

// WriteReport persists the report to path as UTF-8 text.
//
// A write failure here is recoverable from the caller's point of view: the
// measurements already completed and the report text is still available via
// Report, so callers should surface the error and carry on.
func (s *Session) WriteReport(path string) error {
	if err := os.WriteFile(path, []byte(s.Report()), 0o644); err != nil {
		return errors.Wrapf(err, "write report %s", path)
	}
	return nil
}
