package benchmark

import (
	"image/color"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Renderer consumes aggregated benchmark series and produces visual output.
// The harness only supplies numbers; how they are drawn is up to the
// implementation.
type Renderer interface {
	Render(results []Result) error
}

// PlotRenderer draws two grouped bar charts as PNG files in OutputDir:
// time-per-operation (CPU next to FPGA) and speedup-per-operation.
type PlotRenderer struct {
	OutputDir string
}

var (
	cpuBarColor     = color.RGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF}
	fpgaBarColor    = color.RGBA{R: 0x2E, G: 0xCC, B: 0x71, A: 0xFF}
	speedupBarColor = color.RGBA{R: 0x34, G: 0x98, B: 0xDB, A: 0xFF}
)

// Render writes performance_comparison.png and speedup_comparison.png.
func (pr PlotRenderer) Render(results []Result) error {
	if len(results) == 0 {
		return errors.New("chart: no results to render")
	}

	names := make([]string, len(results))
	cpuTimes := make(plotter.Values, len(results))
	fpgaTimes := make(plotter.Values, len(results))
	speedups := make(plotter.Values, len(results))
	for i, r := range results {
		names[i] = r.Operation
		cpuTimes[i] = r.CPUTimeMS
		fpgaTimes[i] = r.FPGATimeMS
		speedups[i] = r.Speedup
	}

	if err := pr.renderTimes(names, cpuTimes, fpgaTimes); err != nil {
		return err
	}
	return pr.renderSpeedups(names, speedups)
}

func (pr PlotRenderer) renderTimes(names []string, cpuTimes, fpgaTimes plotter.Values) error {
	p := plot.New()
	p.Title.Text = "CPU vs FPGA Processing Time"
	p.Y.Label.Text = "Execution Time (ms)"

	w := vg.Points(20)

	cpuBars, err := plotter.NewBarChart(cpuTimes, w)
	if err != nil {
		return errors.Wrap(err, "chart: cpu time bars")
	}
	cpuBars.Color = cpuBarColor
	cpuBars.Offset = -w / 2

	fpgaBars, err := plotter.NewBarChart(fpgaTimes, w)
	if err != nil {
		return errors.Wrap(err, "chart: fpga time bars")
	}
	fpgaBars.Color = fpgaBarColor
	fpgaBars.Offset = w / 2

	p.Add(cpuBars, fpgaBars)
	p.Legend.Add("CPU", cpuBars)
	p.Legend.Add("FPGA", fpgaBars)
	p.Legend.Top = true
	p.NominalX(names...)

	path := filepath.Join(pr.OutputDir, "performance_comparison.png")
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "chart: save %s", path)
	}
	return nil
}

func (pr PlotRenderer) renderSpeedups(names []string, speedups plotter.Values) error {
	p := plot.New()
	p.Title.Text = "FPGA Speedup over CPU"
	p.Y.Label.Text = "Speedup Factor"

	bars, err := plotter.NewBarChart(speedups, vg.Points(30))
	if err != nil {
		return errors.Wrap(err, "chart: speedup bars")
	}
	bars.Color = speedupBarColor

	p.Add(bars)
	p.NominalX(names...)

	path := filepath.Join(pr.OutputDir, "speedup_comparison.png")
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "chart: save %s", path)
	}
	return nil
}
