package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zmohammed5/fpga-image-processor/benchmark"
	"github.com/zmohammed5/fpga-image-processor/fpga"
	"github.com/zmohammed5/fpga-image-processor/raster"
	"github.com/zmohammed5/fpga-image-processor/raster/kernels"
)

// Benchmark resolution matching the accelerator's frame geometry.
const (
	benchWidth  = 640
	benchHeight = 480

	// defaultSeed keeps synthetic runs comparable across invocations.
	defaultSeed = 1
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the CPU vs FPGA benchmark",
	Long: `Run the CPU reference kernels against the accelerator timing model
and write a Markdown report.

Examples:
  # Benchmark against a synthetic test image
  fpgabench bench

  # Benchmark a real image, write charts too
  fpgabench bench --image lena.png --plot

  # Use a different accelerator design point
  fpgabench bench --params designs/a7-200.yaml`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().String("image", "", "Test image path (default: synthetic)")
	benchCmd.Flags().String("output", "benchmark_results.md", "Output report file")
	benchCmd.Flags().String("params", "", "Accelerator design-point YAML (default: measured hardware)")
	benchCmd.Flags().Int("iterations", benchmark.DefaultIterations, "Timed runs per operation")
	benchCmd.Flags().Int64("seed", defaultSeed, "Seed for the synthetic test image")
	benchCmd.Flags().Bool("plot", false, "Render comparison charts")
	benchCmd.Flags().String("plot-dir", ".", "Directory for rendered charts")
}

func runBench(cmd *cobra.Command, args []string) error {
	imagePath, _ := cmd.Flags().GetString("image")
	outputPath, _ := cmd.Flags().GetString("output")
	paramsPath, _ := cmd.Flags().GetString("params")
	iterations, _ := cmd.Flags().GetInt("iterations")
	seed, _ := cmd.Flags().GetInt64("seed")
	plotCharts, _ := cmd.Flags().GetBool("plot")
	plotDir, _ := cmd.Flags().GetString("plot-dir")

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signalContext()
	defer stop()

	params := fpga.DefaultParameters()
	if paramsPath != "" {
		params, err = fpga.LoadParameters(paramsPath)
		if err != nil {
			return err
		}
		logger.Info("loaded design point",
			zap.String("path", paramsPath),
			zap.Float64("clock_mhz", params.ClockFreqMHz))
	}

	input, err := loadBenchImage(logger, imagePath, seed)
	if err != nil {
		return err
	}

	session, err := benchmark.NewSession(input, params, iterations)
	if err != nil {
		return err
	}

	operations := []benchmark.Operation{
		{Name: "Sobel Edge Detection", Fn: kernels.EdgeDetect},
		{Name: "Gaussian Blur", Fn: kernels.GaussianBlur},
	}

	for _, op := range operations {
		logger.Info("benchmarking", zap.String("operation", op.Name))
		result, err := session.RunComparison(ctx, op)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				// Completed comparisons stay reportable.
				logger.Warn("benchmark interrupted", zap.Error(err))
				break
			}
			return err
		}
		logger.Info("comparison complete",
			zap.String("operation", result.Operation),
			zap.Float64("cpu_ms", result.CPUTimeMS),
			zap.Float64("fpga_ms", result.FPGATimeMS),
			zap.Float64("speedup", result.Speedup))
	}

	results := session.Results()
	if len(results) == 0 {
		return errors.New("no comparisons completed")
	}

	fmt.Println(session.Report())

	// Persistence failures are recoverable: the measurements already
	// completed and were printed above.
	if err := session.WriteReport(outputPath); err != nil {
		logger.Error("report not persisted", zap.Error(err))
	} else {
		logger.Info("report saved", zap.String("path", outputPath))
	}

	if plotCharts {
		renderer := benchmark.PlotRenderer{OutputDir: plotDir}
		if err := renderer.Render(results); err != nil {
			logger.Error("charts not rendered", zap.Error(err))
		} else {
			logger.Info("charts saved", zap.String("dir", plotDir))
		}
	}

	return nil
}

// loadBenchImage resolves the benchmark input. A missing image file falls
// back to the seeded synthetic raster; an unreadable or undecodable file
// aborts the session before any timing work.
func loadBenchImage(logger *zap.Logger, path string, seed int64) (*raster.Image, error) {
	if path == "" {
		logger.Info("using synthetic test image", zap.Int64("seed", seed))
		return raster.Synthetic(benchWidth, benchHeight, seed), nil
	}
	if _, err := os.Stat(path); err != nil {
		logger.Warn("test image not found, using synthetic",
			zap.String("path", path), zap.Int64("seed", seed))
		return raster.Synthetic(benchWidth, benchHeight, seed), nil
	}

	img, err := raster.FromFile(path, benchWidth, benchHeight)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded test image", zap.String("path", path))
	return img, nil
}
