// Package commands - Cobra CLI for the benchmark and upload tools.
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fpgabench",
	Short: "FPGA image accelerator benchmark and upload tool",
	Long: `fpgabench compares the CPU reference implementation of the image
pipeline against the FPGA accelerator's timing model, and uploads raster
frames to the board over UART.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger builds the process logger. Libraries stay logger-free; only the
// commands log.
func newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// signalContext returns a context cancelled on SIGINT or SIGTERM, so
// long-running loops can stop cleanly and still report what completed.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
