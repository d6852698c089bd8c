package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zmohammed5/fpga-image-processor/raster"
	"github.com/zmohammed5/fpga-image-processor/uplink"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload an image to the FPGA over UART",
	Long: `Convert an image to the board's 640x480 grayscale frame format and
stream it over the serial port.

Examples:
  # Upload an image
  fpgabench upload --port /dev/ttyUSB0 --image lena.png

  # Upload at a different baud rate, without the progress bar
  fpgabench upload --port COM3 --image test.jpg --baud 9600 --no-progress`,
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringP("port", "p", "", "Serial port (e.g. /dev/ttyUSB0 or COM3)")
	uploadCmd.Flags().StringP("image", "i", "", "Input image file (PNG or JPEG)")
	uploadCmd.Flags().IntP("baud", "b", uplink.DefaultBaudRate, "Baud rate")
	uploadCmd.Flags().Bool("no-progress", false, "Disable the progress bar")
	_ = uploadCmd.MarkFlagRequired("port")
	_ = uploadCmd.MarkFlagRequired("image")
}

func runUpload(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetString("port")
	imagePath, _ := cmd.Flags().GetString("image")
	baud, _ := cmd.Flags().GetInt("baud")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signalContext()
	defer stop()

	img, err := raster.FromFile(imagePath, uplink.FrameWidth, uplink.FrameHeight)
	if err != nil {
		return err
	}
	logger.Info("prepared image",
		zap.String("path", imagePath),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height))

	channel, err := uplink.Open(uplink.Config{
		Port:         port,
		BaudRate:     baud,
		ShowProgress: !noProgress,
	})
	if err != nil {
		return err
	}
	// Released on every exit path, including cancellation mid-transfer.
	defer func() {
		if cerr := channel.Close(); cerr != nil {
			logger.Error("serial port not released", zap.Error(cerr))
		}
	}()
	logger.Info("connected", zap.String("port", port), zap.Int("baud", baud))

	stats, err := channel.Send(ctx, img)
	if err != nil {
		return err
	}

	logger.Info("upload complete",
		zap.Int("bytes", stats.Bytes),
		zap.Duration("duration", stats.Duration),
		zap.Float64("pixels_per_sec", stats.PixelsPerSecond()),
		zap.String("bandwidth", stats.Bandwidth()))
	fmt.Printf("Uploaded %d pixels in %.2fs (%s)\n",
		stats.Bytes, stats.Duration.Seconds(), stats.Bandwidth())

	return nil
}
