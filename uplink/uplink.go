// Package uplink - Serial transfer of raster frames to the accelerator board.
//
// The board expects one 640x480 grayscale frame as raw bytes, row-major, one
// byte per sample, with no framing or checksum. The channel is 8N1 at one of
// the standard baud rates.
package uplink

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.bug.st/serial"

	"github.com/zmohammed5/fpga-image-processor/raster"
)

// Frame geometry the board's ingest logic is hardwired for.
const (
	FrameWidth  = 640
	FrameHeight = 480
	FrameBytes  = FrameWidth * FrameHeight

	// DefaultBaudRate is the rate the board ships configured with.
	DefaultBaudRate = 115200

	// chunkSize keeps individual writes small enough that cancellation is
	// responsive mid-transfer.
	chunkSize = 1024
)

// ErrConnectivity indicates the serial channel could not be opened.
var ErrConnectivity = errors.New("uplink: serial channel unavailable")

// StandardBaudRates are the rates the board's UART can be strapped to.
var StandardBaudRates = []int{9600, 19200, 38400, 57600, 115200, 230400}

// Config selects the serial port and rate for a channel.
type Config struct {
	// Port is the serial device, e.g. /dev/ttyUSB0 or COM3.
	Port string
	// BaudRate must be one of StandardBaudRates. Zero selects the default.
	BaudRate int
	// ShowProgress draws a byte-level progress bar during Send.
	ShowProgress bool
}

func (c *Config) validate() error {
	if c.Port == "" {
		return errors.Wrap(raster.ErrValidation, "uplink: port is required")
	}
	if c.BaudRate == 0 {
		c.BaudRate = DefaultBaudRate
	}
	for _, rate := range StandardBaudRates {
		if c.BaudRate == rate {
			return nil
		}
	}
	return errors.Wrapf(raster.ErrValidation,
		"uplink: unsupported baud rate %d (standard rates: %v)", c.BaudRate, StandardBaudRates)
}

// Channel is an open serial link to the board. It must be closed on every
// exit path, including cancellation; Close is safe to defer immediately
// after a successful Open.
type Channel struct {
	cfg  Config
	port serial.Port
}

// Open opens the serial port in 8N1 mode at the configured rate.
//
// Returns:
//   - *Channel: The open channel.
//   - error: Wraps ErrConnectivity (with the port name) if the port cannot
//     be opened, or a validation error for a bad config.
func Open(cfg Config) (*Channel, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, errors.Wrapf(ErrConnectivity, "open %s at %d baud: %v", cfg.Port, cfg.BaudRate, err)
	}

	return &Channel{cfg: cfg, port: port}, nil
}

// Stats describes one completed transfer.
type Stats struct {
	Bytes    int
	Duration time.Duration
}

// PixelsPerSecond returns the effective transfer rate. One byte carries one
// pixel, so this is also the byte rate.
func (st Stats) PixelsPerSecond() float64 {
	if st.Duration <= 0 {
		return 0
	}
	return float64(st.Bytes) / st.Duration.Seconds()
}

// Bandwidth returns a human-readable transfer rate, e.g. "11 kB/s".
func (st Stats) Bandwidth() string {
	return fmt.Sprintf("%s/s", humanize.Bytes(uint64(st.PixelsPerSecond())))
}

// Send transfers one frame to the board and drains the port so the returned
// duration covers the full transmission.
//
// The image shape is checked before any byte moves. Cancellation via ctx
// stops the transfer between chunks; the caller's deferred Close still
// releases the port.
func (ch *Channel) Send(ctx context.Context, img *raster.Image) (Stats, error) {
	if err := img.CheckDimensions(FrameWidth, FrameHeight); err != nil {
		return Stats{}, errors.WithMessagef(err, "uplink send on %s", ch.cfg.Port)
	}

	// Discard anything pending from a previous session.
	if err := ch.port.ResetInputBuffer(); err != nil {
		return Stats{}, errors.Wrapf(err, "uplink: reset input buffer on %s", ch.cfg.Port)
	}
	if err := ch.port.ResetOutputBuffer(); err != nil {
		return Stats{}, errors.Wrapf(err, "uplink: reset output buffer on %s", ch.cfg.Port)
	}

	var bar *progressbar.ProgressBar
	if ch.cfg.ShowProgress {
		bar = progressbar.DefaultBytes(int64(FrameBytes), "upload")
	}

	start := time.Now()
	sent := 0
	for sent < len(img.Pix) {
		select {
		case <-ctx.Done():
			return Stats{}, errors.Wrapf(ctx.Err(),
				"uplink: transfer on %s cancelled after %d of %d bytes", ch.cfg.Port, sent, FrameBytes)
		default:
		}

		end := sent + chunkSize
		if end > len(img.Pix) {
			end = len(img.Pix)
		}
		n, err := ch.port.Write(img.Pix[sent:end])
		if err != nil {
			return Stats{}, errors.Wrapf(err, "uplink: write on %s after %d bytes", ch.cfg.Port, sent)
		}
		sent += n
		if bar != nil {
			_ = bar.Add(n)
		}
	}

	// Drain so Duration covers the wire time, not just buffered writes.
	if err := ch.port.Drain(); err != nil {
		return Stats{}, errors.Wrapf(err, "uplink: drain %s", ch.cfg.Port)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return Stats{Bytes: sent, Duration: time.Since(start)}, nil
}

// Close releases the serial port.
func (ch *Channel) Close() error {
	if ch.port == nil {
		return nil
	}
	err := ch.port.Close()
	ch.port = nil
	if err != nil {
		return errors.Wrapf(err, "uplink: close %s", ch.cfg.Port)
	}
	return nil
}
