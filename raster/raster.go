// Package raster - Grayscale raster images consumed by the benchmark kernels
// and the hardware upload channel.
package raster

import (
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"math/rand"
	"os"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Sentinel errors for the failure taxonomy. Callers match with errors.Is.
var (
	// ErrResource indicates an input image could not be located or decoded.
	ErrResource = errors.New("raster: resource unavailable")
	// ErrValidation indicates an image does not have the expected shape.
	ErrValidation = errors.New("raster: validation failed")
)

// Image is a fixed-size 2-D grid of 8-bit grayscale intensity samples.
//
// Pix holds one byte per sample in row-major order, so the sample at (x, y)
// lives at Pix[y*Width+x]. Images are constructed once and treated as
// read-only by every consumer; kernels allocate fresh output images.
type Image struct {
	// Width is the number of samples per row.
	Width int `json:"width" yaml:"width"`
	// Height is the number of rows.
	Height int `json:"height" yaml:"height"`
	// Pix is the raw sample data, row-major, one byte per sample.
	Pix []byte `json:"-" yaml:"-"`
}

// New returns a zero-filled image of the given dimensions.
func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height),
	}
}

// Synthetic generates a reproducible random test image. The same seed always
// yields the same pixel data, so tests and repeated benchmark sessions see
// identical inputs.
func Synthetic(width, height int, seed int64) *Image {
	img := New(width, height)
	rng := rand.New(rand.NewSource(seed))
	for i := range img.Pix {
		img.Pix[i] = byte(rng.Intn(256))
	}
	return img
}

// FromFile loads an image file, converts it to grayscale, and resizes it to
// the given dimensions.
//
// Arguments:
//   - path: Path to a PNG or JPEG file.
//   - width: Target width in samples.
//   - height: Target height in samples.
//
// Returns:
//   - *Image: The prepared grayscale image.
//   - error: Wraps ErrResource if the file cannot be read or decoded.
func FromFile(path string, width, height int) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrResource, "open %s: %v", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(ErrResource, "decode %s: %v", path, err)
	}

	return FromImage(src, width, height), nil
}

// FromImage converts a decoded image.Image into a grayscale Image of the
// given dimensions, resizing with bilinear interpolation when the source
// shape differs.
func FromImage(src image.Image, width, height int) *Image {
	b := src.Bounds()
	if b.Dx() != width || b.Dy() != height {
		src = resize.Resize(uint(width), uint(height), src, resize.Bilinear)
		b = src.Bounds()
	}

	img := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, bl, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// ITU-R BT.601 luma, operating on 16-bit channel values.
			luma := (299*r + 587*g + 114*bl) / 1000
			img.Pix[y*width+x] = byte(luma >> 8)
		}
	}
	return img
}

// At returns the sample at (x, y). Callers must stay in bounds.
func (m *Image) At(x, y int) byte {
	return m.Pix[y*m.Width+x]
}

// Set writes the sample at (x, y). Only constructors and kernels writing
// their own output should call this.
func (m *Image) Set(x, y int, v byte) {
	m.Pix[y*m.Width+x] = v
}

// PixelCount returns the total number of samples.
func (m *Image) PixelCount() int {
	return m.Width * m.Height
}

// CheckPixelCount verifies the image holds exactly n samples. Comparisons and
// uploads call this before any timing or transfer work begins, so a shape
// mismatch fails fast.
func (m *Image) CheckPixelCount(n int) error {
	if m.PixelCount() != n {
		return errors.Wrapf(ErrValidation, "image is %dx%d (%d px), expected %d px",
			m.Width, m.Height, m.PixelCount(), n)
	}
	return nil
}

// CheckDimensions verifies the image is exactly width x height.
func (m *Image) CheckDimensions(width, height int) error {
	if m.Width != width || m.Height != height {
		return errors.Wrapf(ErrValidation, "image is %dx%d, expected %dx%d",
			m.Width, m.Height, width, height)
	}
	return nil
}
