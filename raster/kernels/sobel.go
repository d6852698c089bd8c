package kernels

import (
	"github.com/chewxy/math32"

	"github.com/zmohammed5/fpga-image-processor/raster"
)

// Directional derivative kernels for horizontal and vertical gradients.
var (
	sobelX = Kernel{
		Weights: [3][3]float32{
			{-1, 0, 1},
			{-2, 0, 2},
			{-1, 0, 1},
		},
		Divisor: 1,
	}
	sobelY = Kernel{
		Weights: [3][3]float32{
			{-1, -2, -1},
			{0, 0, 0},
			{1, 2, 1},
		},
		Divisor: 1,
	}
)

// EdgeDetect runs Sobel edge detection over src and returns a new image of
// the same dimensions.
//
// The gradient magnitude is the L1 approximation |Gx| + |Gy|, not the
// Euclidean norm. The hardware pipeline computes the same approximation, so
// the cheaper form is kept for bit-compatible output even though it reads
// slightly high on diagonal edges. The result is clamped to [0, 255] and
// truncated, matching the pipeline's integer conversion.
func EdgeDetect(src *raster.Image) *raster.Image {
	gx := convolve(src, sobelX)
	gy := convolve(src, sobelY)

	dst := raster.New(src.Width, src.Height)
	for i := range dst.Pix {
		mag := math32.Abs(gx[i]) + math32.Abs(gy[i])
		if mag > 255 {
			mag = 255
		}
		dst.Pix[i] = byte(mag)
	}
	return dst
}
