package kernels

import (
	"github.com/zmohammed5/fpga-image-processor/raster"
)

// 3x3 Gaussian approximation. Weights sum to 16, so the normalized kernel
// sums to 1 and a uniform image passes through unchanged.
var gaussian = Kernel{
	Weights: [3][3]float32{
		{1, 2, 1},
		{2, 4, 2},
		{1, 2, 1},
	},
	Divisor: 16,
}

// GaussianBlur applies the 3x3 Gaussian kernel to src and returns a new image
// of the same dimensions. The float result is truncated (not rounded) to
// 8 bits; the small downward bias matches the hardware pipeline's output.
func GaussianBlur(src *raster.Image) *raster.Image {
	plane := convolve(src, gaussian)

	dst := raster.New(src.Width, src.Height)
	for i := range dst.Pix {
		v := plane[i]
		if v > 255 {
			v = 255
		} else if v < 0 {
			v = 0
		}
		dst.Pix[i] = byte(v)
	}
	return dst
}
