// Package kernels - Reference CPU implementations of the image operations the
// accelerator pipeline runs in hardware. These are the baseline workloads the
// benchmark times.
package kernels

import (
	"github.com/zmohammed5/fpga-image-processor/raster"
)

// Kernel is a fixed 3x3 convolution matrix with a normalization divisor.
// Divisor is 1 for kernels that need no normalization. Kernels are constant
// data and never mutated.
type Kernel struct {
	Weights [3][3]float32
	Divisor float32
}

// convolve applies k to every sample of src, widening to float32 so
// intermediate sums can go negative or exceed 255. The returned plane has one
// value per source sample; callers clamp and truncate as appropriate.
//
// Samples outside the image are taken from the nearest edge pixel (clamp
// policy). Both kernels share this operator so the border behavior is
// identical everywhere.
func convolve(src *raster.Image, k Kernel) []float32 {
	w, h := src.Width, src.Height
	out := make([]float32, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for ky := -1; ky <= 1; ky++ {
				sy := clampCoord(y+ky, h)
				for kx := -1; kx <= 1; kx++ {
					sx := clampCoord(x+kx, w)
					sum += k.Weights[ky+1][kx+1] * float32(src.At(sx, sy))
				}
			}
			out[y*w+x] = sum / k.Divisor
		}
	}
	return out
}

// clampCoord maps an index into [0, n) by repeating the edge sample.
func clampCoord(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
