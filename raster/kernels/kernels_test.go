package kernels

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zmohammed5/fpga-image-processor/raster"
)

func uniform(w, h int, v byte) *raster.Image {
	img := raster.New(w, h)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestEdgeDetectUniformImageIsZero(t *testing.T) {
	// Zero gradient everywhere on constant input. The clamp border policy
	// replicates edge samples, so this holds at the borders too.
	src := uniform(16, 12, 128)
	out := EdgeDetect(src)

	assert.Equal(t, src.Width, out.Width)
	assert.Equal(t, src.Height, out.Height)
	for i, v := range out.Pix {
		if v != 0 {
			t.Fatalf("pixel %d: got %d, want 0", i, v)
		}
	}
}

func TestEdgeDetectDoesNotMutateInput(t *testing.T) {
	src := raster.Synthetic(16, 12, 7)
	before := make([]byte, len(src.Pix))
	copy(before, src.Pix)

	_ = EdgeDetect(src)
	if !bytes.Equal(before, src.Pix) {
		t.Fatal("input image was mutated")
	}
}

func TestEdgeDetectHorizontalRamp(t *testing.T) {
	// v(x) = 10x gives Gx = (1+2+1) * (v(x+1) - v(x-1)) / 2 ... worked out,
	// each row contributes weight*(right-left): (1+2+1)*20 = 80. Gy = 0.
	src := raster.New(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, byte(x*10))
		}
	}

	out := EdgeDetect(src)
	for y := 1; y < 7; y++ {
		for x := 1; x < 7; x++ {
			if got := out.At(x, y); got != 80 {
				t.Fatalf("interior (%d,%d): got %d, want 80", x, y, got)
			}
		}
	}
}

func TestEdgeDetectClampsMagnitude(t *testing.T) {
	// A hard black/white step overdrives |Gx|+|Gy|; output must clamp at 255.
	src := raster.New(8, 8)
	for y := 0; y < 8; y++ {
		for x := 4; x < 8; x++ {
			src.Set(x, y, 255)
		}
	}

	out := EdgeDetect(src)
	assert.Equal(t, byte(255), out.At(4, 4))
}

func TestGaussianBlurUniformImageUnchanged(t *testing.T) {
	// Kernel weights sum to 16 and the divisor is 16, so a constant image
	// passes through untouched everywhere.
	src := uniform(16, 12, 77)
	out := GaussianBlur(src)

	for i, v := range out.Pix {
		if v != 77 {
			t.Fatalf("pixel %d: got %d, want 77", i, v)
		}
	}
}

func TestGaussianBlurImpulseResponse(t *testing.T) {
	src := raster.New(7, 7)
	src.Set(3, 3, 16)

	out := GaussianBlur(src)

	// Center keeps weight 4/16, edge neighbors 2/16, diagonals 1/16.
	assert.Equal(t, byte(4), out.At(3, 3))
	assert.Equal(t, byte(2), out.At(2, 3))
	assert.Equal(t, byte(2), out.At(3, 2))
	assert.Equal(t, byte(1), out.At(2, 2))
	assert.Equal(t, byte(0), out.At(5, 3))
}

func TestGaussianBlurTruncates(t *testing.T) {
	// A single 255 impulse: center = 255*4/16 = 63.75, truncated to 63.
	src := raster.New(7, 7)
	src.Set(3, 3, 255)

	out := GaussianBlur(src)
	assert.Equal(t, byte(63), out.At(3, 3))
}

func TestKernelsAreDeterministic(t *testing.T) {
	src := raster.Synthetic(32, 24, 99)

	a := EdgeDetect(src)
	b := EdgeDetect(src)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("edge detection is not deterministic")
	}

	c := GaussianBlur(src)
	d := GaussianBlur(src)
	if !bytes.Equal(c.Pix, d.Pix) {
		t.Fatal("blur is not deterministic")
	}
}

func TestClampCoord(t *testing.T) {
	assert.Equal(t, 0, clampCoord(-1, 10))
	assert.Equal(t, 0, clampCoord(0, 10))
	assert.Equal(t, 9, clampCoord(9, 10))
	assert.Equal(t, 9, clampCoord(10, 10))
}
