package raster

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsZeroFilled(t *testing.T) {
	img := New(8, 4)
	assert.Equal(t, 8, img.Width)
	assert.Equal(t, 4, img.Height)
	assert.Len(t, img.Pix, 32)
	for _, v := range img.Pix {
		if v != 0 {
			t.Fatalf("expected zero-filled image, found %d", v)
		}
	}
}

func TestSyntheticIsReproducible(t *testing.T) {
	a := Synthetic(64, 48, 42)
	b := Synthetic(64, 48, 42)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("same seed produced different images")
	}

	c := Synthetic(64, 48, 43)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Fatal("different seeds produced identical images")
	}
}

func TestAtSetRoundTrip(t *testing.T) {
	img := New(10, 10)
	img.Set(3, 7, 200)
	assert.Equal(t, byte(200), img.At(3, 7))
	assert.Equal(t, byte(200), img.Pix[7*10+3])
}

func TestCheckPixelCount(t *testing.T) {
	img := New(640, 480)
	require.NoError(t, img.CheckPixelCount(640*480))

	err := img.CheckPixelCount(1024)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "640x480")
}

func TestCheckDimensions(t *testing.T) {
	img := New(640, 480)
	require.NoError(t, img.CheckDimensions(640, 480))

	err := img.CheckDimensions(480, 640)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestFromFileMissingWrapsResourceError(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.png"), 640, 480)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResource))
	assert.Contains(t, err.Error(), "missing.png")
}

func TestFromFileUndecodableWrapsResourceError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := FromFile(path, 640, 480)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResource))
}

func TestFromImageGrayPassThrough(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetGray(x, y, color.Gray{Y: uint8(x*10 + y)})
		}
	}

	img := FromImage(src, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := byte(x*10 + y)
			if got := img.At(x, y); got != want {
				t.Fatalf("sample (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestFromImageResizesToTarget(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 100, 80))
	img := FromImage(src, 640, 480)
	assert.Equal(t, 640, img.Width)
	assert.Equal(t, 480, img.Height)
	assert.Len(t, img.Pix, 640*480)
}
