package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotRendererWritesBothCharts(t *testing.T) {
	dir := t.TempDir()
	renderer := PlotRenderer{OutputDir: dir}

	results := []Result{
		{Operation: "Sobel Edge Detection", CPUTimeMS: 47.3, FPGATimeMS: 2.88, Speedup: 16.4},
		{Operation: "Gaussian Blur", CPUTimeMS: 31.2, FPGATimeMS: 2.88, Speedup: 10.8},
	}
	require.NoError(t, renderer.Render(results))

	for _, name := range []string{"performance_comparison.png", "speedup_comparison.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestPlotRendererRejectsEmptyResults(t *testing.T) {
	renderer := PlotRenderer{OutputDir: t.TempDir()}
	assert.Error(t, renderer.Render(nil))
}
