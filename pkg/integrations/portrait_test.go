package integrations

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPortraitScalerDownscales(t *testing.T) {
	scaler := NewPortraitScaler(100, 100)

	out, err := scaler.Scale(createTestPNG(t, 400, 200))
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestPortraitScalerKeepsSmallImages(t *testing.T) {
	scaler := NewPortraitScaler(100, 100)

	out, err := scaler.Scale(createTestPNG(t, 20, 30))
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
}

func TestPortraitScalerRejectsGarbage(t *testing.T) {
	_, err := NewPortraitScaler(100, 100).Scale([]byte("not an image"))
	assert.Error(t, err)
}

func TestCalculateDimensions(t *testing.T) {
	scaler := NewPortraitScaler(308, 560)

	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{308, 560, 308, 560},
		{616, 1120, 308, 560},
		{1000, 100, 308, 30},
		{100, 2000, 28, 560},
	}
	for _, tt := range tests {
		w, h := scaler.calculateDimensions(tt.w, tt.h)
		assert.Equal(t, tt.wantW, w, "width for %dx%d", tt.w, tt.h)
		assert.Equal(t, tt.wantH, h, "height for %dx%d", tt.w, tt.h)
	}
}
