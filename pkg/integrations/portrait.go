package integrations

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// PortraitScaler fits champion artwork into a bounding box and re-encodes
// it as JPEG so every page in the codex has the same format.
type PortraitScaler struct {
	MaxWidth  int
	MaxHeight int
	Quality   int
}

func NewPortraitScaler(maxWidth, maxHeight int) *PortraitScaler {
	return &PortraitScaler{MaxWidth: maxWidth, MaxHeight: maxHeight, Quality: 85}
}

func (p *PortraitScaler) Scale(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := p.calculateDimensions(bounds.Dx(), bounds.Dy())

	var out image.Image = img
	if width != bounds.Dx() || height != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: p.Quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// calculateDimensions keeps the aspect ratio and never upscales.
func (p *PortraitScaler) calculateDimensions(width, height int) (int, int) {
	if width <= p.MaxWidth && height <= p.MaxHeight {
		return width, height
	}

	scale := float64(p.MaxWidth) / float64(width)
	if hs := float64(p.MaxHeight) / float64(height); hs < scale {
		scale = hs
	}

	w := int(float64(width) * scale)
	h := int(float64(height) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
