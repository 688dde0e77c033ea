package pixelsink

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raytracer/raymath"
)

func TestSetPixelQuantizesAndStores(t *testing.T) {
	b := NewBuffer(4, 3)
	b.SetPixel(1, 2, raymath.Color{1, 0.5, 0})

	r, g, bl := b.At(1, 2)
	assert.Equal(t, uint8(255), r)
	assert.InDelta(t, 128, int(g), 1)
	assert.Equal(t, uint8(0), bl)
}

func TestSetPixelIgnoresOutOfRange(t *testing.T) {
	b := NewBuffer(2, 2)
	assert.NotPanics(t, func() {
		b.SetPixel(-1, 0, raymath.ColorWhite)
		b.SetPixel(2, 0, raymath.ColorWhite)
		b.SetPixel(0, 2, raymath.ColorWhite)
	})
}

func TestWritePNGProducesDecodableImage(t *testing.T) {
	b := NewBuffer(3, 2)
	b.SetPixel(0, 0, raymath.Color{1, 0, 0})
	b.SetPixel(2, 1, raymath.Color{0, 1, 0})

	var buf bytes.Buffer
	require.NoError(t, b.WritePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
}
