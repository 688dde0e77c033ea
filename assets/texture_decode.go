package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"

	"raytracer/raymath"
)

// DecodeTexture decodes a PNG, JPEG or BMP stream into a Texture. This is
// the thin decode-and-hand-off helper spec §1 allows alongside the
// core's "the core consumes already-decoded RGB bitmaps" contract: the
// rest of the module only ever sees the result via NewTextureFromRGB.
// BMP support mirrors original_source/mainwindow.cpp's file-open filter
// ("Images (*.png *.jpg *.bmp)"), which the core's Qt-based predecessor
// accepted for texture maps.
func DecodeTexture(name string, r io.Reader) (*Texture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("assets: decode texture %q: %w", name, err)
	}
	_ = format

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgb := make([]byte, w*h*3)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r32, g32, b32, _ := img.At(x, y).RGBA()
			rgb[i] = byte(r32 >> 8)
			rgb[i+1] = byte(g32 >> 8)
			rgb[i+2] = byte(b32 >> 8)
			i += 3
		}
	}
	return NewTextureFromRGB(name, w, h, rgb), nil
}
