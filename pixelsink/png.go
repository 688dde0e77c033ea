package pixelsink

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// pngImage implements image.Image over Buffer's packed RGB bytes without a
// copy, so WritePNG can hand it straight to the standard library's
// encoder. PNG container encoding is outside this module's domain scope
// (spec's Non-goals exclude raster image formats) and every other example
// repo in the pack reaches for the same stdlib package for it, so this is
// the one place pixelsink uses image/png directly rather than a
// third-party codec.
type pngImage struct{ *Buffer }

func (i pngImage) ColorModel() color.Model { return color.RGBAModel }
func (i pngImage) Bounds() image.Rectangle { return image.Rect(0, 0, i.Width, i.Height) }
func (i pngImage) At(x, y int) color.Color {
	r, g, b := i.Buffer.At(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// WritePNG encodes b and writes it to w.
func (b *Buffer) WritePNG(w io.Writer) error {
	if err := png.Encode(w, pngImage{b}); err != nil {
		return fmt.Errorf("pixelsink: encode png: %w", err)
	}
	return nil
}

// PNGSink wraps a Buffer as the render target for a headless run and
// flushes the finished frame to a .png file (spec §6's PixelSink contract).
type PNGSink struct {
	*Buffer
	Path string
}

// NewPNGSink allocates a Buffer of the given resolution that will be
// written to path once the render completes.
func NewPNGSink(width, height int, path string) *PNGSink {
	return &PNGSink{Buffer: NewBuffer(width, height), Path: path}
}

// Flush encodes the accumulated frame and writes it to Path.
func (s *PNGSink) Flush() error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("pixelsink: create %q: %w", s.Path, err)
	}
	defer f.Close()
	return s.Buffer.WritePNG(f)
}
