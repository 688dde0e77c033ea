// Package pixelsink provides FrameSink implementations that collect the
// Engine's per-pixel output: an in-memory RGB Buffer for headless/batch
// rendering, and a PNG encoder for writing a finished frame to disk (spec
// §6's render target). Grounded on Gekko3D-gekko's render-target/texture
// upload path, generalized from a GPU texture buffer to a plain CPU byte
// slice since this module has no GPU backend of its own.
package pixelsink

import "raytracer/raymath"

// Buffer is a tightly packed 8-bit RGB pixel buffer implementing
// tracer.FrameSink. It does not import the tracer package itself so that
// command packages can wire it to the engine without a dependency cycle.
type Buffer struct {
	Width, Height int
	Pix           []byte // len == Width*Height*3, row-major, origin top-left
}

// NewBuffer allocates a zeroed (black) buffer for the given resolution.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// SetPixel quantizes c and stores it at (x,y); out-of-range coordinates are
// silently ignored, since a caller's adaptive-supersampling neighbor probe
// can legitimately land just off the edge of the frame.
func (b *Buffer) SetPixel(x, y int, c raymath.Color) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	r, g, bl := c.Quantize()
	i := (y*b.Width + x) * 3
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
}

// At returns the stored color of pixel (x,y) as 8-bit channels.
func (b *Buffer) At(x, y int) (r, g, bl uint8) {
	i := (y*b.Width + x) * 3
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}
