package assets

import (
	"math"

	"raytracer/raymath"
)

// Texture is a 2-D array of Colors (spec §3). The core never decodes image
// files itself (spec §1 non-goal); NewTextureFromRGB is the hand-off point
// from an already-decoded bitmap.
type Texture struct {
	Name          string
	Width, Height int
	texels        []raymath.Color
}

func NewTexture(name string, width, height int) *Texture {
	return &Texture{
		Name:   name,
		Width:  width,
		Height: height,
		texels: make([]raymath.Color, width*height),
	}
}

// NewTextureFromRGB builds a Texture from a row-major, top-left-origin RGB
// byte buffer (3 bytes/pixel) — the shape an external image decoder hands
// off (spec §1, §6).
func NewTextureFromRGB(name string, width, height int, rgb []byte) *Texture {
	t := NewTexture(name, width, height)
	for i := 0; i < width*height && i*3+2 < len(rgb); i++ {
		t.texels[i] = raymath.Color{
			float64(rgb[i*3]) / 255.0,
			float64(rgb[i*3+1]) / 255.0,
			float64(rgb[i*3+2]) / 255.0,
		}
	}
	return t
}

func (t *Texture) Set(x, y int, c raymath.Color) {
	t.texels[y*t.Width+x] = c
}

func (t *Texture) at(x, y int) raymath.Color {
	x = ((x % t.Width) + t.Width) % t.Width
	y = ((y % t.Height) + t.Height) % t.Height
	return t.texels[y*t.Width+x]
}

// fold wraps x into [0,1) via fmod with negative-to-positive correction
// (spec §4.C).
func fold(x float64) float64 {
	f := math.Mod(x, 1.0)
	if f < 0 {
		f += 1.0
	}
	return f
}

// Texel returns a bilinear sample at (u,v), wrapping both into [0,1) and
// flipping v (v -> 1-v) before sampling, per spec §3/§4.C.
func (t *Texture) Texel(u, v float64) raymath.Color {
	u = fold(u)
	v = fold(1 - v)

	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := t.at(x0, y0)
	c10 := t.at(x0+1, y0)
	c01 := t.at(x0, y0+1)
	c11 := t.at(x0+1, y0+1)

	top := c00.Mul(1 - tx).Add(c10.Mul(tx))
	bottom := c01.Mul(1 - tx).Add(c11.Mul(tx))
	return top.Mul(1 - ty).Add(bottom.Mul(ty))
}

// NewCheckerTexture builds an n x n checkerboard of two colors, grounded on
// textures/texture.go's CreateCheckerTexture.
func NewCheckerTexture(name string, size int, a, b raymath.Color) *Texture {
	t := NewTexture(name, size, size)
	block := size / 8
	if block < 1 {
		block = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if ((x/block)+(y/block))%2 != 0 {
				c = b
			}
			t.Set(x, y, c)
		}
	}
	return t
}

// NewSolidTexture builds a 1x1 texture of a single color, grounded on
// textures/texture.go's CreateSolidColorTexture.
func NewSolidTexture(name string, c raymath.Color) *Texture {
	t := NewTexture(name, 1, 1)
	t.Set(0, 0, c)
	return t
}
