package raymath

// Color is a red/green/blue triple. It shares Vec3's arithmetic by
// converting through it rather than duplicating the mgl64 plumbing.
type Color Vec3

func NewColor(r, g, b float64) Color { return Color{r, g, b} }

var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{1, 1, 1}
	// DefaultColor is the contribution added when a ray strikes a light
	// primitive directly (spec §4.G.2 step 2).
	DefaultColor = Color{1, 1, 1}
)

func (c Color) R() float64 { return c[0] }
func (c Color) G() float64 { return c[1] }
func (c Color) B() float64 { return c[2] }

func (c Color) vec() Vec3 { return Vec3(c) }

func (c Color) Add(o Color) Color      { return Color(c.vec().Add(Vec3(o))) }
func (c Color) Sub(o Color) Color      { return Color(c.vec().Sub(Vec3(o))) }
func (c Color) Mul(s float64) Color    { return Color(c.vec().Mul(s)) }
func (c Color) MulColor(o Color) Color { return Color(c.vec().MulVec(Vec3(o))) }
func (c Color) LengthSqr() float64     { return c.vec().LengthSqr() }

// Clamp01 clamps each channel into [0,1].
func (c Color) Clamp01() Color {
	return Color{Clamp(c[0], 0, 1), Clamp(c[1], 0, 1), Clamp(c[2], 0, 1)}
}

// Quantize converts a clamped color to 8-bit RGB per spec §4.G.4 step 4:
// round(clamp(color*255, 0, 255)).
func (c Color) Quantize() (r, g, b uint8) {
	q := func(x float64) uint8 {
		v := Clamp(x*255.0+0.5, 0, 255)
		return uint8(v)
	}
	return q(c[0]), q(c[1]), q(c[2])
}
