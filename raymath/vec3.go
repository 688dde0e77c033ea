// Package raymath is the math core: vectors, colors, matrices, planes and
// AABBs shared by every other package in the ray tracer.
package raymath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a 3-component vector. Its underlying layout matches
// github.com/go-gl/mathgl/mgl64.Vec3 so conversions between the two are
// free; arithmetic is delegated to mgl64 rather than hand-rolled.
type Vec3 [3]float64

func NewVec3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

var (
	Vec3Zero  = Vec3{0, 0, 0}
	Vec3One   = Vec3{1, 1, 1}
	UnitX     = Vec3{1, 0, 0}
	UnitY     = Vec3{0, 1, 0}
	UnitZ     = Vec3{0, 0, 1}
)

func (v Vec3) mgl() mgl64.Vec3 { return mgl64.Vec3(v) }

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3(v.mgl().Add(o.mgl())) }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3(v.mgl().Sub(o.mgl())) }
func (v Vec3) Mul(s float64) Vec3 { return Vec3(v.mgl().Mul(s)) }
func (v Vec3) Div(s float64) Vec3 { return v.Mul(1.0 / s) }
func (v Vec3) Negate() Vec3 { return v.Mul(-1) }

// MulVec is the component-wise (Hadamard) product, used throughout the
// shader for modulating a light color by a surface color.
func (v Vec3) MulVec(o Vec3) Vec3 {
	return Vec3{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

// DivVec is the component-wise quotient, used to convert a world-space
// offset into fractional grid-cell coordinates.
func (v Vec3) DivVec(o Vec3) Vec3 {
	return Vec3{v[0] / o[0], v[1] / o[1], v[2] / o[2]}
}

func (v Vec3) Dot(o Vec3) float64   { return v.mgl().Dot(o.mgl()) }
func (v Vec3) Cross(o Vec3) Vec3    { return Vec3(v.mgl().Cross(o.mgl())) }
func (v Vec3) Length() float64      { return v.mgl().Len() }
func (v Vec3) LengthSqr() float64   { return v.Dot(v) }

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{math.Min(v[0], o[0]), math.Min(v[1], o[1]), math.Min(v[2], o[2])}
}

func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{math.Max(v[0], o[0]), math.Max(v[1], o[1]), math.Max(v[2], o[2])}
}

func (v Vec3) Abs() Vec3 {
	return Vec3{math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])}
}

// StrictlyLess is the lexicographic "strictly less than any scalar" test
// used only by AABB containment (spec §3): true iff any component of v is
// strictly less than the corresponding component of o.
func (v Vec3) StrictlyLess(o Vec3) bool {
	return v[0] < o[0] || v[1] < o[1] || v[2] < o[2]
}

// Component returns the i-th scalar (0=X, 1=Y, 2=Z), used by code that
// picks an axis dynamically (major-axis projection, DDA stepping).
func (v Vec3) Component(i int) float64 { return v[i] }

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
