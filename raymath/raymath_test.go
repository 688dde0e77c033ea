package raymath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	require.InDelta(t, 1.0, n.Length(), 1e-6)
}

func TestCrossIsPerpendicular(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	c := a.Cross(b)
	assert.InDelta(t, 0.0, c.Dot(a), 1e-9)
	assert.InDelta(t, 0.0, c.Dot(b), 1e-9)
	assert.Equal(t, Vec3{0, 0, 1}, c)
}

func TestMatrixIdentity(t *testing.T) {
	m := Identity4()
	p := Vec3{5, -2, 9}
	assert.Equal(t, p, m.TransformPoint(p))
}

func TestMatrixConcatAssociative(t *testing.T) {
	a := Translation4(Vec3{1, 0, 0})
	b := Translation4(Vec3{0, 2, 0})
	v := Vec3{1, 1, 1}

	left := a.Concat(b).TransformPoint(v)
	right := a.TransformPoint(b.TransformPoint(v))
	assert.InDelta(t, left.X(), right.X(), 1e-9)
	assert.InDelta(t, left.Y(), right.Y(), 1e-9)
	assert.InDelta(t, left.Z(), right.Z(), 1e-9)
}

func TestAABBContainsWidened(t *testing.T) {
	b := AABB{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
	assert.True(t, b.Contains(Vec3{1 + Epsilon/2, 0.5, 0.5}))
	assert.False(t, b.Contains(Vec3{2, 0.5, 0.5}))
}

func TestAABBIntersectsStrict(t *testing.T) {
	a := AABB{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
	touching := AABB{Min: Vec3{1, 0, 0}, Max: Vec3{2, 1, 1}}
	overlapping := AABB{Min: Vec3{0.5, 0, 0}, Max: Vec3{2, 1, 1}}
	assert.False(t, a.Intersects(touching), "edge-touching boxes must not count as intersecting")
	assert.True(t, a.Intersects(overlapping))
}

func TestColorQuantizeClampsAndRounds(t *testing.T) {
	c := Color{1.2, -0.3, 0.5}.Clamp01()
	r, g, b := c.Quantize()
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(0), g)
	assert.Equal(t, uint8(128), b)
}

func TestVec3LengthSqrMatchesLength(t *testing.T) {
	v := Vec3{2, 3, 6}
	assert.InDelta(t, math.Sqrt(v.LengthSqr()), v.Length(), 1e-9)
}
