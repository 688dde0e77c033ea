package prim

import "raytracer/raymath"

// Box is an axis-aligned box, grounded on original_source/primitive.cpp's
// Box::intersect (six candidate-plane distances, epsilon-inflated
// containment check) and Box::getNormal (nearest-face selection).
type Box struct {
	Min, Max raymath.Vec3
}

func NewBox(min, max raymath.Vec3) *Box {
	return &Box{Min: min, Max: max}
}

func (b *Box) AABB() raymath.AABB { return raymath.AABB{Min: b.Min, Max: b.Max} }

func (b *Box) IntersectsBox(box raymath.AABB) bool {
	return b.AABB().Intersects(box)
}

func (b *Box) contains(p raymath.Vec3) bool {
	const e = raymath.Epsilon
	return p.X() >= b.Min.X()-e && p.X() <= b.Max.X()+e &&
		p.Y() >= b.Min.Y()-e && p.Y() <= b.Max.Y()+e &&
		p.Z() >= b.Min.Z()-e && p.Z() <= b.Max.Z()+e
}

// candidate computes the ray distance to one axis-aligned face, or a
// sentinel negative value when the ray is parallel to that axis or the
// plane lies behind the origin.
func candidate(originC, dirC, faceC float64) float64 {
	if dirC == 0 {
		return -1
	}
	return (faceC - originC) / dirC
}

func (b *Box) Intersect(ray Ray, bestT float64) (float64, Result, any) {
	if b.contains(ray.Origin) {
		faces := [6]float64{
			candidate(ray.Origin.X(), ray.Dir.X(), b.Min.X()),
			candidate(ray.Origin.X(), ray.Dir.X(), b.Max.X()),
			candidate(ray.Origin.Y(), ray.Dir.Y(), b.Min.Y()),
			candidate(ray.Origin.Y(), ray.Dir.Y(), b.Max.Y()),
			candidate(ray.Origin.Z(), ray.Dir.Z(), b.Min.Z()),
			candidate(ray.Origin.Z(), ray.Dir.Z(), b.Max.Z()),
		}
		best := bestT
		found := false
		for _, t := range faces {
			if t > raymath.Epsilon && t < best && b.contains(ray.At(t)) {
				best = t
				found = true
			}
		}
		if found {
			return best, InPrim, nil
		}
		return bestT, Miss, nil
	}

	faces := [6]float64{
		candidate(ray.Origin.X(), ray.Dir.X(), b.Min.X()),
		candidate(ray.Origin.X(), ray.Dir.X(), b.Max.X()),
		candidate(ray.Origin.Y(), ray.Dir.Y(), b.Min.Y()),
		candidate(ray.Origin.Y(), ray.Dir.Y(), b.Max.Y()),
		candidate(ray.Origin.Z(), ray.Dir.Z(), b.Min.Z()),
		candidate(ray.Origin.Z(), ray.Dir.Z(), b.Max.Z()),
	}
	best := bestT
	found := false
	for _, t := range faces {
		if t > raymath.Epsilon && t < best && b.contains(ray.At(t)) {
			best = t
			found = true
		}
	}
	if found {
		return best, Hit, nil
	}
	return bestT, Miss, nil
}

// NormalAt picks the face whose plane the point lies nearest to, as
// Box::getNormal does.
func (b *Box) NormalAt(point raymath.Vec3, _ any) raymath.Vec3 {
	best := raymath.UnitX
	bestDist := 1e300
	faces := [6]struct {
		n raymath.Vec3
		d float64
	}{
		{raymath.UnitX.Negate(), abs(point.X() - b.Min.X())},
		{raymath.UnitX, abs(point.X() - b.Max.X())},
		{raymath.UnitY.Negate(), abs(point.Y() - b.Min.Y())},
		{raymath.UnitY, abs(point.Y() - b.Max.Y())},
		{raymath.UnitZ.Negate(), abs(point.Z() - b.Min.Z())},
		{raymath.UnitZ, abs(point.Z() - b.Max.Z())},
	}
	for _, f := range faces {
		if f.d < bestDist {
			bestDist = f.d
			best = f.n
		}
	}
	return best
}

// UVAt projects onto the two axes orthogonal to the face normal, scaled
// by the box's own extent along those axes.
func (b *Box) UVAt(point raymath.Vec3, detail any) (float64, float64) {
	n := b.NormalAt(point, detail)
	dim := b.Max.Sub(b.Min)
	switch {
	case n.X() != 0:
		return (point.Y() - b.Min.Y()) / dim.Y(), (point.Z() - b.Min.Z()) / dim.Z()
	case n.Y() != 0:
		return (point.X() - b.Min.X()) / dim.X(), (point.Z() - b.Min.Z()) / dim.Z()
	default:
		return (point.X() - b.Min.X()) / dim.X(), (point.Y() - b.Min.Y()) / dim.Y()
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
