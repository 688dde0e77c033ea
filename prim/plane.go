package prim

import "raytracer/raymath"

// Plane is an infinite half-space, grounded on
// original_source/primitive.cpp's PlanePrim. Its in-plane U/V axes are
// derived unconditionally from the normal — the source has no
// largest-magnitude axis selection, despite that being a common pattern
// elsewhere in this codebase's family; see the constructor below.
type Plane struct {
	N raymath.Vec3 // unit normal
	D float64      // plane is {p : N·p + D = 0}

	uAxis, vAxis raymath.Vec3
}

// NewPlane replicates PlanePrim's constructor exactly: uAxis = (N.y, N.z,
// -N.x), vAxis = uAxis × N.
func NewPlane(n raymath.Vec3, d float64) *Plane {
	n = n.Normalize()
	uAxis := raymath.NewVec3(n.Y(), n.Z(), -n.X()).Normalize()
	vAxis := uAxis.Cross(n).Normalize()
	return &Plane{N: n, D: d, uAxis: uAxis, vAxis: vAxis}
}

// AABB is unbounded; a plane only ever participates in grid traversal via
// IntersectsBox, so its header AABB is the universe sentinel.
func (p *Plane) AABB() raymath.AABB {
	const huge = 1e300
	inf := raymath.NewVec3(huge, huge, huge)
	return raymath.AABB{Min: inf.Negate(), Max: inf}
}

func (p *Plane) Intersect(ray Ray, bestT float64) (float64, Result, any) {
	d := p.N.Dot(ray.Dir)
	if d >= 0 {
		return bestT, Miss, nil
	}
	t := -(p.N.Dot(ray.Origin) + p.D) / d
	if t > raymath.Epsilon && t < bestT {
		return t, Hit, nil
	}
	return bestT, Miss, nil
}

// IntersectsBox is the 8-corner signed-distance separation test: the box
// overlaps the plane iff its corners' signed distances are not all the
// same sign.
func (p *Plane) IntersectsBox(box raymath.AABB) bool {
	corners := box.Corners()
	neg, pos := false, false
	for _, c := range corners {
		d := p.N.Dot(c) + p.D
		if d < 0 {
			neg = true
		} else if d > 0 {
			pos = true
		} else {
			return true
		}
	}
	return neg && pos
}

func (p *Plane) NormalAt(raymath.Vec3, any) raymath.Vec3 { return p.N }

func (p *Plane) UVAt(point raymath.Vec3, _ any) (float64, float64) {
	return point.Dot(p.uAxis), point.Dot(p.vAxis)
}
