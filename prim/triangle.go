package prim

import "raytracer/raymath"

// modulo3 mirrors original_source/primitive.cpp's MODULO3 lookup table,
// used to walk "next axis" without a branch: modulo3[i] == i%3 for i in
// 0..4, so modulo3[axis+1] and modulo3[axis+2] are the two axes after axis
// without a modulo operation.
var modulo3 = [5]int{0, 1, 2, 0, 1}

// triDetail carries the barycentric coordinates computed during Intersect
// through to NormalAt/UVAt — the spec §9 replacement for the source's
// per-primitive mutable scratch.
type triDetail struct {
	beta, gamma float64
}

// Triangle is grounded on original_source/primitive.cpp's TrianglePrim: a
// dominant-axis 2-D projection for the ray/plane intersection, and the
// full 13-axis Separating Axis Theorem for IntersectsBox. The source's
// version of the box test has a dead inner loop (for(i=0;i<0;++i)) that
// always leaves the edge-axis projection radius at zero; this
// implementation computes that radius for real.
type Triangle struct {
	V0, V1, V2 Vertex

	normal    raymath.Vec3
	majorAxis int // 0=X, 1=Y, 2=Z: axis dropped for the 2-D projection
	u1, v1    float64
	u2, v2    float64
	bx        float64 // projected edge-1/edge-2 determinant, divided through for beta/gamma
	box       raymath.AABB
}

func NewTriangle(v0, v1, v2 Vertex) *Triangle {
	e1 := v1.Position.Sub(v0.Position)
	e2 := v2.Position.Sub(v0.Position)
	n := e1.Cross(e2)

	major := 0
	if abs(n.Y()) > abs(n.Component(major)) {
		major = 1
	}
	if abs(n.Z()) > abs(n.Component(major)) {
		major = 2
	}
	u := modulo3[major+1]
	v := modulo3[major+2]

	t := &Triangle{
		V0: v0, V1: v1, V2: v2,
		normal:    n.Normalize(),
		majorAxis: major,
		u1:        e1.Component(u), v1: e1.Component(v),
		u2: e2.Component(u), v2: e2.Component(v),
	}
	t.bx = t.u1*t.v2 - t.v1*t.u2

	box := raymath.EmptyAABB()
	box = box.Grow(v0.Position)
	box = box.Grow(v1.Position)
	box = box.Grow(v2.Position)
	t.box = box
	return t
}

func (t *Triangle) AABB() raymath.AABB { return t.box }

func (t *Triangle) Intersect(ray Ray, bestT float64) (float64, Result, any) {
	nd := t.normal.Dot(ray.Dir)
	if nd == 0 {
		return bestT, Miss, nil
	}
	d := -t.normal.Dot(t.V0.Position)
	dist := -(t.normal.Dot(ray.Origin) + d) / nd
	if dist <= raymath.Epsilon || dist >= bestT {
		return bestT, Miss, nil
	}

	hit := ray.At(dist)
	u := modulo3[t.majorAxis+1]
	v := modulo3[t.majorAxis+2]
	pu := hit.Component(u) - t.V0.Position.Component(u)
	pv := hit.Component(v) - t.V0.Position.Component(v)

	if t.bx == 0 {
		return bestT, Miss, nil
	}
	beta := (pu*t.v2 - pv*t.u2) / t.bx
	if beta < 0 {
		return bestT, Miss, nil
	}
	gamma := (t.u1*pv - t.v1*pu) / t.bx
	if gamma < 0 || beta+gamma > 1 {
		return bestT, Miss, nil
	}
	return dist, Hit, triDetail{beta: beta, gamma: gamma}
}

func (t *Triangle) NormalAt(_ raymath.Vec3, detail any) raymath.Vec3 {
	d, ok := detail.(triDetail)
	if !ok {
		return t.normal
	}
	alpha := 1 - d.beta - d.gamma
	n := t.V0.Normal.Mul(alpha).Add(t.V1.Normal.Mul(d.beta)).Add(t.V2.Normal.Mul(d.gamma))
	return n.Normalize()
}

func (t *Triangle) UVAt(_ raymath.Vec3, detail any) (float64, float64) {
	d, ok := detail.(triDetail)
	if !ok {
		return 0, 0
	}
	alpha := 1 - d.beta - d.gamma
	u := alpha*t.V0.U + d.beta*t.V1.U + d.gamma*t.V2.U
	v := alpha*t.V0.V + d.beta*t.V1.V + d.gamma*t.V2.V
	return u, v
}

// IntersectsBox is the full 13-axis SAT: the triangle's own face normal,
// the 3 box face normals, and the 9 cross products of each triangle edge
// with each box axis. For the 9 edge-cross axes, the projection radius
// d2r must be computed from the axis and the box half-dimensions — the
// source's dead for(i=0;i<0;++i) loop always left this at zero, which
// made every edge-axis test vacuously pass.
func (t *Triangle) IntersectsBox(box raymath.AABB) bool {
	center := box.Center()
	half := box.Dim().Mul(0.5)

	v0 := t.V0.Position.Sub(center)
	v1 := t.V1.Position.Sub(center)
	v2 := t.V2.Position.Sub(center)

	// Face normal of the box (3 axes) and of the triangle (1 axis).
	if !overlapsOnAxis(raymath.UnitX, v0, v1, v2, half) {
		return false
	}
	if !overlapsOnAxis(raymath.UnitY, v0, v1, v2, half) {
		return false
	}
	if !overlapsOnAxis(raymath.UnitZ, v0, v1, v2, half) {
		return false
	}
	if !overlapsOnAxis(t.normal, v0, v1, v2, half) {
		return false
	}

	edges := [3]raymath.Vec3{
		t.V1.Position.Sub(t.V0.Position),
		t.V2.Position.Sub(t.V1.Position),
		t.V0.Position.Sub(t.V2.Position),
	}
	boxAxes := [3]raymath.Vec3{raymath.UnitX, raymath.UnitY, raymath.UnitZ}

	for _, e := range edges {
		for _, a := range boxAxes {
			axis := e.Cross(a)
			if axis.LengthSqr() < raymath.Epsilon {
				continue
			}
			if !overlapsOnAxis(axis, v0, v1, v2, half) {
				return false
			}
		}
	}
	return true
}

// overlapsOnAxis projects the triangle's three (already box-centered)
// vertices and the box half-extents onto axis and checks for separation.
func overlapsOnAxis(axis, v0, v1, v2, half raymath.Vec3) bool {
	p0 := axis.Dot(v0)
	p1 := axis.Dot(v1)
	p2 := axis.Dot(v2)
	triMin, triMax := p0, p0
	if p1 < triMin {
		triMin = p1
	}
	if p1 > triMax {
		triMax = p1
	}
	if p2 < triMin {
		triMin = p2
	}
	if p2 > triMax {
		triMax = p2
	}

	d2r := abs(axis.X())*half.X() + abs(axis.Y())*half.Y() + abs(axis.Z())*half.Z()
	return !(triMin > d2r || triMax < -d2r)
}
