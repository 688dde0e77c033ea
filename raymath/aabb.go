package raymath

// AABB is an axis-aligned bounding box given by two opposite corners
// (spec §3). Grounded on mod_spatialgrid.go's AABBComponent and
// voxelrt/rt/bvh/builder.go's min/max accumulation idiom.
type AABB struct {
	Min, Max Vec3
}

func EmptyAABB() AABB {
	inf := 1e300
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

func (b AABB) Grow(p Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

func (b AABB) Union(o AABB) AABB {
	return AABB{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

func (b AABB) Dim() Vec3 {
	return b.Max.Sub(b.Min)
}

func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Contains uses an epsilon-widened test (spec §4.A).
func (b AABB) Contains(p Vec3) bool {
	widenedMin := b.Min.Sub(Vec3{Epsilon, Epsilon, Epsilon})
	widenedMax := b.Max.Add(Vec3{Epsilon, Epsilon, Epsilon})
	return !p.StrictlyLess(widenedMin) && !widenedMax.StrictlyLess(p)
}

// Intersects is a strict open-interval overlap test on all three axes
// (spec §4.A).
func (b AABB) Intersects(o AABB) bool {
	for i := 0; i < 3; i++ {
		if b.Max[i] <= o.Min[i] || o.Max[i] <= b.Min[i] {
			return false
		}
	}
	return true
}

// SqrDistance returns the squared distance from p to the nearest point of
// the box (0 if p is inside); used by Sphere.intersectsBox.
func (b AABB) SqrDistance(p Vec3) float64 {
	var d float64
	for i := 0; i < 3; i++ {
		v := p[i]
		if v < b.Min[i] {
			d += (b.Min[i] - v) * (b.Min[i] - v)
		} else if v > b.Max[i] {
			d += (v - b.Max[i]) * (v - b.Max[i])
		}
	}
	return d
}

// Corners returns the 8 corners of the box, used by Plane.intersectsBox's
// signed-distance separation test.
func (b AABB) Corners() [8]Vec3 {
	return [8]Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
	}
}
