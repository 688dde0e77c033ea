package prim

import "raytracer/raymath"

// Ray is a short-lived stack value: an origin, a unit direction, and a
// monotonically increasing id (spec §3). The id counter is owned by the
// tracer; every spawned ray — primary, shadow, reflection, refraction —
// gets the next value, which is how the self-hit guard works.
type Ray struct {
	Origin raymath.Vec3
	Dir    raymath.Vec3
	ID     uint32
}

func NewRay(origin, dir raymath.Vec3, id uint32) Ray {
	return Ray{Origin: origin, Dir: dir, ID: id}
}

func (r Ray) At(t float64) raymath.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
