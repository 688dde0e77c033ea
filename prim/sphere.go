package prim

import (
	"math"

	"raytracer/raymath"
)

// Sphere is solved in the sphere's own eye space, grounded on
// original_source/primitive.cpp's Sphere::intersect.
type Sphere struct {
	Center raymath.Vec3
	Radius float64
	box    raymath.AABB
}

func NewSphere(center raymath.Vec3, radius float64) *Sphere {
	r := raymath.Vec3{radius, radius, radius}
	return &Sphere{
		Center: center,
		Radius: radius,
		box:    raymath.AABB{Min: center.Sub(r), Max: center.Add(r)},
	}
}

func (s *Sphere) AABB() raymath.AABB { return s.box }

func (s *Sphere) Intersect(ray Ray, bestT float64) (float64, Result, any) {
	v := s.Center.Sub(ray.Origin)
	b := v.Dot(ray.Dir)
	det := s.Radius*s.Radius - (v.Dot(v) - b*b)
	if det <= 0 {
		return bestT, Miss, nil
	}
	sq := math.Sqrt(det)
	i1 := b - sq
	i2 := b + sq
	if i2 <= 0 {
		return bestT, Miss, nil
	}
	if i1 < 0 {
		if i2 < bestT {
			return i2, InPrim, nil
		}
		return bestT, Miss, nil
	}
	if i1 < bestT {
		return i1, Hit, nil
	}
	return bestT, Miss, nil
}

// IntersectsBox is the squared-distance-to-box vs r^2 test (spec §4.D).
func (s *Sphere) IntersectsBox(box raymath.AABB) bool {
	return box.SqrDistance(s.Center) <= s.Radius*s.Radius
}

func (s *Sphere) NormalAt(point raymath.Vec3, _ any) raymath.Vec3 {
	return point.Sub(s.Center).Normalize()
}

// UVAt is the spherical (theta,phi) parameterization with UNIT_Y as the
// polar axis; u folds on the sign of the normal's Z component, grounded on
// original_source/primitive.cpp's Sphere::getTextureCoord.
func (s *Sphere) UVAt(point raymath.Vec3, _ any) (float64, float64) {
	vp := point.Sub(s.Center).Div(s.Radius)
	phi := math.Acos(raymath.Clamp(vp.Dot(raymath.UnitY), -1, 1))
	v := phi / math.Pi
	theta := 0.0
	if sinPhi := math.Sin(phi); sinPhi != 0 {
		theta = math.Acos(raymath.Clamp(vp.Dot(raymath.UnitX)/sinPhi, -1, 1)) * 0.5 / math.Pi
	}
	u := theta
	if vp.Dot(raymath.UnitZ) >= 0 {
		u = 1 - theta
	}
	return u, v
}
