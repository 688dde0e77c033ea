// Package prim implements the primitive intersection kernels (spec §4.D):
// sphere, plane, axis-aligned box and triangle, each behind the capability
// set {Intersect, IntersectsBox, NormalAt, UVAt} that spec §9's design note
// calls for. A Go interface gives that capability set naturally — no
// separate tag-switch is needed the way spec §9 suggests for a language
// without virtual dispatch, since a Primitive already carries the shared
// header (AABB, name, material, isLight, lastRayId) alongside a Shape.
package prim

import (
	"raytracer/assets"
	"raytracer/raymath"
)

// Result is the outcome of an intersection test (spec §4.D).
type Result int

const (
	Miss Result = iota
	Hit
	InPrim
)

// Shape is the per-kind geometry: exactly the capability set spec §9
// prescribes. Detail is an opaque per-kind payload threaded from Intersect
// through to NormalAt/UVAt (for a Triangle, its cached barycentrics) —
// spec §9's fix for the source's single-threaded barycentrics hazard: the
// value lives on the caller's stack (inside a Hit), never on the shape.
type Shape interface {
	Intersect(ray Ray, bestT float64) (newBestT float64, result Result, detail any)
	IntersectsBox(box raymath.AABB) bool
	AABB() raymath.AABB
	NormalAt(point raymath.Vec3, detail any) raymath.Vec3
	UVAt(point raymath.Vec3, detail any) (u, v float64)
}

// Primitive is the shared header spec §3 describes, wrapping one Shape.
type Primitive struct {
	Name         string
	MaterialName string
	IsLight      bool
	Shape        Shape

	// lastRayID/hasLastRay is the mutable scratch the self-hit guard reads
	// (spec §3, §4.G.1). Advisory only: safe to go stale across a
	// suspended render (spec §5).
	lastRayID  uint32
	hasLastRay bool
}

func NewPrimitive(name, materialName string, shape Shape) *Primitive {
	return &Primitive{Name: name, MaterialName: materialName, Shape: shape}
}

func (p *Primitive) AABB() raymath.AABB { return p.Shape.AABB() }

func (p *Primitive) IntersectsBox(box raymath.AABB) bool { return p.Shape.IntersectsBox(box) }

// Hit is the stack-local result of a successful Intersect: the spec §9
// replacement for the source's primitive-owned scratch state.
type Hit struct {
	Prim   *Primitive
	T      float64
	Result Result
	Detail any
}

// Intersect records ray.ID on the primitive (for the self-hit guard) and
// returns the updated best distance plus a Hit describing the strike, or
// ok=false on a miss (bestT is then unchanged).
func (p *Primitive) Intersect(ray Ray, bestT float64) (float64, Hit, bool) {
	newBestT, result, detail := p.Shape.Intersect(ray, bestT)
	if result == Miss {
		return bestT, Hit{}, false
	}
	p.lastRayID = ray.ID
	p.hasLastRay = true
	return newBestT, Hit{Prim: p, T: newBestT, Result: result, Detail: detail}, true
}

// LastRayMatches is the self-hit guard's read side (spec §4.G.1): true iff
// this primitive's most recent recorded ray id equals id.
func (p *Primitive) LastRayMatches(id uint32) bool {
	return p.hasLastRay && p.lastRayID == id
}

// MarkRay tags p with id without requiring an Intersect call. The shader
// calls this on the surface a bounced ray is spawned from, right before
// firing that ray, so findNearest's self-hit guard — (lastRayId, sourcePrim)
// — can recognize and skip the originating surface for that one ray id
// (spec §4.G.1, §3). Not used for a refracting primitive's transmitted
// ray: that ray must still be able to strike p's own far surface to exit
// a closed solid, so shadeRefraction leaves p untagged and relies solely
// on the ε-offset origin instead.
func (p *Primitive) MarkRay(id uint32) {
	p.lastRayID = id
	p.hasLastRay = true
}

func (p *Primitive) NormalAt(point raymath.Vec3, detail any) raymath.Vec3 {
	return p.Shape.NormalAt(point, detail)
}

// Color returns the diffuse color at point, modulated by a texture sample
// scaled by the material's U/V scale when the material is textured
// (spec §4.D).
func (p *Primitive) Color(point raymath.Vec3, detail any, mat *assets.Material) raymath.Color {
	if !mat.IsTextured() || mat.Texture() == nil {
		return mat.Diffuse()
	}
	u, v := p.Shape.UVAt(point, detail)
	us, vs := mat.UVScale()
	return mat.Texture().Texel(u*us, v*vs).MulColor(mat.Diffuse())
}

// Vertex is owned by the Scene's vertex pool and referenced by Triangles
// (spec §3).
type Vertex struct {
	Position raymath.Vec3
	Normal   raymath.Vec3
	U, V     float64
}
