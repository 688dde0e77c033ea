package scene

import (
	"raytracer/assets"
	"raytracer/prim"
	"raytracer/raymath"
	"raytracer/rtlog"
)

// Scene owns the primitive list, the light list, the shared vertex pool
// mesh loaders append to, and the uniform grid built from them. It is
// populated before a render starts and is read-only for the duration of a
// render pass (spec §5).
type Scene struct {
	Assets *assets.Registry

	primitives []*prim.Primitive
	lights     []*Light
	vertices   []prim.Vertex

	extends raymath.AABB
	grid    Grid

	log rtlog.Logger
}

func New(assetRegistry *assets.Registry, log rtlog.Logger) *Scene {
	if log == nil {
		log = rtlog.Nop
	}
	if assetRegistry == nil {
		assetRegistry = assets.NewRegistry(log)
	}
	return &Scene{Assets: assetRegistry, log: log}
}

func (s *Scene) AddPrimitive(p *prim.Primitive) { s.primitives = append(s.primitives, p) }
func (s *Scene) AddLight(l *Light)               { s.lights = append(s.lights, l) }


// AppendVertices stages vertices in the shared pool and returns the
// pool's sub-slice holding them, a thin stand-in for the source's
// heap-allocated Vertex* pointers (spec §3). The sub-slice aliases the pool
// only until a later append grows it; a mesh loader builds a Triangle
// directly from the returned Vertex values instead of indexing back into
// the pool.
func (s *Scene) AppendVertices(vs ...prim.Vertex) []prim.Vertex {
	start := len(s.vertices)
	s.vertices = append(s.vertices, vs...)
	return s.vertices[start:]
}

// VertexPool exposes the shared vertex backing store a mesh loader
// appended to, primarily useful for tests that need to inspect
// loader-generated normals/UVs directly.
func (s *Scene) VertexPool() []prim.Vertex      { return s.vertices }
func (s *Scene) Primitives() []*prim.Primitive { return s.primitives }
func (s *Scene) Lights() []*Light               { return s.lights }
func (s *Scene) Extends() raymath.AABB          { return s.extends }
func (s *Scene) Grid() *Grid                    { return &s.grid }

// SetExtends overrides the scene bounding box the grid is built against.
// original_source/scene.cpp's updateExtends hardcodes a scene-specific box
// when no mesh loader has run; callers here must supply one explicitly
// since this package carries no baked-in demo scene.
func (s *Scene) SetExtends(box raymath.AABB) { s.extends = box }

// Material resolves a primitive's named material through the scene's
// registry, falling back to the default material (spec §4.C).
func (s *Scene) Material(p *prim.Primitive) *assets.Material {
	return s.Assets.Material(p.MaterialName)
}

// BuildGrid (re)populates the uniform grid from the current primitive
// list and extends (spec §4.F). Must run before a render pass starts, and
// must not run concurrently with one (spec §5).
func (s *Scene) BuildGrid() {
	s.grid.Build(s.primitives, s.extends)
	s.log.Debugf("built grid: %d primitives, %d lights", len(s.primitives), len(s.lights))
}
