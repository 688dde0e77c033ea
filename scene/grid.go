package scene

import (
	"raytracer/prim"
	"raytracer/raymath"
)

// GridSize is the per-axis resolution of the uniform grid (spec §4.F):
// 32 cells per axis, addressed as x + (y<<GridShift) + (z<<2*GridShift).
const (
	GridSize  = 32
	GridShift = 5 // log2(GridSize)
)

// Grid is the dense 32^3 uniform grid from original_source/scene.cpp's
// buildGrid: each cell holds the primitives whose AABB genuinely overlaps
// it (per Primitive.IntersectsBox), not just primitives whose AABB's
// bounding cell range includes it.
type Grid struct {
	cells [GridSize * GridSize * GridSize][]*prim.Primitive

	extends raymath.AABB
	cellDim raymath.Vec3 // world-space size of one cell
	rcpCell raymath.Vec3 // 1 / cellDim, cached for DDA stepping
}

func cellIndex(x, y, z int) int {
	return x + (y << GridShift) + (z << (GridShift * 2))
}

// Build rebuilds the grid from scratch against extends, following
// buildGrid's two-phase approach: first a coarse AABB-range of candidate
// cells, then an exact per-cell Primitive.IntersectsBox test.
func (g *Grid) Build(prims []*prim.Primitive, extends raymath.AABB) {
	for i := range g.cells {
		g.cells[i] = nil
	}
	g.extends = extends
	dim := extends.Dim()
	g.cellDim = dim.Div(GridSize)
	g.rcpCell = raymath.NewVec3(GridSize, GridSize, GridSize).DivVec(dim)

	for _, p := range prims {
		box := p.AABB()
		rMin := box.Min.Sub(extends.Min).MulVec(g.rcpCell)
		rMax := box.Max.Sub(extends.Min).MulVec(g.rcpCell).Add(raymath.NewVec3(1, 1, 1))
		rMin = rMin.Max(raymath.Vec3Zero)
		rMax = rMax.Min(raymath.NewVec3(GridSize, GridSize, GridSize))

		for z := int(rMin.Z()); z < int(rMax.Z()); z++ {
			for y := int(rMin.Y()); y < int(rMax.Y()); y++ {
				for x := int(rMin.X()); x < int(rMax.X()); x++ {
					pos := extends.Min.Add(raymath.NewVec3(float64(x), float64(y), float64(z)).MulVec(g.cellDim))
					cell := raymath.AABB{Min: pos, Max: pos.Add(g.cellDim)}
					if p.IntersectsBox(cell) {
						idx := cellIndex(x, y, z)
						g.cells[idx] = append(g.cells[idx], p)
					}
				}
			}
		}
	}
}

func (g *Grid) At(x, y, z int) []*prim.Primitive {
	return g.cells[cellIndex(x, y, z)]
}

func (g *Grid) Extends() raymath.AABB { return g.extends }
func (g *Grid) CellDim() raymath.Vec3 { return g.cellDim }
func (g *Grid) RcpCell() raymath.Vec3 { return g.rcpCell }
