// Package tracer is the ray tracing engine (spec §4.G): grid traversal,
// the recursive Phong/reflection/refraction shader, area-light soft
// shadows and the cooperative, time-sliced pixel loop, grounded on
// original_source/raytracer.cpp's Engine class.
package tracer

import (
	"time"

	"raytracer/camera"
	"raytracer/prim"
	"raytracer/raymath"
	"raytracer/rng"
	"raytracer/rtlog"
	"raytracer/scene"
)

// MaxTraceDepth is the hard ceiling on recursive reflection/refraction
// depth (spec §4.G), matching RT_TRACEDEPTH.
const MaxTraceDepth = 6

const farDistance = 1_000_000.0

// FrameSink receives one final pixel color per call; a render target
// (spec §6) implements this without the tracer needing to know about
// image encoding.
type FrameSink interface {
	SetPixel(x, y int, c raymath.Color)
}

// Engine renders one Scene through one Camera onto a FrameSink, one
// cooperative time slice at a time (spec §5).
type Engine struct {
	Scene  *scene.Scene
	Camera *camera.Camera
	Rng    *rng.Twister
	Sink   FrameSink

	TraceDepth        int
	RegularSampleSize int
	MaxRenderTime     time.Duration

	log rtlog.Logger

	width, height int
	ratio         float64
	dx, dy        float64
	curLine       int
	curRayID      uint32

	sampleScale, sampleScale2 float64
	lastLinePrims             []*prim.Primitive

	created bool
}

func NewEngine(sc *scene.Scene, log rtlog.Logger) *Engine {
	if log == nil {
		log = rtlog.Nop
	}
	return &Engine{
		Scene:             sc,
		Camera:            camera.New(),
		Rng:               rng.New(0),
		TraceDepth:        4,
		RegularSampleSize: 3,
		MaxRenderTime:     100 * time.Millisecond,
		log:               log,
	}
}

// Config holds the user-tunable render parameters a driver (cmd/rtrace,
// cmd/rtview) loads from a scene description (spec §6). Clamped validates
// it so the Engine never has to guard against caller-supplied garbage.
type Config struct {
	TraceDepth        int
	RegularSampleSize int
	RenderBudget      time.Duration
}

// Clamped returns c with every field pulled into its documented valid
// range: TraceDepth in [1, MaxTraceDepth], RegularSampleSize >= 1,
// RenderBudget > 0.
func (c Config) Clamped() Config {
	if c.TraceDepth < 1 {
		c.TraceDepth = 1
	}
	if c.TraceDepth > MaxTraceDepth {
		c.TraceDepth = MaxTraceDepth
	}
	if c.RegularSampleSize < 1 {
		c.RegularSampleSize = 1
	}
	if c.RenderBudget <= 0 {
		c.RenderBudget = 100 * time.Millisecond
	}
	return c
}

// NewEngineWithConfig is NewEngine with cfg's (clamped) values applied.
func NewEngineWithConfig(sc *scene.Scene, log rtlog.Logger, cfg Config) *Engine {
	e := NewEngine(sc, log)
	cfg = cfg.Clamped()
	e.TraceDepth = cfg.TraceDepth
	e.RegularSampleSize = cfg.RegularSampleSize
	e.MaxRenderTime = cfg.RenderBudget
	return e
}

// SetRenderTarget fixes the output resolution and destination; Render is a
// no-op until this has been called (spec §4.G).
func (e *Engine) SetRenderTarget(width, height int, sink FrameSink) {
	e.width = width
	e.height = height
	e.ratio = float64(width) / float64(height)
	e.Sink = sink
	e.created = true
}

// InitEngine points the camera at the scene and resets the scanline
// cursor and ray-id counter (spec §4.G); must run after the scene's grid
// has been built.
func (e *Engine) InitEngine(eyePos, target raymath.Vec3) {
	if !e.created {
		return
	}
	e.curLine = 0
	e.Camera.LookAt(eyePos, target, raymath.UnitY)
	e.Camera.Frustum(-e.ratio, e.ratio, -1, 1, 1)

	e.curRayID = 0

	e.dx = 1.0 / float64(e.width)
	e.dy = 1.0 / float64(e.height)

	if e.RegularSampleSize < 1 {
		e.RegularSampleSize = 1
	}
	e.sampleScale = 1.0 / float64(e.RegularSampleSize)
	e.sampleScale2 = e.sampleScale * e.sampleScale

	e.lastLinePrims = make([]*prim.Primitive, e.width)
}

func (e *Engine) nextRayID() uint32 {
	e.curRayID++
	return e.curRayID
}

// inRangeExclusive reports whether every component of v lies strictly
// inside (0, hi).
func inRangeExclusive(v raymath.Vec3, hi float64) bool {
	return v.X() > 0 && v.Y() > 0 && v.Z() > 0 &&
		v.X() < hi && v.Y() < hi && v.Z() < hi
}

// findNearest is the 3-D DDA grid traversal (spec §4.F/§4.G): it walks
// grid cells along ray in increasing-distance order, testing every
// primitive registered in each cell, and stops as soon as a hit is closer
// than the next cell boundary. source is the primitive this ray was
// spawned from (nil for primary rays); when the shader has tagged source
// with this ray's id via MarkRay before firing it (shadow rays, mirror
// reflection), the guard skips source for this entire traversal. A
// refracting primitive's transmitted ray is deliberately never tagged
// this way (see shadeRefraction), so it can still strike its own far
// surface and exit — only the ε-offset origin protects it from an
// immediate self-hit at the entry point, same as
// original_source/raytracer.cpp.
func (e *Engine) findNearest(ray prim.Ray, source *prim.Primitive) (prim.Hit, bool) {
	grid := e.Scene.Grid()
	rcp := grid.RcpCell()
	cellDim := grid.CellDim()
	extends := grid.Extends()

	curCell := ray.Origin.Sub(extends.Min).MulVec(rcp)
	if !inRangeExclusive(curCell, scene.GridSize) {
		return prim.Hit{}, false
	}

	var step, outOf, delta, vMax [3]float64
	cell := [3]int{}
	for i := 0; i < 3; i++ {
		d := ray.Dir.Component(i)
		c := curCell.Component(i)
		switch {
		case d > 0:
			step[i] = 1
			outOf[i] = scene.GridSize
			delta[i] = cellDim.Component(i) / d
			vMax[i] = (float64(int(c)) + 1 - c) * delta[i]
		case d < 0:
			step[i] = -1
			outOf[i] = -1
			delta[i] = -cellDim.Component(i) / d
			vMax[i] = (c - float64(int(c))) * delta[i]
		default:
			step[i] = 0
			outOf[i] = 0
			delta[i] = 0
			vMax[i] = farDistance
		}
		cell[i] = int(c)
	}

	bestT := farDistance
	var bestHit prim.Hit
	var bestPrim *prim.Primitive
	haveHit := false

	for {
		cellPrims := grid.At(cell[0], cell[1], cell[2])
		hitThisCell := false
		for _, p := range cellPrims {
			if p == source && p.LastRayMatches(ray.ID) {
				continue
			}
			if p.LastRayMatches(ray.ID) && bestPrim == p {
				hitThisCell = true
				continue
			}
			newBestT, hit, ok := p.Intersect(ray, bestT)
			if !ok {
				continue
			}
			bestT = newBestT
			bestHit = hit
			bestPrim = p
			haveHit = true
			hitThisCell = true
		}

		minAxis := 0
		minStep := vMax[0]
		for i := 1; i < 3; i++ {
			if vMax[i] < minStep {
				minStep = vMax[i]
				minAxis = i
			}
		}

		if hitThisCell && bestT < minStep {
			break
		}

		cell[minAxis] += int(step[minAxis])
		if float64(cell[minAxis]) == outOf[minAxis] {
			return prim.Hit{}, false
		}
		vMax[minAxis] += delta[minAxis]
	}

	return bestHit, haveHit
}
