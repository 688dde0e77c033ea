package tracer

import (
	"time"

	"raytracer/prim"
	"raytracer/raymath"
)

// boundingBox wraps the scene's extends as a Box primitive so renderRay can
// reuse Box.Intersect to advance a ray that starts outside the grid up to
// its boundary, the same trick original_source/raytracer.cpp's renderRay
// plays with a static Box(mScene->getExtends()).
func (e *Engine) boundingBox() *prim.Box {
	extends := e.Scene.Grid().Extends()
	return prim.NewBox(extends.Min, extends.Max)
}

// renderRay fires one primary ray through screen-relative coordinates
// (x,y) in [0,1] and returns the primitive it ultimately struck (nil on a
// miss) plus the accumulated color.
func (e *Engine) renderRay(x, y float64) (*prim.Primitive, raymath.Color) {
	camPos := e.Camera.Position()
	screenPos := e.Camera.ScreenAt(x, y)
	dir := screenPos.Sub(camPos).Normalize()

	origin := camPos
	box := e.boundingBox()
	extends := box.AABB()
	if !extends.Contains(camPos) {
		ray := prim.NewRay(camPos, dir, 0)
		if bdist, result, _ := box.Intersect(ray, farDistance); result != prim.Miss {
			origin = camPos.Add(dir.Mul(bdist + raymath.Epsilon))
		}
	}

	color, p := e.rayTrace(prim.NewRay(origin, dir, e.nextRayID()), 1, 1.0, nil)
	return p, color
}

// Render fires rays for every remaining scanline, upsampling with a 2x2
// adaptive supersample whenever the primitive struck differs from its
// neighbors (spec §4.G.4), and returns early — resumable on the next call
// — once MaxRenderTime has elapsed (spec §5's cooperative time slice).
func (e *Engine) Render() bool {
	if !e.created {
		return true
	}

	start := time.Now()
	const aaScale = 1.0 / 4.0

	var lastPrim *prim.Primitive
	sy := float64(e.curLine) * e.dy

	for y := e.curLine; y < e.height; y++ {
		sx := 0.0
		for x := 0; x < e.width; x++ {
			currPrim, finalClr := e.renderRay(sx, sy)

			if currPrim != lastPrim || e.lastLinePrims[x] != currPrim || finalClr.LengthSqr() < raymath.Epsilon*raymath.Epsilon {
				lastPrim = currPrim
				e.lastLinePrims[x] = currPrim

				_, left := e.renderRay(sx-0.5*e.dx, sy)
				_, topLeft := e.renderRay(sx-0.5*e.dx, sy+0.5*e.dy)
				_, top := e.renderRay(sx, sy-0.5*e.dy)

				finalClr = finalClr.Add(left).Add(topLeft).Add(top).Mul(aaScale)
			}

			e.Sink.SetPixel(x, y, finalClr.Clamp01())
			sx += e.dx
		}
		sy += e.dy

		if time.Since(start) > e.MaxRenderTime {
			e.curLine = y + 1
			if e.curLine != e.height {
				for x := 0; x < e.width; x++ {
					e.Sink.SetPixel(x, e.curLine, raymath.Color{1, 1, 1})
				}
			}
			return false
		}
	}
	return true
}
