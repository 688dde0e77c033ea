// Package camera implements the pinhole camera (spec §4.E): lookAt/frustum
// setup plus a screen-plane interpolation cached until the next lookAt or
// frustum call, grounded on original_source/Camera.cpp's CCamera and
// generalized from its dirty-flag caching, a pattern also used by
// mrigankad-gorenderengine's scene/camera.go view-matrix cache.
package camera

import (
	"math"

	"raytracer/raymath"
)

// Camera holds a basis (position + right/up/forward axes) plus three
// corners of the near-plane frustum rectangle in camera space, with a
// cached world-space corner and edge vectors. getScreenPos in the source is
// our ScreenAt.
type Camera struct {
	pos              raymath.Vec3
	xAxis, yAxis, zAxis raymath.Vec3

	p1, p2, p4 raymath.Vec3 // top-left, top-right, bottom-left frustum corners, camera space

	worldP1    raymath.Vec3 // cached world-space top-left corner
	dx, dy     raymath.Vec3 // cached screen-plane interpolation vectors
	dirty      bool
}

func New() *Camera {
	c := &Camera{pos: raymath.NewVec3(0, 0, 1), dirty: true}
	c.Frustum(-1, 1, -1, 1, 1)
	return c
}

// LookAt builds the camera basis from eye/at/up. When up is nearly
// parallel to the view direction the source substitutes UNIT_Z to avoid a
// degenerate cross product; this keeps that substitution.
func (c *Camera) LookAt(eye, at, up raymath.Vec3) {
	c.pos = eye
	zAxis := at.Sub(eye).Normalize()

	tUp := up.Normalize()
	if math.Abs(tUp.Dot(zAxis)) > 0.99 {
		tUp = raymath.UnitZ
	}
	xAxis := tUp.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	c.xAxis, c.yAxis, c.zAxis = xAxis, yAxis, zAxis
	c.dirty = true
}

// Perspective sets up a symmetric frustum from a vertical field of view
// (radians), aspect ratio and near-plane distance.
func (c *Camera) Perspective(fovy, aspect, zNear float64) {
	top := math.Tan(fovy/2) * zNear
	right := top * aspect
	c.Frustum(-right, right, -top, top, zNear)
}

// Frustum sets the four near-plane corners directly, in camera space.
func (c *Camera) Frustum(left, right, bottom, top, zNear float64) {
	c.p1 = raymath.NewVec3(left, top, zNear)
	c.p2 = raymath.NewVec3(right, top, zNear)
	c.p4 = raymath.NewVec3(left, bottom, zNear)
	c.dirty = true
}

func (c *Camera) toWorld(p raymath.Vec3) raymath.Vec3 {
	return c.xAxis.Mul(p.X()).Add(c.yAxis.Mul(p.Y())).Add(c.zAxis.Mul(p.Z())).Add(c.pos)
}

func (c *Camera) refresh() {
	if !c.dirty {
		return
	}
	w1 := c.toWorld(c.p1)
	w2 := c.toWorld(c.p2)
	w4 := c.toWorld(c.p4)
	c.dx = w2.Sub(w1)
	c.dy = w4.Sub(w1)
	c.worldP1 = w1
	c.dirty = false
}

// ScreenAt returns the world-space point on the near plane at relative
// screen coordinates x,y in [0,1], with (0,0) the top-left corner.
func (c *Camera) ScreenAt(x, y float64) raymath.Vec3 {
	c.refresh()
	return c.worldP1.Add(c.dx.Mul(x)).Add(c.dy.Mul(y))
}

func (c *Camera) Position() raymath.Vec3 { return c.pos }
