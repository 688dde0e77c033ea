package tracer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raytracer/assets"
	"raytracer/prim"
	"raytracer/raymath"
	"raytracer/scene"
)

type fakeSink struct {
	pixels map[[2]int]raymath.Color
}

func newFakeSink() *fakeSink { return &fakeSink{pixels: map[[2]int]raymath.Color{}} }

func (f *fakeSink) SetPixel(x, y int, c raymath.Color) { f.pixels[[2]int{x, y}] = c }

func buildTestScene() *scene.Scene {
	registry := assets.NewRegistry(nil)
	mat := registry.CreateMaterial("diffuseRed")
	mat.SetDiffuse(raymath.Color{0.8, 0.1, 0.1})
	mat.SetAmbient(raymath.Color{0.1, 0.1, 0.1})

	s := scene.New(registry, nil)
	s.SetExtends(raymath.AABB{Min: raymath.NewVec3(-10, -10, -10), Max: raymath.NewVec3(10, 10, 10)})
	sphere := prim.NewPrimitive("sphere1", "diffuseRed", prim.NewSphere(raymath.NewVec3(0, 0, 5), 1))
	s.AddPrimitive(sphere)
	s.AddLight(scene.NewDirectionalLight(raymath.NewVec3(0, -1, 1)))
	s.BuildGrid()
	return s
}

func TestFindNearestHitsSphereDirectlyAhead(t *testing.T) {
	s := buildTestScene()
	e := NewEngine(s, nil)
	e.SetRenderTarget(4, 4, newFakeSink())
	e.InitEngine(raymath.Vec3{}, raymath.NewVec3(0, 0, 1))

	ray := prim.NewRay(raymath.Vec3{}, raymath.UnitZ, e.nextRayID())
	hit, ok := e.findNearest(ray, nil)
	require.True(t, ok)
	assert.Equal(t, "sphere1", hit.Prim.Name)
}

func TestRenderMakesProgressInOneCall(t *testing.T) {
	s := buildTestScene()
	sink := newFakeSink()
	e := NewEngine(s, nil)
	e.MaxRenderTime = 0 // zero budget: the time-slice check runs after each full scanline, so one call renders at least one line
	e.SetRenderTarget(4, 4, sink)
	e.InitEngine(raymath.Vec3{}, raymath.NewVec3(0, 0, 1))

	done := e.Render()
	assert.True(t, done || e.curLine > 0)
	assert.NotEmpty(t, sink.pixels)
}

func TestRayTraceReturnsBlackOnMiss(t *testing.T) {
	s := buildTestScene()
	e := NewEngine(s, nil)
	e.SetRenderTarget(4, 4, newFakeSink())
	e.InitEngine(raymath.Vec3{}, raymath.NewVec3(0, 0, 1))

	color, hitPrim := e.rayTrace(prim.NewRay(raymath.Vec3{}, raymath.UnitX, e.nextRayID()), 1, 1.0, nil)
	assert.Nil(t, hitPrim)
	assert.Equal(t, raymath.Color{}, color)
}

func TestReflectiveMaterialRecursesWithoutPanicking(t *testing.T) {
	registry := assets.NewRegistry(nil)
	mat := registry.CreateMaterial("mirror")
	mat.SetReflection(0.9)
	mat.SetDiffuse(raymath.Color{})

	s := scene.New(registry, nil)
	s.SetExtends(raymath.AABB{Min: raymath.NewVec3(-10, -10, -10), Max: raymath.NewVec3(10, 10, 10)})
	s.AddPrimitive(prim.NewPrimitive("mirrorSphere", "mirror", prim.NewSphere(raymath.NewVec3(0, 0, 5), 1)))
	s.AddLight(scene.NewPointLight(raymath.NewVec3(0, 5, 0)))
	s.BuildGrid()

	e := NewEngine(s, nil)
	e.TraceDepth = 3
	e.SetRenderTarget(2, 2, newFakeSink())
	e.InitEngine(raymath.Vec3{}, raymath.NewVec3(0, 0, 1))

	assert.NotPanics(t, func() {
		e.rayTrace(prim.NewRay(raymath.Vec3{}, raymath.UnitZ, e.nextRayID()), 1, 1.0, nil)
	})
}
