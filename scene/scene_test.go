package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raytracer/prim"
	"raytracer/raymath"
)

func TestBuildGridPlacesSphereInContainingCells(t *testing.T) {
	s := New(nil, nil)
	s.SetExtends(raymath.AABB{Min: raymath.NewVec3(-16, -16, -16), Max: raymath.NewVec3(16, 16, 16)})

	sphere := prim.NewPrimitive("s1", "_default_", prim.NewSphere(raymath.Vec3{}, 1))
	s.AddPrimitive(sphere)
	s.BuildGrid()

	// the grid cell containing the world origin must list the sphere.
	center := GridSize / 2
	found := false
	for _, p := range s.Grid().At(center, center, center) {
		if p == sphere {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBuildGridOmitsFarCells(t *testing.T) {
	s := New(nil, nil)
	s.SetExtends(raymath.AABB{Min: raymath.NewVec3(-16, -16, -16), Max: raymath.NewVec3(16, 16, 16)})

	sphere := prim.NewPrimitive("s1", "_default_", prim.NewSphere(raymath.Vec3{}, 1))
	s.AddPrimitive(sphere)
	s.BuildGrid()

	far := s.Grid().At(0, 0, 0)
	for _, p := range far {
		assert.NotEqual(t, sphere, p)
	}
}

func TestMaterialFallsBackThroughRegistry(t *testing.T) {
	s := New(nil, nil)
	p := prim.NewPrimitive("s1", "missing", prim.NewSphere(raymath.Vec3{}, 1))
	mat := s.Material(p)
	require.NotNil(t, mat)
	assert.Equal(t, "_default_", mat.Name)
}

func TestLightChannelTracksSetters(t *testing.T) {
	l := NewPointLight(raymath.NewVec3(0, 1, 0))
	assert.True(t, l.IsDiffuse())
	assert.False(t, l.IsSpecular())
	l.SetSpecular(raymath.Color{0.3, 0.3, 0.3})
	assert.True(t, l.IsSpecular())
}

func TestAppendVerticesReturnsStableSlice(t *testing.T) {
	s := New(nil, nil)
	vs := s.AppendVertices(
		prim.Vertex{Position: raymath.NewVec3(0, 0, 0)},
		prim.Vertex{Position: raymath.NewVec3(1, 0, 0)},
	)
	require.Len(t, vs, 2)
	assert.Equal(t, raymath.NewVec3(1, 0, 0), vs[1].Position)
}
