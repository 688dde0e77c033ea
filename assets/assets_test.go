package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raytracer/raymath"
)

func TestRegistryMaterialMissingFallsBackToDefault(t *testing.T) {
	r := NewRegistry(nil)
	mat := r.Material("doesNotExist")
	require.Equal(t, DefaultMaterialName, mat.Name)
}

func TestRegistryTextureMissingReturnsNil(t *testing.T) {
	r := NewRegistry(nil)
	assert.Nil(t, r.Texture("doesNotExist"))
}

func TestRegistryAutoNamesMaterials(t *testing.T) {
	r := NewRegistry(nil)
	a := r.CreateMaterial("")
	b := r.CreateMaterial("")
	assert.NotEqual(t, a.Name, b.Name)
	assert.Equal(t, "_Mat1", a.Name)
	assert.Equal(t, "_Mat2", b.Name)
}

func TestRegistryCreateExistingReturnsSameMaterial(t *testing.T) {
	r := NewRegistry(nil)
	a := r.CreateMaterial("wood")
	b := r.CreateMaterial("wood")
	assert.Same(t, a, b)
}

func TestMaterialChannelMaskTracksSetters(t *testing.T) {
	m := NewMaterial("m")
	assert.False(t, m.IsDiffuse())
	m.SetDiffuse(raymath.Color{0.5, 0.5, 0.5})
	assert.True(t, m.IsDiffuse())
	assert.False(t, m.IsReflective())
}

func TestMaterialSettingZeroDoesNotSetChannel(t *testing.T) {
	m := NewMaterial("m")
	m.SetReflection(0)
	assert.False(t, m.IsReflective())
}

func TestTextureWrapIdempotence(t *testing.T) {
	tex := NewCheckerTexture("c", 16, raymath.ColorBlack, raymath.ColorWhite)
	for _, uv := range [][2]float64{{0.1, 0.2}, {0.9, 0.4}, {0.3, 0.85}} {
		a := tex.Texel(uv[0], uv[1])
		b := tex.Texel(uv[0]+1, uv[1])
		c := tex.Texel(uv[0], uv[1]+1)
		assert.InDelta(t, a.R(), b.R(), 1e-9)
		assert.InDelta(t, a.R(), c.R(), 1e-9)
	}
}
