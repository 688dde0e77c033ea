package meshio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raytracer/assets"
	"raytracer/scene"
)

const triangleOBJ = `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

const quadOBJWithMTL = `
mtllib quad.mtl
usemtl red
v -1 -1 0
v  1 -1 0
v  1  1 0
v -1  1 0
f 1 2 3 4
`

const quadMTL = `
newmtl red
Kd 0.8 0.1 0.1
Ns 32
Ni 1.2
d 0.5
`

func newTestScene() *scene.Scene {
	return scene.New(assets.NewRegistry(nil), nil)
}

func TestLoadOBJTriangulatesSingleFace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte(triangleOBJ), 0o644))

	sc := newTestScene()
	require.NoError(t, LoadOBJ(path, sc))
	assert.Len(t, sc.Primitives(), 1)
}

func TestLoadOBJFansQuadIntoTwoTriangles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quad.mtl"), []byte(quadMTL), 0o644))
	path := filepath.Join(dir, "quad.obj")
	require.NoError(t, os.WriteFile(path, []byte(quadOBJWithMTL), 0o644))

	sc := newTestScene()
	require.NoError(t, LoadOBJ(path, sc))
	assert.Len(t, sc.Primitives(), 2)

	for _, p := range sc.Primitives() {
		assert.Equal(t, "red", p.MaterialName)
	}
	mat := sc.Assets.Material("red")
	assert.InDelta(t, 0.8, mat.Diffuse().R(), 1e-9)
	assert.InDelta(t, 32.0, mat.Shininess(), 1e-9)
}

func TestLoadOBJGeneratesFlatNormalsWhenMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte(triangleOBJ), 0o644))

	sc := newTestScene()
	require.NoError(t, LoadOBJ(path, sc))
	for _, v := range sc.VertexPool() {
		assert.InDelta(t, 1.0, v.Normal.Length(), 1e-9)
	}
}
