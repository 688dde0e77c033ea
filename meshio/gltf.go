package meshio

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"raytracer/assets"
	"raytracer/prim"
	"raytracer/raymath"
	"raytracer/scene"
)

// LoadGLTF opens a .gltf/.glb document and appends every mesh primitive's
// triangles into sc, approximating each glTF PBR metallic-roughness
// material as a Phong Material (diffuse from the base color factor,
// specular scaled by metalness, shininess from inverted roughness).
// Supplements the OBJ loader with a second real-world mesh source (spec
// §6); grounded on mrigankad-gorenderengine's scene/gltf_loader.go, pared
// down to this module's flat triangle-soup scene instead of a node graph
// (no skinning/animation/textures — out of scope here, same as for OBJ).
func LoadGLTF(path string, sc *scene.Scene) error {
	doc, err := gltf.Open(path)
	if err != nil {
		return fmt.Errorf("meshio: open %q: %w", path, err)
	}

	matNames := make([]string, len(doc.Materials))
	for i, gm := range doc.Materials {
		name := gm.Name
		if name == "" {
			name = fmt.Sprintf("_gltf_mat_%d", i)
		}
		mat := sc.Assets.CreateMaterial(name)
		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			mat.SetDiffuse(raymath.Color{float64(cf[0]), float64(cf[1]), float64(cf[2])})

			roughness := pbr.RoughnessFactorOrDefault()
			metallic := pbr.MetallicFactorOrDefault()
			mat.SetShininess((1 - roughness) * (1 - roughness) * 128)
			s := metallic * 0.7
			mat.SetSpecular(raymath.Color{s, s, s})
		}
		matNames[i] = name
	}

	triCount := 0
	for mi, gm := range doc.Meshes {
		for pi, gp := range gm.Primitives {
			matName := assets.DefaultMaterialName
			if gp.Material != nil && *gp.Material < len(matNames) {
				matName = matNames[*gp.Material]
			}
			if err := loadGLTFPrimitive(doc, gp, sc, matName, &triCount); err != nil {
				return fmt.Errorf("meshio: mesh %d primitive %d: %w", mi, pi, err)
			}
		}
	}
	return nil
}

func loadGLTFPrimitive(doc *gltf.Document, gp *gltf.Primitive, sc *scene.Scene, matName string, triCount *int) error {
	posIdx, ok := gp.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := gp.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	var uvs [][2]float32
	if idx, ok := gp.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]prim.Vertex, len(positions))
	for i, p := range positions {
		v := prim.Vertex{Position: raymath.NewVec3(float64(p[0]), float64(p[1]), float64(p[2]))}
		if i < len(normals) {
			n := normals[i]
			v.Normal = raymath.NewVec3(float64(n[0]), float64(n[1]), float64(n[2]))
		}
		if i < len(uvs) {
			v.U, v.V = float64(uvs[i][0]), float64(uvs[i][1])
		}
		verts[i] = v
	}

	var indices []uint32
	if gp.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*gp.Indices], nil)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(verts))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	hasNormals := len(normals) > 0
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := verts[indices[i]], verts[indices[i+1]], verts[indices[i+2]]
		pooled := sc.AppendVertices(a, b, c)

		if !hasNormals {
			faceNormal := pooled[1].Position.Sub(pooled[0].Position).Cross(pooled[2].Position.Sub(pooled[0].Position)).Normalize()
			pooled[0].Normal = faceNormal
			pooled[1].Normal = faceNormal
			pooled[2].Normal = faceNormal
		}

		tri := prim.NewTriangle(pooled[0], pooled[1], pooled[2])
		*triCount++
		sc.AddPrimitive(prim.NewPrimitive(fmt.Sprintf("_GLTFTriangle%d", *triCount), matName, tri))
	}
	return nil
}
