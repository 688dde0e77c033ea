// Package meshio loads triangle meshes from disk into a Scene — outside
// spec scope is decoding the textures a .mtl file references (spec's
// Non-goals), so map_Kd directives are ignored and no texture is
// registered. Grounded on mrigankad-gorenderengine's scene/obj_loader.go
// (scanner-based parser, fan triangulation, mtllib/usemtl handling) and
// original_source/AccessObj.h's triangle/material record shapes.
package meshio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"raytracer/assets"
	"raytracer/prim"
	"raytracer/raymath"
	"raytracer/scene"
)

type faceVertex struct {
	v, vt, vn int // 0-based; -1 if absent
}

// LoadOBJ parses a Wavefront .obj file, triangulating any polygonal faces
// by a fan from the first vertex, and appends the resulting triangles
// (and any named materials from an mtllib) directly into sc.
func LoadOBJ(path string, sc *scene.Scene) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("meshio: open %q: %w", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)

	var positions, normals []raymath.Vec3
	var uvs [][2]float64
	var faces []faceVertex3
	curMat := ""

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			positions = append(positions, parseVec3(fields[1:4]))
		case "vn":
			if len(fields) < 4 {
				continue
			}
			normals = append(normals, parseVec3(fields[1:4]))
		case "vt":
			if len(fields) < 3 {
				continue
			}
			u, _ := strconv.ParseFloat(fields[1], 64)
			v, _ := strconv.ParseFloat(fields[2], 64)
			uvs = append(uvs, [2]float64{u, v})
		case "usemtl":
			if len(fields) > 1 {
				curMat = fields[1]
			}
		case "mtllib":
			if len(fields) > 1 {
				_ = loadMTL(filepath.Join(dir, fields[1]), sc)
			}
		case "f":
			if len(fields) < 4 {
				continue
			}
			var fv []faceVertex
			for _, tok := range fields[1:] {
				fv = append(fv, parseFaceVertex(tok))
			}
			for i := 1; i+1 < len(fv); i++ {
				faces = append(faces, faceVertex3{v: [3]faceVertex{fv[0], fv[i], fv[i+1]}, mat: curMat})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("meshio: scan %q: %w", path, err)
	}

	hasNormals := len(normals) > 0
	triCount := 0
	for _, face := range faces {
		verts := [3]prim.Vertex{}
		for i, fv := range face.v {
			pos := safeVec3(positions, fv.v)
			var n raymath.Vec3
			if hasNormals {
				n = safeVec3(normals, fv.vn)
			}
			u, v := safeUV(uvs, fv.vt)
			verts[i] = prim.Vertex{Position: pos, Normal: n, U: u, V: v}
		}
		pooled := sc.AppendVertices(verts[0], verts[1], verts[2])

		if !hasNormals {
			faceNormal := pooled[1].Position.Sub(pooled[0].Position).Cross(pooled[2].Position.Sub(pooled[0].Position)).Normalize()
			pooled[0].Normal = faceNormal
			pooled[1].Normal = faceNormal
			pooled[2].Normal = faceNormal
		}

		tri := prim.NewTriangle(pooled[0], pooled[1], pooled[2])
		triCount++
		matName := face.mat
		if matName == "" {
			matName = assets.DefaultMaterialName
		}
		sc.AddPrimitive(prim.NewPrimitive(fmt.Sprintf("_Triangle%d", triCount), matName, tri))
	}

	return nil
}

type faceVertex3 struct {
	v   [3]faceVertex
	mat string
}

func parseVec3(fields []string) raymath.Vec3 {
	x, _ := strconv.ParseFloat(fields[0], 64)
	y, _ := strconv.ParseFloat(fields[1], 64)
	z, _ := strconv.ParseFloat(fields[2], 64)
	return raymath.NewVec3(x, y, z)
}

// parseFaceVertex parses one face-vertex token ("v", "v/vt", "v//vn",
// "v/vt/vn"), converting OBJ's 1-based indices to 0-based (-1 if absent).
func parseFaceVertex(tok string) faceVertex {
	parseIdx := func(s string) int {
		if s == "" {
			return -1
		}
		n, _ := strconv.Atoi(s)
		if n > 0 {
			return n - 1
		}
		return n
	}
	parts := strings.Split(tok, "/")
	res := faceVertex{v: -1, vt: -1, vn: -1}
	if len(parts) > 0 {
		res.v = parseIdx(parts[0])
	}
	if len(parts) > 1 {
		res.vt = parseIdx(parts[1])
	}
	if len(parts) > 2 {
		res.vn = parseIdx(parts[2])
	}
	return res
}

func safeVec3(pool []raymath.Vec3, i int) raymath.Vec3 {
	if i >= 0 && i < len(pool) {
		return pool[i]
	}
	return raymath.Vec3{}
}

func safeUV(pool [][2]float64, i int) (float64, float64) {
	if i >= 0 && i < len(pool) {
		return pool[i][0], pool[i][1]
	}
	return 0, 0
}
