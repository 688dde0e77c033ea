package scenefile

import (
	"fmt"

	"raytracer/assets"
	"raytracer/meshio"
	"raytracer/prim"
	"raytracer/raymath"
	"raytracer/rtlog"
	"raytracer/scene"
)

// BuildScene turns a parsed File into a ready-to-render Scene: materials
// first (primitives reference them by name), then the extends box, then
// primitives and lights, then any meshes, finally the uniform grid.
func BuildScene(f *File, log rtlog.Logger) (*scene.Scene, error) {
	registry := assets.NewRegistry(log)
	for _, ms := range f.Materials {
		applyMaterialSpec(registry.CreateMaterial(ms.Name), ms)
	}

	sc := scene.New(registry, log)
	sc.SetExtends(raymath.AABB{Min: f.Extends.Min.toVec3(), Max: f.Extends.Max.toVec3()})

	for _, ps := range f.Primitives {
		p, err := buildPrimitive(ps)
		if err != nil {
			return nil, err
		}
		sc.AddPrimitive(p)
	}

	for _, ls := range f.Lights {
		l, err := buildLight(ls)
		if err != nil {
			return nil, err
		}
		sc.AddLight(l)
	}

	for _, ms := range f.Meshes {
		var err error
		switch ms.Format {
		case "gltf", "glb":
			err = meshio.LoadGLTF(ms.Path, sc)
		default:
			err = meshio.LoadOBJ(ms.Path, sc)
		}
		if err != nil {
			return nil, fmt.Errorf("scenefile: load mesh %q: %w", ms.Path, err)
		}
	}

	sc.BuildGrid()
	return sc, nil
}

func applyMaterialSpec(mat *assets.Material, ms MaterialSpec) {
	if ms.Ambient != nil {
		mat.SetAmbient(ms.Ambient.toColor())
	}
	if ms.Diffuse != nil {
		mat.SetDiffuse(ms.Diffuse.toColor())
	}
	if ms.Specular != nil {
		mat.SetSpecular(ms.Specular.toColor())
	}
	if ms.Emission != nil {
		mat.SetEmission(ms.Emission.toColor())
	}
	if ms.Shininess != 0 {
		mat.SetShininess(ms.Shininess)
	}
	if ms.Reflection != 0 {
		mat.SetReflection(ms.Reflection)
	}
	if ms.DiffuseRefl != 0 {
		mat.SetDiffuseRefl(ms.DiffuseRefl)
	}
	if ms.Refraction != 0 {
		mat.SetRefraction(ms.Refraction)
	}
	if ms.RefractiveIdx != 0 {
		mat.SetRefractiveIndex(ms.RefractiveIdx)
	}
}

func buildPrimitive(ps PrimitiveSpec) (*prim.Primitive, error) {
	var shape prim.Shape
	switch ps.Type {
	case "sphere":
		shape = prim.NewSphere(ps.Center.toVec3(), ps.Radius)
	case "plane":
		shape = prim.NewPlane(ps.Normal.toVec3(), ps.D)
	case "box":
		shape = prim.NewBox(ps.Min.toVec3(), ps.Max.toVec3())
	default:
		return nil, fmt.Errorf("scenefile: unknown primitive type %q", ps.Type)
	}
	p := prim.NewPrimitive(ps.Name, ps.Material, shape)
	p.IsLight = ps.IsLight
	return p, nil
}

func buildLight(ls LightSpec) (*scene.Light, error) {
	var l *scene.Light
	switch ls.Type {
	case "directional":
		l = scene.NewDirectionalLight(ls.Direction.toVec3())
	case "point":
		l = scene.NewPointLight(ls.Position.toVec3())
	case "area":
		l = scene.NewAreaLight(raymath.AABB{Min: ls.Min.toVec3(), Max: ls.Max.toVec3()})
	default:
		return nil, fmt.Errorf("scenefile: unknown light type %q", ls.Type)
	}
	if ls.Diffuse != nil {
		l.SetDiffuse(ls.Diffuse.toColor())
	}
	if ls.Ambient != nil {
		l.SetAmbient(ls.Ambient.toColor())
	}
	if ls.Att0 != 0 {
		l.Attenuation0 = ls.Att0
	}
	if ls.Att1 != 0 {
		l.Attenuation1 = ls.Att1
	}
	if ls.Att2 != 0 {
		l.Attenuation2 = ls.Att2
	}
	return l, nil
}
