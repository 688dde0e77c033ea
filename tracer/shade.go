package tracer

import (
	"math"

	"raytracer/assets"
	"raytracer/prim"
	"raytracer/raymath"
	"raytracer/scene"
)

const refractionShadeFactor = 0.3

// rayTrace recursively shades one ray: direct light contributions, then
// reflection and refraction, bottomed out at e.TraceDepth. rIndex is the
// refractive index of the medium the ray currently travels through.
// source is the primitive ray was spawned from (nil for a primary ray),
// carried down to findNearest for the self-hit guard (spec §4.G.1).
func (e *Engine) rayTrace(ray prim.Ray, depth int, rIndex float64, source *prim.Primitive) (raymath.Color, *prim.Primitive) {
	if !e.created || depth > e.TraceDepth {
		return raymath.Color{}, nil
	}

	hit, ok := e.findNearest(ray, source)
	if !ok {
		return raymath.Color{}, nil
	}
	p := hit.Prim

	if p.IsLight {
		return raymath.DefaultColor, p
	}

	mat := e.Scene.Material(p)
	viewDir := ray.Dir
	pointI := ray.At(hit.T)
	normal := p.NormalAt(pointI, hit.Detail)
	reflDir := viewDir.Sub(normal.Mul(2 * viewDir.Dot(normal)))
	color := p.Color(pointI, hit.Detail, mat)

	acc := raymath.Color{}

	for _, light := range e.Scene.Lights() {
		if light.IsAmbient() && mat.IsAmbient() {
			acc = acc.Add(mat.Ambient().MulColor(light.Ambient()).MulColor(color))
		}

		shade, lightDir := e.calcShade(light, pointI, p)
		if shade <= 0 {
			continue
		}

		if light.IsDiffuse() && mat.IsDiffuse() {
			diffDot := lightDir.Dot(normal)
			if diffDot > 0 {
				acc = acc.Add(light.Diffuse().MulColor(color).Mul(diffDot * shade))
			}
		}

		if light.IsSpecular() && mat.IsSpecular() {
			specDot := lightDir.Dot(reflDir)
			if specDot > 0 {
				k := math.Pow(specDot, mat.Shininess())
				acc = acc.Add(mat.Specular().MulColor(light.Specular()).Mul(k * shade))
			}
		}
	}

	if mat.IsReflective() && depth < e.TraceDepth {
		acc = acc.Add(e.shadeReflection(mat, pointI, reflDir, color, depth, rIndex, p))
	}

	if mat.IsRefractive() && depth < e.TraceDepth {
		acc = acc.Add(e.shadeRefraction(mat, hit, pointI, viewDir, normal, rIndex, depth))
	}

	return acc, p
}

// shadeReflection implements the diffuse-reflection glossy-sample branch
// when the material requests it and depth is still shallow: it traces
// RegularSampleSize^2 directions, each perturbed by an independent random
// offset drawn uniformly from a square of side 0.8 (scaled by diffuseRefl)
// in the plane tangent to the mirror direction. The samples are not
// stratified, and the x^2+y^2 <= 1 check never rejects an offset of that
// size. Otherwise it traces one mirror-reflection sample.
func (e *Engine) shadeReflection(mat *assets.Material, pointI, reflDir raymath.Vec3, color raymath.Color, depth int, rIndex float64, source *prim.Primitive) raymath.Color {
	if mat.HasStratifiedReflection() && depth < 2 {
		drefl := mat.DiffuseRefl()
		rn1 := raymath.NewVec3(reflDir.Z(), reflDir.Y(), -reflDir.X())
		rn2 := reflDir.Cross(rn1)
		refl := color.Mul(mat.Reflection() * e.sampleScale2)

		acc := raymath.Color{}
		samples := e.RegularSampleSize * e.RegularSampleSize
		for i := 0; i < samples; i++ {
			var xoffs, yoffs float64
			for {
				xoffs = (e.Rng.Rand() - 0.5) * 0.8
				yoffs = (e.Rng.Rand() - 0.5) * 0.8
				if xoffs*xoffs+yoffs*yoffs <= 1.0 {
					break
				}
			}
			tReflDir := reflDir.Add(rn1.Mul(xoffs * drefl)).Add(rn2.Mul(yoffs * drefl)).Normalize()
			rid := e.nextRayID()
			source.MarkRay(rid)
			rcol, hitPrim := e.rayTrace(prim.NewRay(pointI.Add(tReflDir.Mul(raymath.Epsilon)), tReflDir, rid), depth+1, rIndex, source)
			if hitPrim != nil {
				acc = acc.Add(refl.MulColor(rcol))
			}
		}
		return acc
	}

	rid := e.nextRayID()
	source.MarkRay(rid)
	rcol, hitPrim := e.rayTrace(prim.NewRay(pointI.Add(reflDir.Mul(raymath.Epsilon)), reflDir, rid), depth+1, rIndex, source)
	if hitPrim == nil {
		return raymath.Color{}
	}
	return rcol.Mul(mat.Reflection())
}

// shadeRefraction implements Snell's law transmission plus the Beer's-law
// absorption term, preserved exactly as original_source/raytracer.cpp has
// it: absorbance is only applied when n<1 (entering a denser medium from a
// sparser one), despite the inline comment there claiming the opposite —
// spec calls for keeping this behavior as-is.
//
// The transmitted ray does NOT tag source with the self-hit guard: for a
// closed solid, the transmitted ray must still be able to strike this same
// primitive's far surface (the InPrim normal-flip branch above) to ever
// exit it. original_source/raytracer.cpp:291,299 resets `prim = 0` before
// every findNearest call and only uses the guard to dedup a primitive
// already found earlier in the same cell walk, never to blanket-skip the
// surface a ray was spawned from — the ε-offset origin is what the source
// actually relies on to avoid re-hitting the entry point. Tagging source
// here would make it unreachable for the rest of this ray's traversal.
func (e *Engine) shadeRefraction(mat *assets.Material, hit prim.Hit, pointI, viewDir, normal raymath.Vec3, rIndexIn float64, depth int) raymath.Color {
	rIndex := mat.RefractiveIndex()
	n := rIndexIn / rIndex

	adjNormal := normal
	if hit.Result == prim.InPrim {
		adjNormal = normal.Negate()
	}

	cosI := -adjNormal.Dot(viewDir)
	cosT2 := 1 - n*n*(1-cosI*cosI)
	if cosT2 <= 0 {
		return raymath.Color{}
	}

	transDir := viewDir.Mul(n).Add(adjNormal.Mul(n*cosI - math.Sqrt(cosT2)))
	rid := e.nextRayID()
	rcol, _ := e.rayTrace(prim.NewRay(pointI.Add(transDir.Mul(raymath.Epsilon)), transDir, rid), depth+1, rIndex, nil)

	if n < 1.0 {
		absorbance := mat.Refraction() * 0.15 * -hit.T
		return rcol.Mul(math.Exp(absorbance))
	}
	return rcol
}

// calcShade determines the light contribution reaching pointI from light:
// directional/point lights are a single binary-or-refraction-attenuated
// shadow test, area lights are sampled first with 4 corner probes (to
// skip full sampling when fully lit or fully shadowed) and then, only
// when partially occluded, with a stratified RegularSampleSize^2 grid.
func (e *Engine) calcShade(light *scene.Light, pointI raymath.Vec3, source *prim.Primitive) (float64, raymath.Vec3) {
	switch light.Type {
	case scene.LightDirectional:
		return e.shadeDirectional(light, pointI, source)
	case scene.LightPoint:
		return e.shadePoint(light, pointI, source)
	case scene.LightArea:
		return e.shadeArea(light, pointI, source)
	default:
		return 0, raymath.Vec3{}
	}
}

// occluded fires one shadow ray from origin along dir and reports the
// shade factor (1 = unobstructed, refractionShadeFactor = obstructed by a
// refractive primitive, 0 = fully blocked) along with whether anything
// closer than maxDist was struck at all. source is the surface the shadow
// ray leaves from, tagged with the fresh ray id so the self-hit guard
// skips it (spec §4.G.1, §4.G.3).
func (e *Engine) occluded(origin, dir raymath.Vec3, maxDist float64, source *prim.Primitive) (shade float64, isHit bool) {
	rid := e.nextRayID()
	source.MarkRay(rid)
	ray := prim.NewRay(origin.Add(dir.Mul(raymath.Epsilon)), dir, rid)
	hit, ok := e.findNearest(ray, source)
	if !ok || hit.T >= maxDist {
		return 1.0, false
	}
	if hit.Prim.IsLight {
		return 1.0, false
	}
	mat := e.Scene.Material(hit.Prim)
	if mat.IsRefractive() {
		return refractionShadeFactor, true
	}
	return 0.0, true
}

func (e *Engine) shadeDirectional(light *scene.Light, pointI raymath.Vec3, source *prim.Primitive) (float64, raymath.Vec3) {
	dir := light.Direction
	shade, _ := e.occluded(pointI, dir, farDistance, source)
	return shade, dir
}

func (e *Engine) shadePoint(light *scene.Light, pointI raymath.Vec3, source *prim.Primitive) (float64, raymath.Vec3) {
	toLight := light.Position.Sub(pointI)
	dist := toLight.Length()
	dir := toLight.Div(dist)

	shade, hit := e.occluded(pointI, dir, dist, source)
	if hit && shade == 0 {
		return 0, dir
	}
	if hit && shade == refractionShadeFactor {
		return shade, dir
	}
	att := 1.0 / (light.Attenuation0 + light.Attenuation1*dist + light.Attenuation2*dist*dist)
	return shade * att, dir
}

// shadeArea samples the light's AABB: 4 corner probes first, falling
// through to a stratified RegularSampleSize^2 grid only when the corners
// disagree (spec §4.G.3's soft-shadow penumbra handling).
func (e *Engine) shadeArea(light *scene.Light, pointI raymath.Vec3, source *prim.Primitive) (float64, raymath.Vec3) {
	dim := light.AABB.Dim()
	base := light.AABB.Min.Sub(pointI)

	// The corner probe only breaks its inner (y) loop on a hit, so across
	// the 4 (x,y) corners shadowed can reach at most 2 — matching
	// original_source/raytracer.cpp's calcShade exactly, including that
	// quirk (its "shadowed == 4" full-shadow branch below is effectively
	// unreachable, same as in the source).
	shadowed := 0
	lastDist := 0.0
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			corner := base.Add(dim.MulVec(raymath.NewVec3(float64(x), float64(y), float64(y))))
			dist := corner.Length()
			dir := corner.Div(dist)
			_, hit := e.occluded(pointI, dir, dist, source)
			lastDist = dist
			if hit {
				shadowed++
				break
			}
		}
	}

	var retval float64
	switch shadowed {
	case 4:
		retval = 0
	case 0:
		retval = 1
	default:
		retval = 0
		for x := 0; x < e.RegularSampleSize; x++ {
			for y := 0; y < e.RegularSampleSize; y++ {
				jitter := raymath.NewVec3(
					float64(x)+e.Rng.Rand(),
					float64(y)+e.Rng.Rand(),
					float64(y)+e.Rng.Rand(),
				).Mul(e.sampleScale)
				dir := base.Add(dim.MulVec(jitter))
				dist := dir.Length()
				dir = dir.Div(dist)
				lastDist = dist

				shade, hit := e.occluded(pointI, dir, dist, source)
				if !hit {
					retval += e.sampleScale2
				} else if shade == refractionShadeFactor {
					retval += e.sampleScale2 * refractionShadeFactor
				}
			}
		}
	}

	if retval != 0 {
		att := 1.0 / (light.Attenuation0 + light.Attenuation1*lastDist + light.Attenuation2*lastDist*lastDist)
		retval *= att
	}

	dir := base.Add(dim.Mul(0.5)).Normalize()
	return retval, dir
}
