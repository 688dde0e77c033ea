// Package scene holds the renderable world: lights, the primitive list, the
// vertex pool and the uniform grid that accelerates traversal (spec §4.F),
// grounded on original_source/scene.cpp's Scene class and
// original_source/primitive.h's Light, and on Gekko3D-gekko's light.go
// LightType/LightComponent for the tagged-variant shape.
package scene

import "raytracer/raymath"

// LightType tags which of the three supported light kinds a Light carries
// (spec §4.F); Gekko3D-gekko's light.go also has a Spot/Ambient variant,
// but the ray tracer's shading model (calcShade) only ever branches on
// these three.
type LightType int

const (
	LightDirectional LightType = iota
	LightPoint
	LightArea
)

// LightChannel mirrors the active-channel bitmask pattern from
// assets.Material, applied to a Light's own ambient/diffuse/specular
// terms.
type LightChannel uint32

const (
	LightAmbient LightChannel = 1 << iota
	LightDiffuse
	LightSpecular
)

// Light is a tagged union over the three light kinds: Position and
// Direction are meaningful for Point/Directional respectively, AABB for
// Area. Attenuation applies to Point and Area lights.
type Light struct {
	Type LightType

	Position  raymath.Vec3
	Direction raymath.Vec3
	AABB      raymath.AABB

	Attenuation0, Attenuation1, Attenuation2 float64

	ambient, diffuse, specular raymath.Color
	channels                   LightChannel
}

func NewDirectionalLight(direction raymath.Vec3) *Light {
	return &Light{
		Type:         LightDirectional,
		Direction:    direction.Normalize(),
		ambient:      raymath.Color{0.2, 0.2, 0.2},
		diffuse:      raymath.Color{0.8, 0.8, 0.8},
		channels:     LightAmbient | LightDiffuse,
		Attenuation0: 1,
	}
}

func NewPointLight(position raymath.Vec3) *Light {
	return &Light{
		Type:         LightPoint,
		Position:     position,
		ambient:      raymath.Color{0.2, 0.2, 0.2},
		diffuse:      raymath.Color{0.8, 0.8, 0.8},
		channels:     LightAmbient | LightDiffuse,
		Attenuation0: 1,
	}
}

func NewAreaLight(box raymath.AABB) *Light {
	return &Light{
		Type:         LightArea,
		AABB:         box,
		ambient:      raymath.Color{0.2, 0.2, 0.2},
		diffuse:      raymath.Color{0.8, 0.8, 0.8},
		channels:     LightAmbient | LightDiffuse,
		Attenuation0: 1,
	}
}

func (l *Light) touches(c raymath.Color) bool {
	return raymath.Vec3(c).Length() > raymath.Epsilon
}

func (l *Light) SetAmbient(c raymath.Color) {
	l.ambient = c
	l.setChannel(LightAmbient, l.touches(c))
}

func (l *Light) SetDiffuse(c raymath.Color) {
	l.diffuse = c
	l.setChannel(LightDiffuse, l.touches(c))
}

func (l *Light) SetSpecular(c raymath.Color) {
	l.specular = c
	l.setChannel(LightSpecular, l.touches(c))
}

func (l *Light) setChannel(ch LightChannel, on bool) {
	if on {
		l.channels |= ch
	} else {
		l.channels &^= ch
	}
}

func (l *Light) Ambient() raymath.Color  { return l.ambient }
func (l *Light) Diffuse() raymath.Color  { return l.diffuse }
func (l *Light) Specular() raymath.Color { return l.specular }

func (l *Light) IsAmbient() bool  { return l.channels&LightAmbient != 0 }
func (l *Light) IsDiffuse() bool  { return l.channels&LightDiffuse != 0 }
func (l *Light) IsSpecular() bool { return l.channels&LightSpecular != 0 }
