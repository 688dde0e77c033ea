package assets

import "raytracer/raymath"

// Channel is a bitmask of which Material fields carry a non-default value,
// maintained automatically by the setters (spec §4.C) rather than tracked
// by hand at each call site.
type Channel uint32

const (
	ChannelAmbient Channel = 1 << iota
	ChannelDiffuse
	ChannelSpecular
	ChannelEmission
	ChannelReflection
	ChannelDiffuseRefl
	ChannelRefraction
	ChannelTexture
)

// DefaultRefractiveIndex is the refrIndex a Material starts with (spec §3).
const DefaultRefractiveIndex = 1.5

// Material mirrors spec §3: ambient/diffuse/specular/emission colors,
// shininess, reflection and diffuse-reflection-perturbation coefficients,
// refraction and refractive index, and an optional texture with U/V scale.
// Grounded in shape on voxelrt/rt/core/material.go's IOR/Roughness/
// Metalness/Transparency fields, generalized to the spec's full Phong
// channel set.
type Material struct {
	Name string

	ambient  raymath.Color
	diffuse  raymath.Color
	specular raymath.Color
	emission raymath.Color

	shininess    float64
	reflection   float64
	diffuseRefl  float64
	refraction   float64
	refrIndex    float64

	texture        *Texture
	uScale, vScale float64

	mask Channel
}

// NewMaterial returns a material with refrIndex defaulted per spec and no
// active channels.
func NewMaterial(name string) *Material {
	return &Material{
		Name:      name,
		refrIndex: DefaultRefractiveIndex,
		uScale:    1,
		vScale:    1,
	}
}

func touches(x float64) bool { return x < -raymath.Epsilon || x > raymath.Epsilon }

func colorTouches(c raymath.Color) bool {
	return touches(c.R()) || touches(c.G()) || touches(c.B())
}

func (m *Material) SetAmbient(c raymath.Color) {
	m.ambient = c
	if colorTouches(c) {
		m.mask |= ChannelAmbient
	}
}

func (m *Material) SetDiffuse(c raymath.Color) {
	m.diffuse = c
	if colorTouches(c) {
		m.mask |= ChannelDiffuse
	}
}

func (m *Material) SetSpecular(c raymath.Color) {
	m.specular = c
	if colorTouches(c) {
		m.mask |= ChannelSpecular
	}
}

// SetEmission stores the emission color in (r,g,b) order. The original
// source's setter swapped the b and g components on the specular channel;
// spec §9 flags this as a bug and requires (r,g,b) throughout, which is
// what this does.
func (m *Material) SetEmission(c raymath.Color) {
	m.emission = c
	if colorTouches(c) {
		m.mask |= ChannelEmission
	}
}

func (m *Material) SetShininess(v float64) { m.shininess = v }

func (m *Material) SetReflection(v float64) {
	m.reflection = v
	if touches(v) {
		m.mask |= ChannelReflection
	}
}

func (m *Material) SetDiffuseRefl(v float64) {
	m.diffuseRefl = v
	if touches(v) {
		m.mask |= ChannelDiffuseRefl
	}
}

func (m *Material) SetRefraction(v float64) {
	m.refraction = v
	if touches(v) {
		m.mask |= ChannelRefraction
	}
}

func (m *Material) SetRefractiveIndex(v float64) { m.refrIndex = v }

func (m *Material) SetTexture(t *Texture, uScale, vScale float64) {
	m.texture = t
	m.uScale, m.vScale = uScale, vScale
	if t != nil {
		m.mask |= ChannelTexture
	}
}

func (m *Material) Ambient() raymath.Color    { return m.ambient }
func (m *Material) Diffuse() raymath.Color    { return m.diffuse }
func (m *Material) Specular() raymath.Color   { return m.specular }
func (m *Material) Emission() raymath.Color   { return m.emission }
func (m *Material) Shininess() float64        { return m.shininess }
func (m *Material) Reflection() float64       { return m.reflection }
func (m *Material) DiffuseRefl() float64      { return m.diffuseRefl }
func (m *Material) Refraction() float64       { return m.refraction }
func (m *Material) RefractiveIndex() float64  { return m.refrIndex }
func (m *Material) Texture() *Texture         { return m.texture }
func (m *Material) UVScale() (u, v float64)   { return m.uScale, m.vScale }

func (m *Material) IsAmbient() bool     { return m.mask&ChannelAmbient != 0 }
func (m *Material) IsDiffuse() bool     { return m.mask&ChannelDiffuse != 0 }
func (m *Material) IsSpecular() bool    { return m.mask&ChannelSpecular != 0 }
func (m *Material) IsEmissive() bool    { return m.mask&ChannelEmission != 0 }
func (m *Material) IsReflective() bool  { return m.mask&ChannelReflection != 0 }
func (m *Material) IsRefractive() bool  { return m.mask&ChannelRefraction != 0 }
func (m *Material) IsTextured() bool    { return m.mask&ChannelTexture != 0 }

// HasStratifiedReflection is true when reflection is active and
// diffuseRefl requires stratified sampling of the reflection cone
// (spec §3 invariant).
func (m *Material) HasStratifiedReflection() bool {
	return m.IsReflective() && m.diffuseRefl > 0
}
