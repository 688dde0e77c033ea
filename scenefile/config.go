// Package scenefile is the YAML scene-description format shared by
// cmd/rtrace and cmd/rtview (spec §6): materials, primitives, lights and
// meshes described declaratively instead of wired up in Go, plus the
// camera placement and render budget. Grounded on the mrigankad teacher's
// cmd/demo/main.go scene-construction shape (materials first, then nodes,
// then lights), translated from imperative Go calls into a data format so
// both commands can share one loader instead of duplicating scene setup.
package scenefile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"raytracer/raymath"
)

// Vec3 unmarshals a YAML 3-element sequence into a raymath.Vec3.
type Vec3 [3]float64

func (v Vec3) toVec3() raymath.Vec3   { return raymath.NewVec3(v[0], v[1], v[2]) }
func (v Vec3) toColor() raymath.Color { return raymath.Color{v[0], v[1], v[2]} }

type MaterialSpec struct {
	Name          string  `yaml:"name"`
	Ambient       *Vec3   `yaml:"ambient"`
	Diffuse       *Vec3   `yaml:"diffuse"`
	Specular      *Vec3   `yaml:"specular"`
	Emission      *Vec3   `yaml:"emission"`
	Shininess     float64 `yaml:"shininess"`
	Reflection    float64 `yaml:"reflection"`
	DiffuseRefl   float64 `yaml:"diffuseRefl"`
	Refraction    float64 `yaml:"refraction"`
	RefractiveIdx float64 `yaml:"refractiveIndex"`
}

type PrimitiveSpec struct {
	Type     string  `yaml:"type"` // sphere | plane | box
	Name     string  `yaml:"name"`
	Material string  `yaml:"material"`
	IsLight  bool    `yaml:"isLight"`
	Center   Vec3    `yaml:"center"`
	Radius   float64 `yaml:"radius"`
	Normal   Vec3    `yaml:"normal"`
	D        float64 `yaml:"d"`
	Min      Vec3    `yaml:"min"`
	Max      Vec3    `yaml:"max"`
}

type LightSpec struct {
	Type      string  `yaml:"type"` // directional | point | area
	Direction Vec3    `yaml:"direction"`
	Position  Vec3    `yaml:"position"`
	Min       Vec3    `yaml:"min"`
	Max       Vec3    `yaml:"max"`
	Diffuse   *Vec3   `yaml:"diffuse"`
	Ambient   *Vec3   `yaml:"ambient"`
	Att0      float64 `yaml:"attenuation0"`
	Att1      float64 `yaml:"attenuation1"`
	Att2      float64 `yaml:"attenuation2"`
}

type MeshSpec struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // obj | gltf
}

type ExtendsSpec struct {
	Min Vec3 `yaml:"min"`
	Max Vec3 `yaml:"max"`
}

// File is the top-level shape of an rtrace/rtview YAML scene description.
type File struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Output string `yaml:"output"`

	Eye    Vec3 `yaml:"eye"`
	Target Vec3 `yaml:"target"`

	Extends ExtendsSpec `yaml:"extends"`

	TraceDepth      int    `yaml:"traceDepth"`
	SampleSize      int    `yaml:"sampleSize"`
	RenderBudgetStr string `yaml:"renderBudget"`

	Materials  []MaterialSpec  `yaml:"materials"`
	Primitives []PrimitiveSpec `yaml:"primitives"`
	Lights     []LightSpec     `yaml:"lights"`
	Meshes     []MeshSpec      `yaml:"meshes"`
}

// Load reads and parses path, applying the documented defaults (640x480,
// "out.png") for any field the file leaves zero.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: read %q: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scenefile: parse %q: %w", path, err)
	}
	if f.Width <= 0 {
		f.Width = 640
	}
	if f.Height <= 0 {
		f.Height = 480
	}
	if f.Output == "" {
		f.Output = "out.png"
	}
	return &f, nil
}

// RenderBudget parses RenderBudget as a duration, or 0 (meaning "use the
// Engine's default") if absent or malformed.
func (f *File) RenderBudget() time.Duration {
	if f.RenderBudgetStr == "" {
		return 0
	}
	d, err := time.ParseDuration(f.RenderBudgetStr)
	if err != nil {
		return 0
	}
	return d
}

// Eye and Target as raymath.Vec3, for convenience at the Engine.InitEngine
// call site.
func (f *File) EyeVec() raymath.Vec3    { return f.Eye.toVec3() }
func (f *File) TargetVec() raymath.Vec3 { return f.Target.toVec3() }
