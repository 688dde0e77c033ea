// Package assets holds the process-wide Texture and Material registries
// (spec §4.C), grounded on mod_assets.go's map-backed AssetServer and
// textures/texture.go's TextureManager, generalized from GPU-upload caches
// to plain named lookups of the CPU-side types this package defines.
package assets

import (
	"strconv"
	"sync"

	"raytracer/rtlog"
)

// DefaultMaterialName is the reserved entry Registry.Material falls back to
// when the requested name is absent (spec §4.C).
const DefaultMaterialName = "_default_"

// Registry is a single-owner store of named Materials and Textures. It is
// mutex-guarded (like the teacher's AssetServer and TextureManager) so a
// loader goroutine may populate it concurrently before a render pass
// starts; spec §5 forbids mutating it *during* render(), not before.
type Registry struct {
	mu  sync.RWMutex
	log rtlog.Logger

	materials   map[string]*Material
	textures    map[string]*Texture
	matCounter  int
	texCounter  int
}

func NewRegistry(log rtlog.Logger) *Registry {
	if log == nil {
		log = rtlog.Nop
	}
	r := &Registry{
		log:       log,
		materials: make(map[string]*Material),
		textures:  make(map[string]*Texture),
	}
	r.materials[DefaultMaterialName] = NewMaterial(DefaultMaterialName)
	return r
}

// CreateMaterial returns the named material, creating it if absent. An
// existing name returns the existing material with a warning (spec §4.C);
// an empty name auto-generates "_Mat<N>" from a monotonically increasing
// counter.
func (r *Registry) CreateMaterial(name string) *Material {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		r.matCounter++
		name = autoName("_Mat", r.matCounter)
	}
	if existing, ok := r.materials[name]; ok {
		r.log.Warnf("material %q already exists, returning existing entry", name)
		return existing
	}
	mat := NewMaterial(name)
	r.materials[name] = mat
	return mat
}

// Material returns the named material, or the reserved default if the name
// is not present (spec §4.C / §7 MissingMaterial).
func (r *Registry) Material(name string) *Material {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if mat, ok := r.materials[name]; ok {
		return mat
	}
	r.log.Warnf("material %q not found, substituting %q", name, DefaultMaterialName)
	return r.materials[DefaultMaterialName]
}

// CreateTexture returns the named texture, creating an empty one if
// absent. An existing name returns the existing texture with a warning; an
// empty name auto-generates "_Tex<N>".
func (r *Registry) CreateTexture(name string, width, height int) *Texture {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		r.texCounter++
		name = autoName("_Tex", r.texCounter)
	}
	if existing, ok := r.textures[name]; ok {
		r.log.Warnf("texture %q already exists, returning existing entry", name)
		return existing
	}
	tex := NewTexture(name, width, height)
	r.textures[name] = tex
	return tex
}

// Put registers an already-built texture (e.g. from meshio/procedural
// generators) under its own name.
func (r *Registry) Put(tex *Texture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.textures[tex.Name] = tex
}

// Texture returns the named texture, or nil if absent (spec §4.C / §7
// MissingTexture — the caller falls back to flat diffuse).
func (r *Registry) Texture(name string) *Texture {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if tex, ok := r.textures[name]; ok {
		return tex
	}
	r.log.Warnf("texture %q not found", name)
	return nil
}

func autoName(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}
