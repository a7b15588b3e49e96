// Package appearance resolves a body's look into an opaque handle the
// scene container attaches to mesh nodes. Actual shading and texture
// decoding belong to the external renderer; this package only decides
// what the handle carries and degrades gracefully when a texture
// reference cannot be resolved.
package appearance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orrerylab/orrery/internal/catalog"
)

// ErrTextureUnavailable marks a texture reference that could not be
// resolved. The returned handle is still usable, just untextured;
// callers log and continue.
var ErrTextureUnavailable = errors.New("texture unavailable")

// Handle is the opaque appearance datum. It doubles as a shared scene
// resource keyed by name, so two nodes may hold the same handle and
// the container reclaims it when neither survives a rebuild.
type Handle struct {
	Name      string
	Color     [3]float64
	Texture   string // resolved file path, empty when untextured
	Emission  float64
	Roughness float64
	Specular  float64
	Alpha     float64 // 1 = opaque; rings use a translucent value
}

// ID implements scene.Resource.
func (h Handle) ID() string { return h.Name }

// Provider turns a body's appearance hint into a handle.
type Provider interface {
	Appearance(name string, spec catalog.Appearance) (Handle, error)
	RingAppearance(name string) Handle
}

// Palette is the default provider: flat colors from the catalog plus
// an optional texture directory lookup.
type Palette struct {
	// TextureDir is searched for the catalog's texture file names.
	// Empty disables textures entirely.
	TextureDir string
}

// ringAlpha matches the reference ring translucency.
const ringAlpha = 0.55

// Appearance resolves the body's handle. A missing texture file
// produces a valid untextured handle together with a wrapped
// ErrTextureUnavailable.
func (p Palette) Appearance(name string, spec catalog.Appearance) (Handle, error) {
	h := Handle{
		Name:      "Material-" + name,
		Color:     spec.Color,
		Emission:  spec.Emission,
		Roughness: 0.6,
		Specular:  0.3,
		Alpha:     1,
	}
	if spec.Emission > 0 {
		// Self-lit bodies are matte; the emission dominates.
		h.Roughness = 1
		h.Specular = 0
	}
	if spec.TempK > 0 && spec.Color == ([3]float64{}) {
		// No explicit color: tint the body from its surface temperature.
		h.Color = BlackbodyColor(spec.TempK)
	}

	if spec.Texture == "" {
		return h, nil
	}
	if p.TextureDir == "" {
		return h, fmt.Errorf("%q: no texture directory: %w", spec.Texture, ErrTextureUnavailable)
	}
	path := filepath.Join(p.TextureDir, spec.Texture)
	if _, err := os.Stat(path); err != nil {
		return h, fmt.Errorf("%q: %w", path, ErrTextureUnavailable)
	}
	h.Texture = path
	return h, nil
}

// RingAppearance returns the translucent ring handle for a body.
func (p Palette) RingAppearance(name string) Handle {
	return Handle{
		Name:      "Rings-" + name,
		Color:     [3]float64{0.8, 0.75, 0.65},
		Roughness: 0.25,
		Alpha:     ringAlpha,
	}
}
