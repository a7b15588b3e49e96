// Package catalog holds the per-body configuration a rebuild consumes:
// display radius, axial tilt, rotation and revolution periods, orbital
// elements, optional rings and appearance hints. A catalog is
// read-only input for one generation pass; insertion order defines
// creation order.
package catalog

import (
	"fmt"

	"github.com/orrerylab/orrery/internal/orbit"
)

// Ring describes an annulus around a body. Ratios are relative to the
// body's display radius.
type Ring struct {
	InnerRatio float64 `yaml:"inner_ratio"`
	OuterRatio float64 `yaml:"outer_ratio"`
}

// Appearance is the hint passed to the external appearance provider.
// The provider returns an opaque handle; nothing here is interpreted
// by the generator itself.
type Appearance struct {
	Color    [3]float64 `yaml:"color"`
	Texture  string     `yaml:"texture"`  // looked up under the provider's texture dir
	TempK    float64    `yaml:"temp_k"`   // surface temperature, kelvin; tints when color is unset
	Emission float64    `yaml:"emission"` // >0 renders the body self-lit (the star)
}

// Body is one catalog entry. Immutable after creation.
type Body struct {
	Name          string          `yaml:"name"`
	Radius        float64         `yaml:"radius"`         // display radius, scene units
	TiltDeg       float64         `yaml:"tilt"`           // axial tilt, degrees
	Flattening    float64         `yaml:"flattening"`     // polar compression, clamped to [0,0.25]
	RotationHours float64         `yaml:"rotation_hours"` // signed; negative is retrograde
	PeriodYears   float64         `yaml:"period_years"`   // revolution period, Earth years
	Elements      *orbit.Elements `yaml:"elements"`       // nil for the central star
	Ring          *Ring           `yaml:"ring"`
	Primary       string          `yaml:"primary"` // parent body name for satellites
	Appearance    Appearance      `yaml:"appearance"`
}

// IsStar reports whether the body is the system's central, orbit-less
// entry.
func (b Body) IsStar() bool { return b.Elements == nil && b.Primary == "" }

// Validate checks the fields a rig cannot be built from. Flattening is
// clamped at build time rather than rejected, matching the reference
// behavior.
func (b Body) Validate() error {
	if b.Name == "" {
		return &ConfigError{Body: b.Name, Field: "name", Err: fmt.Errorf("empty name")}
	}
	if b.Radius <= 0 {
		return &ConfigError{Body: b.Name, Field: "radius", Err: fmt.Errorf("radius %g must be positive", b.Radius)}
	}
	if b.Elements != nil {
		if err := b.Elements.Validate(); err != nil {
			return &ConfigError{Body: b.Name, Field: "elements", Err: err}
		}
	}
	if b.Ring != nil {
		if b.Ring.InnerRatio <= 0 || b.Ring.OuterRatio <= b.Ring.InnerRatio {
			return &ConfigError{Body: b.Name, Field: "ring", Err: fmt.Errorf("ring ratios %g..%g must satisfy 0 < inner < outer", b.Ring.InnerRatio, b.Ring.OuterRatio)}
		}
	}
	return nil
}

// Catalog is an ordered name→Body table.
type Catalog struct {
	bodies []Body
	index  map[string]int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add appends a body, rejecting duplicate names.
func (c *Catalog) Add(b Body) error {
	if _, ok := c.index[b.Name]; ok {
		return &ConfigError{Body: b.Name, Field: "name", Err: fmt.Errorf("duplicate body name")}
	}
	c.index[b.Name] = len(c.bodies)
	c.bodies = append(c.bodies, b)
	return nil
}

// Get returns the named body.
func (c *Catalog) Get(name string) (Body, bool) {
	i, ok := c.index[name]
	if !ok {
		return Body{}, false
	}
	return c.bodies[i], true
}

// Bodies returns all entries in insertion order.
func (c *Catalog) Bodies() []Body {
	return append([]Body(nil), c.bodies...)
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.bodies) }

// Star returns the designated primary entry, if any.
func (c *Catalog) Star() (Body, bool) {
	for _, b := range c.bodies {
		if b.IsStar() {
			return b, true
		}
	}
	return Body{}, false
}

// Validate checks every body plus the cross-references between them.
func (c *Catalog) Validate() error {
	for _, b := range c.bodies {
		if err := b.Validate(); err != nil {
			return err
		}
		if b.Primary != "" {
			p, ok := c.Get(b.Primary)
			if !ok {
				return &ConfigError{Body: b.Name, Field: "primary", Err: fmt.Errorf("unknown primary %q", b.Primary)}
			}
			if p.IsStar() {
				return &ConfigError{Body: b.Name, Field: "primary", Err: fmt.Errorf("satellite of the star should omit primary")}
			}
		}
	}
	return nil
}
