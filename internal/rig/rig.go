// Package rig assembles the three-level motion hierarchy for one
// celestial body: an orbit carrier constrained to the body's orbit
// path, a spin carrier holding the axial tilt and the animated spin,
// and the renderable body mesh, optionally with a sibling ring.
//
// Revolution and rotation stay decoupled by construction: the tilt
// lives on the spin carrier only and oblateness on the body mesh only,
// so neither affects path following.
package rig

import (
	"errors"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/orrerylab/orrery/internal/appearance"
	"github.com/orrerylab/orrery/internal/catalog"
	"github.com/orrerylab/orrery/internal/orbit"
	"github.com/orrerylab/orrery/internal/scene"
	"github.com/orrerylab/orrery/internal/timeline"
)

// Node name prefixes, also used for idempotent teardown.
const (
	PrefixOrbit     = "Orbit-"
	PrefixOrbitCtrl = "OrbitCtrl-"
	PrefixSpinCtrl  = "SpinCtrl-"
	PrefixPlanet    = "Planet-"
	PrefixMoon      = "Moon-"
	PrefixRings     = "Rings-"
)

// Prefixes lists every name prefix a rig may create.
func Prefixes() []string {
	return []string{PrefixOrbit, PrefixOrbitCtrl, PrefixSpinCtrl, PrefixPlanet, PrefixMoon, PrefixRings}
}

// maxFlattening bounds the polar compression applied to a body mesh.
const maxFlattening = 0.25

// Rig is the assembled motion chain for one body. The orbit carrier
// owns the spin carrier, which owns the body mesh (and ring). For the
// central star only BodyNode is set.
type Rig struct {
	Config catalog.Body

	OrbitCarrier *scene.Node
	SpinCarrier  *scene.Node
	BodyNode     *scene.Node
	RingNode     *scene.Node
	CurveNode    *scene.Node

	// Path backs CurveNode so dependent bodies can reason about the
	// orbit they parent beneath.
	Path *orbit.Path

	PeriodFrames int // frames per revolution
	SpinFrames   int // frames per axial rotation
	SpinDir      int // +1 prograde, -1 retrograde
}

// Assembler builds rigs into a scene container.
type Assembler struct {
	Scene      scene.Container
	Scale      timeline.Scale
	Appearance appearance.Provider
	Group      string // every created node joins this group
	Log        *slog.Logger
}

// NewAssembler wires an assembler with the default appearance palette.
func NewAssembler(sc scene.Container, scale timeline.Scale, group string, log *slog.Logger) *Assembler {
	if log == nil {
		log = slog.Default()
	}
	return &Assembler{Scene: sc, Scale: scale, Appearance: appearance.Palette{}, Group: group, Log: log}
}

// Build assembles the full rig for an orbiting body. For a satellite,
// parent is the primary body's rig: the satellite's curve and orbit
// carrier are created beneath the primary's orbit carrier, so the
// satellite inherits the primary's revolution but not its spin.
func (a *Assembler) Build(b catalog.Body, parent *Rig) (*Rig, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if b.Elements == nil {
		return nil, &catalog.ConfigError{Body: b.Name, Field: "elements", Err: errors.New("orbiting body needs orbital elements")}
	}

	path, err := orbit.NewPath(*b.Elements, r3.Vec{})
	if err != nil {
		return nil, &catalog.ConfigError{Body: b.Name, Field: "elements", Err: err}
	}

	r := &Rig{
		Config:       b,
		Path:         path,
		PeriodFrames: a.Scale.FramesForYears(b.PeriodYears),
		SpinFrames:   a.Scale.FramesForHours(b.RotationHours),
		SpinDir:      timeline.Direction(b.RotationHours),
	}

	var parentNode *scene.Node
	if parent != nil {
		parentNode = parent.OrbitCarrier
	}

	// Orbit path and its carrier. The carrier is driven by the curve's
	// path parameter, not by its own translation.
	r.CurveNode, err = a.newCurve(PrefixOrbit+b.Name, parentNode, path, r.PeriodFrames)
	if err != nil {
		return nil, err
	}
	r.OrbitCarrier, err = a.newTransform(PrefixOrbitCtrl+b.Name, parentNode)
	if err != nil {
		return nil, err
	}
	if err := a.Scene.FollowPath(r.OrbitCarrier, r.CurveNode); err != nil {
		return nil, err
	}
	if err := a.animatePath(r.CurveNode, r.PeriodFrames); err != nil {
		return nil, err
	}

	// Spin carrier: static tilt about X turns local Z into the tilted
	// spin axis; the animated spin happens about that axis.
	r.SpinCarrier, err = a.newTransform(PrefixSpinCtrl+b.Name, r.OrbitCarrier)
	if err != nil {
		return nil, err
	}
	r.SpinCarrier.Rotation[0] = b.TiltDeg * math.Pi / 180
	if err := a.animateSpin(r.SpinCarrier, r.SpinFrames, r.SpinDir); err != nil {
		return nil, err
	}

	// Body mesh, oblateness on the mesh only.
	meshPrefix := PrefixPlanet
	if parent != nil {
		meshPrefix = PrefixMoon
	}
	r.BodyNode, err = a.newMesh(meshPrefix+b.Name, r.SpinCarrier, scene.Sphere(b.Radius))
	if err != nil {
		return nil, err
	}
	applyOblateness(r.BodyNode, b.Flattening)
	if err := a.attachAppearance(r.BodyNode, b); err != nil {
		return nil, err
	}

	// Ring as a sibling of the body under the spin carrier, so it
	// shares the tilt without inheriting the body's polar scale.
	if b.Ring != nil {
		inner := b.Ring.InnerRatio * b.Radius
		outer := b.Ring.OuterRatio * b.Radius
		r.RingNode, err = a.newMesh(PrefixRings+b.Name, r.SpinCarrier, scene.Annulus(inner, outer))
		if err != nil {
			return nil, err
		}
		if err := a.Scene.Attach(r.RingNode, a.Appearance.RingAppearance(b.Name)); err != nil {
			return nil, err
		}
	}

	a.Log.Debug("rig assembled", "body", b.Name,
		"period_frames", r.PeriodFrames, "spin_frames", r.SpinFrames, "retrograde", r.SpinDir < 0)
	return r, nil
}

// BuildStar assembles the central body: a mesh with tilt and spin but
// no carriers and no orbit.
func (a *Assembler) BuildStar(b catalog.Body) (*Rig, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	r := &Rig{
		Config:     b,
		SpinFrames: a.Scale.FramesForHours(b.RotationHours),
		SpinDir:    timeline.Direction(b.RotationHours),
	}

	var err error
	r.BodyNode, err = a.newMesh(b.Name, nil, scene.Sphere(b.Radius))
	if err != nil {
		return nil, err
	}
	r.BodyNode.Rotation[0] = b.TiltDeg * math.Pi / 180
	if b.RotationHours != 0 {
		if err := a.animateSpin(r.BodyNode, r.SpinFrames, r.SpinDir); err != nil {
			return nil, err
		}
	}
	if err := a.attachAppearance(r.BodyNode, b); err != nil {
		return nil, err
	}

	a.Log.Debug("star assembled", "body", b.Name, "spin_frames", r.SpinFrames)
	return r, nil
}

// applyOblateness compresses the mesh along its polar axis. The
// carriers are never scaled, keeping path following independent of
// body shape.
func applyOblateness(mesh *scene.Node, flattening float64) {
	f := math.Min(math.Max(flattening, 0), maxFlattening)
	if f > 0 {
		mesh.Scale[2] *= 1 - f
	}
}

func (a *Assembler) attachAppearance(mesh *scene.Node, b catalog.Body) error {
	h, err := a.Appearance.Appearance(b.Name, b.Appearance)
	if err != nil {
		if !errors.Is(err, appearance.ErrTextureUnavailable) {
			return err
		}
		// Recoverable: keep the untextured handle.
		a.Log.Warn("texture unavailable, using flat color", "body", b.Name, "err", err)
	}
	return a.Scene.Attach(mesh, h)
}

// Nodes are group-tagged as soon as they exist, so a rig that fails
// halfway still gets swept by the next rebuild's group teardown.

func (a *Assembler) newTransform(name string, parent *scene.Node) (*scene.Node, error) {
	n, err := a.Scene.NewTransform(name, parent)
	if err != nil {
		return nil, err
	}
	return n, a.Scene.AddToGroup(n, a.Group)
}

func (a *Assembler) newMesh(name string, parent *scene.Node, geo scene.Geometry) (*scene.Node, error) {
	n, err := a.Scene.NewMesh(name, parent, geo)
	if err != nil {
		return nil, err
	}
	return n, a.Scene.AddToGroup(n, a.Group)
}

func (a *Assembler) newCurve(name string, parent *scene.Node, path scene.Path, duration int) (*scene.Node, error) {
	n, err := a.Scene.NewCurve(name, parent, path, duration)
	if err != nil {
		return nil, err
	}
	return n, a.Scene.AddToGroup(n, a.Group)
}
