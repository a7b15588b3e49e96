// Package orbit derives closed elliptical paths from classical orbital
// elements.
//
// A path is built from five of the six classical elements (the epoch
// anomaly is not modeled): semi-major axis, eccentricity, inclination,
// longitude of the ascending node and argument of periapsis. The
// ellipse is centered at its geometric center rather than at a focus,
// and positions along it are parameterized uniformly — both deliberate
// simplifications carried over from the reference animation, chosen
// for visual plausibility over physical accuracy.
package orbit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Elements are the classical orbital elements describing the size,
// shape and orientation of an elliptical orbit. Angles are in degrees.
type Elements struct {
	SemiMajor    float64 `yaml:"semi_major"`   // a, scene units
	Eccentricity float64 `yaml:"eccentricity"` // e in [0,1)
	Inclination  float64 `yaml:"inclination"`  // i
	Node         float64 `yaml:"node"`         // Ω, longitude of ascending node
	Periapsis    float64 `yaml:"periapsis"`    // ω, argument of periapsis
}

// Circular returns the elements of a flat circular orbit of radius a.
func Circular(a float64) Elements {
	return Elements{SemiMajor: a}
}

// Validate reports whether the elements describe a bounded, loopable
// orbit.
func (el Elements) Validate() error {
	if el.SemiMajor <= 0 {
		return fmt.Errorf("semi-major axis %g: %w", el.SemiMajor, ErrSemiMajor)
	}
	if el.Eccentricity < 0 || el.Eccentricity >= 1 {
		return fmt.Errorf("eccentricity %g: %w", el.Eccentricity, ErrEccentricity)
	}
	return nil
}

// Path is a closed planar ellipse oriented in 3-D space. It implements
// the one-parameter curve the orbit carrier follows: Point maps a
// parameter in [0,1) to a position, with 0 and 1 meeting at the same
// point.
type Path struct {
	a, b   float64
	orient *mat.Dense // Rz(Ω)·Rx(i)·Rz(ω)
	center r3.Vec
}

// NewPath builds the oriented ellipse for the given elements around
// center. The curve starts from a circle of radius a, is scaled by
// b/a = sqrt(1-e²) along its minor axis, then rotated Z(Ω) → X(i) →
// Z(ω). The parent body sits at the ellipse center, not at a focus.
func NewPath(el Elements, center r3.Vec) (*Path, error) {
	if err := el.Validate(); err != nil {
		return nil, err
	}

	a := el.SemiMajor
	b := a * math.Sqrt(1-el.Eccentricity*el.Eccentricity)

	m := rotZ(deg2rad(el.Node))
	m.Mul(m, rotX(deg2rad(el.Inclination)))
	m.Mul(m, rotZ(deg2rad(el.Periapsis)))

	return &Path{a: a, b: b, orient: m, center: center}, nil
}

// Point returns the position at parameter u. Values outside [0,1) wrap.
func (p *Path) Point(u float64) r3.Vec {
	θ := 2 * math.Pi * u
	local := mat.NewVecDense(3, []float64{p.a * math.Cos(θ), p.b * math.Sin(θ), 0})
	var w mat.VecDense
	w.MulVec(p.orient, local)
	return r3.Vec{
		X: w.AtVec(0) + p.center.X,
		Y: w.AtVec(1) + p.center.Y,
		Z: w.AtVec(2) + p.center.Z,
	}
}

// PointXYZ is Point with unpacked components, satisfying curve
// consumers that do not want the gonum dependency.
func (p *Path) PointXYZ(u float64) (x, y, z float64) {
	v := p.Point(u)
	return v.X, v.Y, v.Z
}

// Sample returns n evenly spaced points along the path.
func (p *Path) Sample(n int) []r3.Vec {
	if n < 2 {
		n = 2
	}
	pts := make([]r3.Vec, n)
	for i := range pts {
		pts[i] = p.Point(float64(i) / float64(n))
	}
	return pts
}

// SemiMajor returns a.
func (p *Path) SemiMajor() float64 { return p.a }

// SemiMinor returns b = a·sqrt(1-e²).
func (p *Path) SemiMinor() float64 { return p.b }

// AxisRatio returns b/a, the minor/major ratio of the bounding ellipse.
func (p *Path) AxisRatio() float64 { return p.b / p.a }

// Center returns the geometric center of the ellipse.
func (p *Path) Center() r3.Vec { return p.center }

func rotZ(θ float64) *mat.Dense {
	s, c := math.Sincos(θ)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

func rotX(θ float64) *mat.Dense {
	s, c := math.Sincos(θ)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
