package rig

import (
	"log/slog"
	"math"
	"testing"

	"github.com/orrerylab/orrery/internal/catalog"
	"github.com/orrerylab/orrery/internal/orbit"
	"github.com/orrerylab/orrery/internal/scene"
	"github.com/orrerylab/orrery/internal/timeline"
)

func testAssembler(g *scene.Graph) *Assembler {
	return NewAssembler(g, timeline.DefaultScale(), "test-system", slog.Default())
}

func earthConfig() catalog.Body {
	return catalog.Body{
		Name: "Earth", Radius: 1.0, TiltDeg: 23.44, Flattening: 1.0 / 298.257,
		RotationHours: 23.934,
		PeriodYears:   400.0 / 1200.0, // 400 frames at the default scale
		Elements:      &orbit.Elements{SemiMajor: 8.0, Eccentricity: 0.0167, Periapsis: 102.9374},
	}
}

func TestBuildHierarchy(t *testing.T) {
	g := scene.NewGraph()
	r, err := testAssembler(g).Build(earthConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if r.BodyNode.Parent() != r.SpinCarrier {
		t.Error("BodyNode.parent != SpinCarrier")
	}
	if r.SpinCarrier.Parent() != r.OrbitCarrier {
		t.Error("SpinCarrier.parent != OrbitCarrier")
	}
	if r.OrbitCarrier.Parent() != nil {
		t.Error("planet OrbitCarrier should be a root")
	}
	if r.OrbitCarrier.FollowTarget != r.CurveNode {
		t.Error("orbit carrier is not constrained to its curve")
	}
	if g.Lookup("OrbitCtrl-Earth") != r.OrbitCarrier {
		t.Error("orbit carrier not registered under its name")
	}
}

func TestBuildEarthScenario(t *testing.T) {
	g := scene.NewGraph()
	r, err := testAssembler(g).Build(earthConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if r.PeriodFrames != 400 {
		t.Errorf("PeriodFrames = %d, want 400", r.PeriodFrames)
	}
	if got := r.Path.AxisRatio(); math.Abs(got-0.99986) > 1e-5 {
		t.Errorf("AxisRatio = %v, want ≈0.99986", got)
	}

	// Revolution track: proxy value range equals the frame count.
	evalTrack := r.CurveNode.Track(scene.PropEvalTime)
	if evalTrack == nil {
		t.Fatal("no eval-time track on the orbit curve")
	}
	if evalTrack.Span() != 400 {
		t.Errorf("eval-time span = %d, want 400", evalTrack.Span())
	}
	last := evalTrack.Keys[len(evalTrack.Keys)-1]
	if last.Value != 400 {
		t.Errorf("eval-time final value = %v, want 400 (raw frame count, not normalized)", last.Value)
	}

	// Spin track: sidereal day maps to 120 frames, one full turn.
	spinTrack := r.SpinCarrier.Track(scene.PropSpinZ)
	if spinTrack == nil {
		t.Fatal("no spin track on the spin carrier")
	}
	if want := timeline.DefaultScale().FramesForHours(23.934); spinTrack.Span() != want {
		t.Errorf("spin span = %d, want %d", spinTrack.Span(), want)
	}
	delta := spinTrack.Keys[1].Value - spinTrack.Keys[0].Value
	if math.Abs(delta-2*math.Pi) > 1e-12 {
		t.Errorf("spin delta = %v, want 2π", delta)
	}
	if spinTrack.Interp != scene.InterpLinear || spinTrack.Extrap != scene.ExtrapRepeat {
		t.Error("spin track must be linear and repeating")
	}

	// Oblateness on the polar axis of the mesh only.
	wantScale := 1 - 1.0/298.257
	if got := r.BodyNode.Scale[2]; math.Abs(got-wantScale) > 1e-12 {
		t.Errorf("BodyNode.Scale[2] = %v, want %v", got, wantScale)
	}
}

func TestTiltAndOblatenessIsolation(t *testing.T) {
	g := scene.NewGraph()
	r, err := testAssembler(g).Build(earthConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	// Tilt lives on the spin carrier only.
	wantTilt := 23.44 * math.Pi / 180
	if got := r.SpinCarrier.Rotation[0]; math.Abs(got-wantTilt) > 1e-12 {
		t.Errorf("SpinCarrier tilt = %v, want %v", got, wantTilt)
	}
	if r.OrbitCarrier.Rotation != [3]float64{} {
		t.Errorf("OrbitCarrier rotated: %v", r.OrbitCarrier.Rotation)
	}
	if r.BodyNode.Rotation != [3]float64{} {
		t.Errorf("BodyNode rotated: %v", r.BodyNode.Rotation)
	}

	// Oblateness lives on the body only.
	if r.OrbitCarrier.Scale != [3]float64{1, 1, 1} {
		t.Errorf("OrbitCarrier scaled: %v", r.OrbitCarrier.Scale)
	}
	if r.SpinCarrier.Scale != [3]float64{1, 1, 1} {
		t.Errorf("SpinCarrier scaled: %v", r.SpinCarrier.Scale)
	}
}

func TestBuildRing(t *testing.T) {
	g := scene.NewGraph()
	b := catalog.Body{
		Name: "Ringed", Radius: 1.7, RotationHours: 10, PeriodYears: 2,
		Elements: &orbit.Elements{SemiMajor: 18},
		Ring:     &catalog.Ring{InnerRatio: 2.0, OuterRatio: 3.3},
	}
	r, err := testAssembler(g).Build(b, nil)
	if err != nil {
		t.Fatal(err)
	}

	if r.RingNode == nil {
		t.Fatal("no ring node built")
	}
	if r.RingNode.Parent() != r.SpinCarrier {
		t.Error("ring must be a spin-carrier child, not a body child")
	}
	geo := r.RingNode.Geometry
	if math.Abs(geo.Inner-3.4) > 1e-12 || math.Abs(geo.Outer-5.61) > 1e-12 {
		t.Errorf("ring radii = %v..%v, want 3.4..5.61", geo.Inner, geo.Outer)
	}
	// Unrotated relative to the spin carrier: it inherits the tilt.
	if r.RingNode.Rotation != [3]float64{} {
		t.Errorf("ring rotated relative to its carrier: %v", r.RingNode.Rotation)
	}
}

func TestBuildSatellite(t *testing.T) {
	g := scene.NewGraph()
	a := testAssembler(g)

	earth, err := a.Build(earthConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	moon, err := a.Build(catalog.Body{
		Name: "Moon", Radius: 0.27, RotationHours: 655.7, PeriodYears: 0.0748,
		Elements: &orbit.Elements{SemiMajor: 1.8, Eccentricity: 0.0549},
		Primary:  "Earth",
	}, earth)
	if err != nil {
		t.Fatal(err)
	}

	// Satellite revolution rides the primary's orbit carrier, not its
	// spin carrier.
	if moon.OrbitCarrier.Parent() != earth.OrbitCarrier {
		t.Error("satellite orbit carrier not parented to primary orbit carrier")
	}
	if moon.CurveNode.Parent() != earth.OrbitCarrier {
		t.Error("satellite curve not parented to primary orbit carrier")
	}
	if moon.BodyNode.Name != "Moon-Moon" {
		t.Errorf("satellite mesh name = %q", moon.BodyNode.Name)
	}
}

func TestBuildRejectsBadElements(t *testing.T) {
	g := scene.NewGraph()
	a := testAssembler(g)

	bad := earthConfig()
	bad.Elements = &orbit.Elements{SemiMajor: 8, Eccentricity: 1.0}
	if _, err := a.Build(bad, nil); err == nil {
		t.Fatal("e=1.0 accepted")
	} else if _, ok := catalog.AsConfigError(err); !ok {
		t.Errorf("error = %v, want ConfigError", err)
	}

	bad.Elements = &orbit.Elements{SemiMajor: 0}
	if _, err := a.Build(bad, nil); err == nil {
		t.Fatal("a=0 accepted")
	}

	// A failed body leaves no half-built carriers behind.
	if g.Lookup("OrbitCtrl-Earth") != nil {
		t.Error("rejected body left nodes in the scene")
	}
}

func TestBuildStar(t *testing.T) {
	g := scene.NewGraph()
	star, err := testAssembler(g).BuildStar(catalog.Body{
		Name: "Sun", Radius: 3.0, TiltDeg: 7.25, RotationHours: 609.12,
		Appearance: catalog.Appearance{Color: [3]float64{1, 0.9, 0.6}, Emission: 8},
	})
	if err != nil {
		t.Fatal(err)
	}

	if star.OrbitCarrier != nil || star.SpinCarrier != nil || star.CurveNode != nil {
		t.Error("star must not get carriers or an orbit")
	}
	if star.BodyNode == nil || star.BodyNode.Kind != scene.KindMesh {
		t.Fatal("star body missing")
	}
	if star.BodyNode.Track(scene.PropSpinZ) == nil {
		t.Error("star should still spin")
	}
	// The emissive handle reached the container's resource table.
	if _, ok := g.Resources()["Material-Sun"]; !ok {
		t.Error("star appearance not attached")
	}
}

func TestMissingTextureIsRecoverable(t *testing.T) {
	g := scene.NewGraph()
	a := testAssembler(g)

	b := earthConfig()
	b.Appearance = catalog.Appearance{Color: [3]float64{0.2, 0.4, 0.8}, Texture: "earth.jpg"}
	r, err := a.Build(b, nil)
	if err != nil {
		t.Fatalf("missing texture should not fail the build: %v", err)
	}
	if _, ok := g.Resources()["Material-Earth"]; !ok {
		t.Error("fallback appearance not attached")
	}
	_ = r
}
