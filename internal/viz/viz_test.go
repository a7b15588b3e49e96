package viz

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/orrerylab/orrery/internal/builder"
	"github.com/orrerylab/orrery/internal/catalog"
	"github.com/orrerylab/orrery/internal/scene"
	"github.com/orrerylab/orrery/internal/timeline"
)

func TestCanvasSetAndString(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(7, 7)

	if c.Grid[0][0] == 0x2800 {
		t.Error("top-left dot not set")
	}
	if c.Grid[1][3] == 0x2800 {
		t.Error("bottom-right dot not set")
	}

	out := c.String()
	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Errorf("%d lines, want 2", lines)
	}

	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("Clear left dots behind")
			}
		}
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(100, 100)
	c.DrawLine(-10, -10, 100, 100) // clipped, must not panic
}

func TestCameraProjectsOriginToCenter(t *testing.T) {
	cam := NewCamera()
	x, y, _, ok := cam.Project(Vec3{}, 160, 96)
	if !ok {
		t.Fatal("origin not visible")
	}
	if x != 80 || y != 48 {
		t.Errorf("origin projected to (%d,%d), want (80,48)", x, y)
	}
}

func TestCameraZoomBounds(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 100; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 10 {
		t.Errorf("zoom %v exceeds cap", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.05 {
		t.Errorf("zoom %v below floor", cam.Zoom)
	}
}

func buildSystem(t *testing.T) (*builder.Result, timeline.Scale) {
	t.Helper()
	scale := timeline.DefaultScale()
	g := scene.NewGraph()
	res, err := builder.New(g, scale, slog.Default()).Rebuild(catalog.DefaultSolarSystem())
	if err != nil {
		t.Fatal(err)
	}
	return res, scale
}

func TestSystemWireframe(t *testing.T) {
	res, _ := buildSystem(t)
	wf := SystemWireframe(res, float64(res.StartFrame))

	// Nine orbit polylines plus one dot per body.
	want := 9*orbitSegments + 10
	if len(wf.Edges) != want {
		t.Errorf("%d edges, want %d", len(wf.Edges), want)
	}

	var dots int
	for _, e := range wf.Edges {
		if e.Start == e.End {
			dots++
		}
	}
	if dots != 10 {
		t.Errorf("%d body dots, want 10", dots)
	}
}

func TestRender3DDrawsSomething(t *testing.T) {
	res, _ := buildSystem(t)
	c := NewCanvas(canvasWidth, canvasHeight)
	cam := NewCamera()
	cam.Zoom = 1.0 / 30 // outermost orbit sits near 26

	Render3D(c, SystemWireframe(res, float64(res.StartFrame)), cam)

	var lit int
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("render produced an empty canvas")
	}
}

func TestDistancePlot(t *testing.T) {
	res, _ := buildSystem(t)

	chart, err := DistancePlot(res, "Mercury", 60, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(chart, "Mercury orbit distance") {
		t.Error("caption missing")
	}

	if _, err := DistancePlot(res, "Vulcan", 60, 10); err == nil {
		t.Error("unknown body accepted")
	}
	if _, err := DistancePlot(res, "Sun", 60, 10); err == nil {
		t.Error("non-orbiting body accepted")
	}
}

func TestModelScrubAndSpeed(t *testing.T) {
	res, scale := buildSystem(t)
	m := NewModel(res, scale)

	if m.frame != float64(res.StartFrame) {
		t.Fatalf("start frame = %v", m.frame)
	}

	next, _ := m.Update(tickMsg{})
	m = next.(Model)
	if m.frame != float64(res.StartFrame)+1 {
		t.Errorf("frame after tick = %v", m.frame)
	}

	view := m.View()
	if !strings.Contains(view, "ORRERY") || !strings.Contains(view, "Earth") {
		t.Error("view missing header or body list")
	}
}
