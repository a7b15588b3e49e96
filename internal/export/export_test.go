package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/orrerylab/orrery/internal/builder"
	"github.com/orrerylab/orrery/internal/catalog"
	"github.com/orrerylab/orrery/internal/scene"
	"github.com/orrerylab/orrery/internal/timeline"
)

func buildSystem(t *testing.T) (*scene.Graph, *builder.Result) {
	t.Helper()
	g := scene.NewGraph()
	res, err := builder.New(g, timeline.DefaultScale(), slog.Default()).Rebuild(catalog.DefaultSolarSystem())
	if err != nil {
		t.Fatal(err)
	}
	return g, res
}

func TestSceneDescriptionJSON(t *testing.T) {
	g, res := buildSystem(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, SceneDescription(g, res, timeline.DefaultScale())); err != nil {
		t.Fatal(err)
	}

	var doc Doc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}

	if doc.Timeline.FPS != 30 || doc.Timeline.StartFrame != 1 {
		t.Errorf("timeline = %+v", doc.Timeline)
	}

	byName := make(map[string]NodeDoc)
	for _, n := range doc.Nodes {
		byName[n.Name] = n
	}

	earth, ok := byName["Planet-Earth"]
	if !ok {
		t.Fatal("Planet-Earth missing from export")
	}
	if earth.Parent != "SpinCtrl-Earth" {
		t.Errorf("Planet-Earth parent = %q", earth.Parent)
	}
	if earth.Geometry == nil || earth.Geometry.Shape != "sphere" {
		t.Error("Planet-Earth geometry missing")
	}

	ctrl := byName["OrbitCtrl-Earth"]
	if ctrl.FollowTarget != "Orbit-Earth" {
		t.Errorf("OrbitCtrl-Earth follow target = %q", ctrl.FollowTarget)
	}

	curve := byName["Orbit-Earth"]
	if len(curve.Tracks) != 1 || curve.Tracks[0].Property != "eval_time" {
		t.Fatalf("Orbit-Earth tracks = %+v", curve.Tracks)
	}
	tr := curve.Tracks[0]
	if tr.Interp != "linear" || tr.Extrap != "repeat" || len(tr.Keys) != 2 {
		t.Errorf("eval-time track = %+v", tr)
	}
}

func TestWriteEphemeris(t *testing.T) {
	_, res := buildSystem(t)

	var buf bytes.Buffer
	if err := WriteEphemeris(&buf, res, 100); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) < 2 {
		t.Fatalf("only %d rows", len(rows))
	}

	wantCols := 1 + 3*len(res.Order)
	for i, row := range rows {
		if len(row) != wantCols {
			t.Fatalf("row %d has %d columns, want %d", i, len(row), wantCols)
		}
	}
	if rows[0][0] != "frame" || rows[0][1] != "Sun_x" {
		t.Errorf("header starts %v", rows[0][:2])
	}

	// The Sun never moves.
	sunCol := 1
	for _, row := range rows[1:] {
		if row[sunCol] != "0.000000" {
			t.Errorf("Sun drifted: %v", row[sunCol])
			break
		}
	}
}

func TestWriteOrbitMap(t *testing.T) {
	_, res := buildSystem(t)

	var buf bytes.Buffer
	if err := WriteOrbitMap(&buf, res, 800, 800); err != nil {
		t.Fatal(err)
	}
	svg := buf.String()

	if !strings.HasPrefix(svg, `<?xml`) || !strings.Contains(svg, "</svg>") {
		t.Error("not an SVG document")
	}
	// Nine orbits (eight planets + Moon) and ten body markers.
	if got := strings.Count(svg, "<path"); got != 9 {
		t.Errorf("%d orbit paths, want 9", got)
	}
	if got := strings.Count(svg, "<circle"); got != 10 {
		t.Errorf("%d body markers, want 10", got)
	}
	if !strings.Contains(svg, ">Saturn</text>") {
		t.Error("body labels missing")
	}
}
