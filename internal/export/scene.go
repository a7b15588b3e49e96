// Package export serializes a built system: the scene graph with its
// tracks as JSON, per-frame body positions as CSV, and a top-down
// orbit map as SVG.
package export

import (
	"encoding/json"
	"io"

	"github.com/orrerylab/orrery/internal/builder"
	"github.com/orrerylab/orrery/internal/scene"
	"github.com/orrerylab/orrery/internal/timeline"
)

// Doc is the JSON scene description a driver hands to a renderer.
type Doc struct {
	Timeline TimelineDoc `json:"timeline"`
	Nodes    []NodeDoc   `json:"nodes"`
	Skipped  []string    `json:"skipped,omitempty"`
}

// TimelineDoc carries the playback bounds the driver should apply.
type TimelineDoc struct {
	StartFrame int `json:"start_frame"`
	EndFrame   int `json:"end_frame"`
	FPS        int `json:"fps"`
}

// NodeDoc is one scene node. Hierarchy is by parent name; creation
// order is preserved.
type NodeDoc struct {
	Name         string     `json:"name"`
	Kind         string     `json:"kind"`
	Parent       string     `json:"parent,omitempty"`
	Location     [3]float64 `json:"location"`
	Rotation     [3]float64 `json:"rotation"`
	Scale        [3]float64 `json:"scale"`
	Geometry     *GeoDoc    `json:"geometry,omitempty"`
	PathDuration int        `json:"path_duration,omitempty"`
	FollowTarget string     `json:"follow_target,omitempty"`
	Tracks       []TrackDoc `json:"tracks,omitempty"`
}

// GeoDoc describes mesh geometry.
type GeoDoc struct {
	Shape  string  `json:"shape"`
	Radius float64 `json:"radius,omitempty"`
	Inner  float64 `json:"inner,omitempty"`
	Outer  float64 `json:"outer,omitempty"`
}

// TrackDoc is one animation track.
type TrackDoc struct {
	Property string   `json:"property"`
	Keys     []KeyDoc `json:"keys"`
	Interp   string   `json:"interpolation"`
	Extrap   string   `json:"extrapolation"`
}

// KeyDoc is one keyframe.
type KeyDoc struct {
	Frame int     `json:"frame"`
	Value float64 `json:"value"`
}

// SceneDescription flattens the graph and rebuild result into a Doc.
func SceneDescription(g *scene.Graph, res *builder.Result, scale timeline.Scale) *Doc {
	doc := &Doc{
		Timeline: TimelineDoc{
			StartFrame: res.StartFrame,
			EndFrame:   res.EndFrame,
			FPS:        scale.FPS,
		},
	}
	for _, s := range res.Skipped {
		doc.Skipped = append(doc.Skipped, s.Name)
	}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, nodeDoc(n))
	}
	return doc
}

func nodeDoc(n *scene.Node) NodeDoc {
	d := NodeDoc{
		Name:         n.Name,
		Kind:         n.Kind.String(),
		Location:     n.Location,
		Rotation:     n.Rotation,
		Scale:        n.Scale,
		PathDuration: n.PathDuration,
	}
	if p := n.Parent(); p != nil {
		d.Parent = p.Name
	}
	if n.FollowTarget != nil {
		d.FollowTarget = n.FollowTarget.Name
	}
	if g := n.Geometry; g != nil {
		gd := &GeoDoc{Radius: g.Radius, Inner: g.Inner, Outer: g.Outer}
		switch g.Shape {
		case scene.ShapeSphere:
			gd.Shape = "sphere"
		case scene.ShapeAnnulus:
			gd.Shape = "annulus"
		}
		d.Geometry = gd
	}
	for _, tr := range n.Tracks {
		td := TrackDoc{Property: string(tr.Property), Interp: "linear", Extrap: "repeat"}
		if tr.Interp == scene.InterpConstant {
			td.Interp = "constant"
		}
		if tr.Extrap == scene.ExtrapHold {
			td.Extrap = "hold"
		}
		for _, k := range tr.Keys {
			td.Keys = append(td.Keys, KeyDoc{Frame: k.Frame, Value: k.Value})
		}
		d.Tracks = append(d.Tracks, td)
	}
	return d
}

// WriteJSON writes the indented scene description.
func WriteJSON(w io.Writer, doc *Doc) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
