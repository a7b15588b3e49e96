package viz

import (
	"github.com/orrerylab/orrery/internal/builder"
	"github.com/orrerylab/orrery/internal/rig"
)

// orbitSegments is the polyline resolution per orbit.
const orbitSegments = 96

// SystemWireframe builds the edge set for a rebuilt system at the
// given frame: every orbit as a closed polyline and every body as a
// dot. Satellite orbits ride their primary, so the whole frame has to
// be resampled as time advances.
func SystemWireframe(res *builder.Result, frame float64) *Wireframe {
	wf := NewWireframe()
	for _, name := range res.Order {
		r := res.Rigs[name]
		if r.Path != nil {
			var off Vec3
			if r.CurveNode != nil {
				x, y, z := r.CurveNode.WorldPosition(frame)
				off = Vec3{x, y, z}
			}
			prev := pathPoint(r, 0, off)
			for i := 1; i <= orbitSegments; i++ {
				cur := pathPoint(r, float64(i)/orbitSegments, off)
				wf.AddEdge(prev, cur)
				prev = cur
			}
		}
		if r.BodyNode != nil {
			x, y, z := r.BodyNode.WorldPosition(frame)
			dot := 1
			if r.Config.Radius > 2 {
				dot = 2
			}
			wf.AddPoint(Vec3{x, y, z}, dot)
		}
	}
	return wf
}

func pathPoint(r *rig.Rig, u float64, off Vec3) Vec3 {
	p := r.Path.Point(u)
	return Vec3{p.X, p.Y, p.Z}.Add(off)
}
