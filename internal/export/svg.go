package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/orrerylab/orrery/internal/builder"
)

// orbitSamples is the per-path resolution of the SVG map.
const orbitSamples = 256

// WriteOrbitMap draws a top-down (XY-plane) map of the system: every
// orbit as a closed path, every body as a dot at the start frame.
func WriteOrbitMap(w io.Writer, res *builder.Result, width, height int) error {
	// World bounds over all orbits, padded 10%.
	minX, minY := -1.0, -1.0
	maxX, maxY := 1.0, 1.0
	type sampled struct {
		name string
		pts  [][2]float64
	}
	var orbits []sampled
	for _, name := range res.Order {
		r := res.Rigs[name]
		if r.Path == nil {
			continue
		}
		// Satellite orbits are drawn around the primary's start
		// position; the curve node's world offset supplies it.
		var ox, oy float64
		if r.CurveNode != nil {
			ox, oy, _ = r.CurveNode.WorldPosition(float64(res.StartFrame))
		}
		s := sampled{name: name}
		for i := 0; i <= orbitSamples; i++ {
			p := r.Path.Point(float64(i) / orbitSamples)
			x, y := p.X+ox, p.Y+oy
			s.pts = append(s.pts, [2]float64{x, y})
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
		orbits = append(orbits, s)
	}

	spanX, spanY := maxX-minX, maxY-minY
	minX -= spanX * 0.1
	maxX += spanX * 0.1
	minY -= spanY * 0.1
	maxY += spanY * 0.1
	spanX, spanY = maxX-minX, maxY-minY

	toScreen := func(x, y float64) (float64, float64) {
		sx := (x - minX) / spanX * float64(width)
		sy := float64(height) - (y-minY)/spanY*float64(height)
		return sx, sy
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a12"/>
`, width, height, width, height)

	for _, o := range orbits {
		sb.WriteString(`<path fill="none" stroke="#445577" stroke-width="1" d="M`)
		for i, p := range o.pts {
			sx, sy := toScreen(p[0], p[1])
			if i == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", sx, sy)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", sx, sy)
			}
		}
		sb.WriteString("\"/>\n")
	}

	for _, name := range res.Order {
		r := res.Rigs[name]
		if r.BodyNode == nil {
			continue
		}
		x, y, _ := r.BodyNode.WorldPosition(float64(res.StartFrame))
		sx, sy := toScreen(x, y)
		radius := 2.0 + r.Config.Radius
		fill := "#ccddee"
		if r.Config.Appearance.Emission > 0 {
			fill = "#ffdd88"
		}
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
<text x="%.1f" y="%.1f" fill="#667799" font-size="10" font-family="monospace">%s</text>
`, sx, sy, radius, fill, sx+radius+2, sy-radius-2, name)
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
