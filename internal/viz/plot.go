package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/orrerylab/orrery/internal/builder"
)

// DistancePlot charts a body's distance from its focus over one full
// orbital cycle. A circular orbit plots flat; eccentricity shows up
// as the swing between periapsis and apoapsis.
func DistancePlot(res *builder.Result, name string, width, height int) (string, error) {
	r, ok := res.Rigs[name]
	if !ok {
		return "", fmt.Errorf("no such body %q", name)
	}
	if r.Path == nil {
		return "", fmt.Errorf("%s does not orbit", name)
	}

	samples := make([]float64, width)
	for i := range samples {
		p := r.Path.Point(float64(i) / float64(len(samples)))
		samples[i] = math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	}
	caption := fmt.Sprintf("%s orbit distance over one cycle (%d frames)", name, r.PeriodFrames)
	return asciigraph.Plot(samples,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption)), nil
}
