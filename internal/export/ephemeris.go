package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/orrerylab/orrery/internal/builder"
)

// WriteEphemeris samples every built body's world position from the
// start frame to the end frame (inclusive) at the given step and
// writes one CSV row per frame: frame, then x,y,z per body in build
// order.
func WriteEphemeris(w io.Writer, res *builder.Result, step int) error {
	if step < 1 {
		step = 1
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"frame"}
	for _, name := range res.Order {
		header = append(header, name+"_x", name+"_y", name+"_z")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for frame := res.StartFrame; frame <= res.EndFrame; frame += step {
		row := []string{strconv.Itoa(frame)}
		for _, name := range res.Order {
			r := res.Rigs[name]
			if r.BodyNode == nil {
				return fmt.Errorf("body %q has no mesh", name)
			}
			x, y, z := r.BodyNode.WorldPosition(float64(frame))
			row = append(row,
				strconv.FormatFloat(x, 'f', 6, 64),
				strconv.FormatFloat(y, 'f', 6, 64),
				strconv.FormatFloat(z, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}
