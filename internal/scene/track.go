package scene

import "math"

// Property names an animatable value on a node.
type Property string

const (
	// PropEvalTime is the path parameter of a curve node, expressed in
	// frames: a follower at eval-time t sits at u = t/PathDuration.
	PropEvalTime Property = "eval_time"
	// PropSpinZ is the node's rotation about its local Z axis, in
	// radians. On a tilted spin carrier, local Z is the tilted axis.
	PropSpinZ Property = "rotation_euler.z"
)

// Interpolation selects the value curve between two keys.
type Interpolation int

const (
	InterpLinear Interpolation = iota
	InterpConstant
)

// Extrapolation selects behavior outside the keyed range.
type Extrapolation int

const (
	// ExtrapRepeat cycles the keyed segment indefinitely before the
	// first key and after the last.
	ExtrapRepeat Extrapolation = iota
	ExtrapHold
)

// Key is one keyframe.
type Key struct {
	Frame int
	Value float64
}

// Track drives one property of one node. The generator only ever
// emits two-key linear repeating tracks, but evaluation handles any
// key count.
type Track struct {
	Property Property
	Keys     []Key
	Interp   Interpolation
	Extrap   Extrapolation
}

// Span returns the frame distance between the first and last key.
func (t *Track) Span() int {
	if len(t.Keys) < 2 {
		return 0
	}
	return t.Keys[len(t.Keys)-1].Frame - t.Keys[0].Frame
}

// ValueAt evaluates the track at a (possibly fractional) frame.
func (t *Track) ValueAt(frame float64) float64 {
	if len(t.Keys) == 0 {
		return 0
	}
	if len(t.Keys) == 1 {
		return t.Keys[0].Value
	}

	first := t.Keys[0]
	last := t.Keys[len(t.Keys)-1]
	span := float64(last.Frame - first.Frame)

	switch t.Extrap {
	case ExtrapRepeat:
		// Cycle the keyed segment both before the first key and after
		// the last. The generator's tracks loop seamlessly: the path
		// is closed and spin wraps modulo 2π.
		if span > 0 {
			off := math.Mod(frame-float64(first.Frame), span)
			if off < 0 {
				off += span
			}
			return t.valueWithin(float64(first.Frame) + off)
		}
	case ExtrapHold:
		if frame <= float64(first.Frame) {
			return first.Value
		}
		if frame >= float64(last.Frame) {
			return last.Value
		}
	}
	return t.valueWithin(frame)
}

// valueWithin interpolates inside the keyed range.
func (t *Track) valueWithin(frame float64) float64 {
	for i := 0; i < len(t.Keys)-1; i++ {
		k0, k1 := t.Keys[i], t.Keys[i+1]
		if frame > float64(k1.Frame) && i < len(t.Keys)-2 {
			continue
		}
		if t.Interp == InterpConstant {
			if frame >= float64(k1.Frame) {
				return k1.Value
			}
			return k0.Value
		}
		den := float64(k1.Frame - k0.Frame)
		if den == 0 {
			return k1.Value
		}
		a := (frame - float64(k0.Frame)) / den
		return k0.Value + a*(k1.Value-k0.Value)
	}
	return t.Keys[0].Value
}
