package scene

import (
	"math"
	"testing"
)

func TestTrackLinearInterpolation(t *testing.T) {
	tr := &Track{
		Property: PropEvalTime,
		Keys:     []Key{{Frame: 1, Value: 0}, {Frame: 401, Value: 400}},
		Interp:   InterpLinear,
		Extrap:   ExtrapHold,
	}

	tests := []struct {
		frame float64
		want  float64
	}{
		{1, 0},
		{101, 100},
		{201, 200},
		{401, 400},
	}
	for _, tt := range tests {
		if got := tr.ValueAt(tt.frame); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ValueAt(%g) = %v, want %v", tt.frame, got, tt.want)
		}
	}

	if got := tr.Span(); got != 400 {
		t.Errorf("Span() = %d, want 400", got)
	}
}

func TestTrackRepeatExtrapolation(t *testing.T) {
	tr := &Track{
		Property: PropSpinZ,
		Keys:     []Key{{Frame: 1, Value: 0}, {Frame: 121, Value: 2 * math.Pi}},
		Interp:   InterpLinear,
		Extrap:   ExtrapRepeat,
	}

	// One frame into the second cycle equals one frame into the first.
	if a, b := tr.ValueAt(2), tr.ValueAt(122); math.Abs(a-b) > 1e-9 {
		t.Errorf("repeat mismatch: ValueAt(2)=%v ValueAt(122)=%v", a, b)
	}
	// Repeat also extends before the keyed range.
	if a, b := tr.ValueAt(61), tr.ValueAt(61-120); math.Abs(a-b) > 1e-9 {
		t.Errorf("pre-repeat mismatch: %v vs %v", a, b)
	}
	// Quarter cycle is a quarter turn.
	if got, want := tr.ValueAt(31), math.Pi/2; math.Abs(got-want) > 1e-9 {
		t.Errorf("ValueAt(31) = %v, want %v", got, want)
	}
}

func TestTrackDegenerateKeys(t *testing.T) {
	empty := &Track{Property: PropSpinZ}
	if got := empty.ValueAt(10); got != 0 {
		t.Errorf("empty track ValueAt = %v, want 0", got)
	}

	single := &Track{Property: PropSpinZ, Keys: []Key{{Frame: 5, Value: 3.5}}}
	if got := single.ValueAt(100); got != 3.5 {
		t.Errorf("single-key track ValueAt = %v, want 3.5", got)
	}
}
