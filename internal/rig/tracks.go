package rig

import (
	"math"

	"github.com/orrerylab/orrery/internal/scene"
)

// animatePath writes the revolution track: the curve's eval-time runs
// linearly from 0 to periodFrames over periodFrames frames and then
// repeats, so the follower completes one lap per period. The raw value
// range equals the frame count; the follow-path constraint divides by
// the curve's path duration to recover the [0,1) parameter.
func (a *Assembler) animatePath(curve *scene.Node, periodFrames int) error {
	start := a.Scale.StartFrame
	if err := a.Scene.Keyframe(curve, scene.PropEvalTime, start, 0); err != nil {
		return err
	}
	if err := a.Scene.Keyframe(curve, scene.PropEvalTime, start+periodFrames, float64(periodFrames)); err != nil {
		return err
	}
	return a.Scene.SetTrackMode(curve, scene.PropEvalTime, scene.InterpLinear, scene.ExtrapRepeat)
}

// animateSpin writes the rotation track: one full turn about the
// node's (tilted) local Z axis per spinFrames frames, negative
// direction for retrograde rotation. Linear interpolation keeps the
// angular rate constant.
func (a *Assembler) animateSpin(node *scene.Node, spinFrames, dir int) error {
	start := a.Scale.StartFrame
	current := node.Rotation[2]
	if err := a.Scene.Keyframe(node, scene.PropSpinZ, start, current); err != nil {
		return err
	}
	if err := a.Scene.Keyframe(node, scene.PropSpinZ, start+spinFrames, current+float64(dir)*2*math.Pi); err != nil {
		return err
	}
	return a.Scene.SetTrackMode(node, scene.PropSpinZ, scene.InterpLinear, scene.ExtrapRepeat)
}
