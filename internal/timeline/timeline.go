// Package timeline maps physical periods onto animation frame counts.
//
// A single Scale is shared by every body in a rebuild so that relative
// speeds stay proportionate: a planet with twice the rotation period
// always gets twice the frames per revolution.
package timeline

import "math"

// Scale converts physical periods into frames. It is passed explicitly
// wherever frame counts are derived; there is no package-level state.
type Scale struct {
	FramesPerDay  int `yaml:"frames_per_day"`  // frames for one 24h rotation
	FramesPerYear int `yaml:"frames_per_year"` // frames for one Earth-year revolution
	FloorFrames   int `yaml:"floor_frames"`    // minimum frames for any period
	StartFrame    int `yaml:"start_frame"`     // first frame of every track
	FPS           int `yaml:"fps"`             // playback rate hint for the host
}

// DefaultScale mirrors the reference animation: one Earth day is four
// seconds at 30 fps, one Earth year forty.
func DefaultScale() Scale {
	return Scale{
		FramesPerDay:  120,
		FramesPerYear: 1200,
		FloorFrames:   10,
		StartFrame:    1,
		FPS:           30,
	}
}

// FramesForHours returns the frame count for a rotation period given
// in hours. The sign of the period is ignored; retrograde direction is
// reported separately by Direction. Short periods clamp to FloorFrames.
func (s Scale) FramesForHours(hours float64) int {
	return s.clamp(float64(s.FramesPerDay) * math.Abs(hours) / 24)
}

// FramesForDays returns the frame count for a period given in days.
func (s Scale) FramesForDays(days float64) int {
	return s.clamp(float64(s.FramesPerDay) * math.Abs(days))
}

// FramesForYears returns the frame count for a revolution period given
// in Earth years.
func (s Scale) FramesForYears(years float64) int {
	return s.clamp(float64(s.FramesPerYear) * math.Abs(years))
}

func (s Scale) clamp(frames float64) int {
	n := int(math.Round(frames))
	if n < s.FloorFrames {
		return s.FloorFrames
	}
	return n
}

// Direction maps a signed rotation period to a spin sign: -1 for
// retrograde (negative hours), +1 otherwise. Direction(0) is +1.
func Direction(hours float64) int {
	if hours < 0 {
		return -1
	}
	return 1
}
