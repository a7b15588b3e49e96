// Package viz renders a built system in the terminal.
//
// The interactive viewer is a Bubble Tea program:
//
//   - [Canvas]: braille pixel canvas, 2x4 sub-pixels per cell
//   - [Camera] and [Render3D]: perspective wireframe projection
//   - [Model]: frame-clock playback with a lipgloss side panel
//
// [DistancePlot] gives a non-interactive asciigraph preview of a
// single body's orbit.
package viz
