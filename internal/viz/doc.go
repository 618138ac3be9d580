// Package viz previews scenes in the terminal.
//
// Scenes are drawn on a Braille [Canvas] and driven by Bubble Tea
// programs:
//
//   - [Preview]: any scene, with signal markers and particles moving
//   - [MicroscopeApp]: the virtual microscope with its slider controls
//
// # Key Bindings
//
//	Space - Pause/Resume (preview)
//	h/l   - Magnification down/up (microscope)
//	j/k   - Focus down/up (microscope)
//	s     - Toggle stain (microscope)
//	t     - Time-lapse (microscope)
//	q     - Quit
package viz
