// Package viz is the interactive terminal viewer built on Bubble Tea.
//
// A self-rescheduling tick message advances the rotation at the configured
// frame rate; every view pass rasterizes the current cloud through
// [spincloud/internal/render].
//
// # Key bindings
//
//	Space - pause/resume the spin
//	R     - reset the rotation angle
//	B     - toggle glyph/braille rasterization
//	T     - cycle color themes
//	+/-   - spin speed
//	Q     - quit
package viz
