// Package viz renders a skipping run in the terminal.
//
// The live view is a Bubble Tea program built on a Braille pixel canvas:
//
//   - [Model]: interactive view that steps the simulation in wall-clock time
//   - [Canvas]: Braille-based pixel buffer for the trajectory and stone body
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset the throw
//	Tab   - Cycle tunable coefficients
//	↑/↓   - Adjust the selected coefficient
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
