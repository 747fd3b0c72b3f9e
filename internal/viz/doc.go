// Package viz runs the metaball animation as an interactive Bubble Tea
// program, framed with lipgloss and topped by a status line.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Respawn the balls
//	+/-   - Raise or lower the threshold
//	?     - Show help line
//	Q     - Quit
package viz
