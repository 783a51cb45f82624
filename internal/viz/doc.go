// Package viz renders algorithm runs in the terminal using Bubble Tea.
//
//   - [Model]: live view of one run, or several side by side in compare mode
//   - [Picker]: entry menu for choosing algorithms and tuning the input
//   - [RenderBars]: block or braille bar chart of a single step
//   - Theme selection with 5 built-in color schemes
//
// The model is only a host: it decides how many steps to pull per tick and
// keeps a bounded replay history. All algorithm state lives behind
// playback.Ensemble.
//
// # Key Bindings
//
//	Space     - Play/Pause (restarts a finished run)
//	N         - Single step
//	R         - Reset with a new array
//	Tab       - Cycle algorithm (paused, single panel only)
//	Up/Down   - Array size
//	+/-       - Steps per tick
//	[ ]       - Scrub through history
//	T         - Cycle color themes
//	?         - Show help overlay
package viz
