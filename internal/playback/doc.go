// Package playback drives step-emitting algorithm runs one step at a time.
//
// A [Driver] owns zero or one active [algo.Run]. The host loop decides the
// pacing and calls [Driver.Advance] once per frame; the driver forwards each
// step to its observers and metrics without interpreting the highlights.
//
//	d := playback.New(registry.New())
//	_ = d.Start("quick_sort", arr, registry.Options{})
//	for d.IsActive() {
//	    step, _ := d.Advance()
//	    render(step)
//	}
//
// An [Ensemble] groups independent drivers for side-by-side comparison. Each
// member works on its own copy of the input.
//
// # Thread Safety
//
// Drivers are NOT thread-safe; they are meant to be owned by a single event loop.
package playback
