// Package testing provides helpers for testing formkit widgets.
//
// # Quick Start
//
// Drive debounce timers with a fake clock and record emitted events:
//
//	func TestSlider(t *testing.T) {
//	    clk := formtest.NewFakeClock()
//	    router := gestures.NewRouter()
//	    s := widgets.NewSlider(widgets.Options{Clock: clk, Router: router})
//	    s.SetTrack(gestures.Track{Width: 200, Height: 32})
//	    rec := formtest.Record[float64](s)
//
//	    formtest.Drag(router, s, gestures.Offset{X: 16}, gestures.Offset{X: 184}, 4)
//	    clk.Advance(150 * time.Millisecond)
//
//	    if rec.Count(events.UpdateStable) != 1 {
//	        t.Error("expected one stable event")
//	    }
//	}
//
// # Errors
//
// [CaptureErrors] installs a recording error handler for the duration of a
// test so attribute parse failures can be asserted on.
package testing
