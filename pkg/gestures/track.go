package gestures

import "math"

// Track is the laid-out bounding box of a slider track. Height doubles as
// the diameter of the circular handle, so the handle centre travels
// Width-Height pixels.
type Track struct {
	Left, Top, Width, Height float64
}

// Travel returns the distance the handle centre can move.
func (t Track) Travel() float64 {
	return t.Width - t.Height
}

// Ratio maps a horizontal pointer position to the unclamped fraction of
// travel. A degenerate track (no travel) yields 0.
func (t Track) Ratio(x float64) float64 {
	travel := t.Travel()
	if travel <= 0 {
		return 0
	}
	return (x - t.Left - t.Height/2) / travel
}

// Percent maps p to percentages of the box on both axes, clamped to [0,100].
// Used by two-dimensional pads.
func (t Track) Percent(p Offset) (x, y float64) {
	if t.Width > 0 {
		x = Clamp((p.X-t.Left)/t.Width*100, 0, 100)
	}
	if t.Height > 0 {
		y = Clamp((p.Y-t.Top)/t.Height*100, 0, 100)
	}
	return x, y
}

// Rect returns the track as a Rect.
func (t Track) Rect() Rect {
	return Rect{Left: t.Left, Top: t.Top, Width: t.Width, Height: t.Height}
}

// Remap linearly maps v from [inMin,inMax] to [outMin,outMax].
func Remap(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Clamp limits v to [lo,hi]. A NaN bound is treated as absent.
func Clamp(v, lo, hi float64) float64 {
	if !math.IsNaN(lo) && v < lo {
		v = lo
	}
	if !math.IsNaN(hi) && v > hi {
		v = hi
	}
	return v
}

// Quantize rounds v to the nearest multiple of step. A non-positive or NaN
// step leaves v unchanged.
func Quantize(v, step float64) float64 {
	if !(step > 0) || math.IsNaN(v) {
		return v
	}
	return math.Round(v/step) * step
}

// Range is the value domain of a continuous widget. Step 0 means no
// quantization.
type Range struct {
	Min, Max, Step float64
}

// Clamp limits v to [Min,Max].
func (r Range) Clamp(v float64) float64 {
	return Clamp(v, r.Min, r.Max)
}

// Quantize snaps v to Step when one is set and keeps the result in range.
func (r Range) Quantize(v float64) float64 {
	if r.Step > 0 {
		v = r.Clamp(Quantize(v, r.Step))
	}
	return v
}

// FromRatio remaps a travel fraction into the range, clamps and quantizes.
func (r Range) FromRatio(ratio float64) float64 {
	return r.Quantize(r.Clamp(Remap(ratio, 0, 1, r.Min, r.Max)))
}

// ToRatio is the inverse of FromRatio without quantization, clamped to [0,1].
func (r Range) ToRatio(v float64) float64 {
	return Clamp(Remap(v, r.Min, r.Max, 0, 1), 0, 1)
}

// Increment returns the keyboard step: Step, or a hundredth of the span
// when no step is set.
func (r Range) Increment() float64 {
	if r.Step > 0 {
		return r.Step
	}
	return (r.Max - r.Min) / 100
}

// Nudge applies a key press to v. ArrowUp and ArrowLeft decrement, ArrowDown
// and ArrowRight increment, Shift multiplies the step by ten, Home and End
// jump to the bounds. The result is clamped. ok is false for other keys.
func (r Range) Nudge(v float64, event KeyEvent) (next float64, ok bool) {
	inc := r.Increment()
	if event.Shift {
		inc *= 10
	}
	switch event.Key {
	case KeyArrowUp, KeyArrowLeft:
		next = v - inc
	case KeyArrowDown, KeyArrowRight:
		next = v + inc
	case KeyHome:
		next = r.Min
	case KeyEnd:
		next = r.Max
	default:
		return v, false
	}
	return r.Clamp(next), true
}
