package filter

import "math"

// Clamp limits a number to [lo, hi]. NaN values and NaN bounds pass through.
func Clamp(lo, hi float64) Filter[float64] {
	return func(v float64) float64 {
		if math.IsNaN(v) {
			return v
		}
		if !math.IsNaN(lo) && v < lo {
			v = lo
		}
		if !math.IsNaN(hi) && v > hi {
			v = hi
		}
		return v
	}
}

// RoundTo rounds a number to the given count of decimal places.
// A negative precision leaves the value unchanged.
func RoundTo(precision int) Filter[float64] {
	return func(v float64) float64 {
		if precision < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return v
		}
		scale := math.Pow(10, float64(precision))
		return math.Round(v*scale) / scale
	}
}

// Quantize snaps a number to the nearest multiple of step.
// A step of zero, negative or NaN leaves the value unchanged.
func Quantize(step float64) Filter[float64] {
	return func(v float64) float64 {
		if !(step > 0) || math.IsNaN(v) {
			return v
		}
		return math.Round(v/step) * step
	}
}
