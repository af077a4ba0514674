// Package tint maps between positions on a two-dimensional
// saturation/lightness pad and HSL saturation and lightness.
//
// Coordinates are percentages of the pad: x runs left to right, y top to
// bottom, both in [0, 100]. The top-right corner is the fully saturated hue,
// the top-left corner white and the bottom edge black.
package tint

import (
	"math"

	"github.com/go-drift/formkit/pkg/gestures"
)

// Point is a position on the pad in percent.
type Point struct {
	X, Y float64
}

// ToHSL converts a pad position to saturation and lightness, both in
// [0, 100]. Coordinates outside [0, 100] are clamped.
func ToHSL(x, y float64) (saturation, lightness float64) {
	x = gestures.Clamp(x, 0, 100)
	y = gestures.Clamp(y, 0, 100)

	v := 1 - y/100
	sv := x / 100
	l := (v / 2) * (2 - sv)
	s := (v * sv) / (1 - math.Abs(2*l-1))
	if math.IsNaN(s) || math.IsInf(s, 0) {
		s = 0
	}
	return s * 100, l * 100
}

// FromHSL converts saturation and lightness to a pad position rounded to
// whole percent.
func FromHSL(saturation, lightness float64) (x, y float64) {
	s := gestures.Clamp(saturation, 0, 100)
	l := gestures.Clamp(lightness, 0, 100)

	m := l
	if l >= 50 {
		m = 100 - l
	}
	t := s * m / 100
	if l+t == 0 {
		x = 0
	} else {
		x = math.Round(200 * t / (l + t))
	}
	y = 100 - math.Round(t+l)
	return x, y
}

// Nudge moves a pad position by one percent in the direction of an arrow
// key, ten with Shift, clamps it, and re-derives saturation and lightness.
// It reports false for keys it does not handle.
func Nudge(p Point, key gestures.KeyEvent) (Point, float64, float64, bool) {
	step := 1.0
	if key.Shift {
		step = 10
	}
	switch key.Key {
	case gestures.KeyArrowLeft:
		p.X -= step
	case gestures.KeyArrowRight:
		p.X += step
	case gestures.KeyArrowUp:
		p.Y -= step
	case gestures.KeyArrowDown:
		p.Y += step
	default:
		return p, 0, 0, false
	}
	p.X = gestures.Clamp(p.X, 0, 100)
	p.Y = gestures.Clamp(p.Y, 0, 100)
	s, l := ToHSL(p.X, p.Y)
	return p, s, l, true
}
