package graphics

import "math"

// HSL is a color in hue (0-360), saturation (0-100), lightness (0-100) and
// alpha (0-1).
type HSL struct {
	H, S, L float64
	A       float64
}

// Color converts h to RGB.
func (h HSL) Color() Color {
	hue := math.Mod(h.H, 360)
	if hue < 0 {
		hue += 360
	}
	s := clamp01(h.S / 100)
	l := clamp01(h.L / 100)

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGBA(toByte(r+m), toByte(g+m), toByte(b+m), h.A)
}

// HSLFromColor converts c to HSL.
func HSLFromColor(c Color) HSL {
	r, g, b, a := c.RGBAF()
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2
	if hi == lo {
		return HSL{H: 0, S: 0, L: l * 100, A: a}
	}
	d := hi - lo
	s := d / (1 - math.Abs(2*l-1))
	var h float64
	switch hi {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: s * 100, L: l * 100, A: a}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * maxByte))
}
