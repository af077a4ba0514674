package graphics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// GradientStep is a color stop at an offset in [0, 1].
type GradientStep struct {
	Offset float64
	Color  Color
}

// ComputeGradientSteps spaces colors evenly, at offsets i/(n-1), keeping
// their order. A single color sits at offset 0.
func ComputeGradientSteps(colors ...Color) []GradientStep {
	steps := make([]GradientStep, len(colors))
	for i, c := range colors {
		offset := 0.0
		if len(colors) > 1 {
			offset = float64(i) / float64(len(colors)-1)
		}
		steps[i] = GradientStep{Offset: offset, Color: c}
	}
	return steps
}

// ParseColorSteps parses a comma separated list of hex colors into evenly
// spaced steps.
func ParseColorSteps(s string) ([]GradientStep, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	colors := make([]Color, 0, len(parts))
	for _, p := range parts {
		c, err := ParseHex(p)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return ComputeGradientSteps(colors...), nil
}

// GradientSteps holds a color ramp. Its steps are always sorted ascending by
// offset. The zero value is an empty ramp.
type GradientSteps struct {
	steps []GradientStep
}

// NewGradientSteps returns a ramp holding steps.
func NewGradientSteps(steps ...GradientStep) *GradientSteps {
	g := &GradientSteps{}
	g.Set(steps)
	return g
}

// Set replaces the steps, sorting them by offset. Steps with equal offsets
// keep their relative order.
func (g *GradientSteps) Set(steps []GradientStep) {
	sorted := make([]GradientStep, len(steps))
	copy(sorted, steps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	g.steps = sorted
}

// Steps returns a copy of the sorted steps.
func (g *GradientSteps) Steps() []GradientStep {
	return append([]GradientStep(nil), g.steps...)
}

// Len returns the number of steps.
func (g *GradientSteps) Len() int {
	return len(g.steps)
}

// At returns the interpolated color at offset t.
func (g *GradientSteps) At(t float64) Color {
	switch len(g.steps) {
	case 0:
		return ColorTransparent
	case 1:
		return g.steps[0].Color
	}
	if t <= g.steps[0].Offset {
		return g.steps[0].Color
	}
	for i := 1; i < len(g.steps); i++ {
		a, b := g.steps[i-1], g.steps[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return Lerp(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return g.steps[len(g.steps)-1].Color
}

// CSSGradient renders the steps as a horizontal CSS linear gradient. Offsets
// map into the middle half of the track, (offset/2 + 1/4) * 100%, leaving
// room for the handle caps at either end.
func (g *GradientSteps) CSSGradient() string {
	if len(g.steps) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("linear-gradient(to right")
	for _, s := range g.steps {
		pct := (s.Offset/2 + 0.25) * 100
		fmt.Fprintf(&b, ", %s %s%%", s.Color.CSS(), strconv.FormatFloat(pct, 'f', -1, 64))
	}
	b.WriteString(")")
	return b.String()
}
