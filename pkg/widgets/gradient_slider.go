package widgets

import (
	"github.com/go-drift/formkit/pkg/errors"
	"github.com/go-drift/formkit/pkg/gestures"
	"github.com/go-drift/formkit/pkg/graphics"
)

// GradientSlider is a Slider drawn over a color ramp. The ramp is set with
// the "color-steps" attribute (comma separated hex colors, evenly spaced) or
// SetColorSteps; steps are always kept sorted by offset.
type GradientSlider struct {
	*Slider

	steps graphics.GradientSteps
}

// NewGradientSlider returns a gradient slider over [0, 100] with an empty
// ramp.
func NewGradientSlider(o Options) *GradientSlider {
	return newGradientSlider(o, TagGradientSlider, gestures.Range{Min: DefaultSliderMin, Max: DefaultSliderMax})
}

func newGradientSlider(o Options, tag string, rng gestures.Range) *GradientSlider {
	return &GradientSlider{Slider: newSlider(o, tag, rng)}
}

// SetColorSteps replaces the ramp. Steps may arrive in any order.
func (g *GradientSlider) SetColorSteps(steps []graphics.GradientStep) {
	g.SetState(func() { g.steps.Set(steps) })
}

// ColorSteps returns the ramp sorted by offset.
func (g *GradientSlider) ColorSteps() []graphics.GradientStep {
	return g.steps.Steps()
}

// Background returns the CSS gradient for the track.
func (g *GradientSlider) Background() string {
	return g.steps.CSSGradient()
}

// Color returns the ramp color under the handle.
func (g *GradientSlider) Color() graphics.Color {
	return g.steps.At(g.Ratio())
}

// SetAttribute adds "color-steps" to the slider attributes.
func (g *GradientSlider) SetAttribute(name, value string) {
	if name != "color-steps" {
		g.Slider.SetAttribute(name, value)
		return
	}
	steps, err := graphics.ParseColorSteps(value)
	if err != nil {
		errors.ReportAttribute("widgets.GradientSlider.SetAttribute", g.Tag(), name, value, "comma separated hex colors")
		return
	}
	g.SetColorSteps(steps)
}

// RemoveAttribute clears an attribute.
func (g *GradientSlider) RemoveAttribute(name string) {
	if name == "color-steps" {
		g.SetColorSteps(nil)
		return
	}
	g.Slider.RemoveAttribute(name)
}
