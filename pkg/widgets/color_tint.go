package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/formkit/pkg/attr"
	"github.com/go-drift/formkit/pkg/core"
	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/gestures"
	"github.com/go-drift/formkit/pkg/graphics"
	"github.com/go-drift/formkit/pkg/input"
	"github.com/go-drift/formkit/pkg/tint"
)

// Tint is a saturation and lightness pair, both in [0, 100].
type Tint struct {
	Saturation float64
	Lightness  float64
}

func (t Tint) String() string {
	return fmt.Sprintf("%g,%g", t.Saturation, t.Lightness)
}

// ColorTint is a two-dimensional saturation/lightness pad. Its value is a
// Tint; the hue only affects presentation.
type ColorTint struct {
	*input.Input[Tint]
	field

	hue  *core.Managed[float64]
	pad  gestures.Track
	drag *gestures.DragController
}

// NewColorTint returns a pad at full saturation and half lightness, the
// top-right corner.
func NewColorTint(o Options) *ColorTint {
	cfg := config(o, TagColorTint, Tint{Saturation: 100, Lightness: 50})
	cfg.Equal = func(a, b Tint) bool {
		return floatEqual(a.Saturation, b.Saturation) && floatEqual(a.Lightness, b.Lightness)
	}
	c := &ColorTint{Input: input.New(cfg)}
	c.AddFilter(clampTint)
	c.hue = core.NewManaged(c, 0.0)
	c.drag = core.UseController(c, func() *gestures.DragController {
		return &gestures.DragController{
			Router:   o.Router,
			CanStart: c.Editable,
			OnStart:  func() { c.Focus() },
			OnDrag:   c.dragTo,
		}
	})
	return c
}

func clampTint(t Tint) Tint {
	return Tint{
		Saturation: gestures.Clamp(t.Saturation, 0, 100),
		Lightness:  gestures.Clamp(t.Lightness, 0, 100),
	}
}

// Hue returns the display hue in degrees.
func (c *ColorTint) Hue() float64 {
	return c.hue.Value()
}

// SetHue sets the display hue without committing a value.
func (c *ColorTint) SetHue(h float64) {
	c.hue.Set(h)
}

// SetPad records the laid-out pad box.
func (c *ColorTint) SetPad(t gestures.Track) {
	c.pad = t
	c.SetBounds(t.Rect())
}

// Position returns the handle position in percent of the pad.
func (c *ColorTint) Position() tint.Point {
	v := c.Value()
	x, y := tint.FromHSL(v.Saturation, v.Lightness)
	return tint.Point{X: x, Y: y}
}

// Color returns the opaque color at the current hue and tint.
func (c *ColorTint) Color() graphics.Color {
	v := c.Value()
	return graphics.HSL{H: c.hue.Value(), S: v.Saturation, L: v.Lightness, A: 1}.Color()
}

func (c *ColorTint) dragTo(p gestures.Offset) {
	x, y := c.pad.Percent(p)
	s, l := tint.ToHSL(x, y)
	c.Edit(Tint{Saturation: s, Lightness: l})
}

// HandlePointer feeds the drag controller.
func (c *ColorTint) HandlePointer(event gestures.PointerEvent) {
	c.drag.HandlePointer(event)
}

// HandleKey moves the handle one percent per arrow press, ten with Shift.
func (c *ColorTint) HandleKey(event gestures.KeyEvent) bool {
	if !c.Editable() {
		return false
	}
	_, s, l, ok := tint.Nudge(c.Position(), event)
	if !ok {
		return false
	}
	c.Edit(Tint{Saturation: s, Lightness: l})
	return true
}

// SetAttribute applies "hue" and "value" ("saturation,lightness") plus the
// common attributes.
func (c *ColorTint) SetAttribute(name, value string) {
	c.setAttribute(name, value, true)
}

// RemoveAttribute clears an attribute.
func (c *ColorTint) RemoveAttribute(name string) {
	c.setAttribute(name, "", false)
}

func (c *ColorTint) setAttribute(name, value string, present bool) {
	if setCommonAttribute(c, &c.field, name, value, present) {
		return
	}
	switch name {
	case "hue":
		h := 0.0
		if present {
			h = attr.ParseFloat(c.Tag(), name, value)
		}
		if !math.IsNaN(h) {
			c.SetHue(h)
		}
	case "value":
		if !present {
			c.ClearValue()
			return
		}
		if err := c.SetText(value); err != nil {
			reportValueAttribute(c.Tag(), value, "saturation,lightness")
		}
	}
}

// AnyValue returns the Tint.
func (c *ColorTint) AnyValue() any {
	return c.Value()
}

// SetAnyValue accepts a Tint.
func (c *ColorTint) SetAnyValue(v any) error {
	t, ok := v.(Tint)
	if !ok {
		return wrongType[Tint](c.Tag(), v)
	}
	c.SetValue(t)
	return nil
}

// SetText commits "saturation,lightness".
func (c *ColorTint) SetText(s string) error {
	var t Tint
	if _, err := fmt.Sscanf(s, "%g,%g", &t.Saturation, &t.Lightness); err != nil {
		return fmt.Errorf("%s: parse %q: %w", c.Tag(), s, err)
	}
	c.SetValue(t)
	return nil
}

// Text formats the Tint as "saturation,lightness".
func (c *ColorTint) Text() string {
	return c.Value().String()
}

// OnAny subscribes with the Tint boxed as any.
func (c *ColorTint) OnAny(typ events.Type, fn func(events.Event[any])) func() {
	return onAny(c.Input, typ, fn)
}
