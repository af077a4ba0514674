package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/formkit/pkg/core"
	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/focus"
	"github.com/go-drift/formkit/pkg/gestures"
	"github.com/go-drift/formkit/pkg/graphics"
	"github.com/go-drift/formkit/pkg/input"
)

// hueSteps is the rainbow drawn behind the hue slider.
var hueSteps = graphics.ComputeGradientSteps(
	graphics.ColorRed,
	graphics.RGB(0xff, 0xff, 0x00),
	graphics.ColorGreen,
	graphics.RGB(0x00, 0xff, 0xff),
	graphics.ColorBlue,
	graphics.RGB(0xff, 0x00, 0xff),
	graphics.ColorRed,
)

// ColorPicker combines a hue slider (0-360), a saturation/lightness pad and
// an alpha slider (0-1) into one HSL value.
//
// It listens to each part's Update event, merges the three partial states,
// redraws the alpha ramp from transparent to the opaque current color, and
// only then commits its own value. Parts notify the picker inline whatever
// dispatcher the picker uses, so one change yields one picker Update.
//
// The parts are focus children of the picker: the picker is focused while
// any part is. Hosts deliver input to the parts directly, or to the picker,
// which routes pointer presses by bounds and keys to the part holding
// primary focus.
type ColorPicker struct {
	*input.Input[graphics.HSL]
	field

	hue   *GradientSlider
	tint  *ColorTint
	alpha *GradientSlider

	syncing bool
}

// NewColorPicker returns a picker holding opaque red.
func NewColorPicker(o Options) *ColorPicker {
	def := graphics.HSL{H: 0, S: 100, L: 50, A: 1}
	inline := o
	inline.Dispatcher = nil
	p := &ColorPicker{
		Input: input.New(config(o, TagColorPicker, def)),
		hue:   newGradientSlider(inline, TagGradientSlider, gestures.Range{Min: 0, Max: 360}),
		tint:  NewColorTint(inline),
		alpha: newGradientSlider(inline, TagGradientSlider, gestures.Range{Min: 0, Max: 1, Step: 0.01}),
	}
	p.FocusNode().SkipTraversal = true
	p.hue.SetColorSteps(hueSteps)
	p.hue.SetDefaultValue(def.H)
	p.alpha.SetDefaultValue(def.A)
	p.tint.SetDefaultValue(Tint{Saturation: def.S, Lightness: def.L})
	p.push(def)

	for _, part := range p.parts() {
		part.FocusNode().SetParent(p.FocusNode())
		off := part.OnAny(events.Update, func(events.Event[any]) { p.merge() })
		p.OnDispose(off)
		p.OnDispose(part.Dispose)
	}
	scope := o.Focus
	if scope == nil {
		scope = focus.Default()
	}
	core.UseListenable(p, scope)
	return p
}

// Hue returns the hue slider.
func (p *ColorPicker) Hue() *GradientSlider { return p.hue }

// Tint returns the saturation/lightness pad.
func (p *ColorPicker) Tint() *ColorTint { return p.tint }

// Alpha returns the alpha slider.
func (p *ColorPicker) Alpha() *GradientSlider { return p.alpha }

// Color returns the committed value as RGBA.
func (p *ColorPicker) Color() graphics.Color {
	return p.Value().Color()
}

// read assembles the HSL value held by the parts.
func (p *ColorPicker) read() graphics.HSL {
	t := p.tint.Value()
	return graphics.HSL{H: p.hue.Value(), S: t.Saturation, L: t.Lightness, A: p.alpha.Value()}
}

func (p *ColorPicker) merge() {
	if p.syncing {
		return
	}
	v := p.read()
	p.tint.SetHue(v.H)
	p.updateAlphaRamp(v)
	if p.HasSameValueAs(v) {
		return
	}
	p.Input.Commit(v)
}

func (p *ColorPicker) updateAlphaRamp(v graphics.HSL) {
	opaque := graphics.HSL{H: v.H, S: v.S, L: v.L, A: 1}.Color()
	p.alpha.SetColorSteps(graphics.ComputeGradientSteps(opaque.WithAlpha(0), opaque))
}

// push writes v into the parts without re-entering merge.
func (p *ColorPicker) push(v graphics.HSL) {
	p.syncing = true
	defer func() { p.syncing = false }()
	p.hue.SetValue(v.H)
	p.tint.SetValue(Tint{Saturation: v.S, Lightness: v.L})
	p.tint.SetHue(v.H)
	p.alpha.SetValue(v.A)
	p.updateAlphaRamp(v)
}

// SetValue pushes v into the parts and commits what they hold after their
// filters ran.
func (p *ColorPicker) SetValue(v graphics.HSL) {
	p.push(v)
	p.Input.Commit(p.read())
}

// Commit is SetValue.
func (p *ColorPicker) Commit(v graphics.HSL) {
	p.SetValue(v)
}

// ClearValue restores the default color in every part.
func (p *ColorPicker) ClearValue() {
	p.SetValue(p.DefaultValue())
}

// SetDisabled applies to the picker and its parts.
func (p *ColorPicker) SetDisabled(disabled bool) {
	p.Input.SetDisabled(disabled)
	p.hue.SetDisabled(disabled)
	p.tint.SetDisabled(disabled)
	p.alpha.SetDisabled(disabled)
}

// SetReadOnly applies to the picker and its parts.
func (p *ColorPicker) SetReadOnly(readOnly bool) {
	p.Input.SetReadOnly(readOnly)
	p.hue.SetReadOnly(readOnly)
	p.tint.SetReadOnly(readOnly)
	p.alpha.SetReadOnly(readOnly)
}

// colorPart is the surface the picker needs from each part.
type colorPart interface {
	Element
	Bounds() gestures.Rect
	FocusNode() *focus.Node
}

func (p *ColorPicker) parts() []colorPart {
	return []colorPart{p.hue, p.tint, p.alpha}
}

// Focus gives primary focus to the hue slider unless a part already holds
// it.
func (p *ColorPicker) Focus() bool {
	if p.Focused() {
		return true
	}
	return p.hue.Focus()
}

// HandlePointer routes a press to the part whose bounds contain it. Moves
// and releases reach the parts through the router.
func (p *ColorPicker) HandlePointer(event gestures.PointerEvent) {
	if event.Phase != gestures.PointerPhaseDown {
		return
	}
	for _, part := range p.parts() {
		if part.Bounds().Contains(event.Position) {
			part.HandlePointer(event)
			return
		}
	}
}

// HandleKey routes the key to the part holding primary focus.
func (p *ColorPicker) HandleKey(event gestures.KeyEvent) bool {
	for _, part := range p.parts() {
		if part.FocusNode().HasPrimaryFocus() {
			return part.HandleKey(event)
		}
	}
	return false
}

// SetAttribute applies "value" (a hex color) plus the common attributes.
func (p *ColorPicker) SetAttribute(name, value string) {
	p.setAttribute(name, value, true)
}

// RemoveAttribute clears an attribute.
func (p *ColorPicker) RemoveAttribute(name string) {
	p.setAttribute(name, "", false)
}

func (p *ColorPicker) setAttribute(name, value string, present bool) {
	if setCommonAttribute(p, &p.field, name, value, present) {
		return
	}
	if name != "value" {
		return
	}
	if !present {
		p.ClearValue()
		return
	}
	if err := p.SetText(value); err != nil {
		reportValueAttribute(p.Tag(), value, "hex color")
	}
}

// AnyValue returns the HSL value.
func (p *ColorPicker) AnyValue() any {
	return p.Value()
}

// SetAnyValue accepts a graphics.HSL or a graphics.Color.
func (p *ColorPicker) SetAnyValue(v any) error {
	switch x := v.(type) {
	case graphics.HSL:
		p.SetValue(x)
	case graphics.Color:
		p.SetValue(graphics.HSLFromColor(x))
	default:
		return wrongType[graphics.HSL](p.Tag(), v)
	}
	return nil
}

// SetText commits a hex color.
func (p *ColorPicker) SetText(s string) error {
	c, err := graphics.ParseHex(s)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Tag(), err)
	}
	h := graphics.HSLFromColor(c)
	h.A = math.Round(h.A*100) / 100
	p.SetValue(h)
	return nil
}

// Text formats the value as a hex color.
func (p *ColorPicker) Text() string {
	return p.Color().Hex()
}

// OnAny subscribes with the HSL value boxed as any.
func (p *ColorPicker) OnAny(typ events.Type, fn func(events.Event[any])) func() {
	return onAny(p.Input, typ, fn)
}
