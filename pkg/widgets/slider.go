package widgets

import (
	"math"
	"strconv"

	"github.com/go-drift/formkit/pkg/attr"
	"github.com/go-drift/formkit/pkg/core"
	"github.com/go-drift/formkit/pkg/errors"
	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/gestures"
	"github.com/go-drift/formkit/pkg/input"
)

// Default slider bounds.
const (
	DefaultSliderMin = 0.0
	DefaultSliderMax = 100.0
)

// Slider selects a number in [Min, Max] by dragging a circular handle along
// a track or with the arrow keys.
//
// Pointer positions map through the track's usable travel (width minus the
// handle diameter) into the range, are clamped, and are quantized when a
// step is set. Unparseable min or max attributes are reported and leave the
// previous bound in place; an unparseable step unsets stepping.
type Slider struct {
	*input.Input[float64]
	field

	rng   gestures.Range
	track gestures.Track
	drag  *gestures.DragController
}

// NewSlider returns a slider over [0, 100] holding 0.
func NewSlider(o Options) *Slider {
	return newSlider(o, TagSlider, gestures.Range{Min: DefaultSliderMin, Max: DefaultSliderMax})
}

func newSlider(o Options, tag string, rng gestures.Range) *Slider {
	cfg := config(o, tag, rng.Min)
	cfg.Equal = floatEqual
	s := &Slider{Input: input.New(cfg), rng: rng}
	s.AddFilter(s.normalize)
	s.drag = core.UseController(s, func() *gestures.DragController {
		return &gestures.DragController{
			Router:   o.Router,
			CanStart: s.Editable,
			OnStart:  func() { s.Focus() },
			OnDrag:   s.dragTo,
		}
	})
	return s
}

func (s *Slider) normalize(v float64) float64 {
	if math.IsNaN(v) {
		return s.rng.Min
	}
	return s.rng.Quantize(s.rng.Clamp(v))
}

// Range returns the bounds and step.
func (s *Slider) Range() gestures.Range {
	return s.rng
}

// SetRange replaces the bounds and step and re-commits the value if it no
// longer fits.
func (s *Slider) SetRange(r gestures.Range) {
	s.SetState(func() { s.rng = r })
	s.Change(s.Value())
}

// SetTrack records the laid-out track used to map pointer positions.
func (s *Slider) SetTrack(t gestures.Track) {
	s.track = t
	s.SetBounds(t.Rect())
}

// Track returns the laid-out track.
func (s *Slider) Track() gestures.Track {
	return s.track
}

// Ratio returns the handle position as a fraction of travel.
func (s *Slider) Ratio() float64 {
	return s.rng.ToRatio(s.Value())
}

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool {
	return s.drag.Dragging()
}

func (s *Slider) dragTo(p gestures.Offset) {
	s.Edit(s.rng.FromRatio(s.track.Ratio(p.X)))
}

// HandlePointer feeds the drag controller.
func (s *Slider) HandlePointer(event gestures.PointerEvent) {
	s.drag.HandlePointer(event)
}

// HandleKey nudges the value with the arrow keys, Home and End.
func (s *Slider) HandleKey(event gestures.KeyEvent) bool {
	if !s.Editable() {
		return false
	}
	next, ok := s.rng.Nudge(s.Value(), event)
	if !ok {
		return false
	}
	s.Edit(next)
	return true
}

// SetAttribute applies "min", "max", "step" and "value" plus the common
// attributes.
func (s *Slider) SetAttribute(name, value string) {
	s.setAttribute(name, value, true)
}

// RemoveAttribute clears an attribute, restoring defaults for bounds.
func (s *Slider) RemoveAttribute(name string) {
	s.setAttribute(name, "", false)
}

func (s *Slider) setAttribute(name, value string, present bool) {
	if setCommonAttribute(s, &s.field, name, value, present) {
		return
	}
	r := s.rng
	switch name {
	case "min":
		r.Min = boundAttribute(s.Tag(), name, value, present, r.Min, DefaultSliderMin)
	case "max":
		r.Max = boundAttribute(s.Tag(), name, value, present, r.Max, DefaultSliderMax)
	case "step":
		r.Step = 0
		if present {
			if v := attr.ParseFloat(s.Tag(), name, value); v > 0 {
				r.Step = v
			}
		}
	case "value":
		if !present {
			s.ClearValue()
			return
		}
		if err := s.SetText(value); err != nil {
			errors.ReportAttribute("widgets.Slider.SetAttribute", s.Tag(), name, value, "number")
		}
		return
	default:
		return
	}
	s.SetRange(r)
	s.SetDefaultValue(r.Min)
}

func boundAttribute(tag, name, value string, present bool, current, fallback float64) float64 {
	if !present {
		return fallback
	}
	v := attr.ParseFloat(tag, name, value)
	if math.IsNaN(v) {
		return current
	}
	return v
}

// AnyValue returns the number.
func (s *Slider) AnyValue() any {
	return s.Value()
}

// SetAnyValue accepts a float64 or an int.
func (s *Slider) SetAnyValue(v any) error {
	switch x := v.(type) {
	case float64:
		s.SetValue(x)
	case int:
		s.SetValue(float64(x))
	default:
		return wrongType[float64](s.Tag(), v)
	}
	return nil
}

// SetText commits a number.
func (s *Slider) SetText(text string) error {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return wrongType[float64](s.Tag(), text)
	}
	s.SetValue(v)
	return nil
}

// Text formats the number.
func (s *Slider) Text() string {
	return strconv.FormatFloat(s.Value(), 'f', -1, 64)
}

// OnAny subscribes with the number boxed as any.
func (s *Slider) OnAny(typ events.Type, fn func(events.Event[any])) func() {
	return onAny(s.Input, typ, fn)
}
