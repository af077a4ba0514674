package widgets

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-drift/formkit/pkg/attr"
	"github.com/go-drift/formkit/pkg/core"
	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/filter"
	"github.com/go-drift/formkit/pkg/gestures"
	"github.com/go-drift/formkit/pkg/input"
)

// Number is a numeric entry field. NaN is the empty value.
//
// Bounds are optional: an unset or unparseable "min" or "max" leaves that
// side open. Committed values are clamped to the bounds and rounded to
// "precision" decimal places when it is set. ArrowUp and ArrowDown step the
// value up and down by "step" (default 1), ten times with Shift, like a
// native number field.
type Number struct {
	*input.Input[float64]
	field

	min, max  float64
	step      float64
	precision int

	placeholder string
	tap         *gestures.TapRecognizer
}

// NewNumber returns an empty number field.
func NewNumber(o Options) *Number {
	cfg := config(o, TagNumber, math.NaN())
	cfg.Equal = floatEqual
	n := &Number{
		Input:     input.New(cfg),
		min:       math.NaN(),
		max:       math.NaN(),
		precision: -1,
	}
	n.AddFilter(n.normalize)
	n.tap = core.UseController(n, func() *gestures.TapRecognizer {
		return &gestures.TapRecognizer{
			Router:   o.Router,
			CanStart: n.Interactive,
			OnStart:  func() { n.Focus() },
		}
	})
	return n
}

func (n *Number) normalize(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	v = filter.Clamp(n.min, n.max)(v)
	return filter.RoundTo(n.precision)(v)
}

// Empty reports whether no number is entered.
func (n *Number) Empty() bool {
	return math.IsNaN(n.Value())
}

// Min returns the lower bound, NaN when open.
func (n *Number) Min() float64 { return n.min }

// Max returns the upper bound, NaN when open.
func (n *Number) Max() float64 { return n.max }

// Step returns the arrow-key step.
func (n *Number) Step() float64 {
	if n.step > 0 {
		return n.step
	}
	return 1
}

// Precision returns the number of decimals kept, or -1 for all.
func (n *Number) Precision() int { return n.precision }

// Placeholder returns the hint shown when empty.
func (n *Number) Placeholder() string { return n.placeholder }

// HandlePointer focuses the field on press.
func (n *Number) HandlePointer(event gestures.PointerEvent) {
	n.tap.HandlePointer(event)
}

// HandleKey steps the value with ArrowUp/ArrowDown and PageUp/PageDown.
// Stepping an empty field starts from min, or zero.
func (n *Number) HandleKey(event gestures.KeyEvent) bool {
	if !n.Editable() {
		return false
	}
	delta := n.Step()
	if event.Shift {
		delta *= 10
	}
	switch event.Key {
	case gestures.KeyArrowUp:
	case gestures.KeyArrowDown:
		delta = -delta
	case gestures.KeyPageUp:
		delta *= 10
	case gestures.KeyPageDown:
		delta *= -10
	default:
		return false
	}
	v := n.Value()
	if math.IsNaN(v) {
		v = 0
		if !math.IsNaN(n.min) {
			v = n.min
		}
		n.Edit(v)
		return true
	}
	n.Edit(v + delta)
	return true
}

// SetAttribute applies "min", "max", "step", "precision", "placeholder" and
// "value" plus the common attributes.
func (n *Number) SetAttribute(name, value string) {
	n.setAttribute(name, value, true)
}

// RemoveAttribute clears an attribute.
func (n *Number) RemoveAttribute(name string) {
	n.setAttribute(name, "", false)
}

func (n *Number) setAttribute(name, value string, present bool) {
	if setCommonAttribute(n, &n.field, name, value, present) {
		return
	}
	switch name {
	case "min", "max", "step":
		v := math.NaN()
		if present {
			v = attr.Float64(attr.ParseOptionalFloat(n.Tag(), name, value))
		}
		n.SetState(func() {
			switch name {
			case "min":
				n.min = v
			case "max":
				n.max = v
			case "step":
				n.step = 0
				if v > 0 {
					n.step = v
				}
			}
		})
		n.Change(n.Value())
	case "precision":
		p := -1
		if present {
			p = attr.ParseInt(n.Tag(), name, value, -1)
		}
		n.SetState(func() { n.precision = p })
		n.Change(n.Value())
	case "placeholder":
		n.SetState(func() { n.placeholder = value })
	case "value":
		if !present {
			n.ClearValue()
			return
		}
		n.SetValue(attr.ParseFloat(n.Tag(), name, value))
	}
}

// AnyValue returns the number.
func (n *Number) AnyValue() any {
	return n.Value()
}

// SetAnyValue accepts a float64, an int or nil (empty).
func (n *Number) SetAnyValue(v any) error {
	switch x := v.(type) {
	case nil:
		n.SetValue(math.NaN())
	case float64:
		n.SetValue(x)
	case int:
		n.SetValue(float64(x))
	default:
		return wrongType[float64](n.Tag(), v)
	}
	return nil
}

// SetText commits a number from text. Empty text is the empty value.
func (n *Number) SetText(s string) error {
	v, err := n.parse(s)
	n.SetValue(v)
	return err
}

// EnterText applies text typed by the user. Text that is not a number
// empties the field, as a native number input does.
func (n *Number) EnterText(s string) bool {
	v, _ := n.parse(s)
	return n.Edit(v)
}

func (n *Number) parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), wrongType[float64](n.Tag(), s)
	}
	return v, nil
}

// Text formats the number, "" when empty.
func (n *Number) Text() string {
	v := n.Value()
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', n.precision, 64)
}

// OnAny subscribes with the number boxed as any.
func (n *Number) OnAny(typ events.Type, fn func(events.Event[any])) func() {
	return onAny(n.Input, typ, fn)
}
