package widgets

import (
	"strconv"

	"github.com/go-drift/formkit/pkg/attr"
	"github.com/go-drift/formkit/pkg/core"
	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/gestures"
	"github.com/go-drift/formkit/pkg/input"
)

// Toggle is an on/off switch. Dragging the thumb horizontally commits the
// direction's value once; a tap flips it.
type Toggle struct {
	*input.Input[bool]
	field

	gesture *gestures.ToggleGesture
}

// NewToggle returns a switch in the off position.
func NewToggle(o Options) *Toggle {
	t := &Toggle{Input: input.New(config(o, TagToggle, false))}
	t.gesture = core.UseController(t, func() *gestures.ToggleGesture {
		return &gestures.ToggleGesture{
			Router:   o.Router,
			CanStart: t.Editable,
			OnStart:  func() { t.Focus() },
			Value:    t.Value,
			Commit:   func(v bool) { t.Edit(v) },
			Bounds:   t.boundsFunc(),
		}
	})
	return t
}

// IsOn reports whether the switch is on.
func (t *Toggle) IsOn() bool {
	return t.Value()
}

// HandlePointer feeds the drag/tap gesture.
func (t *Toggle) HandlePointer(event gestures.PointerEvent) {
	t.gesture.HandlePointer(event)
}

// HandleKey handles Enter/Space (flip), ArrowLeft (off) and ArrowRight (on).
func (t *Toggle) HandleKey(event gestures.KeyEvent) bool {
	if !t.Editable() {
		return false
	}
	return t.gesture.HandleKey(event)
}

// SetAttribute applies "checked" plus the common attributes.
func (t *Toggle) SetAttribute(name, value string) {
	t.setAttribute(name, value, true)
}

// RemoveAttribute clears an attribute.
func (t *Toggle) RemoveAttribute(name string) {
	t.setAttribute(name, "", false)
}

func (t *Toggle) setAttribute(name, value string, present bool) {
	if setCommonAttribute(t, &t.field, name, value, present) {
		return
	}
	if name == "checked" || name == "value" {
		t.SetValue(attr.ParseFlag(value, present))
	}
}

// AnyValue returns the switch state.
func (t *Toggle) AnyValue() any {
	return t.Value()
}

// SetAnyValue accepts a bool.
func (t *Toggle) SetAnyValue(v any) error {
	b, ok := v.(bool)
	if !ok {
		return wrongType[bool](t.Tag(), v)
	}
	t.SetValue(b)
	return nil
}

// SetText commits a boolean in strconv.ParseBool form.
func (t *Toggle) SetText(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return wrongType[bool](t.Tag(), s)
	}
	t.SetValue(b)
	return nil
}

// Text returns "true" or "false".
func (t *Toggle) Text() string {
	return strconv.FormatBool(t.Value())
}

// OnAny subscribes with the state boxed as any.
func (t *Toggle) OnAny(typ events.Type, fn func(events.Event[any])) func() {
	return onAny(t.Input, typ, fn)
}
