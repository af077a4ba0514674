package widgets

import (
	"strings"

	"github.com/go-drift/formkit/pkg/core"
	"github.com/go-drift/formkit/pkg/errors"
	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/gestures"
	"github.com/go-drift/formkit/pkg/input"
)

// CheckState is the tri-state value of a checkbox.
type CheckState int8

const (
	Unchecked     CheckState = -1
	Indeterminate CheckState = 0
	Checked       CheckState = 1
)

func (s CheckState) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Indeterminate:
		return "indeterminate"
	case Checked:
		return "checked"
	}
	return "invalid"
}

// ParseCheckState accepts the state names, -1/0/1 and true/false.
func ParseCheckState(s string) (CheckState, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unchecked", "-1", "false":
		return Unchecked, true
	case "indeterminate", "0", "mixed":
		return Indeterminate, true
	case "checked", "1", "true":
		return Checked, true
	}
	return Unchecked, false
}

// Next returns the state a click produces: Checked becomes Unchecked,
// anything else becomes Checked.
func (s CheckState) Next() CheckState {
	if s == Checked {
		return Unchecked
	}
	return Checked
}

// Checkbox is a tri-state check control.
//
// A click (press and release inside the bounds), Enter or Space advances the
// state with [CheckState.Next]; Indeterminate is only reachable
// programmatically or through attributes.
type Checkbox struct {
	*input.Input[CheckState]
	field

	tap *gestures.TapRecognizer
}

// NewCheckbox returns an unchecked checkbox.
func NewCheckbox(o Options) *Checkbox {
	c := &Checkbox{Input: input.New(config(o, TagCheckbox, Unchecked))}
	c.tap = core.UseController(c, func() *gestures.TapRecognizer {
		return &gestures.TapRecognizer{
			Router:   o.Router,
			CanStart: c.Interactive,
			OnStart:  func() { c.Focus() },
			OnTap:    c.Toggle,
			Bounds:   c.boundsFunc(),
		}
	})
	return c
}

// Checked reports whether the state is Checked.
func (c *Checkbox) Checked() bool {
	return c.Value() == Checked
}

// Toggle applies a user click.
func (c *Checkbox) Toggle() {
	c.Edit(c.Value().Next())
}

// HandlePointer recognizes clicks.
func (c *Checkbox) HandlePointer(event gestures.PointerEvent) {
	c.tap.HandlePointer(event)
}

// HandleKey toggles on Enter and Space.
func (c *Checkbox) HandleKey(event gestures.KeyEvent) bool {
	if !c.Interactive() {
		return false
	}
	switch event.Key {
	case gestures.KeyEnter, gestures.KeySpace:
		c.Toggle()
		return true
	}
	return false
}

// SetAttribute applies checkbox attributes: "checked", "indeterminate" and
// "value" (a state name) plus the common ones.
func (c *Checkbox) SetAttribute(name, value string) {
	c.setAttribute(name, value, true)
}

// RemoveAttribute clears an attribute.
func (c *Checkbox) RemoveAttribute(name string) {
	c.setAttribute(name, "", false)
}

func (c *Checkbox) setAttribute(name, value string, present bool) {
	if setCommonAttribute(c, &c.field, name, value, present) {
		return
	}
	switch name {
	case "checked":
		if present {
			c.SetValue(Checked)
		} else {
			c.SetValue(Unchecked)
		}
	case "indeterminate":
		if present {
			c.SetValue(Indeterminate)
		} else if c.Value() == Indeterminate {
			c.SetValue(Unchecked)
		}
	case "value":
		if !present {
			c.ClearValue()
			return
		}
		if err := c.SetText(value); err != nil {
			errors.ReportAttribute("widgets.Checkbox.SetAttribute", c.Tag(), name, value, "checked, unchecked or indeterminate")
		}
	}
}

// AnyValue returns the state.
func (c *Checkbox) AnyValue() any {
	return c.Value()
}

// SetAnyValue accepts a CheckState, a bool or an int.
func (c *Checkbox) SetAnyValue(v any) error {
	switch x := v.(type) {
	case CheckState:
		c.SetValue(x)
	case bool:
		if x {
			c.SetValue(Checked)
		} else {
			c.SetValue(Unchecked)
		}
	case int:
		if x < -1 || x > 1 {
			return wrongType[CheckState](c.Tag(), v)
		}
		c.SetValue(CheckState(x))
	default:
		return wrongType[CheckState](c.Tag(), v)
	}
	return nil
}

// SetText commits a state name.
func (c *Checkbox) SetText(s string) error {
	state, ok := ParseCheckState(s)
	if !ok {
		return wrongType[CheckState](c.Tag(), s)
	}
	c.SetValue(state)
	return nil
}

// Text returns the state name.
func (c *Checkbox) Text() string {
	return c.Value().String()
}

// OnAny subscribes with the state boxed as any.
func (c *Checkbox) OnAny(typ events.Type, fn func(events.Event[any])) func() {
	return onAny(c.Input, typ, fn)
}
