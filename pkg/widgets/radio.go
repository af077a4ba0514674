package widgets

import (
	"strconv"
	"sync"

	"github.com/go-drift/formkit/pkg/attr"
	"github.com/go-drift/formkit/pkg/core"
	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/gestures"
	"github.com/go-drift/formkit/pkg/input"
)

// Radio is one option of a mutually exclusive choice. A click, Enter or
// Space selects it; it is never deselected by the user. Exclusivity is kept
// by a [RadioGroup].
type Radio struct {
	*input.Input[bool]
	field

	option string
	tap    *gestures.TapRecognizer
}

// NewRadio returns an unselected radio.
func NewRadio(o Options) *Radio {
	r := &Radio{Input: input.New(config(o, TagRadio, false))}
	r.tap = core.UseController(r, func() *gestures.TapRecognizer {
		return &gestures.TapRecognizer{
			Router:   o.Router,
			CanStart: r.Interactive,
			OnStart:  func() { r.Focus() },
			OnTap:    r.Select,
			Bounds:   r.boundsFunc(),
		}
	})
	return r
}

// Option returns the value this radio stands for in its group.
func (r *Radio) Option() string {
	return r.option
}

// Select applies a user selection.
func (r *Radio) Select() {
	r.Edit(true)
}

// HandlePointer recognizes clicks.
func (r *Radio) HandlePointer(event gestures.PointerEvent) {
	r.tap.HandlePointer(event)
}

// HandleKey selects on Enter and Space.
func (r *Radio) HandleKey(event gestures.KeyEvent) bool {
	if !r.Interactive() {
		return false
	}
	switch event.Key {
	case gestures.KeyEnter, gestures.KeySpace:
		r.Select()
		return true
	}
	return false
}

// SetAttribute applies "checked" and "value" (the option) plus the common
// attributes.
func (r *Radio) SetAttribute(name, value string) {
	r.setAttribute(name, value, true)
}

// RemoveAttribute clears an attribute.
func (r *Radio) RemoveAttribute(name string) {
	r.setAttribute(name, "", false)
}

func (r *Radio) setAttribute(name, value string, present bool) {
	if setCommonAttribute(r, &r.field, name, value, present) {
		return
	}
	switch name {
	case "checked":
		r.SetValue(attr.ParseFlag(value, present))
	case "value":
		r.option = value
	}
}

// AnyValue returns whether the radio is selected.
func (r *Radio) AnyValue() any {
	return r.Value()
}

// SetAnyValue accepts a bool.
func (r *Radio) SetAnyValue(v any) error {
	b, ok := v.(bool)
	if !ok {
		return wrongType[bool](r.Tag(), v)
	}
	r.SetValue(b)
	return nil
}

// SetText commits a boolean in strconv.ParseBool form.
func (r *Radio) SetText(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return wrongType[bool](r.Tag(), s)
	}
	r.SetValue(b)
	return nil
}

// Text returns "true" or "false".
func (r *Radio) Text() string {
	return strconv.FormatBool(r.Value())
}

// OnAny subscribes with the selection boxed as any.
func (r *Radio) OnAny(typ events.Type, fn func(events.Event[any])) func() {
	return onAny(r.Input, typ, fn)
}

// RadioGroup keeps at most one member selected by listening to each
// member's Update events.
type RadioGroup struct {
	mu      sync.Mutex
	members []*groupMember
}

type groupMember struct {
	radio *Radio
	off   func()
}

// NewRadioGroup returns an empty group.
func NewRadioGroup() *RadioGroup {
	return &RadioGroup{}
}

// Add puts r in the group and returns a function that removes it. If r is
// already selected, other members are deselected.
func (g *RadioGroup) Add(r *Radio) func() {
	m := &groupMember{radio: r}
	m.off = r.On(events.Update, func(ev events.Event[bool]) {
		if ev.Value {
			g.deselectOthers(r)
		}
	})
	g.mu.Lock()
	g.members = append(g.members, m)
	g.mu.Unlock()
	if r.Value() {
		g.deselectOthers(r)
	}
	return func() { g.remove(m) }
}

func (g *RadioGroup) remove(m *groupMember) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, other := range g.members {
		if other == m {
			m.off()
			g.members = append(g.members[:i:i], g.members[i+1:]...)
			return
		}
	}
}

func (g *RadioGroup) deselectOthers(selected *Radio) {
	for _, r := range g.Radios() {
		if r != selected && r.Value() {
			r.SetValue(false)
		}
	}
}

// Radios returns the members in insertion order.
func (g *RadioGroup) Radios() []*Radio {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*Radio, len(g.members))
	for i, m := range g.members {
		out[i] = m.radio
	}
	return out
}

// Selected returns the selected member, or nil.
func (g *RadioGroup) Selected() *Radio {
	for _, r := range g.Radios() {
		if r.Value() {
			return r
		}
	}
	return nil
}

// Value returns the option of the selected member, or "".
func (g *RadioGroup) Value() string {
	if r := g.Selected(); r != nil {
		return r.Option()
	}
	return ""
}

// Select selects the member whose option is option and reports whether one
// matched.
func (g *RadioGroup) Select(option string) bool {
	for _, r := range g.Radios() {
		if r.Option() == option {
			r.SetValue(true)
			return true
		}
	}
	return false
}
