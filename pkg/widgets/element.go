package widgets

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-drift/formkit/pkg/attr"
	"github.com/go-drift/formkit/pkg/clock"
	"github.com/go-drift/formkit/pkg/core"
	"github.com/go-drift/formkit/pkg/errors"
	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/focus"
	"github.com/go-drift/formkit/pkg/gestures"
	"github.com/go-drift/formkit/pkg/input"
)

// Element is the tag-agnostic surface every widget exposes to hosts, forms
// and the declarative definition loader.
type Element interface {
	input.Control
	gestures.PointerHandler
	gestures.KeyHandler

	// Name is the form field name from the "name" attribute.
	Name() string
	// SetAttribute applies a declarative attribute. Flags are set by
	// presence; RemoveAttribute clears them.
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	// AnyValue returns the committed value.
	AnyValue() any
	// SetAnyValue commits v; it fails when v has the wrong type.
	SetAnyValue(v any) error
	// SetText commits a value parsed from its textual form.
	SetText(s string) error
	// Text formats the committed value.
	Text() string
	IsValid() bool
	Validate() []string
	ClearValue()
	// OnAny subscribes to lifecycle events with the value boxed as any.
	OnAny(typ events.Type, fn func(events.Event[any])) func()
	// SetBounds records the laid-out box of the widget.
	SetBounds(r gestures.Rect)
}

// Options carries the collaborators shared by widget constructors. The zero
// value uses the system clock, inline dispatch, the default router and the
// default focus scope.
type Options struct {
	Clock      clock.Clock
	Dispatcher events.Dispatcher
	Router     *gestures.Router
	Renderer   core.Renderer
	// Focus is the scope in which focusing a widget blurs the previous one.
	Focus *focus.Manager
	// Debounce overrides the UpdateStable delay.
	Debounce time.Duration
}

func config[T any](o Options, tag string, def T) input.Config[T] {
	return input.Config[T]{
		Tag:        tag,
		Default:    def,
		Debounce:   o.Debounce,
		Clock:      o.Clock,
		Dispatcher: o.Dispatcher,
		Renderer:   o.Renderer,
		Focus:      o.Focus,
	}
}

// field holds the parts every widget shares besides its Input.
type field struct {
	name      string
	autofocus bool
	bounds    gestures.Rect
	hasBounds bool
}

// Name returns the form field name.
func (f *field) Name() string {
	return f.name
}

// Autofocus reports whether the "autofocus" flag is set.
func (f *field) Autofocus() bool {
	return f.autofocus
}

// SetBounds records the laid-out box of the widget.
func (f *field) SetBounds(r gestures.Rect) {
	f.bounds = r
	f.hasBounds = true
}

// Bounds returns the last laid-out box.
func (f *field) Bounds() gestures.Rect {
	return f.bounds
}

func (f *field) boundsFunc() func() gestures.Rect {
	return func() gestures.Rect {
		if !f.hasBounds {
			return gestures.Rect{Left: math.Inf(-1), Top: math.Inf(-1), Width: math.Inf(1), Height: math.Inf(1)}
		}
		return f.bounds
	}
}

// setCommonAttribute handles attributes shared by all widgets and reports
// whether name was one of them.
func setCommonAttribute(c input.Control, f *field, name, value string, present bool) bool {
	switch name {
	case "disabled":
		c.SetDisabled(attr.ParseFlag(value, present))
	case "readonly":
		c.SetReadOnly(attr.ParseFlag(value, present))
	case "autofocus":
		f.autofocus = attr.ParseFlag(value, present)
		if f.autofocus {
			c.Focus()
		}
	case "name":
		f.name = value
	default:
		return false
	}
	return true
}

// onAny adapts typed listeners to the boxed Element form.
func onAny[T any](in *input.Input[T], typ events.Type, fn func(events.Event[any])) func() {
	return in.On(typ, func(ev events.Event[T]) {
		fn(events.Event[any]{Type: ev.Type, Value: ev.Value, Valid: ev.Valid, Time: ev.Time})
	})
}

func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// ApplyAttributes sets every attribute in attrs on e in sorted key order,
// with the value-bearing attributes last so bounds apply first.
func ApplyAttributes(e Element, attrs attr.Set) {
	for _, name := range attributeOrder(attrs) {
		e.SetAttribute(name, attrs[name])
	}
}

var lateAttributes = map[string]int{"checked": 1, "indeterminate": 1, "value": 2}

func attributeOrder(attrs attr.Set) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := lateAttributes[names[i]], lateAttributes[names[j]]
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
	return names
}

func wrongType[T any](tag string, v any) error {
	var want T
	return fmt.Errorf("%s: cannot use %T as %T", tag, v, want)
}

func reportValueAttribute(tag, raw, want string) {
	errors.ReportAttribute("widgets.SetAttribute", tag, "value", raw, want)
}
