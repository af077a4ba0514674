package input

import (
	"reflect"
	"sync"
	"time"

	"github.com/go-drift/formkit/pkg/clock"
	"github.com/go-drift/formkit/pkg/core"
	"github.com/go-drift/formkit/pkg/errors"
	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/filter"
	"github.com/go-drift/formkit/pkg/focus"
	"github.com/go-drift/formkit/pkg/rules"
)

// Config configures an Input.
type Config[T any] struct {
	// Tag names the widget kind (e.g., "input-slider"). It appears in errors.
	Tag string
	// Default is the value restored by ClearValue and the initial value.
	Default T
	// FixedDefault makes SetDefaultValue a programming error.
	FixedDefault bool
	// Equal compares values. Defaults to reflect.DeepEqual.
	Equal func(a, b T) bool
	Filters []filter.Filter[T]
	Rules   []rules.Rule[T]
	// Debounce is the cascade delay. Zero uses events.DefaultDelay.
	Debounce time.Duration
	// Clock drives cascade timers. Nil uses clock.Default().
	Clock clock.Clock
	// Dispatcher delivers listener calls. Nil uses events.SyncDispatcher.
	Dispatcher events.Dispatcher
	// Renderer is invoked once per committed change.
	Renderer core.Renderer
	// Focus is the scope the input takes focus in. Focusing an input blurs
	// the scope's previous primary. Nil uses focus.Default().
	Focus *focus.Manager
}

// Input is the base value holder embedded by widgets. The zero value is not
// usable: every method panics with an errors.CapabilityError until the input
// is built with New.
type Input[T any] struct {
	core.StateBase

	tag          string
	fixedDefault bool
	equal        func(a, b T) bool
	clock        clock.Clock
	dispatcher   events.Dispatcher
	cascade      *events.Cascade
	listeners    events.Listeners[T]
	node         *focus.Node

	mu       sync.Mutex
	value    T
	def      T
	filters  filter.Pipeline[T]
	rules    []rules.Rule[T]
	disabled bool
	readOnly bool
}

// New builds an Input holding cfg.Default.
func New[T any](cfg Config[T]) *Input[T] {
	in := &Input[T]{}
	in.init(cfg)
	return in
}

func (in *Input[T]) init(cfg Config[T]) {
	in.tag = cfg.Tag
	in.fixedDefault = cfg.FixedDefault
	in.equal = cfg.Equal
	if in.equal == nil {
		in.equal = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	in.clock = cfg.Clock
	if in.clock == nil {
		in.clock = clock.Default()
	}
	in.dispatcher = cfg.Dispatcher
	if in.dispatcher == nil {
		in.dispatcher = events.SyncDispatcher{}
	}
	in.def = cfg.Default
	in.filters = append(in.filters, cfg.Filters...)
	in.value = in.filters.Apply(cfg.Default)
	in.rules = append(in.rules, cfg.Rules...)
	in.SetRenderer(cfg.Renderer)
	in.cascade = events.NewCascade(in.clock, cfg.Debounce, in.emit)
	scope := cfg.Focus
	if scope == nil {
		scope = focus.Default()
	}
	in.node = scope.Add(cfg.Tag, in.focusChanged)
	in.node.CanFocus = in.Interactive
}

func (in *Input[T]) require(capability string) {
	if in == nil {
		errors.Unimplemented("", capability)
	}
	if in.cascade == nil {
		errors.Unimplemented(in.tag, capability)
	}
}

// Tag returns the widget tag.
func (in *Input[T]) Tag() string {
	in.require("tag")
	return in.tag
}

// Clock returns the clock driving the input's timers.
func (in *Input[T]) Clock() clock.Clock {
	in.require("clock")
	return in.clock
}

// Value returns the committed value.
func (in *Input[T]) Value() T {
	in.require("value")
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.value
}

// SetValue commits v. Programmatic changes ignore readonly.
func (in *Input[T]) SetValue(v T) {
	in.Commit(v)
}

// Commit is the single mutation path: v runs through the filters, is
// stored, one render pass is requested, then the Update cascade fires.
// Committing the current value still emits Update. Filters run without the
// input's lock held.
func (in *Input[T]) Commit(v T) {
	in.require("value")
	in.store(in.pipeline().Apply(v))
}

// store keeps an already filtered value and fires the Update cascade.
func (in *Input[T]) store(v T) {
	in.SetState(func() {
		in.mu.Lock()
		in.value = v
		in.mu.Unlock()
	})
	in.cascade.Update()
}

func (in *Input[T]) pipeline() filter.Pipeline[T] {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.filters.Append()
}

// Change commits v unless the filtered candidate equals the current value.
// It reports whether a commit happened.
func (in *Input[T]) Change(v T) bool {
	in.require("value")
	v = in.pipeline().Apply(v)
	if in.HasSameValueAs(v) {
		return false
	}
	in.store(v)
	return true
}

// Edit applies a user-driven change: ignored unless the input is editable,
// and a no-op when the value would not change.
func (in *Input[T]) Edit(v T) bool {
	if !in.Editable() {
		return false
	}
	return in.Change(v)
}

// DefaultValue returns the value restored by ClearValue.
func (in *Input[T]) DefaultValue() T {
	in.require("defaultValue")
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.def
}

// SetDefaultValue replaces the default. It panics for inputs whose default
// is fixed.
func (in *Input[T]) SetDefaultValue(v T) {
	in.require("defaultValue")
	if in.fixedDefault {
		errors.Unimplemented(in.tag, "setDefaultValue")
	}
	in.mu.Lock()
	in.def = v
	in.mu.Unlock()
}

// HasSameValueAs reports whether candidate equals the committed value.
func (in *Input[T]) HasSameValueAs(candidate T) bool {
	in.require("hasSameValueAs")
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.equal(in.value, candidate)
}

// ClearValue commits the default value.
func (in *Input[T]) ClearValue() {
	in.Commit(in.DefaultValue())
}

// IsValid reports whether every rule passes for the committed value.
func (in *Input[T]) IsValid() bool {
	in.require("isValid")
	in.mu.Lock()
	defer in.mu.Unlock()
	return rules.Valid(in.rules, in.value)
}

// Validate returns the messages of failing rules.
func (in *Input[T]) Validate() []string {
	in.require("validate")
	in.mu.Lock()
	defer in.mu.Unlock()
	return rules.Failures(in.rules, in.value)
}

// AddFilter appends a filter. It applies to later commits only.
func (in *Input[T]) AddFilter(f filter.Filter[T]) {
	in.require("filters")
	in.mu.Lock()
	defer in.mu.Unlock()
	in.filters = append(in.filters, f)
}

// AddRule appends a validity rule.
func (in *Input[T]) AddRule(r rules.Rule[T]) {
	in.require("rules")
	in.mu.Lock()
	defer in.mu.Unlock()
	in.rules = append(in.rules, r)
}

// Focus makes the input the primary focus of its scope and emits Focus.
// The previous primary is blurred first. Disabled inputs refuse.
func (in *Input[T]) Focus() bool {
	in.require("focus")
	return in.node.RequestFocus()
}

// Blur removes focus from the input, or from whichever of its focus
// descendants holds it, and emits Blur.
func (in *Input[T]) Blur() bool {
	in.require("blur")
	return in.node.Unfocus()
}

// Focused reports whether the input or one of its focus descendants has
// focus.
func (in *Input[T]) Focused() bool {
	in.require("focus")
	return in.node.HasFocus()
}

// FocusNode returns the input's node in its focus scope.
func (in *Input[T]) FocusNode() *focus.Node {
	in.require("focus")
	return in.node
}

func (in *Input[T]) focusChanged(hasFocus bool) {
	in.SetState(nil)
	if hasFocus {
		in.emit(events.Focus)
	} else {
		in.emit(events.Blur)
	}
}

// Disabled reports whether interaction is suppressed.
func (in *Input[T]) Disabled() bool {
	in.require("disabled")
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.disabled
}

// SetDisabled toggles interaction. Disabling a focused input blurs it.
func (in *Input[T]) SetDisabled(disabled bool) {
	in.require("disabled")
	in.SetState(func() {
		in.mu.Lock()
		in.disabled = disabled
		in.mu.Unlock()
	})
	if disabled {
		in.Blur()
	}
}

// ReadOnly reports whether user edits are suppressed.
func (in *Input[T]) ReadOnly() bool {
	in.require("readOnly")
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.readOnly
}

// SetReadOnly toggles user edits. Focus is unaffected.
func (in *Input[T]) SetReadOnly(readOnly bool) {
	in.require("readOnly")
	in.SetState(func() {
		in.mu.Lock()
		in.readOnly = readOnly
		in.mu.Unlock()
	})
}

// Interactive reports whether pointer and keyboard input is handled.
func (in *Input[T]) Interactive() bool {
	return !in.Disabled()
}

// Editable reports whether user input may change the value.
func (in *Input[T]) Editable() bool {
	in.require("readOnly")
	in.mu.Lock()
	defer in.mu.Unlock()
	return !in.disabled && !in.readOnly
}

// On subscribes fn to typ and returns a function that removes it.
func (in *Input[T]) On(typ events.Type, fn func(events.Event[T])) func() {
	in.require("events")
	return in.listeners.Add(typ, fn)
}

// UpdateInFlight reports whether an update cascade has not yet settled.
func (in *Input[T]) UpdateInFlight() bool {
	in.require("events")
	return in.cascade.InFlight()
}

// Dispose stops the cascade timers, drops listeners and runs disposers.
// No events are emitted afterwards.
func (in *Input[T]) Dispose() {
	in.require("dispose")
	in.cascade.Dispose()
	in.node.Remove()
	in.listeners.Clear()
	in.StateBase.Dispose()
}

func (in *Input[T]) emit(typ events.Type) {
	in.mu.Lock()
	ev := events.Event[T]{
		Type:  typ,
		Value: in.value,
		Valid: rules.Valid(in.rules, in.value),
		Time:  in.clock.Now(),
	}
	in.mu.Unlock()

	for _, fn := range in.listeners.Snapshot(typ) {
		fn := fn
		in.dispatcher.Dispatch(func() { fn(ev) })
	}
}
