package input

import "github.com/go-drift/formkit/pkg/events"

// ValueHolder is the value half of the input contract.
type ValueHolder[T any] interface {
	Value() T
	SetValue(v T)
	DefaultValue() T
	HasSameValueAs(candidate T) bool
	IsValid() bool
	ClearValue()
	On(typ events.Type, fn func(events.Event[T])) func()
}

// Control is the interaction half of the input contract.
type Control interface {
	Tag() string
	Focus() bool
	Blur() bool
	Focused() bool
	Disabled() bool
	SetDisabled(disabled bool)
	ReadOnly() bool
	SetReadOnly(readOnly bool)
	// Interactive reports whether pointer and keyboard input is handled.
	Interactive() bool
	// Editable reports whether user input may change the value.
	Editable() bool
	Dispose()
}

var (
	_ ValueHolder[bool] = (*Input[bool])(nil)
	_ Control           = (*Input[bool])(nil)
)
