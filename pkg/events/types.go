// Package events defines the lifecycle events emitted by form inputs and the
// timing state machine that derives them from value commits.
package events

import "time"

// Type identifies a lifecycle event.
type Type int

const (
	// Focus fires when an input gains focus.
	Focus Type = iota
	// Blur fires when an input loses focus.
	Blur
	// Update fires synchronously on every committed value change.
	Update
	// UpdateStart fires on the first Update of a cascade.
	UpdateStart
	// UpdateStable fires once the value has stopped changing for the
	// debounce delay, or at the repeat ceiling during sustained input.
	UpdateStable
	// UpdateEnd fires when the cascade settles.
	UpdateEnd
)

var typeNames = [...]string{
	Focus:        "focus",
	Blur:         "blur",
	Update:       "update",
	UpdateStart:  "update-start",
	UpdateStable: "update-stable",
	UpdateEnd:    "update-end",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// ParseType returns the Type named s.
func ParseType(s string) (Type, bool) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), true
		}
	}
	return 0, false
}

// Types lists every lifecycle event type.
func Types() []Type {
	return []Type{Focus, Blur, Update, UpdateStart, UpdateStable, UpdateEnd}
}

// Event is a snapshot taken when a lifecycle event is emitted.
type Event[T any] struct {
	Type Type
	// Value is the input's value at emission time.
	Value T
	// Valid is the conjunction of the input's rules at emission time.
	Valid bool
	Time  time.Time
}
