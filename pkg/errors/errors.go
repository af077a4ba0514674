// Package errors provides structured error reporting for formkit widgets.
//
// Runtime conditions (unparseable attributes, failing listeners, undecodable
// files) are reported to a process-wide [ErrorHandler] and the widget keeps
// working. Programming errors, such as calling a capability a widget does not
// implement, panic with a [CapabilityError].
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindAttribute indicates a declarative attribute that could not be parsed.
	KindAttribute
	// KindCapability indicates a capability the widget does not implement.
	KindCapability
	// KindListener indicates a failing event listener.
	KindListener
	// KindDecode indicates a file or image that could not be acquired or decoded.
	KindDecode
	// KindConfig indicates a configuration or definition error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindCapability:
		return "capability"
	case KindListener:
		return "listener"
	case KindDecode:
		return "decode"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// InputError represents a structured error raised by a widget.
type InputError struct {
	// Op is the operation that failed (e.g., "widgets.Slider.SetAttribute").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Tag is the tag name of the widget involved, if any.
	Tag string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *InputError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("%s [%s] tag=%s: %v", e.Op, e.Kind, e.Tag, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "events.SyncDispatcher").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// AttributeError represents a declarative attribute value that could not be parsed.
type AttributeError struct {
	// Name is the attribute name (e.g., "max").
	Name string
	// Raw is the attribute text as supplied.
	Raw string
	// Want describes the expected form (e.g., "number").
	Want string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("invalid %s attribute %q: want %s", e.Name, e.Raw, e.Want)
}

// CapabilityError is raised when a widget is asked for a capability it does
// not provide, or before it has been constructed.
type CapabilityError struct {
	// Capability names the missing capability (e.g., "value").
	Capability string
	// Tag is the tag name of the widget.
	Tag string
}

func (e *CapabilityError) Error() string {
	tag := e.Tag
	if tag == "" {
		tag = "<unconfigured>"
	}
	return fmt.Sprintf("%s does not implement %q", tag, e.Capability)
}

// Unimplemented panics with a CapabilityError. Use it where calling the
// capability indicates a programming error rather than a runtime condition.
func Unimplemented(tag, capability string) {
	panic(&CapabilityError{Capability: capability, Tag: tag})
}

// ErrorHandler receives errors reported by formkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *InputError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
