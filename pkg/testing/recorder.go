package testing

import (
	"sync"
	"testing"

	"github.com/go-drift/formkit/pkg/errors"
	"github.com/go-drift/formkit/pkg/events"
)

// Subscriber is anything that publishes lifecycle events, such as an
// input.Input or a widget embedding one.
type Subscriber[T any] interface {
	On(typ events.Type, fn func(events.Event[T])) func()
}

// Recorder collects lifecycle events in emission order.
type Recorder[T any] struct {
	mu     sync.Mutex
	events []events.Event[T]
	unsubs []func()
}

// Record subscribes to every lifecycle event type of s.
func Record[T any](s Subscriber[T]) *Recorder[T] {
	r := &Recorder[T]{}
	for _, typ := range events.Types() {
		r.unsubs = append(r.unsubs, s.On(typ, r.add))
	}
	return r
}

func (r *Recorder[T]) add(ev events.Event[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events.
func (r *Recorder[T]) Events() []events.Event[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event[T](nil), r.events...)
}

// Types returns the recorded event types in order.
func (r *Recorder[T]) Types() []events.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]events.Type, len(r.events))
	for i, ev := range r.events {
		types[i] = ev.Type
	}
	return types
}

// Count returns how many events of typ were recorded.
func (r *Recorder[T]) Count(typ events.Type) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

// Last returns the most recent event of typ.
func (r *Recorder[T]) Last(typ events.Type) (events.Event[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == typ {
			return r.events[i], true
		}
	}
	return events.Event[T]{}, false
}

// Reset discards recorded events.
func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Stop unsubscribes the recorder.
func (r *Recorder[T]) Stop() {
	for _, unsub := range r.unsubs {
		unsub()
	}
	r.unsubs = nil
}

// ErrorRecorder is an errors.ErrorHandler that keeps what it receives.
type ErrorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.InputError
	panics []*errors.PanicError
}

// CaptureErrors installs an ErrorRecorder as the global handler until the
// test finishes.
func CaptureErrors(t testing.TB) *ErrorRecorder {
	t.Helper()
	rec := &ErrorRecorder{}
	prev := errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return rec
}

// HandleError records err.
func (r *ErrorRecorder) HandleError(err *errors.InputError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// HandlePanic records err.
func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns the recorded errors.
func (r *ErrorRecorder) Errors() []*errors.InputError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.InputError(nil), r.errs...)
}

// Panics returns the recorded panics.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}
