// Package clock provides the time source used by widget timers.
//
// The default implementation uses system time. Tests inject a fake clock
// (see pkg/testing) to fire debounce timers deterministically.
package clock

import (
	"sync"
	"time"
)

// Clock provides time and one-shot timers.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f once d has elapsed. f may run on another goroutine.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc call.
type Timer interface {
	// Stop prevents the call from firing. It reports whether the call was
	// stopped before it fired.
	Stop() bool
}

// systemClock uses system time.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// System is the clock backed by the time package.
var System Clock = systemClock{}

var (
	defaultMu sync.RWMutex
	current   = System
)

// Default returns the package-level clock used when a widget is not given one.
func Default() Clock {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return current
}

// SetDefault replaces the package-level clock. Returns the previous clock
// so callers can restore it during cleanup. Passing nil restores System.
func SetDefault(c Clock) Clock {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := current
	if c == nil {
		c = System
	}
	current = c
	return prev
}

// Dispatching wraps c so that timer callbacks are handed to dispatch instead
// of running on the timer goroutine. dispatch usually posts onto the UI loop.
func Dispatching(c Clock, dispatch func(func())) Clock {
	if dispatch == nil {
		return c
	}
	return dispatchingClock{inner: c, dispatch: dispatch}
}

type dispatchingClock struct {
	inner    Clock
	dispatch func(func())
}

func (d dispatchingClock) Now() time.Time { return d.inner.Now() }

func (d dispatchingClock) AfterFunc(dur time.Duration, f func()) Timer {
	return d.inner.AfterFunc(dur, func() { d.dispatch(f) })
}
