package core

import "sync"

// Notifier is a change signal with ordered listeners.
type Notifier struct {
	mu        sync.Mutex
	next      int
	listeners []notifierEntry
}

type notifierEntry struct {
	id int
	fn func()
}

// NewNotifier creates a Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener registers fn and returns a function that removes it.
func (n *Notifier) AddListener(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.next++
	id := n.next
	n.listeners = append(n.listeners, notifierEntry{id: id, fn: fn})
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, e := range n.listeners {
			if e.id == id {
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every listener in registration order. The lock is not held
// while listeners run, so they may add or remove listeners.
func (n *Notifier) Notify() {
	n.mu.Lock()
	entries := append([]notifierEntry(nil), n.listeners...)
	n.mu.Unlock()
	for _, e := range entries {
		e.fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}

// Observable holds a value and notifies listeners when it is set.
// All methods are safe for concurrent use.
type Observable[T any] struct {
	mu        sync.RWMutex
	value     T
	next      int
	listeners []observer[T]
	equal     func(a, b T) bool
}

type observer[T any] struct {
	id int
	fn func(T)
}

// NewObservable creates an Observable holding initial. Every Set notifies.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// NewObservableWithEquality creates an Observable that skips notification
// when equal reports the new value matches the old one.
func NewObservableWithEquality[T any](initial T, equal func(a, b T) bool) *Observable[T] {
	return &Observable[T]{value: initial, equal: equal}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set stores v and notifies listeners.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	if o.equal != nil && o.equal(o.value, v) {
		o.mu.Unlock()
		return
	}
	o.value = v
	list := append([]observer[T](nil), o.listeners...)
	o.mu.Unlock()
	for _, l := range list {
		l.fn(v)
	}
}

// AddListener registers fn and returns a function that removes it.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.next++
	id := o.next
	o.listeners = append(o.listeners, observer[T]{id: id, fn: fn})
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, l := range o.listeners {
			if l.id == id {
				o.listeners = append(o.listeners[:i:i], o.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.listeners)
}
