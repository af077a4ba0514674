package events

import "sync"

// Listeners registers lists of listener functions per event type.
// Listeners are closures with all context captured; they are called in
// registration order.
type Listeners[T any] struct {
	mu     sync.Mutex
	next   uint64
	byType map[Type][]listener[T]
}

type listener[T any] struct {
	id uint64
	fn func(Event[T])
}

// Add registers fn for typ and returns a function that removes it.
func (ls *Listeners[T]) Add(typ Type, fn func(Event[T])) func() {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.byType == nil {
		ls.byType = make(map[Type][]listener[T])
	}
	ls.next++
	id := ls.next
	ls.byType[typ] = append(ls.byType[typ], listener[T]{id: id, fn: fn})

	return func() {
		ls.mu.Lock()
		defer ls.mu.Unlock()
		list := ls.byType[typ]
		for i, l := range list {
			if l.id == id {
				ls.byType[typ] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns the listeners currently registered for typ.
func (ls *Listeners[T]) Snapshot(typ Type) []func(Event[T]) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	list := ls.byType[typ]
	if len(list) == 0 {
		return nil
	}
	fns := make([]func(Event[T]), len(list))
	for i, l := range list {
		fns[i] = l.fn
	}
	return fns
}

// Count returns the number of listeners registered for typ.
func (ls *Listeners[T]) Count(typ Type) int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return len(ls.byType[typ])
}

// Clear removes every listener.
func (ls *Listeners[T]) Clear() {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.byType = nil
}
