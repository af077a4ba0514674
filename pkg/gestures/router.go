package gestures

import (
	"slices"
	"sync"
)

// Router fans pointer events out to controllers with an active gesture.
//
// It replaces per-widget window listeners: a controller registers under its
// own identity when a gesture starts and unregisters when it ends, so a
// torn-down widget never leaves a listener behind. Registering the same owner
// twice replaces the earlier handler.
type Router struct {
	mu       sync.Mutex
	handlers map[any]routeEntry
	seq      uint64
}

type routeEntry struct {
	handler PointerHandler
	seq     uint64
}

// DefaultRouter is the process-wide router used when a controller has none.
var DefaultRouter = NewRouter()

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[any]routeEntry)}
}

// Register adds handler under owner and returns a function that removes it.
// The returned function only removes this registration.
func (r *Router) Register(owner any, handler PointerHandler) func() {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.handlers[owner] = routeEntry{handler: handler, seq: seq}
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if e, ok := r.handlers[owner]; ok && e.seq == seq {
			delete(r.handlers, owner)
		}
	}
}

// Unregister removes whatever handler owner registered.
func (r *Router) Unregister(owner any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, owner)
}

// Len returns the number of registered handlers.
func (r *Router) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handlers)
}

// Dispatch delivers event to every registered handler in registration order.
// Handlers may register or unregister during dispatch.
func (r *Router) Dispatch(event PointerEvent) {
	r.mu.Lock()
	entries := make([]routeEntry, 0, len(r.handlers))
	for _, e := range r.handlers {
		entries = append(entries, e)
	}
	r.mu.Unlock()

	slices.SortFunc(entries, func(a, b routeEntry) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	for _, e := range entries {
		e.handler.HandlePointer(event)
	}
}

func routerOrDefault(r *Router) *Router {
	if r == nil {
		return DefaultRouter
	}
	return r
}
