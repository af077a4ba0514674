package core

// UseController creates a controller and registers it for automatic disposal.
// The controller will be disposed when the state is disposed.
//
// Example:
//
//	s.drag = core.UseController(s, func() *gestures.DragController {
//	    return &gestures.DragController{OnDrag: s.dragTo}
//	})
func UseController[C Disposable](s stateBase, create func() C) C {
	base := s.state()
	controller := create()
	base.OnDispose(func() {
		controller.Dispose()
	})
	return controller
}

// UseListenable subscribes to a listenable and requests a render on every
// notification. The subscription is cleaned up when the state is disposed.
func UseListenable(s stateBase, listenable Listenable) {
	base := s.state()
	unsub := listenable.AddListener(func() {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}

// UseObservable subscribes to an observable and requests a render when it
// changes. The subscription is cleaned up when the state is disposed.
func UseObservable[T any](s stateBase, obs *Observable[T]) {
	base := s.state()
	unsub := obs.AddListener(func(T) {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}

// Managed holds a presentation value and requests a render when it changes.
// Unlike Observable, it is tied to a specific StateBase.
//
// Managed is not thread-safe; use it from the goroutine that owns the widget.
//
// Example:
//
//	type colorTintView struct {
//	    core.StateBase
//	    hue *core.Managed[float64]
//	}
//
//	v.hue = core.NewManaged(v, 0.0)
//	v.hue.Set(210) // one render
type Managed[T any] struct {
	base  *StateBase
	value T
}

// NewManaged creates a new managed state value.
// Changes to this value will automatically request a render.
func NewManaged[T any](s stateBase, initial T) *Managed[T] {
	return &Managed[T]{
		base:  s.state(),
		value: initial,
	}
}

// Value returns the current value.
func (m *Managed[T]) Value() T {
	return m.value
}

// Set updates the value and requests a render.
func (m *Managed[T]) Set(value T) {
	m.base.SetState(func() { m.value = value })
}

// Update applies a transformation to the current value and requests a render.
func (m *Managed[T]) Update(transform func(T) T) {
	m.base.SetState(func() { m.value = transform(m.value) })
}
