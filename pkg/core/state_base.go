package core

import "sync"

// stateBase is satisfied by any struct that embeds StateBase.
// Hooks and NewManaged accept stateBase so callers can pass s directly.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase provides render requests and disposal for widget state.
// Embed this struct to get SetState, OnDispose and Dispose.
//
// Example:
//
//	type toggleView struct {
//	    core.StateBase
//	    on bool
//	}
type StateBase struct {
	renderer  Renderer
	renders   int
	disposers []func()
	disposed  bool
	mu        sync.Mutex
}

// SetRenderer attaches the renderer invoked by SetState.
func (s *StateBase) SetRenderer(r Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderer = r
}

// Renderer returns the attached renderer, or nil.
func (s *StateBase) Renderer() Renderer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderer
}

// SetState executes the given function and requests exactly one render pass.
// Safe to call even after disposal (becomes a no-op).
func (s *StateBase) SetState(fn func()) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if fn != nil {
		fn()
	}

	s.mu.Lock()
	s.renders++
	r := s.renderer
	s.mu.Unlock()
	if r != nil {
		r.Render()
	}
}

// RenderCount returns how many render passes SetState has requested.
func (s *StateBase) RenderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renders
}

// OnDispose registers a cleanup function to be called when the state is disposed.
// Returns an unregister function that can be called to remove the disposer.
// The cleanup function will only be called once.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		// Already disposed, run cleanup immediately
		cleanup()
		return func() {}
	}

	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// RunDisposers executes all registered disposers in reverse order.
// This is called automatically by Dispose().
func (s *StateBase) RunDisposers() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	disposers := s.disposers
	s.disposers = nil
	s.mu.Unlock()

	// LIFO
	for i := len(disposers) - 1; i >= 0; i-- {
		if disposers[i] != nil {
			disposers[i]()
		}
	}
}

// Dispose cleans up resources. Override this method if you need custom cleanup,
// but always call s.RunDisposers() or s.StateBase.Dispose() in your override.
func (s *StateBase) Dispose() {
	s.RunDisposers()
}

// IsDisposed returns true if this state has been disposed.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
