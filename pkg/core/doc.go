// Package core provides the render-request and lifecycle plumbing shared by
// formkit widgets.
//
// Rendering itself is an external collaborator. A widget owns a [StateBase]
// and mutates its fields through SetState, which runs the mutation and then
// requests exactly one render pass from the attached [Renderer]:
//
//	type sliderView struct {
//	    core.StateBase
//	    pct float64
//	}
//
//	v.SetState(func() { v.pct = 40 }) // one Render call
//
// # State Management
//
// Managed ties a value to a StateBase so that Set triggers a render:
//
//	s.hover = core.NewManaged(s, false)
//	s.hover.Set(true)
//
// Observable provides thread-safe reactive values, and Notifier is a bare
// change signal for values that live elsewhere.
//
// # Hooks
//
// UseController, UseListenable, and UseObservable manage resources and
// subscriptions with automatic cleanup on disposal.
//
// # Constructor Conventions
//
// Controllers and services use NewX() constructors returning pointers:
//
//	router := gestures.NewRouter()
//	q := events.NewQueueDispatcher()
//
// Widgets and configuration use struct literals.
package core
