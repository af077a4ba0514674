package gestures

const (
	// toggleMinSamples is the number of deltas collected before a drag
	// direction is considered.
	toggleMinSamples = 8
	// toggleMaxSamples bounds the history that is summed.
	toggleMaxSamples = 32
	// toggleThreshold is the cumulative horizontal movement, in pixels,
	// that commits a drag.
	toggleThreshold = 8.0
)

// ToggleGesture decides between a drag-commit and a tap-commit for an on/off
// switch. A horizontal drag past the threshold commits the direction's value
// once; the release that follows is then not treated as a tap.
type ToggleGesture struct {
	// Router delivers global pointer events. Nil means DefaultRouter.
	Router *Router
	// CanStart is consulted on pointer-down.
	CanStart func() bool
	// OnStart is called when a gesture begins.
	OnStart func()
	// Value returns the current switch state.
	Value func() bool
	// Commit stores a new switch state.
	Commit func(bool)
	// Bounds returns the widget bounds used to recognise a tap on release.
	// Nil accepts every release as a tap.
	Bounds func() Rect

	dragging      bool
	lastX         float64
	history       []float64
	dragCommitted bool
	unregister    func()
}

// Dragging reports whether a gesture is in progress.
func (g *ToggleGesture) Dragging() bool {
	return g.dragging
}

// DragCommitted reports whether the current gesture already committed a value.
func (g *ToggleGesture) DragCommitted() bool {
	return g.dragCommitted
}

// HandlePointer advances the gesture.
func (g *ToggleGesture) HandlePointer(event PointerEvent) {
	switch event.Phase {
	case PointerPhaseDown:
		g.down(event)
	case PointerPhaseMove:
		g.move(event)
	case PointerPhaseUp:
		g.up(event, true)
	case PointerPhaseCancel, PointerPhaseLeave:
		g.up(event, false)
	}
}

func (g *ToggleGesture) down(event PointerEvent) {
	if g.dragging {
		return
	}
	if g.CanStart != nil && !g.CanStart() {
		return
	}
	g.history = g.history[:0]
	g.lastX = event.Position.X
	g.dragging = true
	g.dragCommitted = false
	g.unregister = routerOrDefault(g.Router).Register(g, g)
	if g.OnStart != nil {
		g.OnStart()
	}
}

func (g *ToggleGesture) move(event PointerEvent) {
	if !g.dragging || event.MultiTouch() {
		return
	}
	g.history = append(g.history, event.Position.X-g.lastX)
	g.lastX = event.Position.X
	if len(g.history) <= toggleMinSamples {
		return
	}
	if len(g.history) > toggleMaxSamples {
		g.history = append(g.history[:0], g.history[len(g.history)-toggleMaxSamples:]...)
	}
	var sum float64
	for _, d := range g.history {
		sum += d
	}
	value := g.value()
	switch {
	case sum > toggleThreshold && !value:
		g.commit(true)
		g.dragCommitted = true
	case sum < -toggleThreshold && value:
		g.commit(false)
		g.dragCommitted = true
	}
}

func (g *ToggleGesture) up(event PointerEvent, release bool) {
	if !g.dragging {
		return
	}
	if release && !g.dragCommitted && g.isTap(event) {
		g.commit(!g.value())
	}
	g.reset()
}

func (g *ToggleGesture) isTap(event PointerEvent) bool {
	if g.Bounds == nil {
		return true
	}
	return g.Bounds().Contains(event.Position)
}

func (g *ToggleGesture) reset() {
	g.dragging = false
	g.dragCommitted = false
	g.history = g.history[:0]
	if g.unregister != nil {
		g.unregister()
		g.unregister = nil
	}
}

// HandleKey applies Enter/Space (flip), ArrowLeft (off) and ArrowRight (on).
func (g *ToggleGesture) HandleKey(event KeyEvent) bool {
	switch event.Key {
	case KeyEnter, KeySpace:
		g.commit(!g.value())
	case KeyArrowLeft:
		g.commit(false)
	case KeyArrowRight:
		g.commit(true)
	default:
		return false
	}
	return true
}

// Dispose abandons any gesture in progress.
func (g *ToggleGesture) Dispose() {
	g.reset()
}

func (g *ToggleGesture) value() bool {
	return g.Value != nil && g.Value()
}

func (g *ToggleGesture) commit(v bool) {
	if g.Commit != nil {
		g.Commit(v)
	}
}
