package gestures

// DragState is the state of a DragController.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

// DragController tracks a single-pointer drag: Idle -> Dragging -> Idle.
//
// The owning widget forwards pointer-down events to HandlePointer. While
// dragging the controller is registered with Router and receives move and
// release events from there, wherever the pointer is.
type DragController struct {
	// Router delivers global pointer events. Nil means DefaultRouter.
	Router *Router
	// CanStart is consulted on pointer-down; returning false ignores the press.
	CanStart func() bool
	// OnStart is called when a drag begins, typically to focus the widget.
	OnStart func()
	// OnDrag is called with the pointer position on press and on every move.
	OnDrag func(position Offset)
	// OnEnd is called when the drag finishes for any reason.
	OnEnd func()

	state      DragState
	origin     Offset
	position   Offset
	unregister func()
}

// State returns the current state.
func (c *DragController) State() DragState {
	return c.state
}

// Dragging reports whether a drag is in progress.
func (c *DragController) Dragging() bool {
	return c.state == DragDragging
}

// Origin returns where the current drag started.
func (c *DragController) Origin() Offset {
	return c.origin
}

// Position returns the last tracked pointer position.
func (c *DragController) Position() Offset {
	return c.position
}

// HandlePointer advances the state machine.
func (c *DragController) HandlePointer(event PointerEvent) {
	switch {
	case event.Phase == PointerPhaseDown:
		c.begin(event)
	case event.Phase == PointerPhaseMove:
		c.move(event)
	case event.ends():
		c.end()
	}
}

func (c *DragController) begin(event PointerEvent) {
	if c.state == DragDragging {
		return
	}
	if c.CanStart != nil && !c.CanStart() {
		return
	}
	c.state = DragDragging
	c.origin = event.Position
	c.position = event.Position
	c.unregister = routerOrDefault(c.Router).Register(c, c)
	if c.OnStart != nil {
		c.OnStart()
	}
	if c.OnDrag != nil {
		c.OnDrag(event.Position)
	}
}

func (c *DragController) move(event PointerEvent) {
	if c.state != DragDragging || event.MultiTouch() {
		return
	}
	c.position = event.Position
	if c.OnDrag != nil {
		c.OnDrag(event.Position)
	}
}

func (c *DragController) end() {
	if c.state != DragDragging {
		return
	}
	c.state = DragIdle
	if c.unregister != nil {
		c.unregister()
		c.unregister = nil
	}
	if c.OnEnd != nil {
		c.OnEnd()
	}
}

// Dispose abandons any drag in progress without calling OnEnd.
func (c *DragController) Dispose() {
	c.state = DragIdle
	if c.unregister != nil {
		c.unregister()
		c.unregister = nil
	}
}
