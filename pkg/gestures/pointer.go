// Package gestures turns raw pointer and keyboard input into value changes
// for continuous-value widgets.
//
// Hosts deliver a pointer-down event to the widget under the pointer and
// every pointer event to a [Router]. Controllers register with the router
// for the duration of a gesture so a drag keeps tracking the pointer after it
// leaves the widget's bounds.
package gestures

// Offset is a point in logical pixels.
type Offset struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	Left, Top, Width, Height float64
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X <= r.Left+r.Width &&
		p.Y >= r.Top && p.Y <= r.Top+r.Height
}

// PointerPhase describes where a pointer event sits in its gesture.
type PointerPhase int

const (
	// PointerPhaseDown is a press (mousedown, touchstart).
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a movement while tracked.
	PointerPhaseMove
	// PointerPhaseUp is a release (mouseup, touchend).
	PointerPhaseUp
	// PointerPhaseCancel is a system cancellation (touchcancel).
	PointerPhaseCancel
	// PointerPhaseLeave is the pointer leaving the window.
	PointerPhaseLeave
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	case PointerPhaseLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerKind is the device that produced an event.
type PointerKind int

const (
	PointerKindMouse PointerKind = iota
	PointerKindTouch
	PointerKindPen
)

// PointerEvent is a single pointer sample.
type PointerEvent struct {
	PointerID int64
	Phase     PointerPhase
	Position  Offset
	Kind      PointerKind
	// Touches is the number of active touch points; zero or one for a
	// single pointer.
	Touches int
}

// MultiTouch reports whether more than one touch point is active.
func (e PointerEvent) MultiTouch() bool {
	return e.Touches > 1
}

// ends reports whether the event terminates a gesture.
func (e PointerEvent) ends() bool {
	switch e.Phase {
	case PointerPhaseUp, PointerPhaseCancel, PointerPhaseLeave:
		return true
	}
	return false
}

// PointerHandler receives pointer events.
type PointerHandler interface {
	HandlePointer(event PointerEvent)
}

// PointerHandlerFunc adapts a function to PointerHandler.
type PointerHandlerFunc func(event PointerEvent)

// HandlePointer calls f(event).
func (f PointerHandlerFunc) HandlePointer(event PointerEvent) { f(event) }
