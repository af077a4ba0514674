package testing

import (
	"github.com/go-drift/formkit/pkg/gestures"
)

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// Tap sends a press to target and the release through router at pos.
func Tap(router *gestures.Router, target gestures.PointerHandler, pos gestures.Offset) {
	id := allocPointerID()
	target.HandlePointer(gestures.PointerEvent{PointerID: id, Phase: gestures.PointerPhaseDown, Position: pos})
	router.Dispatch(gestures.PointerEvent{PointerID: id, Phase: gestures.PointerPhaseUp, Position: pos})
}

// Drag presses target at from, moves through router in steps equal
// increments to to, and releases at to.
func Drag(router *gestures.Router, target gestures.PointerHandler, from, to gestures.Offset, steps int) {
	id := allocPointerID()
	target.HandlePointer(gestures.PointerEvent{PointerID: id, Phase: gestures.PointerPhaseDown, Position: from})
	DragMoves(router, id, from, to, steps)
	router.Dispatch(gestures.PointerEvent{PointerID: id, Phase: gestures.PointerPhaseUp, Position: to})
}

// DragMoves sends only the intermediate move events of a drag.
func DragMoves(router *gestures.Router, id int64, from, to gestures.Offset, steps int) {
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		router.Dispatch(gestures.PointerEvent{
			PointerID: id,
			Phase:     gestures.PointerPhaseMove,
			Position: gestures.Offset{
				X: from.X + (to.X-from.X)*f,
				Y: from.Y + (to.Y-from.Y)*f,
			},
		})
	}
}

// Press sends a key event to target.
func Press(target gestures.KeyHandler, key gestures.Key, shift bool) bool {
	return target.HandleKey(gestures.KeyEvent{Key: key, Shift: shift})
}
