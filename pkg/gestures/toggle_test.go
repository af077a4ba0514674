package gestures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type toggleHarness struct {
	router  *Router
	gesture *ToggleGesture
	value   bool
	commits []bool
}

func newToggleHarness() *toggleHarness {
	h := &toggleHarness{router: NewRouter()}
	h.gesture = &ToggleGesture{
		Router: h.router,
		Value:  func() bool { return h.value },
		Commit: func(v bool) {
			h.value = v
			h.commits = append(h.commits, v)
		},
		Bounds: func() Rect { return Rect{Width: 44, Height: 26} },
	}
	return h
}

func (h *toggleHarness) down(x float64) {
	h.gesture.HandlePointer(PointerEvent{Phase: PointerPhaseDown, Position: Offset{X: x, Y: 10}})
}

func (h *toggleHarness) move(x float64) {
	h.router.Dispatch(PointerEvent{Phase: PointerPhaseMove, Position: Offset{X: x, Y: 10}})
}

func (h *toggleHarness) up(x float64) {
	h.router.Dispatch(PointerEvent{Phase: PointerPhaseUp, Position: Offset{X: x, Y: 10}})
}

func TestToggleTap(t *testing.T) {
	h := newToggleHarness()
	h.down(10)
	h.move(10.5)
	h.up(10.5)

	assert.Equal(t, []bool{true}, h.commits)
	assert.False(t, h.gesture.Dragging())
	assert.Equal(t, 0, h.router.Len())
}

func TestToggleDragCommitsOnce(t *testing.T) {
	h := newToggleHarness()
	h.down(10)
	for i := 1; i <= 10; i++ {
		h.move(10 + float64(i)*2)
	}
	assert.True(t, h.gesture.DragCommitted())
	h.up(30)

	assert.Equal(t, []bool{true}, h.commits, "drag must commit once and suppress the tap toggle")
	assert.False(t, h.gesture.DragCommitted())
}

func TestToggleDragLeftTurnsOff(t *testing.T) {
	h := newToggleHarness()
	h.value = true
	h.down(40)
	for i := 1; i <= 12; i++ {
		h.move(40 - float64(i)*2)
	}
	h.up(16)
	assert.Equal(t, []bool{false}, h.commits)
}

func TestToggleNeedsEnoughSamples(t *testing.T) {
	h := newToggleHarness()
	h.down(0)
	// A single large move is not a drag; the release counts as a tap.
	h.move(20)
	assert.False(t, h.gesture.DragCommitted())
	h.up(20)
	assert.Equal(t, []bool{true}, h.commits)
}

func TestToggleDragInSameDirectionAsValue(t *testing.T) {
	h := newToggleHarness()
	h.value = true
	h.down(0)
	for i := 1; i <= 10; i++ {
		h.move(float64(i) * 3)
	}
	assert.False(t, h.gesture.DragCommitted())
	// Release outside the bounds is not a tap.
	h.up(300)
	assert.Empty(t, h.commits)
}

func TestToggleCancelDoesNotToggle(t *testing.T) {
	h := newToggleHarness()
	h.down(10)
	h.router.Dispatch(PointerEvent{Phase: PointerPhaseCancel})
	assert.Empty(t, h.commits)
	assert.False(t, h.gesture.Dragging())
}

func TestToggleIgnoresMultiTouch(t *testing.T) {
	h := newToggleHarness()
	h.down(10)
	for i := 1; i <= 12; i++ {
		h.router.Dispatch(PointerEvent{Phase: PointerPhaseMove, Touches: 2, Position: Offset{X: 10 + float64(i)*5}})
	}
	assert.False(t, h.gesture.DragCommitted())
}

func TestToggleHistoryBounded(t *testing.T) {
	h := newToggleHarness()
	h.down(0)
	for i := 1; i <= 100; i++ {
		h.move(0)
	}
	assert.LessOrEqual(t, len(h.gesture.history), toggleMaxSamples)
}

func TestToggleCannotStart(t *testing.T) {
	h := newToggleHarness()
	h.gesture.CanStart = func() bool { return false }
	h.down(10)
	h.up(10)
	assert.Empty(t, h.commits)
}

func TestToggleKeys(t *testing.T) {
	h := newToggleHarness()

	assert.True(t, h.gesture.HandleKey(KeyEvent{Key: KeyEnter}))
	assert.True(t, h.value)
	h.gesture.HandleKey(KeyEvent{Key: KeySpace})
	assert.False(t, h.value)
	h.gesture.HandleKey(KeyEvent{Key: KeyArrowRight})
	assert.True(t, h.value)
	h.gesture.HandleKey(KeyEvent{Key: KeyArrowLeft})
	assert.False(t, h.value)
	assert.False(t, h.gesture.HandleKey(KeyEvent{Key: KeyArrowUp}))
}
