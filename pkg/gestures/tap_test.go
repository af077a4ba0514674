package gestures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTapRecognizer(t *testing.T) {
	router := NewRouter()
	taps := 0
	bounds := Rect{Left: 0, Top: 0, Width: 20, Height: 20}
	tr := &TapRecognizer{
		Router: router,
		OnTap:  func() { taps++ },
		Bounds: func() Rect { return bounds },
	}

	tr.HandlePointer(PointerEvent{Phase: PointerPhaseDown, Position: Offset{X: 5, Y: 5}})
	assert.True(t, tr.Pressed())
	assert.Equal(t, 1, router.Len())
	router.Dispatch(PointerEvent{Phase: PointerPhaseUp, Position: Offset{X: 6, Y: 6}})
	assert.Equal(t, 1, taps)
	assert.Equal(t, 0, router.Len())

	tr.HandlePointer(PointerEvent{Phase: PointerPhaseDown, Position: Offset{X: 5, Y: 5}})
	router.Dispatch(PointerEvent{Phase: PointerPhaseUp, Position: Offset{X: 50, Y: 5}})
	assert.Equal(t, 1, taps, "release outside bounds is not a tap")

	tr.HandlePointer(PointerEvent{Phase: PointerPhaseDown})
	router.Dispatch(PointerEvent{Phase: PointerPhaseCancel})
	router.Dispatch(PointerEvent{Phase: PointerPhaseUp})
	assert.Equal(t, 1, taps)
	assert.False(t, tr.Pressed())
}

func TestTapRecognizerCanStart(t *testing.T) {
	router := NewRouter()
	taps := 0
	tr := &TapRecognizer{
		Router:   router,
		CanStart: func() bool { return false },
		OnTap:    func() { taps++ },
	}
	tr.HandlePointer(PointerEvent{Phase: PointerPhaseDown})
	router.Dispatch(PointerEvent{Phase: PointerPhaseUp})
	assert.Equal(t, 0, taps)
	assert.Equal(t, 0, router.Len())
}
