package gestures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDrag(router *Router) (*DragController, *[]Offset, *int) {
	var positions []Offset
	ends := 0
	c := &DragController{
		Router: router,
		OnDrag: func(p Offset) { positions = append(positions, p) },
		OnEnd:  func() { ends++ },
	}
	return c, &positions, &ends
}

func TestDragLifecycle(t *testing.T) {
	router := NewRouter()
	c, positions, ends := newTestDrag(router)

	started := false
	c.OnStart = func() { started = true }

	c.HandlePointer(PointerEvent{Phase: PointerPhaseDown, Position: Offset{X: 10}})
	require.True(t, c.Dragging())
	assert.True(t, started)
	assert.Equal(t, 1, router.Len())

	router.Dispatch(PointerEvent{Phase: PointerPhaseMove, Position: Offset{X: 20}})
	router.Dispatch(PointerEvent{Phase: PointerPhaseMove, Position: Offset{X: 500, Y: 300}})
	assert.Equal(t, Offset{X: 500, Y: 300}, c.Position())
	assert.Equal(t, Offset{X: 10}, c.Origin())

	router.Dispatch(PointerEvent{Phase: PointerPhaseUp, Position: Offset{X: 500}})
	assert.Equal(t, DragIdle, c.State())
	assert.Equal(t, 0, router.Len())
	assert.Equal(t, 1, *ends)
	assert.Equal(t, []Offset{{X: 10}, {X: 20}, {X: 500, Y: 300}}, *positions)

	// Moves after release are ignored.
	router.Dispatch(PointerEvent{Phase: PointerPhaseMove, Position: Offset{X: 1}})
	assert.Len(t, *positions, 3)
}

func TestDragRefusedWhenCannotStart(t *testing.T) {
	router := NewRouter()
	c, positions, _ := newTestDrag(router)
	c.CanStart = func() bool { return false }

	c.HandlePointer(PointerEvent{Phase: PointerPhaseDown})
	assert.False(t, c.Dragging())
	assert.Empty(t, *positions)
	assert.Equal(t, 0, router.Len())
}

func TestDragIgnoresMultiTouch(t *testing.T) {
	router := NewRouter()
	c, positions, _ := newTestDrag(router)

	c.HandlePointer(PointerEvent{Phase: PointerPhaseDown, Kind: PointerKindTouch, Touches: 1})
	router.Dispatch(PointerEvent{Phase: PointerPhaseMove, Kind: PointerKindTouch, Touches: 2, Position: Offset{X: 99}})
	assert.Len(t, *positions, 1)
	assert.Equal(t, Offset{}, c.Position())
}

func TestDragEndsOnCancelAndLeave(t *testing.T) {
	for _, phase := range []PointerPhase{PointerPhaseCancel, PointerPhaseLeave} {
		t.Run(phase.String(), func(t *testing.T) {
			router := NewRouter()
			c, _, ends := newTestDrag(router)
			c.HandlePointer(PointerEvent{Phase: PointerPhaseDown})
			router.Dispatch(PointerEvent{Phase: phase})
			assert.False(t, c.Dragging())
			assert.Equal(t, 1, *ends)
		})
	}
}

func TestDragDispose(t *testing.T) {
	router := NewRouter()
	c, _, ends := newTestDrag(router)
	c.HandlePointer(PointerEvent{Phase: PointerPhaseDown})
	c.Dispose()
	assert.Equal(t, 0, router.Len())
	assert.Equal(t, 0, *ends)
}

func TestRouterOrderAndReplace(t *testing.T) {
	router := NewRouter()
	var calls []string
	a, b := new(int), new(int)

	router.Register(a, PointerHandlerFunc(func(PointerEvent) { calls = append(calls, "a1") }))
	removeB := router.Register(b, PointerHandlerFunc(func(PointerEvent) { calls = append(calls, "b") }))
	removeStale := router.Register(a, PointerHandlerFunc(func(PointerEvent) { calls = append(calls, "a2") }))

	router.Dispatch(PointerEvent{Phase: PointerPhaseMove})
	assert.Equal(t, []string{"b", "a2"}, calls)

	removeB()
	removeStale()
	assert.Equal(t, 0, router.Len())
}

func TestRouterStaleUnregisterKeepsNewer(t *testing.T) {
	router := NewRouter()
	owner := new(int)
	stale := router.Register(owner, PointerHandlerFunc(func(PointerEvent) {}))
	router.Register(owner, PointerHandlerFunc(func(PointerEvent) {}))
	stale()
	assert.Equal(t, 1, router.Len())
	router.Unregister(owner)
	assert.Equal(t, 0, router.Len())
}
