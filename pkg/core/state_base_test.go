package core

import "testing"

func TestSetStateRendersOnce(t *testing.T) {
	var s StateBase
	renders := 0
	s.SetRenderer(RendererFunc(func() { renders++ }))

	field := 0
	s.SetState(func() {
		field = 1
		field = 2
	})

	if field != 2 {
		t.Errorf("Expected mutation to run, got %d", field)
	}
	if renders != 1 {
		t.Errorf("Expected exactly 1 render, got %d", renders)
	}
}

func TestSetStateAfterDispose(t *testing.T) {
	var s StateBase
	renders := 0
	s.SetRenderer(RendererFunc(func() { renders++ }))
	s.Dispose()

	ran := false
	s.SetState(func() { ran = true })
	if ran || renders != 0 {
		t.Error("SetState should be a no-op after dispose")
	}
	if !s.IsDisposed() {
		t.Error("Expected IsDisposed")
	}
}

func TestDisposersRunInReverseOnce(t *testing.T) {
	var s StateBase
	var order []int
	s.OnDispose(func() { order = append(order, 1) })
	remove := s.OnDispose(func() { order = append(order, 2) })
	s.OnDispose(func() { order = append(order, 3) })
	remove()

	s.Dispose()
	s.Dispose()

	if len(order) != 2 || order[0] != 3 || order[1] != 1 {
		t.Errorf("Expected [3 1], got %v", order)
	}

	late := false
	s.OnDispose(func() { late = true })
	if !late {
		t.Error("Disposer registered after dispose should run immediately")
	}
}

func TestNotifierRemoveDuringNotify(t *testing.T) {
	n := NewNotifier()
	var calls []string
	var removeB func()
	n.AddListener(func() {
		calls = append(calls, "a")
		removeB()
	})
	removeB = n.AddListener(func() { calls = append(calls, "b") })

	n.Notify()
	n.Notify()

	if len(calls) != 3 {
		t.Errorf("Expected [a b a], got %v", calls)
	}
}
