package gestures

// TapRecognizer reports a tap: a press on the widget followed by a release
// inside Bounds. Cancel and Leave abandon the press.
type TapRecognizer struct {
	// Router delivers the release. Nil means DefaultRouter.
	Router *Router
	// CanStart is consulted on pointer-down.
	CanStart func() bool
	// OnStart is called when a press is accepted.
	OnStart func()
	// OnTap is called on a release inside Bounds.
	OnTap func()
	// Bounds returns the widget bounds. Nil accepts every release.
	Bounds func() Rect

	pressed    bool
	unregister func()
}

// Pressed reports whether a press is in progress.
func (t *TapRecognizer) Pressed() bool {
	return t.pressed
}

// HandlePointer advances the recognizer.
func (t *TapRecognizer) HandlePointer(event PointerEvent) {
	switch event.Phase {
	case PointerPhaseDown:
		if t.pressed || (t.CanStart != nil && !t.CanStart()) {
			return
		}
		t.pressed = true
		t.unregister = routerOrDefault(t.Router).Register(t, t)
		if t.OnStart != nil {
			t.OnStart()
		}
	case PointerPhaseUp:
		if !t.pressed {
			return
		}
		inside := t.Bounds == nil || t.Bounds().Contains(event.Position)
		t.reset()
		if inside && t.OnTap != nil {
			t.OnTap()
		}
	case PointerPhaseCancel, PointerPhaseLeave:
		t.reset()
	}
}

func (t *TapRecognizer) reset() {
	t.pressed = false
	if t.unregister != nil {
		t.unregister()
		t.unregister = nil
	}
}

// Dispose abandons any press in progress.
func (t *TapRecognizer) Dispose() {
	t.reset()
}
