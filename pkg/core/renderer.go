package core

// Renderer produces a presentation of a widget's current state. It is invoked
// once for every committed state change.
type Renderer interface {
	Render()
}

// RendererFunc adapts a function into a Renderer.
type RendererFunc func()

// Render calls f.
func (f RendererFunc) Render() {
	if f != nil {
		f()
	}
}

// Disposable is implemented by resources that must be released.
type Disposable interface {
	Dispose()
}

// Listenable is implemented by change signals.
type Listenable interface {
	// AddListener registers fn and returns a function that removes it.
	AddListener(fn func()) func()
}
