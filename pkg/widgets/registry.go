package widgets

import (
	"fmt"
	"sort"
	"sync"
)

// Widget tags, as used by declarative definitions.
const (
	TagCheckbox       = "input-checkbox"
	TagRadio          = "input-radio"
	TagToggle         = "input-toggle"
	TagSlider         = "input-slider"
	TagGradientSlider = "input-gradient-slider"
	TagColorTint      = "input-color-tint"
	TagColorPicker    = "input-color-picker"
	TagNumber         = "input-number"
	TagText           = "input-text"
	TagTextArea       = "input-textarea"
	TagPassword       = "input-password"
	TagTime           = "input-time"
	TagFile           = "input-file"
	TagImage          = "input-image"
)

// Constructor builds an Element.
type Constructor func(Options) Element

// Registry maps tags to constructors. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry returns a registry holding the built-in widgets.
func NewRegistry() *Registry {
	r := &Registry{ctors: map[string]Constructor{}}
	r.Register(TagCheckbox, func(o Options) Element { return NewCheckbox(o) })
	r.Register(TagRadio, func(o Options) Element { return NewRadio(o) })
	r.Register(TagToggle, func(o Options) Element { return NewToggle(o) })
	r.Register(TagSlider, func(o Options) Element { return NewSlider(o) })
	r.Register(TagGradientSlider, func(o Options) Element { return NewGradientSlider(o) })
	r.Register(TagColorTint, func(o Options) Element { return NewColorTint(o) })
	r.Register(TagColorPicker, func(o Options) Element { return NewColorPicker(o) })
	r.Register(TagNumber, func(o Options) Element { return NewNumber(o) })
	r.Register(TagText, func(o Options) Element { return NewTextInput(o) })
	r.Register(TagTextArea, func(o Options) Element { return NewTextArea(o) })
	r.Register(TagPassword, func(o Options) Element { return NewPassword(o) })
	r.Register(TagTime, func(o Options) Element { return NewTimePicker(o) })
	r.Register(TagFile, func(o Options) Element { return NewFilePicker(o) })
	r.Register(TagImage, func(o Options) Element { return NewImagePicker(o) })
	return r
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register binds tag to ctor, replacing any previous binding.
func (r *Registry) Register(tag string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[tag] = ctor
}

// Lookup returns the constructor for tag.
func (r *Registry) Lookup(tag string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.ctors[tag]
	return ctor, ok
}

// New builds the widget registered for tag.
func (r *Registry) New(tag string, o Options) (Element, error) {
	ctor, ok := r.Lookup(tag)
	if !ok {
		return nil, fmt.Errorf("unknown widget tag %q", tag)
	}
	return ctor(o), nil
}

// Tags returns the registered tags, sorted.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.ctors))
	for tag := range r.ctors {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
