package widgets

import (
	"sort"
	"sync"

	"github.com/go-drift/formkit/pkg/core"
	"github.com/go-drift/formkit/pkg/events"
)

// Form groups fields and provides coordinated validation, save and reset.
//
// Fields are registered with Add. Radios sharing a name are joined into one
// [RadioGroup] and contribute the selected option to Values.
//
// Autovalidate behavior:
//   - When Autovalidate is set, a field validates itself after each update.
//   - Untouched fields are not validated, avoiding premature error display.
//   - Call Validate to validate every field, for example on submission.
//
// Example:
//
//	form := widgets.NewForm()
//	form.Autovalidate = true
//	form.OnSaved = func(values map[string]any) { submit(values) }
//	form.Add(email)
//	form.Add(password)
//	if form.Validate() {
//	    form.Save()
//	}
type Form struct {
	core.StateBase

	// Autovalidate validates a field when its value changes.
	Autovalidate bool
	// OnChanged is called when any field changes.
	OnChanged func()
	// OnSaved receives Values when Save is called.
	OnSaved func(values map[string]any)

	mu         sync.Mutex
	fields     []*formField
	groups     map[string]*RadioGroup
	errors     map[Element][]string
	genMu      sync.Mutex
	generation *core.Observable[int]
}

type formField struct {
	elem   Element
	remove []func()
}

// NewForm returns an empty form.
func NewForm() *Form {
	f := &Form{
		groups:     map[string]*RadioGroup{},
		errors:     map[Element][]string{},
		generation: core.NewObservable(0),
	}
	core.UseObservable(f, f.generation)
	return f
}

// Add registers e and returns a function that unregisters it.
func (f *Form) Add(e Element) func() {
	ff := &formField{elem: e}
	ff.remove = append(ff.remove, e.OnAny(events.Update, func(events.Event[any]) {
		f.changed(e)
	}))
	f.mu.Lock()
	if r, ok := e.(*Radio); ok && r.Name() != "" {
		g := f.groups[r.Name()]
		if g == nil {
			g = NewRadioGroup()
			f.groups[r.Name()] = g
		}
		ff.remove = append(ff.remove, g.Add(r))
	}
	f.fields = append(f.fields, ff)
	f.mu.Unlock()
	return func() { f.unregister(ff) }
}

func (f *Form) unregister(ff *formField) {
	f.mu.Lock()
	for i, x := range f.fields {
		if x == ff {
			f.fields = append(f.fields[:i:i], f.fields[i+1:]...)
			break
		}
	}
	delete(f.errors, ff.elem)
	f.mu.Unlock()
	for _, remove := range ff.remove {
		remove()
	}
}

func (f *Form) changed(e Element) {
	if f.Autovalidate {
		f.record(e, e.Validate())
	}
	if f.OnChanged != nil {
		f.OnChanged()
	}
	f.bumpGeneration()
}

func (f *Form) record(e Element, errs []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(errs) == 0 {
		delete(f.errors, e)
		return
	}
	f.errors[e] = errs
}

// Fields returns the registered fields in registration order.
func (f *Form) Fields() []Element {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Element, len(f.fields))
	for i, ff := range f.fields {
		out[i] = ff.elem
	}
	return out
}

// Field returns the first field with the given name.
func (f *Form) Field(name string) (Element, bool) {
	for _, e := range f.Fields() {
		if e.Name() == name {
			return e, true
		}
	}
	return nil, false
}

// Group returns the radio group for name.
func (f *Form) Group(name string) (*RadioGroup, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.groups[name]
	return g, ok
}

// Validate validates every field and reports whether all pass.
func (f *Form) Validate() bool {
	valid := true
	for _, e := range f.Fields() {
		errs := e.Validate()
		f.record(e, errs)
		if len(errs) > 0 {
			valid = false
		}
	}
	f.bumpGeneration()
	return valid
}

// Errors returns the messages recorded by the last validation, keyed by
// field name. Unnamed fields are keyed by tag.
func (f *Form) Errors() map[string][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string][]string, len(f.errors))
	for e, errs := range f.errors {
		key := e.Name()
		if key == "" {
			key = e.Tag()
		}
		out[key] = append(out[key], errs...)
	}
	return out
}

// Values returns the value of every named field. Radio groups contribute
// the selected option, or "" when none is selected.
func (f *Form) Values() map[string]any {
	values := map[string]any{}
	for _, e := range f.Fields() {
		name := e.Name()
		if name == "" {
			continue
		}
		if _, ok := e.(*Radio); ok {
			if g, ok := f.Group(name); ok {
				values[name] = g.Value()
			}
			continue
		}
		values[name] = e.AnyValue()
	}
	return values
}

// Names returns the distinct field names, sorted.
func (f *Form) Names() []string {
	seen := map[string]bool{}
	var names []string
	for _, e := range f.Fields() {
		if n := e.Name(); n != "" && !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// Save passes Values to OnSaved.
func (f *Form) Save() {
	if f.OnSaved != nil {
		f.OnSaved(f.Values())
	}
}

// Reset restores every field to its default and clears errors.
func (f *Form) Reset() {
	for _, e := range f.Fields() {
		e.ClearValue()
	}
	f.mu.Lock()
	clear(f.errors)
	f.mu.Unlock()
	f.bumpGeneration()
}

// Generation counts validations, resets and field changes.
func (f *Form) Generation() int {
	return f.generation.Value()
}

// Generations returns the observable behind Generation. Every bump requests
// one render of the form.
func (f *Form) Generations() *core.Observable[int] {
	return f.generation
}

func (f *Form) bumpGeneration() {
	f.genMu.Lock()
	defer f.genMu.Unlock()
	f.generation.Set(f.generation.Value() + 1)
}

// Dispose unregisters every field and disposes it.
func (f *Form) Dispose() {
	f.mu.Lock()
	fields := append([]*formField(nil), f.fields...)
	f.mu.Unlock()
	for _, ff := range fields {
		f.unregister(ff)
		if d, ok := ff.elem.(core.Disposable); ok {
			d.Dispose()
		}
	}
	f.StateBase.Dispose()
}
