package widgets

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-drift/formkit/pkg/attr"
	"github.com/go-drift/formkit/pkg/clock"
	"github.com/go-drift/formkit/pkg/core"
	"github.com/go-drift/formkit/pkg/errors"
	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/filter"
	"github.com/go-drift/formkit/pkg/gestures"
	"github.com/go-drift/formkit/pkg/input"
	"github.com/go-drift/formkit/pkg/rules"
)

// TextInput is a single-line text field. Editing itself is left to the host's
// native editor, which reports typed text through EnterText.
//
// The "required", "minlength", "maxlength" and "pattern" attributes install
// validity rules; "filters" takes a comma separated list of built-in filter
// names (see filter.Named) applied before every commit.
type TextInput struct {
	*input.Input[string]
	field

	placeholder  string
	autocomplete string
	inputMode    string

	required  bool
	minLength int
	maxLength int
	pattern   *regexp.Regexp

	tap *gestures.TapRecognizer
}

// NewTextInput returns an empty text field.
func NewTextInput(o Options) *TextInput {
	return newTextInput(o, TagText)
}

func newTextInput(o Options, tag string) *TextInput {
	t := &TextInput{Input: input.New(config(o, tag, "")), maxLength: -1}
	t.AddRule(rules.Func(func(s string) bool { return !t.required || s != "" }, "required"))
	t.AddRule(rules.Func(func(s string) bool {
		return s == "" || utf8.RuneCountInString(s) >= t.minLength
	}, "too short"))
	t.AddRule(rules.Func(func(s string) bool {
		return t.maxLength < 0 || utf8.RuneCountInString(s) <= t.maxLength
	}, "too long"))
	t.AddRule(rules.Func(func(s string) bool {
		return s == "" || t.pattern == nil || t.pattern.MatchString(s)
	}, "does not match pattern"))
	t.tap = core.UseController(t, func() *gestures.TapRecognizer {
		return &gestures.TapRecognizer{
			Router:   o.Router,
			CanStart: t.Interactive,
			OnStart:  func() { t.Focus() },
		}
	})
	return t
}

// Placeholder returns the hint shown when empty.
func (t *TextInput) Placeholder() string { return t.placeholder }

// Autocomplete returns the autocomplete hint.
func (t *TextInput) Autocomplete() string { return t.autocomplete }

// InputMode returns the virtual keyboard hint.
func (t *TextInput) InputMode() string { return t.inputMode }

// EnterText applies text typed by the user.
func (t *TextInput) EnterText(s string) bool {
	return t.Edit(s)
}

// HandlePointer focuses the field on press.
func (t *TextInput) HandlePointer(event gestures.PointerEvent) {
	t.tap.HandlePointer(event)
}

// HandleKey leaves keys to the native editor.
func (t *TextInput) HandleKey(gestures.KeyEvent) bool {
	return false
}

// SetAttribute applies text attributes plus the common ones.
func (t *TextInput) SetAttribute(name, value string) {
	t.setAttribute(name, value, true)
}

// RemoveAttribute clears an attribute.
func (t *TextInput) RemoveAttribute(name string) {
	t.setAttribute(name, "", false)
}

func (t *TextInput) setAttribute(name, value string, present bool) {
	if setCommonAttribute(t, &t.field, name, value, present) {
		return
	}
	switch name {
	case "placeholder":
		t.SetState(func() { t.placeholder = value })
	case "autocomplete":
		t.SetState(func() { t.autocomplete = value })
	case "inputmode":
		t.SetState(func() { t.inputMode = value })
	case "required":
		t.SetState(func() { t.required = attr.ParseFlag(value, present) })
	case "minlength":
		n := 0
		if present {
			n = attr.ParseInt(t.Tag(), name, value, 0)
		}
		t.SetState(func() { t.minLength = n })
	case "maxlength":
		n := -1
		if present {
			n = attr.ParseInt(t.Tag(), name, value, -1)
		}
		t.SetState(func() { t.maxLength = n })
	case "pattern":
		var re *regexp.Regexp
		if present && value != "" {
			var err error
			if re, err = regexp.Compile("^(?:" + value + ")$"); err != nil {
				errors.ReportAttribute("widgets.TextInput.SetAttribute", t.Tag(), name, value, "regular expression")
				return
			}
		}
		t.SetState(func() { t.pattern = re })
	case "filters":
		if !present {
			return
		}
		for _, fname := range strings.Split(value, ",") {
			fname = strings.TrimSpace(fname)
			f, ok := filter.Named(fname)
			if !ok {
				errors.ReportAttribute("widgets.TextInput.SetAttribute", t.Tag(), name, fname, "filter name")
				continue
			}
			t.AddFilter(f)
		}
	case "value":
		if !present {
			t.ClearValue()
			return
		}
		t.SetValue(value)
	}
}

// AnyValue returns the text.
func (t *TextInput) AnyValue() any {
	return t.Value()
}

// SetAnyValue accepts a string.
func (t *TextInput) SetAnyValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return wrongType[string](t.Tag(), v)
	}
	t.SetValue(s)
	return nil
}

// SetText commits s.
func (t *TextInput) SetText(s string) error {
	t.SetValue(s)
	return nil
}

// Text returns the committed text.
func (t *TextInput) Text() string {
	return t.Value()
}

// OnAny subscribes with the text boxed as any.
func (t *TextInput) OnAny(typ events.Type, fn func(events.Event[any])) func() {
	return onAny(t.Input, typ, fn)
}

// TextArea is a multi-line text field. Its display text is first written one
// continuation after Connect, once the host has laid out the editor, and
// follows every commit after that.
type TextArea struct {
	*TextInput

	rows int

	mu        sync.Mutex
	display   string
	connected bool
	pending   clock.Timer
}

// NewTextArea returns an empty text area.
func NewTextArea(o Options) *TextArea {
	a := &TextArea{TextInput: newTextInput(o, TagTextArea), rows: 2}
	off := a.On(events.Update, func(ev events.Event[string]) {
		a.mu.Lock()
		connected := a.connected
		a.mu.Unlock()
		if connected {
			a.SetState(func() { a.setDisplay(ev.Value) })
		}
	})
	a.OnDispose(off)
	a.OnDispose(a.cancelPending)
	return a
}

// Rows returns the visible row count.
func (a *TextArea) Rows() int { return a.rows }

// Connect attaches the area to its host editor and schedules the initial
// display write.
func (a *TextArea) Connect() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.connected || a.pending != nil {
		return
	}
	a.pending = a.Clock().AfterFunc(0, func() {
		a.mu.Lock()
		a.pending = nil
		a.connected = true
		a.mu.Unlock()
		a.SetState(func() { a.setDisplay(a.Value()) })
	})
}

// Connected reports whether the initial display write has happened.
func (a *TextArea) Connected() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.connected
}

// Display returns the text shown in the editor.
func (a *TextArea) Display() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.display
}

func (a *TextArea) setDisplay(s string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.display = s
}

func (a *TextArea) cancelPending() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending != nil {
		a.pending.Stop()
		a.pending = nil
	}
}

// SetAttribute adds "rows" to the text attributes.
func (a *TextArea) SetAttribute(name, value string) {
	if name == "rows" {
		a.rows = attr.ParseInt(a.Tag(), name, value, 2)
		a.SetState(nil)
		return
	}
	a.TextInput.SetAttribute(name, value)
}

// RemoveAttribute clears an attribute; removing "rows" restores two rows.
func (a *TextArea) RemoveAttribute(name string) {
	if name == "rows" {
		a.rows = 2
		a.SetState(nil)
		return
	}
	a.TextInput.RemoveAttribute(name)
}

// Password is a text field whose display is masked unless revealed.
type Password struct {
	*TextInput

	revealed bool
}

// NewPassword returns an empty password field.
func NewPassword(o Options) *Password {
	p := &Password{TextInput: newTextInput(o, TagPassword)}
	p.autocomplete = "current-password"
	return p
}

// Reveal shows or masks the text.
func (p *Password) Reveal(show bool) {
	p.SetState(func() { p.revealed = show })
}

// Revealed reports whether the text is shown.
func (p *Password) Revealed() bool {
	return p.revealed
}

// Display returns the text as shown: one bullet per rune unless revealed.
func (p *Password) Display() string {
	v := p.Value()
	if p.revealed {
		return v
	}
	return strings.Repeat("•", utf8.RuneCountInString(v))
}
