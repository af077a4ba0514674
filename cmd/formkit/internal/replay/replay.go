// Package replay drives a built form with a scripted sequence of pointer,
// key and value actions on a manual clock and records the resulting event
// trace.
package replay

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/focus"
	"github.com/go-drift/formkit/pkg/gestures"
	ftesting "github.com/go-drift/formkit/pkg/testing"
	"github.com/go-drift/formkit/pkg/widgets"
)

// Script is a replay document.
type Script struct {
	// Layout places fields by name before the first step.
	Layout map[string]Box `yaml:"layout,omitempty"`
	Steps  []Step         `yaml:"steps"`
}

// Box is a laid-out rectangle.
type Box struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Step is one scripted action. Action is tap, drag, key, set, enter, clear,
// focus, blur, tab or wait. Tab moves focus to the next field, or the
// previous one with Shift, and takes no field. Wait advances the clock
// after the action.
type Step struct {
	Field  string        `yaml:"field,omitempty"`
	Action string        `yaml:"action"`
	X      float64       `yaml:"x,omitempty"`
	Y      float64       `yaml:"y,omitempty"`
	ToX    float64       `yaml:"to_x,omitempty"`
	ToY    float64       `yaml:"to_y,omitempty"`
	Moves  int           `yaml:"moves,omitempty"`
	Key    string        `yaml:"key,omitempty"`
	Shift  bool          `yaml:"shift,omitempty"`
	Value  string        `yaml:"value,omitempty"`
	Wait   time.Duration `yaml:"wait,omitempty"`
}

// LoadFile reads a script.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("replay: %s: %w", path, err)
	}
	return &s, nil
}

// Entry is one recorded event.
type Entry struct {
	Elapsed time.Duration
	Field   string
	Type    events.Type
	Value   any
	Valid   bool
}

func (e Entry) String() string {
	valid := "valid"
	if !e.Valid {
		valid = "invalid"
	}
	return fmt.Sprintf("+%-7s %-12s %-13s %v (%s)", e.Elapsed, e.Field, e.Type, e.Value, valid)
}

// Player runs scripts against a form built with its Options.
type Player struct {
	Clock  *ftesting.FakeClock
	Router *gestures.Router
	Focus  *focus.Manager
	// Out receives each entry as it is recorded. Nil discards.
	Out io.Writer

	start   time.Time
	mu      sync.Mutex
	entries []Entry
	unsubs  []func()
}

// NewPlayer returns a player with a fresh manual clock, router and focus
// scope.
func NewPlayer(out io.Writer) *Player {
	clk := ftesting.NewFakeClock()
	return &Player{
		Clock:  clk,
		Router: gestures.NewRouter(),
		Focus:  focus.NewManager(),
		Out:    out,
		start:  clk.Now(),
	}
}

// Options returns widget options bound to the player's clock, router and
// focus scope.
func (p *Player) Options(debounce time.Duration) widgets.Options {
	return widgets.Options{Clock: p.Clock, Router: p.Router, Focus: p.Focus, Debounce: debounce}
}

// Attach records every lifecycle event of every field in form.
func (p *Player) Attach(form *widgets.Form) {
	for _, e := range form.Fields() {
		label := e.Name()
		if label == "" {
			label = e.Tag()
		}
		for _, typ := range events.Types() {
			p.unsubs = append(p.unsubs, e.OnAny(typ, func(ev events.Event[any]) {
				p.record(Entry{
					Elapsed: ev.Time.Sub(p.start),
					Field:   label,
					Type:    ev.Type,
					Value:   ev.Value,
					Valid:   ev.Valid,
				})
			}))
		}
	}
}

// Detach stops recording.
func (p *Player) Detach() {
	for _, off := range p.unsubs {
		off()
	}
	p.unsubs = nil
}

func (p *Player) record(e Entry) {
	p.mu.Lock()
	p.entries = append(p.entries, e)
	p.mu.Unlock()
	if p.Out != nil {
		fmt.Fprintln(p.Out, e)
	}
}

// Entries returns the recorded trace.
func (p *Player) Entries() []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Entry(nil), p.entries...)
}

type tracked interface {
	SetTrack(gestures.Track)
}

type padded interface {
	SetPad(gestures.Track)
}

type typed interface {
	EnterText(string) bool
}

// Run lays out the fields, plays every step and finally advances the clock
// far enough for pending cascades to settle.
func (p *Player) Run(form *widgets.Form, s *Script) error {
	for name, box := range s.Layout {
		e, ok := form.Field(name)
		if !ok {
			return fmt.Errorf("layout: unknown field %q", name)
		}
		t := gestures.Track{Left: box.Left, Top: box.Top, Width: box.Width, Height: box.Height}
		switch x := e.(type) {
		case tracked:
			x.SetTrack(t)
		case padded:
			x.SetPad(t)
		default:
			e.SetBounds(t.Rect())
		}
	}
	for i, step := range s.Steps {
		if err := p.step(form, step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
		if step.Wait > 0 {
			p.Clock.Advance(step.Wait)
		}
	}
	p.Clock.Advance(time.Minute)
	return nil
}

func (p *Player) step(form *widgets.Form, s Step) error {
	switch s.Action {
	case "wait":
		return nil
	case "tab":
		delta := 1
		if s.Shift {
			delta = -1
		}
		p.Focus.MoveFocus(delta)
		return nil
	}
	e, ok := form.Field(s.Field)
	if !ok {
		return fmt.Errorf("unknown field %q", s.Field)
	}
	from := gestures.Offset{X: s.X, Y: s.Y}
	switch s.Action {
	case "tap":
		ftesting.Tap(p.Router, e, from)
	case "drag":
		moves := s.Moves
		if moves <= 0 {
			moves = 10
		}
		ftesting.Drag(p.Router, e, from, gestures.Offset{X: s.ToX, Y: s.ToY}, moves)
	case "key":
		key := gestures.ParseKey(s.Key)
		if key == gestures.KeyUnknown {
			return fmt.Errorf("unknown key %q", s.Key)
		}
		ftesting.Press(e, key, s.Shift)
	case "set":
		return e.SetText(s.Value)
	case "enter":
		t, ok := e.(typed)
		if !ok {
			return fmt.Errorf("%s does not take typed text", e.Tag())
		}
		t.EnterText(s.Value)
	case "clear":
		e.ClearValue()
	case "focus":
		e.Focus()
	case "blur":
		e.Blur()
	default:
		return fmt.Errorf("unknown action %q", s.Action)
	}
	return nil
}
