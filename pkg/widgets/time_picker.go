package widgets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/formkit/pkg/attr"
	"github.com/go-drift/formkit/pkg/core"
	"github.com/go-drift/formkit/pkg/errors"
	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/gestures"
	"github.com/go-drift/formkit/pkg/input"
)

const dayMillis = int64(24 * time.Hour / time.Millisecond)

// TimeOfDay is a wall-clock time. The zero value, with Set false, is the
// empty time.
type TimeOfDay struct {
	Hour, Minute, Second, Millisecond int
	Set                               bool
}

// TimeFromMillis decomposes milliseconds since the epoch into the time of
// day in UTC. Negative values wrap backwards from midnight.
func TimeFromMillis(ms int64) TimeOfDay {
	ms %= dayMillis
	if ms < 0 {
		ms += dayMillis
	}
	return TimeOfDay{
		Hour:        int(ms / 3_600_000),
		Minute:      int(ms / 60_000 % 60),
		Second:      int(ms / 1000 % 60),
		Millisecond: int(ms % 1000),
		Set:         true,
	}
}

// ParseTimeOfDay parses HH:MM, HH:MM:SS or HH:MM:SS.mmm. An empty string is
// the empty time.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeOfDay{}, nil
	}
	var t TimeOfDay
	clock, frac, hasFrac := strings.Cut(s, ".")
	parts := strings.Split(clock, ":")
	if len(parts) < 2 || len(parts) > 3 || (hasFrac && len(parts) != 3) {
		return TimeOfDay{}, fmt.Errorf("time %q: want HH:MM[:SS[.mmm]]", s)
	}
	fields := []*int{&t.Hour, &t.Minute, &t.Second}
	limits := []int{24, 60, 60}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v >= limits[i] || len(p) > 2 {
			return TimeOfDay{}, fmt.Errorf("time %q: bad field %q", s, p)
		}
		*fields[i] = v
	}
	if hasFrac {
		if len(frac) == 0 || len(frac) > 3 {
			return TimeOfDay{}, fmt.Errorf("time %q: bad milliseconds %q", s, frac)
		}
		v, err := strconv.Atoi(frac + strings.Repeat("0", 3-len(frac)))
		if err != nil || v < 0 {
			return TimeOfDay{}, fmt.Errorf("time %q: bad milliseconds %q", s, frac)
		}
		t.Millisecond = v
	}
	t.Set = true
	return t, nil
}

// Millis returns milliseconds since midnight.
func (t TimeOfDay) Millis() int64 {
	return int64(t.Hour)*3_600_000 + int64(t.Minute)*60_000 + int64(t.Second)*1000 + int64(t.Millisecond)
}

// Add returns t moved by d, wrapping around midnight.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return TimeFromMillis(t.Millis() + d.Milliseconds())
}

// Time returns t on the given date in loc.
func (t TimeOfDay) Time(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, t.Hour, t.Minute, t.Second, t.Millisecond*int(time.Millisecond), loc)
}

// String formats t as HH:MM, adding :SS and .mmm only when non-zero. The
// empty time formats as "".
func (t TimeOfDay) String() string {
	if !t.Set {
		return ""
	}
	switch {
	case t.Millisecond != 0:
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Millisecond)
	case t.Second != 0:
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TimePicker is a time-of-day field. Its "value" attribute is either
// milliseconds since the epoch (reduced to the time of day) or HH:MM[:SS[.mmm]].
// ArrowUp and ArrowDown move the time by "step" seconds (default 60),
// wrapping around midnight.
type TimePicker struct {
	*input.Input[TimeOfDay]
	field

	step   time.Duration
	format string
	tap    *gestures.TapRecognizer
}

// NewTimePicker returns an empty time field.
func NewTimePicker(o Options) *TimePicker {
	t := &TimePicker{
		Input:  input.New(config(o, TagTime, TimeOfDay{})),
		step:   time.Minute,
		format: "15:04",
	}
	t.tap = core.UseController(t, func() *gestures.TapRecognizer {
		return &gestures.TapRecognizer{
			Router:   o.Router,
			CanStart: t.Interactive,
			OnStart:  func() { t.Focus() },
		}
	})
	return t
}

// Step returns the arrow-key step.
func (t *TimePicker) Step() time.Duration {
	return t.step
}

// Display formats the value with the "format" attribute, a Go time layout
// (default "15:04").
func (t *TimePicker) Display() string {
	v := t.Value()
	if !v.Set {
		return ""
	}
	return v.Time(2000, time.January, 1, time.UTC).Format(t.format)
}

// EnterText applies a time typed by the user.
func (t *TimePicker) EnterText(s string) bool {
	v, err := ParseTimeOfDay(s)
	if err != nil {
		return false
	}
	return t.Edit(v)
}

// HandlePointer focuses the field on press.
func (t *TimePicker) HandlePointer(event gestures.PointerEvent) {
	t.tap.HandlePointer(event)
}

// HandleKey steps the time with ArrowUp and ArrowDown. An empty field
// starts at midnight.
func (t *TimePicker) HandleKey(event gestures.KeyEvent) bool {
	if !t.Editable() {
		return false
	}
	d := t.step
	if event.Shift {
		d *= 10
	}
	switch event.Key {
	case gestures.KeyArrowUp:
	case gestures.KeyArrowDown:
		d = -d
	default:
		return false
	}
	v := t.Value()
	if !v.Set {
		t.Edit(TimeOfDay{Set: true})
		return true
	}
	t.Edit(v.Add(d))
	return true
}

// SetAttribute applies "value", "step" and "format" plus the common
// attributes.
func (t *TimePicker) SetAttribute(name, value string) {
	t.setAttribute(name, value, true)
}

// RemoveAttribute clears an attribute.
func (t *TimePicker) RemoveAttribute(name string) {
	t.setAttribute(name, "", false)
}

func (t *TimePicker) setAttribute(name, value string, present bool) {
	if setCommonAttribute(t, &t.field, name, value, present) {
		return
	}
	switch name {
	case "step":
		step := time.Minute
		if present {
			if secs := attr.ParseFloat(t.Tag(), name, value); secs > 0 {
				step = time.Duration(secs * float64(time.Second))
			}
		}
		t.step = step
	case "format":
		f := "15:04"
		if present && value != "" {
			f = value
		}
		t.SetState(func() { t.format = f })
	case "value":
		if !present {
			t.ClearValue()
			return
		}
		if err := t.SetText(value); err != nil {
			errors.ReportAttribute("widgets.TimePicker.SetAttribute", t.Tag(), name, value, "epoch milliseconds or HH:MM[:SS[.mmm]]")
		}
	}
}

// AnyValue returns the TimeOfDay.
func (t *TimePicker) AnyValue() any {
	return t.Value()
}

// SetAnyValue accepts a TimeOfDay, a time.Time or epoch milliseconds.
func (t *TimePicker) SetAnyValue(v any) error {
	switch x := v.(type) {
	case TimeOfDay:
		t.SetValue(x)
	case time.Time:
		t.SetValue(TimeOfDay{
			Hour: x.Hour(), Minute: x.Minute(), Second: x.Second(),
			Millisecond: x.Nanosecond() / int(time.Millisecond), Set: true,
		})
	case int64:
		t.SetValue(TimeFromMillis(x))
	case int:
		t.SetValue(TimeFromMillis(int64(x)))
	default:
		return wrongType[TimeOfDay](t.Tag(), v)
	}
	return nil
}

// SetText commits epoch milliseconds or HH:MM[:SS[.mmm]].
func (t *TimePicker) SetText(s string) error {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.SetValue(TimeFromMillis(ms))
		return nil
	}
	v, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	t.SetValue(v)
	return nil
}

// Text formats the value as HH:MM[:SS[.mmm]].
func (t *TimePicker) Text() string {
	return t.Value().String()
}

// OnAny subscribes with the TimeOfDay boxed as any.
func (t *TimePicker) OnAny(typ events.Type, fn func(events.Event[any])) func() {
	return onAny(t.Input, typ, fn)
}
