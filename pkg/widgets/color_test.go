package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/formkit/pkg/events"
	"github.com/go-drift/formkit/pkg/gestures"
	"github.com/go-drift/formkit/pkg/graphics"
	ftesting "github.com/go-drift/formkit/pkg/testing"
	"github.com/go-drift/formkit/pkg/tint"
	"github.com/go-drift/formkit/pkg/widgets"
)

func TestColorTint_PadPointer(t *testing.T) {
	o, _ := newHarness()
	c := widgets.NewColorTint(o)
	c.SetPad(gestures.Track{Width: 100, Height: 100})

	ftesting.Tap(o.Router, c, gestures.Offset{X: 50, Y: 50})
	v := c.Value()
	assert.InDelta(t, 100.0/3, v.Saturation, 1e-9)
	assert.InDelta(t, 37.5, v.Lightness, 1e-9)
	assert.Equal(t, tint.Point{X: 50, Y: 50}, c.Position())

	ftesting.Tap(o.Router, c, gestures.Offset{X: 0, Y: 0})
	assert.Equal(t, widgets.Tint{Saturation: 0, Lightness: 100}, c.Value())
	assert.Equal(t, "#ffffff", c.Color().Hex())
}

func TestColorTint_Keys(t *testing.T) {
	o, _ := newHarness()
	c := widgets.NewColorTint(o)
	c.SetHue(240)
	assert.Equal(t, tint.Point{X: 100, Y: 0}, c.Position())
	assert.Equal(t, "#0000ff", c.Color().Hex())

	assert.True(t, ftesting.Press(c, gestures.KeyArrowDown, true))
	assert.Equal(t, tint.Point{X: 100, Y: 10}, c.Position())
	assert.False(t, ftesting.Press(c, gestures.KeyEnter, false))
}

func TestColorTint_TextValue(t *testing.T) {
	o, _ := newHarness()
	c := widgets.NewColorTint(o)
	require.NoError(t, c.SetText("20,30"))
	assert.Equal(t, widgets.Tint{Saturation: 20, Lightness: 30}, c.Value())
	assert.Equal(t, "20,30", c.Text())

	c.SetValue(widgets.Tint{Saturation: 140, Lightness: -5})
	assert.Equal(t, widgets.Tint{Saturation: 100, Lightness: 0}, c.Value())
}

func TestColorPicker_FanIn(t *testing.T) {
	o, _ := newHarness()
	p := widgets.NewColorPicker(o)
	p.Hue().SetTrack(gestures.Track{Width: 376, Height: 16})
	rec := ftesting.Record[graphics.HSL](p)

	ftesting.Tap(o.Router, p, gestures.Offset{X: 128, Y: 8})

	v := p.Value()
	assert.InDelta(t, 120, v.H, 1e-9)
	assert.Equal(t, 100.0, v.S)
	assert.Equal(t, 50.0, v.L)
	assert.Equal(t, 1.0, v.A)
	assert.Equal(t, "#00ff00", p.Text())
	assert.InDelta(t, 120, p.Tint().Hue(), 1e-9)
	assert.Equal(t, 1, rec.Count(events.Update))

	steps := p.Alpha().ColorSteps()
	require.Len(t, steps, 2)
	assert.Equal(t, 0.0, steps[0].Color.Alpha())
	assert.Equal(t, "#00ff00", steps[1].Color.Hex())
}

func TestColorPicker_SetTextPushesParts(t *testing.T) {
	o, _ := newHarness()
	p := widgets.NewColorPicker(o)
	rec := ftesting.Record[graphics.HSL](p)

	require.NoError(t, p.SetText("#0000ff"))
	assert.Equal(t, 1, rec.Count(events.Update))
	assert.InDelta(t, 240, p.Hue().Value(), 1e-9)
	assert.Equal(t, widgets.Tint{Saturation: 100, Lightness: 50}, p.Tint().Value())
	assert.Equal(t, 1.0, p.Alpha().Value())
	assert.Equal(t, "#0000ff", p.Text())

	assert.Error(t, p.SetText("blue"))
}

func TestColorPicker_DisabledParts(t *testing.T) {
	o, _ := newHarness()
	p := widgets.NewColorPicker(o)
	p.SetAttribute("disabled", "")

	assert.True(t, p.Hue().Disabled())
	assert.True(t, p.Tint().Disabled())
	assert.True(t, p.Alpha().Disabled())

	p.RemoveAttribute("disabled")
	assert.False(t, p.Alpha().Disabled())
}

func newPickerLayout(t *testing.T, o widgets.Options) *widgets.ColorPicker {
	t.Helper()
	p := widgets.NewColorPicker(o)
	p.Hue().SetTrack(gestures.Track{Width: 376, Height: 16})
	p.Tint().SetPad(gestures.Track{Top: 20, Width: 100, Height: 100})
	p.Alpha().SetTrack(gestures.Track{Top: 130, Width: 376, Height: 16})
	return p
}

func TestColorPicker_KeysFollowPrimaryFocus(t *testing.T) {
	o, _ := newHarness()
	p := newPickerLayout(t, o)

	ftesting.Tap(o.Router, p, gestures.Offset{X: 128, Y: 8})
	require.True(t, p.Hue().Focused())
	ftesting.Tap(o.Router, p, gestures.Offset{X: 50, Y: 70})
	require.True(t, p.Tint().Focused())
	assert.False(t, p.Hue().Focused())

	hue := p.Hue().Value()
	before := p.Tint().Position()

	assert.True(t, ftesting.Press(p, gestures.KeyArrowRight, false))

	assert.Equal(t, hue, p.Hue().Value())
	after := p.Tint().Position()
	assert.InDelta(t, before.X+1, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
	assert.Equal(t, p.Tint().Value().Saturation, p.Value().S)
}

func TestColorPicker_FocusedWhilePartFocused(t *testing.T) {
	o, _ := newHarness()
	p := newPickerLayout(t, o)
	rec := ftesting.Record[graphics.HSL](p)

	ftesting.Tap(o.Router, p, gestures.Offset{X: 128, Y: 8})
	assert.True(t, p.Focused())
	ftesting.Tap(o.Router, p, gestures.Offset{X: 50, Y: 70})
	assert.True(t, p.Focused())
	assert.Equal(t, 1, rec.Count(events.Focus))
	assert.Equal(t, 0, rec.Count(events.Blur))

	other := widgets.NewSlider(o)
	other.Focus()
	assert.False(t, p.Focused())
	assert.False(t, p.Tint().Focused())
	assert.Equal(t, 1, rec.Count(events.Blur))
}

func TestColorPicker_FocusDelegatesToHue(t *testing.T) {
	o, _ := newHarness()
	p := widgets.NewColorPicker(o)

	assert.True(t, p.Focus())
	assert.True(t, p.Hue().FocusNode().HasPrimaryFocus())
	assert.True(t, p.Blur())
	assert.False(t, p.Hue().Focused())
	assert.Nil(t, o.Focus.Primary())
}

func TestColorPicker_TraversalSkipsPicker(t *testing.T) {
	o, _ := newHarness()
	p := widgets.NewColorPicker(o)

	require.True(t, o.Focus.MoveFocus(1))
	assert.True(t, p.Hue().FocusNode().HasPrimaryFocus())
	require.True(t, o.Focus.MoveFocus(1))
	assert.True(t, p.Tint().FocusNode().HasPrimaryFocus())
	require.True(t, o.Focus.MoveFocus(-1))
	assert.True(t, p.Hue().FocusNode().HasPrimaryFocus())
	require.True(t, o.Focus.MoveFocus(-1))
	assert.True(t, p.Alpha().FocusNode().HasPrimaryFocus())
}

func TestColorPicker_QueuedSetValueUpdatesOnce(t *testing.T) {
	o, _ := newHarness()
	q := events.NewQueueDispatcher()
	defer q.Close()
	o.Dispatcher = q
	p := newPickerLayout(t, o)
	rec := ftesting.Record[graphics.HSL](p)

	p.SetValue(graphics.HSL{H: 120, S: 50, L: 40, A: 0.5})
	q.Flush()

	assert.Equal(t, 1, rec.Count(events.Update))
	last, ok := rec.Last(events.Update)
	require.True(t, ok)
	assert.Equal(t, graphics.HSL{H: 120, S: 50, L: 40, A: 0.5}, last.Value)

	ftesting.Tap(o.Router, p, gestures.Offset{X: 8 + 360/2, Y: 8})
	q.Flush()
	assert.Equal(t, 2, rec.Count(events.Update))
}

func TestColorTint_SetHueRendersOnce(t *testing.T) {
	o, _ := newHarness()
	c := widgets.NewColorTint(o)
	before := c.RenderCount()

	c.SetHue(200)

	assert.Equal(t, before+1, c.RenderCount())
	assert.Equal(t, 200.0, c.Hue())
}
