package widgets_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/formkit/pkg/attr"
	"github.com/go-drift/formkit/pkg/errors"
	"github.com/go-drift/formkit/pkg/gestures"
	ftesting "github.com/go-drift/formkit/pkg/testing"
	"github.com/go-drift/formkit/pkg/widgets"
)

func TestNumber_EmptyByDefault(t *testing.T) {
	o, _ := newHarness()
	n := widgets.NewNumber(o)
	assert.True(t, n.Empty())
	assert.Equal(t, "", n.Text())
	assert.True(t, math.IsNaN(n.Min()))
	assert.Equal(t, 1.0, n.Step())
}

func TestNumber_BoundsAndPrecision(t *testing.T) {
	o, _ := newHarness()
	n := widgets.NewNumber(o)
	widgets.ApplyAttributes(n, attr.Set{"min": "0", "max": "10", "precision": "1", "value": "12.345"})
	assert.Equal(t, 10.0, n.Value())

	require.NoError(t, n.SetText("3.14159"))
	assert.Equal(t, 3.1, n.Value())
	assert.Equal(t, "3.1", n.Text())

	n.SetAttribute("max", "2")
	assert.Equal(t, 2.0, n.Value())
}

func TestNumber_Keys(t *testing.T) {
	o, _ := newHarness()
	n := widgets.NewNumber(o)
	n.SetAttribute("min", "5")

	assert.True(t, ftesting.Press(n, gestures.KeyArrowUp, false))
	assert.Equal(t, 5.0, n.Value())
	assert.True(t, ftesting.Press(n, gestures.KeyArrowUp, false))
	assert.Equal(t, 6.0, n.Value())
	assert.True(t, ftesting.Press(n, gestures.KeyArrowUp, true))
	assert.Equal(t, 16.0, n.Value())
	assert.True(t, ftesting.Press(n, gestures.KeyPageDown, false))
	assert.Equal(t, 6.0, n.Value())
	assert.True(t, ftesting.Press(n, gestures.KeyArrowDown, true))
	assert.Equal(t, 5.0, n.Value())
	assert.False(t, ftesting.Press(n, gestures.KeyArrowLeft, false))
}

func TestNumber_TextEntry(t *testing.T) {
	rec := ftesting.CaptureErrors(t)
	o, _ := newHarness()
	n := widgets.NewNumber(o)

	assert.True(t, n.EnterText("42"))
	assert.Equal(t, 42.0, n.Value())
	assert.True(t, n.EnterText("forty"))
	assert.True(t, n.Empty())
	assert.Error(t, n.SetText("x"))
	assert.Empty(t, rec.Errors())

	n.SetAttribute("value", "abc")
	require.Len(t, rec.Errors(), 1)
	assert.Equal(t, errors.KindAttribute, rec.Errors()[0].Kind)
}

func TestTextInput_Rules(t *testing.T) {
	o, _ := newHarness()
	ti := widgets.NewTextInput(o)
	widgets.ApplyAttributes(ti, attr.Set{"required": "", "minlength": "3", "pattern": "[a-z]+"})

	assert.Equal(t, []string{"required"}, ti.Validate())
	ti.SetValue("ab")
	assert.Equal(t, []string{"too short"}, ti.Validate())
	ti.SetValue("abc1")
	assert.Equal(t, []string{"does not match pattern"}, ti.Validate())
	ti.SetValue("abcd")
	assert.Empty(t, ti.Validate())
	assert.True(t, ti.IsValid())

	ti.SetAttribute("maxlength", "2")
	assert.Equal(t, []string{"too long"}, ti.Validate())
}

func TestTextInput_Filters(t *testing.T) {
	rec := ftesting.CaptureErrors(t)
	o, _ := newHarness()
	ti := widgets.NewTextInput(o)
	ti.SetAttribute("filters", "trim, upper, shout")

	assert.True(t, ti.EnterText("  hi "))
	assert.Equal(t, "HI", ti.Text())
	require.Len(t, rec.Errors(), 1)
	assert.Equal(t, errors.KindAttribute, rec.Errors()[0].Kind)
}

func TestTextInput_ReadOnly(t *testing.T) {
	o, _ := newHarness()
	ti := widgets.NewTextInput(o)
	ti.SetAttribute("readonly", "")

	assert.False(t, ti.EnterText("typed"))
	require.NoError(t, ti.SetText("set"))
	assert.Equal(t, "set", ti.Value())
}

func TestTextArea_DeferredDisplay(t *testing.T) {
	o, clk := newHarness()
	a := widgets.NewTextArea(o)
	a.SetValue("first")
	a.Connect()

	assert.False(t, a.Connected())
	assert.Equal(t, "", a.Display())

	clk.Advance(0)
	assert.True(t, a.Connected())
	assert.Equal(t, "first", a.Display())

	a.SetValue("second")
	assert.Equal(t, "second", a.Display())
}

func TestTextArea_DisposeCancelsConnect(t *testing.T) {
	o, clk := newHarness()
	a := widgets.NewTextArea(o)
	a.Connect()
	a.Dispose()

	clk.Advance(time.Second)
	assert.False(t, a.Connected())
	assert.Equal(t, 0, clk.Pending())
}

func TestTextArea_Rows(t *testing.T) {
	o, _ := newHarness()
	a := widgets.NewTextArea(o)
	assert.Equal(t, 2, a.Rows())
	a.SetAttribute("rows", "6")
	assert.Equal(t, 6, a.Rows())
	a.RemoveAttribute("rows")
	assert.Equal(t, 2, a.Rows())
}

func TestPassword_Display(t *testing.T) {
	o, _ := newHarness()
	p := widgets.NewPassword(o)
	p.SetValue("hünter2")

	assert.Equal(t, "•••••••", p.Display())
	assert.Equal(t, "current-password", p.Autocomplete())
	p.Reveal(true)
	assert.True(t, p.Revealed())
	assert.Equal(t, "hünter2", p.Display())
}

func TestTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want widgets.TimeOfDay
	}{
		{in: "09:30", want: widgets.TimeOfDay{Hour: 9, Minute: 30, Set: true}},
		{in: "23:59:58", want: widgets.TimeOfDay{Hour: 23, Minute: 59, Second: 58, Set: true}},
		{in: "00:00:01.5", want: widgets.TimeOfDay{Second: 1, Millisecond: 500, Set: true}},
		{in: "", want: widgets.TimeOfDay{}},
	}
	for _, tc := range cases {
		got, err := widgets.ParseTimeOfDay(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	for _, bad := range []string{"24:00", "9", "12:60", "10:00.5", "aa:bb"} {
		_, err := widgets.ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}

	assert.Equal(t, "00:00:01.500", widgets.TimeOfDay{Second: 1, Millisecond: 500, Set: true}.String())
	assert.Equal(t, "", widgets.TimeOfDay{}.String())
}

func TestTimeFromMillis(t *testing.T) {
	assert.Equal(t, widgets.TimeOfDay{Hour: 1, Minute: 2, Second: 3, Millisecond: 4, Set: true},
		widgets.TimeFromMillis(3_723_004))
	assert.Equal(t, widgets.TimeOfDay{Hour: 23, Minute: 59, Set: true},
		widgets.TimeFromMillis(-60_000))
	// 2024-01-01T12:15:00Z
	assert.Equal(t, "12:15", widgets.TimeFromMillis(1_704_111_300_000).String())
}

func TestTimePicker_Keys(t *testing.T) {
	o, _ := newHarness()
	tp := widgets.NewTimePicker(o)

	assert.True(t, ftesting.Press(tp, gestures.KeyArrowUp, false))
	assert.Equal(t, "00:00", tp.Text())
	assert.True(t, ftesting.Press(tp, gestures.KeyArrowDown, false))
	assert.Equal(t, "23:59", tp.Text())

	tp.SetAttribute("step", "1")
	assert.True(t, ftesting.Press(tp, gestures.KeyArrowUp, true))
	assert.Equal(t, "23:59:10", tp.Text())
	assert.False(t, ftesting.Press(tp, gestures.KeyEnter, false))
}

func TestTimePicker_ValueAttribute(t *testing.T) {
	rec := ftesting.CaptureErrors(t)
	o, _ := newHarness()
	tp := widgets.NewTimePicker(o)

	tp.SetAttribute("value", "45000000")
	assert.Equal(t, "12:30", tp.Text())
	tp.SetAttribute("format", "3:04 PM")
	assert.Equal(t, "12:30 PM", tp.Display())

	tp.SetAttribute("value", "7:05")
	assert.Equal(t, "07:05", tp.Text())
	assert.Empty(t, rec.Errors())

	tp.SetAttribute("value", "noon")
	assert.Len(t, rec.Errors(), 1)
	assert.Equal(t, "07:05", tp.Text())

	tp.RemoveAttribute("value")
	assert.False(t, tp.Value().Set)
}
