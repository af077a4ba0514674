// Package widgets provides the concrete form inputs.
//
// Every widget embeds an *input.Input of its value type and implements
// [Element], the tag-agnostic surface used by hosts, [Form] and the
// declarative definition loader. The catalogue:
//
//   - [Checkbox]: tri-state (Unchecked -1, Indeterminate 0, Checked 1)
//   - [Radio] and [RadioGroup]: exclusive selection by option
//   - [Toggle]: tap or drag to switch
//   - [Slider] and [GradientSlider]: a value on a track, with color steps
//   - [ColorTint]: a saturation/lightness pad for a fixed hue
//   - [ColorPicker]: hue, tint and alpha parts merged into one HSL value
//   - [Number]: a numeric field with min, max, step and precision
//   - [TextInput], [TextArea] and [Password]: text fields
//   - [TimePicker]: a time of day
//   - [FilePicker] and [ImagePicker]: acquired files and decoded images
//
// # Construction
//
// Widgets are created from [Options], which carry the clock, dispatcher,
// pointer router and renderer. The zero Options is usable:
//
//	slider := widgets.NewSlider(widgets.Options{})
//	slider.SetTrack(gestures.Track{Left: 0, Top: 0, Width: 200, Height: 32})
//	slider.On(events.UpdateStable, func(ev events.Event[float64]) {
//	    fmt.Println("settled at", ev.Value)
//	})
//
// Widgets can also be created by tag through a [Registry] and configured with
// string attributes:
//
//	e, _ := widgets.DefaultRegistry().New(widgets.TagSlider, widgets.Options{})
//	widgets.ApplyAttributes(e, attr.Set{"min": "0", "max": "10", "step": "2.5", "value": "6.1"})
//	e.Text() // "5"
//
// # Pointer Input
//
// Hosts deliver pointer-down to the widget under the pointer and every
// pointer event to the [gestures.Router]. Drags and taps keep receiving
// moves and the release even after the pointer leaves the widget.
package widgets
