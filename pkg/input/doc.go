// Package input implements the value contract shared by every formkit widget.
//
// An [Input] holds a typed value and its default, a filter pipeline, a list
// of validity rules, focus/disabled/readonly flags and the lifecycle event
// cascade. Widgets embed *Input[T] and route every mutation through
// [Input.Commit] (or [Input.Edit] for user-driven changes) so filters run,
// exactly one render pass is requested, and the Update cascade fires.
//
//	in := input.New(input.Config[string]{
//	    Tag:     "input-text",
//	    Filters: []filter.Filter[string]{filter.Trim},
//	    Rules:   []rules.Rule[string]{rules.Required("")},
//	})
//	in.On(events.UpdateStable, func(ev events.Event[string]) { save(ev.Value) })
//	in.SetValue("  hello ") // stores "hello"
package input
