// Package filter provides value filters: pure transforms applied to a value
// before it is committed to an input.
//
// Filters run left to right in the order they were attached, each receiving
// the previous output:
//
//	p := filter.Pipeline[string]{filter.ToUpper, filter.Trim}
//	p.Apply(" a ") // "A"
//
// Filters must be total. A filter that cannot normalize a value returns it
// unchanged; a filter that panics is a bug in the filter and is not
// recovered here.
package filter

// Filter transforms a value before it is committed.
type Filter[T any] func(T) T

// Apply folds filters over v in order.
func Apply[T any](filters []Filter[T], v T) T {
	for _, f := range filters {
		if f != nil {
			v = f(v)
		}
	}
	return v
}

// Pipeline is an ordered list of filters.
type Pipeline[T any] []Filter[T]

// Apply runs the pipeline over v.
func (p Pipeline[T]) Apply(v T) T {
	return Apply(p, v)
}

// Append returns a copy of p with filters added at the end.
func (p Pipeline[T]) Append(filters ...Filter[T]) Pipeline[T] {
	out := make(Pipeline[T], 0, len(p)+len(filters))
	out = append(out, p...)
	return append(out, filters...)
}
