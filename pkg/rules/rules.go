// Package rules provides validity predicates attached to inputs. An input is
// valid when every attached rule passes against its current value.
package rules

import (
	"fmt"
	"math"
	"regexp"
	"unicode/utf8"
)

// Rule is a predicate over a value with an optional message describing the
// failure.
type Rule[T any] struct {
	Check   func(T) bool
	Message string
}

// Valid reports whether every rule passes for v. No rules means valid.
func Valid[T any](rules []Rule[T], v T) bool {
	for _, r := range rules {
		if r.Check != nil && !r.Check(v) {
			return false
		}
	}
	return true
}

// Failures returns the messages of rules that fail for v, in attachment
// order. A failing rule without a message contributes "invalid value".
func Failures[T any](rules []Rule[T], v T) []string {
	var out []string
	for _, r := range rules {
		if r.Check == nil || r.Check(v) {
			continue
		}
		msg := r.Message
		if msg == "" {
			msg = "invalid value"
		}
		out = append(out, msg)
	}
	return out
}

// Required fails on the empty string.
func Required(message string) Rule[string] {
	if message == "" {
		message = "required"
	}
	return Rule[string]{
		Check:   func(s string) bool { return s != "" },
		Message: message,
	}
}

// MinLength fails when s has fewer than n runes. The empty string passes so
// optional fields stay valid; combine with Required.
func MinLength(n int) Rule[string] {
	return Rule[string]{
		Check:   func(s string) bool { return s == "" || utf8.RuneCountInString(s) >= n },
		Message: fmt.Sprintf("must be at least %d characters", n),
	}
}

// MaxLength fails when s has more than n runes.
func MaxLength(n int) Rule[string] {
	return Rule[string]{
		Check:   func(s string) bool { return utf8.RuneCountInString(s) <= n },
		Message: fmt.Sprintf("must be at most %d characters", n),
	}
}

// Pattern fails when a non-empty s does not match re.
func Pattern(re *regexp.Regexp, message string) Rule[string] {
	if message == "" {
		message = fmt.Sprintf("must match %s", re)
	}
	return Rule[string]{
		Check:   func(s string) bool { return s == "" || re.MatchString(s) },
		Message: message,
	}
}

// InRange fails when v lies outside [lo, hi]. NaN bounds are ignored and a
// NaN value passes; use NotEmptyNumber to require a value.
func InRange(lo, hi float64) Rule[float64] {
	return Rule[float64]{
		Check: func(v float64) bool {
			if math.IsNaN(v) {
				return true
			}
			if !math.IsNaN(lo) && v < lo {
				return false
			}
			return math.IsNaN(hi) || v <= hi
		},
		Message: fmt.Sprintf("must be between %g and %g", lo, hi),
	}
}

// NotEmptyNumber fails on NaN, the empty-number sentinel.
func NotEmptyNumber(message string) Rule[float64] {
	if message == "" {
		message = "required"
	}
	return Rule[float64]{
		Check:   func(v float64) bool { return !math.IsNaN(v) },
		Message: message,
	}
}

// NotEmpty fails on an empty list.
func NotEmpty[T any](message string) Rule[[]T] {
	if message == "" {
		message = "required"
	}
	return Rule[[]T]{
		Check:   func(v []T) bool { return len(v) > 0 },
		Message: message,
	}
}

// Func adapts a predicate into a rule.
func Func[T any](check func(T) bool, message string) Rule[T] {
	return Rule[T]{Check: check, Message: message}
}
