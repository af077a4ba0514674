// Package attr parses the declarative attribute surface of widgets.
//
// Attributes arrive as strings. Boolean flags are true by presence.
// Numbers that fail to parse are reported through pkg/errors with
// KindAttribute and fall back to NaN (or nil for optional bounds), so a
// widget with a bad attribute keeps working with a degraded bound.
package attr

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-drift/formkit/pkg/errors"
)

// Set is an attribute bag keyed by attribute name. A present key with an
// empty value is a set flag.
type Set map[string]string

// Has reports whether name is present.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// String returns the value of name, or fallback when absent.
func (s Set) String(name, fallback string) string {
	if v, ok := s[name]; ok {
		return v
	}
	return fallback
}

// Flag reports a boolean attribute.
func (s Set) Flag(name string) bool {
	v, ok := s[name]
	return ParseFlag(v, ok)
}

// Float parses a numeric attribute; absent or invalid yields NaN.
func (s Set) Float(tag, name string) float64 {
	v, ok := s[name]
	if !ok {
		return math.NaN()
	}
	return ParseFloat(tag, name, v)
}

// OptionalFloat parses a numeric attribute; absent or invalid yields nil.
func (s Set) OptionalFloat(tag, name string) *float64 {
	v, ok := s[name]
	if !ok {
		return nil
	}
	return ParseOptionalFloat(tag, name, v)
}

// Int parses an integer attribute; absent or invalid yields fallback.
func (s Set) Int(tag, name string, fallback int) int {
	v, ok := s[name]
	if !ok {
		return fallback
	}
	return ParseInt(tag, name, v, fallback)
}

// Clone returns a copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// ParseFlag interprets a boolean attribute. Presence means true, except for
// the explicit value "false".
func ParseFlag(raw string, present bool) bool {
	if !present {
		return false
	}
	return !strings.EqualFold(strings.TrimSpace(raw), "false")
}

// ParseFloat parses raw as a number. An empty string is NaN without an
// error; anything else unparseable is reported and yields NaN.
func ParseFloat(tag, name, raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) {
		errors.ReportAttribute("attr.ParseFloat", tag, name, raw, "number")
		return math.NaN()
	}
	return v
}

// ParseOptionalFloat is ParseFloat with nil in place of NaN.
func ParseOptionalFloat(tag, name, raw string) *float64 {
	v := ParseFloat(tag, name, raw)
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// ParseInt parses raw as a base-10 integer, reporting and returning
// fallback when it is not one.
func ParseInt(tag, name, raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errors.ReportAttribute("attr.ParseInt", tag, name, raw, "integer")
		return fallback
	}
	return v
}

// Float64 returns *p, or NaN for nil.
func Float64(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}
