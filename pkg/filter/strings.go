package filter

import (
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Trim removes leading and trailing white space.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpper maps s to upper case using Unicode default casing rules.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// ToLower maps s to lower case using Unicode default casing rules.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// FoldCase maps s to its case-folded form for caseless comparison.
func FoldCase(s string) string {
	return cases.Fold().String(s)
}

// CollapseWhitespace replaces each run of white space with a single space.
// Leading and trailing runs are kept as one space; combine with Trim to drop
// them.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// BlankToEmpty coerces a string made only of white space to "".
func BlankToEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// NormalizeNFC puts s in Unicode normalization form C.
func NormalizeNFC(s string) string {
	return norm.NFC.String(s)
}

// FoldWidth maps full-width and half-width runes to their canonical width,
// so "ＡＢＣ１" becomes "ABC1".
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

// StripMarkup removes every HTML element from s, keeping text content.
// Entities in the result are left escaped.
func StripMarkup(s string) string {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy.Sanitize(s)
}

// MaxLength truncates s to at most n runes.
func MaxLength(n int) Filter[string] {
	return func(s string) string {
		if n < 0 {
			return s
		}
		count := 0
		for i := range s {
			if count == n {
				return s[:i]
			}
			count++
		}
		return s
	}
}
