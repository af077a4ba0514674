package filter

import "sort"

var namedStringFilters = map[string]Filter[string]{
	"trim":                Trim,
	"upper":               ToUpper,
	"lower":               ToLower,
	"fold-case":           FoldCase,
	"collapse-whitespace": CollapseWhitespace,
	"blank-to-empty":      BlankToEmpty,
	"nfc":                 NormalizeNFC,
	"fold-width":          FoldWidth,
	"strip-markup":        StripMarkup,
}

// Named returns the built-in string filter registered under name, as used in
// form definitions (e.g., "trim", "upper", "strip-markup").
func Named(name string) (Filter[string], bool) {
	f, ok := namedStringFilters[name]
	return f, ok
}

// Names lists the built-in string filter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(namedStringFilters))
	for name := range namedStringFilters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
