package gestures

// Key identifies a keyboard key relevant to form widgets.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
	KeySpace
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyEscape
)

var keyNames = map[Key]string{
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyEnter:      "Enter",
	KeySpace:      "Space",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyTab:        "Tab",
	KeyEscape:     "Escape",
}

// String returns the DOM-style key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unidentified"
}

// ParseKey maps a DOM-style key name to a Key. A single space is accepted
// for Space. Unknown names return KeyUnknown.
func ParseKey(name string) Key {
	if name == " " {
		return KeySpace
	}
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	return KeyUnknown
}

// KeyEvent is a key press delivered to the focused widget.
type KeyEvent struct {
	Key   Key
	Shift bool
}

// KeyHandler receives key events and reports whether it consumed them.
type KeyHandler interface {
	HandleKey(event KeyEvent) bool
}
