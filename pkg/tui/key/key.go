// ABOUTME: Defines the Key event variant produced by the Decoder for each keypress.
// ABOUTME: Covers printable bytes, Enter, Backspace, navigation keys, Delete and Cancel.

package key

import "fmt"

// Key represents one decoded keyboard event.
type Key struct {
	Type KeyType
	Char byte // For KeyChar only
}

// KeyType enumerates the kinds of key events the editor reacts to.
type KeyType int

const (
	KeyChar      KeyType = iota // Printable byte (>= 0x20, or any byte >= 0x80)
	KeyEnter                    // Carriage return
	KeyBackspace                // DEL (0x7F) or Ctrl+H (0x08)
	KeyLeft                     // ESC [ D
	KeyRight                    // ESC [ C
	KeyHome                     // ESC [ H
	KeyEnd                      // ESC [ F
	KeyDelete                   // ESC [ 3 ~
	KeyCancel                   // Bare Escape
)

// Char returns a KeyChar event for b.
func Char(b byte) Key {
	return Key{Type: KeyChar, Char: b}
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyDelete:    "Delete",
	KeyCancel:    "Cancel",
}

// String returns a human-readable representation of the Key for debug output.
func (k Key) String() string {
	if k.Type == KeyChar {
		return fmt.Sprintf("Char(%q)", k.Char)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}
