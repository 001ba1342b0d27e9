// ABOUTME: CSI final-byte mappings for the navigation keys the editor understands.
// ABOUTME: Byte classification helpers for the escape sequence state machine.

package key

const (
	byteEscape    = 0x1b
	byteCR        = 0x0d
	byteDEL       = 0x7f
	byteCtrlH     = 0x08
	bytePrintable = 0x20

	csiIntroducer = '['
	csiDelete     = '3'
	csiTilde      = '~'
)

// csiFinals maps the byte after "ESC [" to the key it completes.
var csiFinals = map[byte]KeyType{
	'D': KeyLeft,
	'C': KeyRight,
	'H': KeyHome,
	'F': KeyEnd,
}

// isCSIFinal reports whether b terminates a CSI sequence (ECMA-48 final byte).
func isCSIFinal(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}
