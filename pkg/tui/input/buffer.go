// ABOUTME: Buffer is the single-line edit state: a byte sequence plus a cursor offset.
// ABOUTME: Every operation is total and keeps 0 <= cursor <= Len().

package input

// Buffer holds editable text and the cursor position within it.
type Buffer struct {
	text   []byte
	cursor int
}

// NewBuffer returns a Buffer seeded with s and the cursor at the end.
func NewBuffer(s string) *Buffer {
	text := make([]byte, len(s), len(s)+64)
	copy(text, s)
	return &Buffer{text: text, cursor: len(text)}
}

// Text returns the current contents.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Cursor returns the cursor offset in bytes.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the length of the text in bytes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Insert splices c in at the cursor and advances the cursor past it.
func (b *Buffer) Insert(c byte) {
	b.clamp()
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = c
	b.cursor++
}

// Backspace removes the byte before the cursor. No-op at the start.
func (b *Buffer) Backspace() {
	b.clamp()
	if b.cursor == 0 {
		return
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
}

// DeleteForward removes the byte under the cursor. No-op at the end.
func (b *Buffer) DeleteForward() {
	b.clamp()
	if b.cursor >= len(b.text) {
		return
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
}

// MoveLeft moves the cursor one byte left, stopping at 0.
func (b *Buffer) MoveLeft() {
	b.cursor--
	b.clamp()
}

// MoveRight moves the cursor one byte right, stopping at Len().
func (b *Buffer) MoveRight() {
	b.cursor++
	b.clamp()
}

// MoveHome puts the cursor at the start of the text.
func (b *Buffer) MoveHome() {
	b.cursor = 0
}

// MoveEnd puts the cursor after the last byte.
func (b *Buffer) MoveEnd() {
	b.cursor = len(b.text)
}

func (b *Buffer) clamp() {
	b.cursor = max(0, min(b.cursor, len(b.text)))
}
