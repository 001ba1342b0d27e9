// ABOUTME: Renderer repaints the edit line: CR, clear to end of line, text, CR, cursor forward.
// ABOUTME: Each frame is written with a single Write so partial frames never reach the terminal.

package lineedit

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	carriageReturn = "\r"
	clearToEOL     = "\x1b[K"
)

// Renderer draws an edit state onto one terminal line.
type Renderer struct {
	w   io.Writer
	buf strings.Builder
}

// NewRenderer returns a Renderer writing frames to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Repaint overwrites the current line with text and places the terminal
// cursor cursor columns from the left margin.
func (r *Renderer) Repaint(text string, cursor int) error {
	r.buf.Reset()
	r.buf.WriteString(carriageReturn)
	r.buf.WriteString(clearToEOL)
	r.buf.WriteString(text)
	r.buf.WriteString(carriageReturn)
	if cursor > 0 {
		r.buf.WriteString("\x1b[")
		r.buf.WriteString(strconv.Itoa(cursor))
		r.buf.WriteByte('C')
	}

	if _, err := io.WriteString(r.w, r.buf.String()); err != nil {
		return fmt.Errorf("repainting line: %w", err)
	}
	return nil
}
