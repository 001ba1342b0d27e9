// ABOUTME: Decoder turns a raw terminal byte stream into Key events, one blocking read per byte.
// ABOUTME: Escape sequences are tracked by an explicit Start/SawEscape/SawBracket state machine.

package key

import (
	"errors"
	"fmt"
	"io"
)

// ErrInputClosed is returned when the input stream ends before a key completes.
var ErrInputClosed = errors.New("input closed")

// state is the position of the decoder inside a (possibly multi-byte) key.
type state int

const (
	stateStart      state = iota
	stateSawEscape        // ESC read; '[' starts a CSI, anything else cancels
	stateSawBracket       // ESC [ read; next byte picks the key
	stateSawDelete        // ESC [ 3 read; normally '~' follows
	stateDeleteParams     // ESC [ 3 with modifiers (ESC [ 3 ; 5 ~); Delete at the final byte
	stateSkipCSI          // unrecognized CSI; discard through its final byte
)

// Decoder reads Key events from an input stream.
type Decoder struct {
	r io.ByteReader
}

// NewDecoder returns a Decoder over r. Readers that do not implement
// io.ByteReader are read one byte per Read call, so no input is buffered
// beyond the key being decoded.
func NewDecoder(r io.Reader) *Decoder {
	if br, ok := r.(io.ByteReader); ok {
		return &Decoder{r: br}
	}
	return &Decoder{r: &singleByteReader{r: r}}
}

// Next blocks until one complete key has been read. Unrecognized bytes and
// escape sequences are skipped silently.
func (d *Decoder) Next() (Key, error) {
	st := stateStart
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return readFailed(st, err)
		}

		var (
			k    Key
			emit bool
		)
		st, k, emit = step(st, b)
		if emit {
			return k, nil
		}
	}
}

// step advances the state machine by one byte. It reports the next state
// and, when emit is true, the completed key.
func step(st state, b byte) (next state, k Key, emit bool) {
	switch st {
	case stateStart:
		switch {
		case b == byteEscape:
			return stateSawEscape, Key{}, false
		case b == byteCR:
			return stateStart, Key{Type: KeyEnter}, true
		case b == byteDEL || b == byteCtrlH:
			return stateStart, Key{Type: KeyBackspace}, true
		case b >= bytePrintable:
			return stateStart, Char(b), true
		}
		return stateStart, Key{}, false

	case stateSawEscape:
		if b == csiIntroducer {
			return stateSawBracket, Key{}, false
		}
		return stateStart, Key{Type: KeyCancel}, true

	case stateSawBracket:
		if t, ok := csiFinals[b]; ok {
			return stateStart, Key{Type: t}, true
		}
		if b == csiDelete {
			return stateSawDelete, Key{}, false
		}
		if isCSIFinal(b) {
			return stateStart, Key{}, false
		}
		return stateSkipCSI, Key{}, false

	case stateSawDelete, stateDeleteParams:
		if isCSIFinal(b) {
			return stateStart, Key{Type: KeyDelete}, true
		}
		return stateDeleteParams, Key{}, false

	case stateSkipCSI:
		if isCSIFinal(b) {
			return stateStart, Key{}, false
		}
		return stateSkipCSI, Key{}, false
	}
	return stateStart, Key{}, false
}

// readFailed maps a read error in state st to the decoder's result.
// A lone ESC at end of input still counts as Cancel.
func readFailed(st state, err error) (Key, error) {
	if !errors.Is(err, io.EOF) {
		return Key{}, fmt.Errorf("reading key: %w", err)
	}
	if st == stateSawEscape {
		return Key{Type: KeyCancel}, nil
	}
	return Key{}, ErrInputClosed
}

// singleByteReader adapts an io.Reader to io.ByteReader with one
// one-byte Read per call.
type singleByteReader struct {
	r   io.Reader
	buf [1]byte
}

func (s *singleByteReader) ReadByte() (byte, error) {
	for {
		n, err := s.r.Read(s.buf[:])
		if n == 1 {
			return s.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
