// ABOUTME: Defines the Terminal interface for raw mode, input and output.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

import (
	"errors"
	"io"
)

// ErrTerminalUnavailable is returned when raw mode cannot be entered, either
// because input is not an interactive terminal or the attribute calls failed.
var ErrTerminalUnavailable = errors.New("terminal unavailable")

// Terminal abstracts the terminal device owned by an editing session:
// a byte source, an output sink, and the raw-mode switch.
type Terminal interface {
	io.Reader
	io.Writer
	EnterRawMode() error
	ExitRawMode() error
}
