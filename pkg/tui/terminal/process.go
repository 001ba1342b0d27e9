// ABOUTME: ProcessTerminal implements Terminal over an *os.File input and golang.org/x/term.
// ABOUTME: Saves the prior attributes on EnterRawMode and restores them exactly once.

package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by an input file descriptor
// (usually os.Stdin) and an output writer (usually os.Stdout).
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      io.Writer
	oldState *term.State
}

// NewProcessTerminal returns a ProcessTerminal reading from in and writing to out.
func NewProcessTerminal(in *os.File, out io.Writer) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// EnterRawMode switches the input to raw mode, saving the previous state.
// Calling it while already raw is a no-op.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}

	fd := t.in.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fmt.Errorf("%w: %s is not a terminal", ErrTerminalUnavailable, t.in.Name())
	}

	state, err := term.MakeRaw(int(fd))
	if err != nil {
		return fmt.Errorf("%w: entering raw mode: %v", ErrTerminalUnavailable, err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	state := t.oldState
	t.oldState = nil
	if err := term.Restore(int(t.in.Fd()), state); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	return nil
}

// Read reads raw bytes from the input file.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Write sends bytes to the output writer.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}
