// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Serves scripted input bytes, captures output, and tracks raw-mode enter/exit calls.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
// Reads drain the scripted input one byte per call, like a human typist;
// once it is exhausted, Read returns ReadErr (io.EOF by default).
type VirtualTerminal struct {
	mu         sync.Mutex
	input      []byte
	buf        bytes.Buffer
	rawMode    bool
	enterCount int
	exitCount  int

	// EnterErr, when set, is returned by EnterRawMode.
	EnterErr error
	// ReadErr is returned once the scripted input is exhausted.
	ReadErr error
}

// NewVirtualTerminal returns a VirtualTerminal that will deliver input.
func NewVirtualTerminal(input string) *VirtualTerminal {
	return &VirtualTerminal{input: []byte(input), ReadErr: io.EOF}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.EnterErr != nil {
		return v.EnterErr
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Read returns the next scripted byte.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(p) == 0 {
		return 0, nil
	}
	if len(v.input) == 0 {
		return 0, v.ReadErr
	}
	p[0] = v.input[0]
	v.input = v.input[1:]
	return 1, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// Remaining returns how many scripted input bytes have not been read.
func (v *VirtualTerminal) Remaining() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.input)
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}
