// ABOUTME: Tests for VirtualTerminal and Session verifying raw mode tracking and single release.
// ABOUTME: Uses table-driven and parallel sub-tests for thorough coverage.

package terminal

import (
	"errors"
	"io"
	"sync"
	"testing"
)

// compile-time checks: both implementations must satisfy Terminal.
var (
	_ Terminal = (*VirtualTerminal)(nil)
	_ Terminal = (*ProcessTerminal)(nil)
)

func TestVirtualTerminal_RawMode(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal("")

	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off initially")
	}

	if err := vt.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode() unexpected error: %v", err)
	}
	if !vt.IsRawMode() {
		t.Fatal("expected raw mode to be on after EnterRawMode")
	}
	if vt.EnterCount() != 1 {
		t.Errorf("EnterCount() = %d, want 1", vt.EnterCount())
	}

	if err := vt.ExitRawMode(); err != nil {
		t.Fatalf("ExitRawMode() unexpected error: %v", err)
	}
	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off after ExitRawMode")
	}
	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
	}
}

func TestVirtualTerminal_ReadOneByteAtATime(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal("ab")

	p := make([]byte, 8)
	for _, want := range []byte("ab") {
		n, err := vt.Read(p)
		if err != nil {
			t.Fatalf("Read() unexpected error: %v", err)
		}
		if n != 1 || p[0] != want {
			t.Errorf("Read() = (%d, %q), want (1, %q)", n, p[0], want)
		}
	}

	if _, err := vt.Read(p); !errors.Is(err, io.EOF) {
		t.Errorf("Read() after input = %v, want io.EOF", err)
	}
}

func TestVirtualTerminal_CustomReadErr(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	vt := NewVirtualTerminal("")
	vt.ReadErr = boom

	if _, err := vt.Read(make([]byte, 1)); !errors.Is(err, boom) {
		t.Errorf("Read() = %v, want %v", err, boom)
	}
}

func TestVirtualTerminal_WriteAccumulates(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal("")

	if _, err := vt.Write([]byte("one")); err != nil {
		t.Fatal(err)
	}
	if _, err := vt.Write([]byte("two")); err != nil {
		t.Fatal(err)
	}
	if got := vt.Output(); got != "onetwo" {
		t.Errorf("Output() = %q, want %q", got, "onetwo")
	}

	vt.Reset()
	if got := vt.Output(); got != "" {
		t.Errorf("Output() after Reset = %q, want empty", got)
	}
}

func TestAcquire_EnterFailure(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal("")
	vt.EnterErr = ErrTerminalUnavailable

	s, err := Acquire(vt)
	if !errors.Is(err, ErrTerminalUnavailable) {
		t.Fatalf("Acquire() error = %v, want ErrTerminalUnavailable", err)
	}
	if s != nil {
		t.Error("Acquire() returned a session on failure")
	}
	if vt.ExitCount() != 0 {
		t.Errorf("ExitCount() = %d, want 0", vt.ExitCount())
	}
}

func TestSession_ReleaseOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		releases int
	}{
		{name: "single release", releases: 1},
		{name: "double release", releases: 2},
		{name: "many releases", releases: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal("")

			s, err := Acquire(vt)
			if err != nil {
				t.Fatalf("Acquire() unexpected error: %v", err)
			}
			if !vt.IsRawMode() {
				t.Error("Acquire() did not enter raw mode")
			}
			for range tt.releases {
				if err := s.Release(); err != nil {
					t.Fatalf("Release() unexpected error: %v", err)
				}
			}

			if vt.ExitCount() != 1 {
				t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
			}
			if vt.IsRawMode() {
				t.Error("terminal still in raw mode after Release")
			}
		})
	}
}

func TestSession_ConcurrentRelease(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal("")

	s, err := Acquire(vt)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	const goroutines = 10
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			_ = s.Release()
		}()
	}
	wg.Wait()

	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
	}
}
