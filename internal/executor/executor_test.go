// ABOUTME: Tests for the bash -c runner: exit codes, stdio wiring, and TERM override
// ABOUTME: Skips when bash is not installed

package executor

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestRunner(t *testing.T, stdin string) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	return &Runner{Stdin: strings.NewReader(stdin), Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func requireBash(t *testing.T) {
	t.Helper()
	r, _, _ := newTestRunner(t, "")
	if _, err := r.Run(context.Background(), "true"); err != nil {
		t.Skipf("bash unavailable: %v", err)
	}
}

func TestRun(t *testing.T) {
	t.Parallel()
	requireBash(t)

	tests := []struct {
		name       string
		command    string
		stdin      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "success", command: "echo hello", wantStdout: "hello\n"},
		{name: "exit code passthrough", command: "exit 3", wantCode: 3},
		{name: "stderr", command: "echo oops >&2; exit 1", wantCode: 1, wantStderr: "oops\n"},
		{name: "stdin", command: "tr a-z A-Z", stdin: "abc", wantStdout: "ABC"},
		{name: "pipes and quoting", command: `printf '%s\n' "a b" | wc -l | tr -d ' '`, wantStdout: "1\n"},
		{name: "term override", command: `printf %s "$TERM"`, wantStdout: "xterm-256color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, stdout, stderr := newTestRunner(t, tt.stdin)

			code, err := r.Run(context.Background(), tt.command)
			if err != nil {
				t.Fatalf("Run() unexpected error: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if stderr.String() != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunEmptyCommand(t *testing.T) {
	t.Parallel()
	r, _, _ := newTestRunner(t, "")

	for _, cmd := range []string{"", "   ", "\t"} {
		code, err := r.Run(context.Background(), cmd)
		if !errors.Is(err, ErrEmptyCommand) {
			t.Errorf("Run(%q) error = %v, want ErrEmptyCommand", cmd, err)
		}
		if code != 1 {
			t.Errorf("Run(%q) code = %d, want 1", cmd, code)
		}
	}
}

func TestRunMissingShell(t *testing.T) {
	t.Parallel()
	r, _, _ := newTestRunner(t, "")
	r.Shell = "/nonexistent/shell"

	code, err := r.Run(context.Background(), "echo hi")
	if err == nil {
		t.Fatal("expected start failure")
	}
	if code != 1 {
		t.Errorf("code = %d, want 1", code)
	}
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()
	requireBash(t)
	r, _, _ := newTestRunner(t, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Run(ctx, "sleep 5"); err == nil {
		t.Error("expected an error for a cancelled context")
	}
}

func TestEnvironment(t *testing.T) {
	t.Parallel()

	got := environment([]string{"HOME=/h", "TERM=dumb", "TERMINFO=/t"})
	want := []string{"HOME=/h", "TERMINFO=/t", "TERM=xterm-256color"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("environment() mismatch (-want +got):\n%s", diff)
	}
}
