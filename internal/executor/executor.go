// ABOUTME: Runs a confirmed command line through bash -c with inherited stdio
// ABOUTME: Passes the child's exit code through; TERM is forced to xterm-256color

package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrEmptyCommand is returned when there is nothing to execute.
var ErrEmptyCommand = errors.New("empty command")

const termValue = "xterm-256color"

// Runner executes shell command lines.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Shell overrides the shell binary; empty means bash from PATH.
	Shell string
}

// New returns a Runner wired to the process's standard streams.
func New() *Runner {
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes command and returns its exit code. A non-zero exit is not an
// error; failing to start the shell returns exit 1 and the cause.
func (r *Runner) Run(ctx context.Context, command string) (int, error) {
	if strings.TrimSpace(command) == "" {
		return 1, ErrEmptyCommand
	}

	shell := r.Shell
	if shell == "" {
		path, err := exec.LookPath("bash")
		if err != nil {
			return 1, fmt.Errorf("bash not found on PATH: %w", err)
		}
		shell = path
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Env = environment(os.Environ())
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		// Killed by a signal.
		return 1, fmt.Errorf("command terminated: %w", err)
	}
	return 1, fmt.Errorf("command execution failed: %w", err)
}

// environment copies base with TERM replaced.
func environment(base []string) []string {
	env := make([]string, 0, len(base)+1)
	for _, kv := range base {
		if strings.HasPrefix(kv, "TERM=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "TERM="+termValue)
}
