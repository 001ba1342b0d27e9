// ABOUTME: Edit runs the raw-mode editing loop: repaint, decode one key, apply it, repeat.
// ABOUTME: Ends Confirmed on Enter or Cancelled on Escape/EOF, releasing raw mode exactly once.

package lineedit

import (
	"errors"
	"fmt"
	"os"

	"github.com/mauromedda/cmdline-ai-helper/pkg/tui/input"
	"github.com/mauromedda/cmdline-ai-helper/pkg/tui/key"
	"github.com/mauromedda/cmdline-ai-helper/pkg/tui/terminal"
)

// Outcome is the terminal state of an editing session.
type Outcome int

const (
	Confirmed Outcome = iota + 1
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Result is what an editing session hands back to its caller.
// Text is only meaningful when Outcome is Confirmed.
type Result struct {
	Outcome Outcome
	Text    string
}

// Option configures an editing session.
type Option func(*options)

type options struct {
	onSignal func(os.Signal)
}

// OnSignal restores the terminal when a termination signal arrives during
// the session and then calls fn, which normally exits the process.
func OnSignal(fn func(os.Signal)) Option {
	return func(o *options) { o.onSignal = fn }
}

// Edit lets the user edit seed on t and blocks until they confirm or cancel.
// Confirming an empty line yields seed. The terminal is in raw mode only
// for the duration of the call.
func Edit(t terminal.Terminal, seed string, opts ...Option) (res Result, err error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	session, err := terminal.Acquire(t)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if rerr := session.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	defer terminal.RestoreOnPanic(session)

	if o.onSignal != nil {
		stop := terminal.WatchSignals(session, o.onSignal)
		defer stop()
	}

	res, err = loop(t, seed)
	if err != nil {
		return Result{}, err
	}

	// Leave the edited line intact and move below it.
	if _, werr := t.Write([]byte("\r\n")); werr != nil {
		return Result{}, fmt.Errorf("finishing line: %w", werr)
	}
	return res, nil
}

// loop is the Editing state. It returns when a terminal state is reached.
func loop(t terminal.Terminal, seed string) (Result, error) {
	buf := input.NewBuffer(seed)
	dec := key.NewDecoder(t)
	r := NewRenderer(t)

	for {
		if err := r.Repaint(buf.Text(), buf.Cursor()); err != nil {
			return Result{}, err
		}

		k, err := dec.Next()
		if errors.Is(err, key.ErrInputClosed) {
			return Result{Outcome: Cancelled}, nil
		}
		if err != nil {
			return Result{}, err
		}

		if done, res := apply(buf, k, seed); done {
			return res, nil
		}
	}
}

// apply dispatches one key against buf. It reports whether the session is
// over and, if so, its result.
func apply(buf *input.Buffer, k key.Key, seed string) (bool, Result) {
	switch k.Type {
	case key.KeyChar:
		buf.Insert(k.Char)
	case key.KeyBackspace:
		buf.Backspace()
	case key.KeyDelete:
		buf.DeleteForward()
	case key.KeyLeft:
		buf.MoveLeft()
	case key.KeyRight:
		buf.MoveRight()
	case key.KeyHome:
		buf.MoveHome()
	case key.KeyEnd:
		buf.MoveEnd()
	case key.KeyEnter:
		text := buf.Text()
		if text == "" {
			text = seed
		}
		return true, Result{Outcome: Confirmed, Text: text}
	case key.KeyCancel:
		return true, Result{Outcome: Cancelled}
	}
	return false, Result{}
}
