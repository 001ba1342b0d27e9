// ABOUTME: Top-level workflow: request text -> provider -> line editor -> executor
// ABOUTME: Cancellation prints a notice and never runs anything

package assist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mauromedda/cmdline-ai-helper/internal/log"
	"github.com/mauromedda/cmdline-ai-helper/internal/prompt"
	"github.com/mauromedda/cmdline-ai-helper/pkg/ai"
	"github.com/mauromedda/cmdline-ai-helper/pkg/tui/lineedit"
	"github.com/mauromedda/cmdline-ai-helper/pkg/tui/terminal"
)

// Usage is printed when no request words were given.
const Usage = "Usage: ai <your command description>"

// ErrUsage is returned when no request words were given.
var ErrUsage = errors.New("missing command description")

const (
	banner          = "Edit command and press Enter to execute, or ESC to cancel:"
	cancelledNotice = "Cancelled."
)

// EditFunc runs an interactive edit of seed on t.
type EditFunc func(t terminal.Terminal, seed string) (lineedit.Result, error)

// Runner executes a confirmed command line and returns its exit code.
type Runner interface {
	Run(ctx context.Context, command string) (int, error)
}

// Workflow wires one run of the helper.
type Workflow struct {
	Provider  ai.Provider
	Request   ai.Request // Model and tuning; Prompt is filled per run
	Templates *prompt.Templates
	OS        string
	Terminal  terminal.Terminal
	Edit      EditFunc
	Runner    Runner
	Out       io.Writer
	DryRun    bool

	// OnSignal is called after the terminal is restored when a termination
	// signal interrupts the default editor.
	OnSignal func(os.Signal)
}

// Run translates args into a command, lets the user edit it, and executes
// the confirmed text. The returned int is the process exit code.
func (w *Workflow) Run(ctx context.Context, args []string) (int, error) {
	if len(args) == 0 {
		return 1, ErrUsage
	}
	request := strings.Join(args, " ")
	st := newStyles(w.Out)

	req := w.Request
	req.Prompt = w.Templates.Build(w.OS, request)
	log.Debug("asking %s (model %s) for: %s", w.Provider.Api(), req.Model, request)

	answer, err := w.Provider.Complete(ctx, &req)
	if err != nil {
		return 1, fmt.Errorf("generating command: %w", err)
	}
	command := ai.CleanCommand(answer)
	log.Debug("suggested command: %q", command)

	fmt.Fprintf(w.Out, "\n%s\n\n", st.banner.Render(banner))

	edit := w.Edit
	if edit == nil {
		edit = w.defaultEdit
	}
	res, err := edit(w.Terminal, command)
	if err != nil {
		return 1, fmt.Errorf("editing command: %w", err)
	}

	if res.Outcome == lineedit.Cancelled {
		log.Debug("edit cancelled, nothing executed")
		fmt.Fprintln(w.Out, st.notice.Render(cancelledNotice))
		return 0, nil
	}

	if w.DryRun {
		fmt.Fprintln(w.Out, res.Text)
		return 0, nil
	}

	code, err := w.Runner.Run(ctx, res.Text)
	if err != nil {
		fmt.Fprintln(w.Out, st.failed.Render("Command execution failed: "+err.Error()))
		return code, nil
	}
	log.Debug("command exited with %d", code)
	return code, nil
}

func (w *Workflow) defaultEdit(t terminal.Terminal, seed string) (lineedit.Result, error) {
	if w.OnSignal == nil {
		return lineedit.Edit(t, seed)
	}
	return lineedit.Edit(t, seed, lineedit.OnSignal(w.OnSignal))
}
