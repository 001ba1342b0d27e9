// ABOUTME: Lipgloss styles for the workflow's banner, notices, and errors
// ABOUTME: Plain text when the output is not a color terminal

package assist

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/cmdline-ai-helper/internal/termfix"
)

type styles struct {
	banner lipgloss.Style
	notice lipgloss.Style
	failed lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := termfix.Renderer(w)
	return styles{
		banner: r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
		notice: r.NewStyle().Faint(true),
		failed: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
