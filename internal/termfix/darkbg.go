// ABOUTME: Builds lipgloss renderers that never query the terminal background
// ABOUTME: OSC 10/11 replies would otherwise arrive as bytes in the raw-mode editor

package termfix

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	// The default renderer fires its background query from a sync.Once;
	// setting the answer up front skips it.
	lipgloss.SetHasDarkBackground(true)
}

// Renderer returns a lipgloss renderer for w with the background already
// decided, so adaptive colors resolve without writing a query to w.
func Renderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetHasDarkBackground(true)
	return r
}
