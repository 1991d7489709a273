package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	prompt lipgloss.Style
	err    lipgloss.Style
}

// newStyles honours the display.color setting: "never" drops all styling,
// "always" forces ANSI colors even when out is not a terminal, "auto"
// colors interactive sessions only.
func newStyles(out io.Writer, mode string, interactive bool) styles {
	renderer := lipgloss.NewRenderer(out)

	switch {
	case mode == "always":
		renderer.SetColorProfile(termenv.ANSI256)
	case mode == "never", !interactive:
		renderer.SetColorProfile(termenv.Ascii)
	}

	return styles{
		prompt: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		err:    renderer.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
