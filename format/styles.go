package format

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles colors the glyph column of the line format.
type Styles struct {
	Control   lipgloss.Style
	Combining lipgloss.Style
	Invalid   lipgloss.Style
}

// NewStyles builds the styles on r: controls green, combining marks magenta
// and invalid units red.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Control:   r.NewStyle().Foreground(lipgloss.Color("2")),
		Combining: r.NewStyle().Foreground(lipgloss.Color("5")),
		Invalid:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// PlainStyles returns styles that never emit escape sequences.
func PlainStyles() Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewStyles(r)
}

// ColorStyles returns styles rendering ANSI colors to w regardless of
// whether w is a terminal.
func ColorStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return NewStyles(r)
}

// TerminalStyles returns styles using the color profile detected for w.
func TerminalStyles(w io.Writer) Styles {
	return NewStyles(lipgloss.NewRenderer(w))
}
