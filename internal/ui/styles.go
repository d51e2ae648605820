package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	PromptColor = lipgloss.Color("#43BF6D") // Green - page prompt
	HeaderColor = lipgloss.Color("#7D56F4") // Purple - column header
	ErrorColor  = lipgloss.Color("#FF5555") // Red - diagnostics
	MutedColor  = lipgloss.Color("#626262") // Gray - status and help
)

// DefaultPrompt is shown between pages.
const DefaultPrompt = `[Press Enter for next page or "q" to quit...] `

// NewRenderer returns a lipgloss renderer bound to w. Colour is emitted only
// when w is a terminal that supports it.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	return lipgloss.NewRenderer(w)
}

// PromptStyle is the style of the continue/quit prompt.
func PromptStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(PromptColor).
		Bold(true)
}

// HeaderStyle is the style of the repeated column header line.
func HeaderStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(HeaderColor).
		Bold(true)
}

// StatusStyle is for the browser position line.
func StatusStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(MutedColor)
}

// ErrorTitleStyle is for the "Error:" prefix of top-level diagnostics
func ErrorTitleStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(ErrorColor).
		Bold(true)
}

// ErrorMessageStyle is for error message text
func ErrorMessageStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(ErrorColor)
}

// RenderLine styles a single line of text. Lines containing tabs or line
// breaks are returned unchanged, since lipgloss would expand the tabs and pad
// the lines to a common width.
func RenderLine(style lipgloss.Style, s string) string {
	if s == "" || strings.ContainsAny(s, "\t\r\n") {
		return s
	}
	return style.Render(s)
}
