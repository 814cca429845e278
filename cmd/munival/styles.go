package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// styles decorates the few status lines the CLI prints itself. Reports are
// left untouched so their fixed-width columns stay aligned.
type styles struct {
	color   bool
	title   lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// newStyles returns colored styles when color is set and plain ones
// otherwise, so redirected output carries no escape sequences.
func newStyles(color bool) *styles {
	if !color {
		return &styles{
			title:   lipgloss.NewStyle(),
			success: lipgloss.NewStyle(),
			muted:   lipgloss.NewStyle(),
		}
	}

	return &styles{
		color:   true,
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
