package main

import (
	"os"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultWidth = 80
	maxWidth     = 120
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// isTerminal returns true if f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// termWidth returns the width used to wrap rendered markdown
func termWidth(f *os.File) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return min(w, maxWidth)
	}
	return defaultWidth
}

// renderMarkdown renders text with the named glamour style (dark, light,
// notty and so on), wrapped to the width of f
func renderMarkdown(f *os.File, style, text string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(termWidth(f)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}
