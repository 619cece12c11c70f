package display

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Wrap word-wraps text to width columns, preserving ANSI escape sequences.
// A width below one falls back to DefaultWidth.
func Wrap(text string, width int) string {
	if width < 1 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}

// Paragraphs joins the non-empty blocks with a blank line between them.
func Paragraphs(blocks ...string) string {
	var kept []string
	for _, b := range blocks {
		if b = strings.TrimSpace(b); b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}
