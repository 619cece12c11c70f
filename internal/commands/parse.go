package commands

import (
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
)

// Normalize lower-cases a line and collapses its whitespace.
func Normalize(line string) string {
	return strings.Join(strings.Fields(game.Canonical(line)), " ")
}

// Parse splits a line into its verb and argument. The argument is every
// word after the verb, so multi-word item names survive.
func Parse(line string) (verb string, arg string) {
	verb, arg, _ = strings.Cut(Normalize(line), " ")
	return verb, arg
}
