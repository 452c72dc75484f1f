package main

import (
	"os"

	"golang.org/x/term"
)

// colorEnabled resolves the COLOR environment variable for the print
// subcommand: "always" forces color, "never" suppresses it, anything
// else auto-detects a TTY on the given file descriptor.
func colorEnabled(f *os.File) bool {
	switch os.Getenv("COLOR") {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(f.Fd()))
	}
}
