package internal

import (
	"os"

	"golang.org/x/term"
)

// IsStdoutATerminal returns true when stdout is attached to a terminal
func IsStdoutATerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) // #nosec G115 -- file descriptors are safe to convert to int
}

// IsStderrATerminal returns true when stderr is attached to a terminal
func IsStderrATerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd())) // #nosec G115 -- file descriptors are safe to convert to int
}

// IsStdinATerminal returns true when stdin is attached to a terminal
func IsStdinATerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) // #nosec G115 -- file descriptors are safe to convert to int
}
