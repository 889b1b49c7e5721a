// Package tty reports whether the process is talking to a terminal.
//
// Color decisions across the codebase funnel through this package so that
// NO_COLOR and CI environments consistently disable styling.
package tty

import (
	"os"

	"golang.org/x/term"
)

// IsStderrTerminal reports whether stderr is attached to a terminal.
func IsStderrTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// IsStdoutTerminal reports whether stdout is attached to a terminal.
func IsStdoutTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ColorsDisabled reports whether color output is suppressed by the
// environment, regardless of terminal state. NO_COLOR follows the
// https://no-color.org convention: any non-empty value disables color.
func ColorsDisabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	return os.Getenv("CI") != "" && os.Getenv("FORCE_COLOR") == ""
}
