package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/githubnext/codeql-perms/pkg/cli"
	"github.com/githubnext/codeql-perms/pkg/console"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Violations are already part of the printed report; other errors
		// (setup failures, bad flags) still need surfacing.
		if !errors.Is(err, cli.ErrViolationsFound) {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		}
		os.Exit(1)
	}
}
