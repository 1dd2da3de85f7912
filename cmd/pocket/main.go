package main

import (
	"fmt"
	"os"

	"pocket/internal/cli"
	"pocket/internal/cli/output"
)

func main() {
	output.ResetProcessExitCode()

	if err := cli.NewRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}

	code := output.CurrentProcessExitCode()
	if code > 0 {
		os.Exit(code)
	}
}
