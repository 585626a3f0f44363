// Package cmd is MiniGit's thin command-line dispatcher: argv parsing,
// usage strings and exit codes, explicitly out of CORE scope per
// spec.md §1. It exists only to wire cobra verbs onto the core engine
// in internal/.
package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
)

// stdout is the color-aware writer every command prints through,
// grounded on the teacher's root.go, which backs fatih/color with
// go-colorable so Windows terminals get ANSI translation instead of
// literal escape codes.
var stdout = colorable.NewColorableStdout()

var rootCmd = &cobra.Command{
	Use:   "minigit",
	Short: "MiniGit is a local, single-user version control system",
}

// Execute runs the selected verb and converts its error into the
// contractual stdout message and exit code spec.md §7 pins: every
// handled error (UsageError, NotInitialized, ...) prints to stdout and
// exits 0; anything else is an internal failure and exits nonzero.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if msg, handled := asHandledMessage(err); handled {
		fmt.Fprintln(stdout, msg)
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
