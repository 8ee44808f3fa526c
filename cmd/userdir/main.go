// Command userdir browses a remote users directory in the terminal.
package main

import (
	"errors"
	"os"

	"github.com/rshade/userdir/internal/cli"
	"github.com/rshade/userdir/internal/config"
	"github.com/rshade/userdir/pkg/version"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitConfigError = 2
)

func main() {
	os.Exit(exitCode(run()))
}

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

// exitCode maps a command error to the process exit status. Invalid
// configuration exits 2 so scripts can tell it apart from a failed fetch.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrInvalidConfig):
		return exitConfigError
	default:
		return exitFailure
	}
}
