// Package osutil holds platform constants and terminal helpers.
package osutil

import (
	"os"

	"github.com/mattn/go-isatty"
)

const Windows = "windows"

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const DirPermission = 0o755

// Interactive reports whether both stdin and stdout are attached to a
// terminal, so prompts and full-screen views can be shown.
func Interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
