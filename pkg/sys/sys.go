// Package sys provides system utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsTerminal determines whether the given file is a terminal. It returns false
// for a nil file.
func IsTerminal(file *os.File) bool {
	return file != nil && IsATTY(file.Fd())
}
