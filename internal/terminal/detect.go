// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"

	"golang.org/x/term"
)

// IsTerminal reports whether r is backed by a terminal file descriptor.
// Readers without a descriptor (buffers, pipes wrapped in other readers) are not terminals.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
