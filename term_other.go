//go:build !unix

package termgrid

import "golang.org/x/term"

// terminalSize returns the terminal's columns and rows.
func terminalSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}
