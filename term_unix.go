//go:build unix

package termgrid

import "golang.org/x/sys/unix"

// terminalSize returns the terminal's columns and rows.
func terminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
