//go:build unix

package backend

import "golang.org/x/sys/unix"

// terminalSize returns the terminal dimensions in cells for fd.
func terminalSize(fd int) (cols, rows int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // not a tty; classic dimensions
	}
	return int(ws.Col), int(ws.Row)
}
