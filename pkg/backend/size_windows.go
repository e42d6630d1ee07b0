//go:build windows

package backend

import "golang.org/x/sys/windows"

// terminalSize returns the terminal dimensions in cells for fd.
func terminalSize(fd int) (cols, rows int) {
	h := windows.Handle(fd)
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return 80, 24 // not a console; classic dimensions
	}
	cols = int(info.Window.Right - info.Window.Left + 1)
	rows = int(info.Window.Bottom - info.Window.Top + 1)
	return cols, rows
}
