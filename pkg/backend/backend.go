// Package backend describes the output targets the presentation pipeline
// produces boxes and patches for. A Backend is pure data: an identity used in
// layout-cache keys and host-binding registries, plus the capabilities a
// renderer adapter needs to pick an encoding. Detection never fails; it
// returns conservative defaults when the environment gives no signal.
package backend

import (
	"os"
	"strings"
)

// ID identifies one output target. The layout result cache and the vdom
// host-binding registry key on it, so two backends with different IDs never
// share cached results or bound handles.
type ID string

const (
	// Terminal is the cell-grid target.
	Terminal ID = "terminal"
	// Window is the native-window target.
	Window ID = "window"
)

// ColorDepth enumerates the color resolutions an output target can encode.
type ColorDepth uint8

const (
	ColorNone ColorDepth = iota // monochrome
	Color16                     // 16 ANSI colors
	Color256                    // 256-color palette
	ColorTrue                   // 24-bit RGB
)

// Backend describes one output target: identity plus the capabilities
// renderer adapters depend on. Cols/Rows hold the viewport in cells and are
// zero when unknown (e.g. not attached to a tty).
type Backend struct {
	ID        ID
	Colors    ColorDepth
	TrueColor bool
	Unicode   bool
	Cols      int
	Rows      int
}

// DetectTerminal probes the environment and the controlling terminal and
// returns a Terminal backend. Returns conservative defaults when detection
// fails.
func DetectTerminal() Backend {
	b := Backend{
		ID:      Terminal,
		Colors:  Color16, // Safe default for most terminals
		Unicode: true,    // Assume modern terminal
	}

	// Explicit true color indicators override everything else.
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		b.Colors = ColorTrue
		b.TrueColor = true
	}

	// Terminal emulators known to support true color.
	for _, key := range []string{"WT_SESSION", "ITERM_SESSION_ID", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"} {
		if os.Getenv(key) != "" {
			b.Colors = ColorTrue
			b.TrueColor = true
		}
	}

	if !b.TrueColor {
		term := strings.ToLower(os.Getenv("TERM"))
		switch {
		case term == "dumb":
			b.Colors = ColorNone
			b.Unicode = false
		case strings.Contains(term, "256color"):
			b.Colors = Color256
		case strings.Contains(term, "truecolor"):
			b.Colors = ColorTrue
			b.TrueColor = true
		}
	}

	b.Cols, b.Rows = terminalSize(int(os.Stdout.Fd()))
	return b
}

// String returns a human-readable description of the backend.
func (b Backend) String() string {
	parts := []string{string(b.ID)}

	switch b.Colors {
	case ColorNone:
		parts = append(parts, "no-color")
	case Color16:
		parts = append(parts, "16-color")
	case Color256:
		parts = append(parts, "256-color")
	case ColorTrue:
		parts = append(parts, "true-color")
	}

	if b.Unicode {
		parts = append(parts, "unicode")
	} else {
		parts = append(parts, "ascii")
	}

	return strings.Join(parts, ", ")
}
