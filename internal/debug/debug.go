// Package debug provides opt-in debug logging for the presentation pipeline.
//
// Logging is disabled unless the ORNATA_DEBUG environment variable names a
// log file (or [Init] is called directly). All output goes through log/slog;
// when ORNATA_DEBUG_STDERR is also set, records fan out to stderr as well.
// Every call is a no-op while disabled, so hot paths may log unconditionally.
package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	slogmulti "github.com/samber/slog-multi"
)

var (
	mu     sync.Mutex
	logger *slog.Logger
	file   *os.File
)

func init() {
	if path := os.Getenv("ORNATA_DEBUG"); path != "" {
		// Env-driven setup has nowhere to report an error; stay disabled.
		_ = Init(path)
	}
}

// Init enables debug logging to the specified file path, replacing any
// previous destination. If path is empty, "debug.log" in the current
// directory is used.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()

	if path == "" {
		path = "debug.log"
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}
	if os.Getenv("ORNATA_DEBUG_STDERR") != "" {
		handlers = append(handlers,
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	file = f
	logger = slog.New(slogmulti.Fanout(handlers...))
	return nil
}

// Close disables debug logging and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

// closeLocked tears down the current destination. Caller must hold mu.
func closeLocked() error {
	logger = nil
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// Enabled reports whether debug logging is active. Callers building
// expensive log arguments should check it first.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logger != nil
}

// Logf writes a formatted message at debug level. No-op while disabled.
func Logf(format string, args ...any) {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// Log writes a message with structured key/value attributes at debug level.
// No-op while disabled.
func Log(msg string, args ...any) {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		return
	}
	l.Debug(msg, args...)
}
