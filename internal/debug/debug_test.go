package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitLogfClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if !Enabled() {
		t.Error("Enabled() = false after Init")
	}

	Logf("layout pass: %d nodes", 7)
	Log("patch batch", "size", 3)

	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if Enabled() {
		t.Error("Enabled() = true after Close")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "layout pass: 7 nodes") {
		t.Errorf("log missing formatted message: %q", out)
	}
	if !strings.Contains(out, "size=3") {
		t.Errorf("log missing structured attr: %q", out)
	}
}

func TestDisabledNoOp(t *testing.T) {
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if Enabled() {
		t.Error("Enabled() = true with no destination")
	}

	// Must not panic or create files while disabled.
	Logf("dropped %d", 1)
	Log("dropped", "k", "v")
}

func TestInitCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Close()

	Logf("hello")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
