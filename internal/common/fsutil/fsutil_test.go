package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err := ExpandHome("~/weights")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if !strings.HasPrefix(got, home) {
		t.Fatalf("expected prefix %q, got %q", home, got)
	}
	if got, _ := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Fatalf("absolute path changed: %q", got)
	}
	if got, _ := ExpandHome(""); got != "" {
		t.Fatalf("empty path changed: %q", got)
	}
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "w.bin")
	if PathExists(p) {
		t.Fatalf("expected missing path")
	}
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !PathExists(p) {
		t.Fatalf("expected existing path")
	}
}
