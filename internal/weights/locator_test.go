package weights

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBytes(t *testing.T, dir, name string, n int) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), make([]byte, n), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadDir_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeBytes(t, dir, "model.tflite", 10)
	writeBytes(t, dir, "model.onnx", 20)
	writeBytes(t, dir, "readme.txt", 5)
	if err := os.Mkdir(filepath.Join(dir, "sub.bin"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 weight bundles, got %+v", files)
	}
}

func TestLoadDir_MissingDir(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestLocate_PicksLargest(t *testing.T) {
	dir := t.TempDir()
	writeBytes(t, dir, "small.bin", 8)
	writeBytes(t, dir, "big.tflite", 64)

	best, err := Locate(dir)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if best.Name != "big.tflite" {
		t.Fatalf("expected big.tflite, got %+v", best)
	}
}

func TestLocate_EmptyDir(t *testing.T) {
	if _, err := Locate(t.TempDir()); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}
