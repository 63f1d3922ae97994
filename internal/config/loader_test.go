package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "segmentd.yaml", "addr: :9090\nweights_dir: /opt/weights\nstub_model: true\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.WeightsDir != "/opt/weights" || !cfg.StubModel {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "segmentd.json", `{"addr":":9091","log_level":"debug","max_frame_bytes":1048576}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9091" || cfg.LogLevel != "debug" || cfg.MaxFrameBytes != 1<<20 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "segmentd.toml", "addr = \":9092\"\nstub_model = true\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9092" || !cfg.StubModel {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := Load("/nonexistent/segmentd.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	dir := t.TempDir()
	p := writeFile(t, dir, "segmentd.ini", "addr=:9093")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
	p = writeFile(t, dir, "broken.yaml", "addr: [\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}
