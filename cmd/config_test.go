package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRunConfig_ValidYAML(t *testing.T) {
	yaml := `
population: 5000
seed: 7
horizon: 120.5
log_level: debug
`
	path := writeTempYAML(t, yaml)
	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Population != 5000 {
		t.Errorf("Population = %d, want 5000", cfg.Population)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
	if cfg.Horizon != 120.5 {
		t.Errorf("Horizon = %v, want 120.5", cfg.Horizon)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadRunConfig_MissingFile(t *testing.T) {
	_, err := LoadRunConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadRunConfig_MalformedYAML(t *testing.T) {
	path := writeTempYAML(t, "population: [this is not valid: yaml")
	_, err := LoadRunConfig(path)
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
