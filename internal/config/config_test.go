package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://api.internal:9000"
	cfg.Directory = append(cfg.Directory, DirectoryEntry{
		Name: "Priya Patel", Company: "Meridian Logistics", Role: "COO",
	})

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if loaded.API.BaseURL != "http://api.internal:9000" {
		t.Errorf("API.BaseURL: got %q", loaded.API.BaseURL)
	}
	if len(loaded.Directory) != 5 {
		t.Errorf("Directory entries: got %d, want 5", len(loaded.Directory))
	}
	last := loaded.Directory[len(loaded.Directory)-1]
	if last.Name != "Priya Patel" || last.Company != "Meridian Logistics" {
		t.Errorf("last entry = %+v", last)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("default BaseURL: got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout() != 15*time.Second {
		t.Errorf("default timeout: got %s, want 15s", cfg.API.Timeout())
	}
	if len(cfg.Directory) != 4 {
		t.Errorf("default directory: got %d entries, want 4", len(cfg.Directory))
	}
	if !cfg.Log.Enabled {
		t.Error("logging should default to enabled")
	}
}

func TestTimeoutUnsetIsZero(t *testing.T) {
	a := APIConfig{}
	if a.Timeout() != 0 {
		t.Errorf("unset timeout: got %s, want 0", a.Timeout())
	}
}

func TestReadConfigMissing(t *testing.T) {
	if _, err := ReadConfig(t.TempDir()); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestReadConfigPartialFile(t *testing.T) {
	// Older config files without the log section should still parse.
	tmpDir := t.TempDir()
	partial := `version: 1
api:
  base_url: http://localhost:8000
`
	dir := filepath.Join(tmpDir, ".saleslens")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(partial), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed on partial config: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Log.Enabled {
		t.Error("absent log section should read as disabled, callers apply defaults")
	}
}
