package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Point at a path that does not exist; defaults apply.
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BackendURL != defaultBackendURL {
		t.Errorf("BackendURL = %q, want %q", cfg.BackendURL, defaultBackendURL)
	}
	if cfg.HistoryPath == "" {
		t.Error("HistoryPath is empty")
	}
	if cfg.WireLog {
		t.Error("WireLog = true, want false")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	blob := `backend_url = "http://backend:9000"
history_path = "/tmp/custom-history.json"
wire_log = true
`
	if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BackendURL != "http://backend:9000" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.HistoryPath != "/tmp/custom-history.json" {
		t.Errorf("HistoryPath = %q", cfg.HistoryPath)
	}
	if !cfg.WireLog {
		t.Error("WireLog = false, want true")
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	// Keys left out of the file keep their defaults.
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`wire_log = true`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BackendURL != defaultBackendURL {
		t.Errorf("BackendURL = %q, want default", cfg.BackendURL)
	}
	if !cfg.WireLog {
		t.Error("WireLog = false, want true")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`backend_url = [broken`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig on malformed TOML returned nil error")
	}
}
