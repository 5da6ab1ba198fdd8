package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()
	if cfg.Server.Address != DefaultAddress {
		t.Errorf("expected %q, got %q", DefaultAddress, cfg.Server.Address)
	}
	if cfg.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("expected %q, got %q", DefaultMetricsNamespace, cfg.Metrics.Namespace)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics should default to enabled")
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Address != DefaultAddress {
		t.Errorf("expected default address, got %q", cfg.Server.Address)
	}
}

func TestLoadFillsDefaultsForUnsetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(`{"name":"demo","server":{"address":":9000"}}`), 0644); err != nil {
		t.Fatalf("write error: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("expected name %q, got %q", "demo", cfg.Name)
	}
	if cfg.Server.Address != ":9000" {
		t.Errorf("expected address %q, got %q", ":9000", cfg.Server.Address)
	}
	if cfg.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("unset namespace must default, got %q", cfg.Metrics.Namespace)
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected parse error for invalid JSON")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.Name = "roundtrip"
	cfg.Server.Address = ":8123"

	path := filepath.Join(dir, ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save error: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if loaded.Name != "roundtrip" || loaded.Server.Address != ":8123" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
