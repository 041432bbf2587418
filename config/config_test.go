package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.P4.Bin != "p4" {
		t.Errorf("P4.Bin = %q, expected p4", cfg.P4.Bin)
	}
	if cfg.P4.DepotPath != "//..." {
		t.Errorf("P4.DepotPath = %q, expected //...", cfg.P4.DepotPath)
	}
	if cfg.Output.Format != "console" {
		t.Errorf("Output.Format = %q, expected console", cfg.Output.Format)
	}
	if len(cfg.Filters.Include) != 0 || len(cfg.Filters.Exclude) != 0 {
		t.Errorf("Filters = %#v, expected empty", cfg.Filters)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"p4": {"depotPath": "//depot/main/..."},
		"filters": {"exclude": ["//depot/main/vendor/**"]},
		"output": {"format": "json", "top": 20}
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.P4.DepotPath != "//depot/main/..." {
		t.Errorf("P4.DepotPath = %q", cfg.P4.DepotPath)
	}
	// Unset fields keep their defaults.
	if cfg.P4.Bin != "p4" {
		t.Errorf("P4.Bin = %q, expected default p4", cfg.P4.Bin)
	}
	if len(cfg.Filters.Exclude) != 1 || cfg.Filters.Exclude[0] != "//depot/main/vendor/**" {
		t.Errorf("Filters.Exclude = %v", cfg.Filters.Exclude)
	}
	if cfg.Output.Format != "json" || cfg.Output.Top != 20 {
		t.Errorf("Output = %#v", cfg.Output)
	}
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.P4.Bin != "p4" {
		t.Errorf("P4.Bin = %q, expected default", cfg.P4.Bin)
	}
}

func TestLoadConfig_InvalidJSONReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.P4.DepotPath = "//depot/rel/..."
	cfg.Output.Top = 5

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.P4.DepotPath != "//depot/rel/..." || loaded.Output.Top != 5 {
		t.Errorf("loaded = %#v", loaded)
	}
}
