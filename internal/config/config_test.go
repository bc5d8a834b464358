package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Storage.Backend != want.Storage.Backend {
		t.Fatalf("backend = %q, want %q", cfg.Storage.Backend, want.Storage.Backend)
	}
	if cfg.Timer.Preset != 25 {
		t.Fatalf("preset = %d, want 25", cfg.Timer.Preset)
	}
	if cfg.Feeds.Timeout != 10*time.Second {
		t.Fatalf("timeout = %s, want 10s", cfg.Feeds.Timeout)
	}
	if len(cfg.Timer.Presets) != 4 {
		t.Fatalf("presets = %v, want 4 entries", cfg.Timer.Presets)
	}
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := strings.Join([]string{
		"storage:",
		"  backend: SQLite",
		"timer:",
		"  preset: 50",
		"feeds:",
		"  timeout: 3s",
		"notify:",
		"  enabled: false",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Fatalf("backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Timer.Preset != 50 {
		t.Fatalf("preset = %d, want 50", cfg.Timer.Preset)
	}
	if cfg.Feeds.Timeout != 3*time.Second {
		t.Fatalf("timeout = %s, want 3s", cfg.Feeds.Timeout)
	}
	if cfg.Notify.Enabled {
		t.Fatalf("notify.enabled = true, want false")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PRODUCTIFY_STORAGE_BACKEND", "memory")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != BackendMemory {
		t.Fatalf("backend = %q, want memory", cfg.Storage.Backend)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  backend: redis\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "invalid storage backend") {
		t.Fatalf("Load error = %v, want invalid storage backend", err)
	}
}

func TestValidateRejectsNonPositivePreset(t *testing.T) {
	cfg := Default()
	cfg.Timer.Preset = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate() = nil, want error for zero preset")
	}
}

func TestYAMLIsLoadable(t *testing.T) {
	cfg := Default()
	cfg.Timer.Preset = 15
	cfg.Feeds.Timeout = 3 * time.Second

	out, err := cfg.YAML()
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	if !strings.Contains(out, "cache_size:") || !strings.Contains(out, "timeout: 3s") {
		t.Fatalf("YAML = %q", out)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Timer.Preset != 15 || loaded.Feeds.Timeout != 3*time.Second {
		t.Fatalf("loaded = %+v", loaded)
	}
}
