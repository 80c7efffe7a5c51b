package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xvierd/countdown-cli/internal/domain"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	SetConfigFile(path)
	t.Cleanup(func() { SetConfigFile("") })
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Mode != "standard" {
		t.Errorf("default mode = %q, want standard", cfg.Mode)
	}
	if cfg.DefaultSeconds != 10 {
		t.Errorf("default seconds = %d, want 10", cfg.DefaultSeconds)
	}
	if !cfg.Notifications.Enabled {
		t.Error("notifications should default to enabled")
	}
}

func TestDefaultConfig_Presets(t *testing.T) {
	cfg := DefaultConfig()
	presets := cfg.Presets.GetPresets()
	if len(presets) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(presets))
	}
	if presets[0].Name != "Minute" || presets[0].Seconds != 60 {
		t.Errorf("preset1 = %+v, want Minute/60", presets[0])
	}
	if presets[2].Seconds != 900 {
		t.Errorf("preset3 seconds = %d, want 900", presets[2].Seconds)
	}
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	path := useTempConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file should exist after Load(): %v", err)
	}
	if cfg.Mode != "standard" {
		t.Errorf("loaded mode = %q, want standard", cfg.Mode)
	}
	if strings.HasPrefix(cfg.Storage.DataDir, "~") {
		t.Errorf("data dir should be expanded, got %q", cfg.Storage.DataDir)
	}
}

func TestSaveThenLoad(t *testing.T) {
	useTempConfig(t)

	cfg := DefaultConfig()
	cfg.Mode = "extended"
	cfg.DefaultSeconds = 90
	cfg.Storage.DataDir = "/tmp/countdown-data"
	cfg.Notifications.Sound = false
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Mode != "extended" {
		t.Errorf("Mode = %q, want extended", loaded.Mode)
	}
	if loaded.DefaultSeconds != 90 {
		t.Errorf("DefaultSeconds = %d, want 90", loaded.DefaultSeconds)
	}
	if loaded.Storage.DataDir != "/tmp/countdown-data" {
		t.Errorf("DataDir = %q", loaded.Storage.DataDir)
	}
	if loaded.Notifications.Sound {
		t.Error("Sound should be false after round trip")
	}
	if GetDBPath(loaded) != filepath.Join("/tmp/countdown-data", "countdown.db") {
		t.Errorf("GetDBPath() = %q", GetDBPath(loaded))
	}
}

func TestResolveMode(t *testing.T) {
	cfg := DefaultConfig()

	m, err := cfg.ResolveMode("")
	if err != nil || m != domain.ModeStandard {
		t.Errorf("ResolveMode(\"\") = %v, %v", m, err)
	}

	m, err = cfg.ResolveMode("extended")
	if err != nil || m != domain.ModeExtended {
		t.Errorf("ResolveMode(extended) = %v, %v", m, err)
	}

	if _, err := cfg.ResolveMode("forever"); !errors.Is(err, domain.ErrInvalidMode) {
		t.Errorf("ResolveMode(forever) error = %v, want ErrInvalidMode", err)
	}
}
