package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/niudunkule/ctviz/pkg/fonts"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PlotsDir != "plots" {
		t.Errorf("PlotsDir = %q, want plots", cfg.PlotsDir)
	}
	if cfg.ArchiveURL != fonts.DefaultArchiveURL {
		t.Errorf("ArchiveURL = %q", cfg.ArchiveURL)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("Redis.Addr should default empty, got %q", cfg.Redis.Addr)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctviz.toml")
	const doc = `
plots_dir = "out/figures"
colormap = ["#1a1416", "#f56958", "#f6e813"]

[redis]
addr = "localhost:6379"
db = 2
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.PlotsDir != "out/figures" {
		t.Errorf("PlotsDir = %q", cfg.PlotsDir)
	}
	if len(cfg.Colormap) != 3 || cfg.Colormap[1] != "#f56958" {
		t.Errorf("Colormap = %v", cfg.Colormap)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	// Unset keys keep their defaults.
	if cfg.ArchiveURL != fonts.DefaultArchiveURL {
		t.Errorf("ArchiveURL = %q, want default", cfg.ArchiveURL)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctviz.toml")
	if err := os.WriteFile(path, []byte(`plot_dir = "typo"`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for unknown config key")
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadConfigMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.PlotsDir != "plots" {
		t.Errorf("missing default file should yield defaults, got %+v", cfg)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("dir = %q", dir)
	}
}

func TestDataDirXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	dir, err := dataDir()
	if err != nil {
		t.Fatalf("dataDir error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-data", appName) {
		t.Errorf("dir = %q", dir)
	}
}
