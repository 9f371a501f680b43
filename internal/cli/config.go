package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/niudunkule/ctviz/pkg/fonts"
)

// Config holds the user-editable settings read from ctviz.toml. Every
// field has a working default; the file is optional.
type Config struct {
	// PlotsDir is where rendered figures are written.
	PlotsDir string `toml:"plots_dir"`

	// ResourceDir holds the downloaded font assets. Empty means the XDG
	// data directory.
	ResourceDir string `toml:"resource_dir"`

	// ArchiveURL overrides the font archive download location.
	ArchiveURL string `toml:"archive_url"`

	// Colormap lists #rrggbb gradient stops for image cells. Empty means
	// the gray ramp.
	Colormap []string `toml:"colormap"`

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig selects a Redis-backed archive cache. An empty Addr keeps
// the default file cache.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		PlotsDir:   "plots",
		ArchiveURL: fonts.DefaultArchiveURL,
	}
}

// LoadConfig reads the TOML config at path, or at the default location
// when path is empty. A missing file yields the defaults; a malformed
// file is an error.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// configPath returns the config file location using XDG standard
// (~/.config/ctviz/ctviz.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "ctviz.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "ctviz.toml"), nil
}
