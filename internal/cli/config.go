package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	pkgerrors "github.com/glyphstack/tablepack/pkg/errors"
)

// Config holds the CLI configuration loaded from config.toml.
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Repack RepackConfig `toml:"repack"`
}

// CacheConfig configures the local result cache.
type CacheConfig struct {
	// Dir overrides the default cache directory (~/.cache/tablepack).
	Dir string `toml:"dir"`

	// Disabled turns off result caching entirely.
	Disabled bool `toml:"disabled"`

	// TTLHours is the lifetime of cache entries. Zero means entries
	// never expire.
	TTLHours int `toml:"ttl_hours"`
}

// RepackConfig configures default repack options. Command-line flags
// take precedence over these values.
type RepackConfig struct {
	// MaxIterations caps the resolution loop. Zero uses the engine
	// default.
	MaxIterations int `toml:"max_iterations"`

	// ShortLimit overrides the maximum offset reachable through a
	// 16-bit field. Zero uses 65535.
	ShortLimit uint64 `toml:"short_limit"`

	// WideLimit overrides the maximum offset reachable through a
	// 32-bit field. Zero uses 4294967295.
	WideLimit uint64 `toml:"wide_limit"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{}
}

// LoadConfig reads the TOML config file at path. When path is empty the
// default location ($XDG_CONFIG_HOME/tablepack/config.toml, falling back
// to ~/.config/tablepack/config.toml) is used; a missing file at the
// default location is not an error.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return Config{}, pkgerrors.New(pkgerrors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// configDir returns the config directory using XDG standard (~/.config/tablepack/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
