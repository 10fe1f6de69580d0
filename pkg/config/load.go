package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v9"

	"gitlab.com/tinyland/lab/design-estimate/pkg/currency"
)

const appName = "design-estimate"

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "ESTIMATE_"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/design-estimate/config.toml
//  2. ~/.config/design-estimate/config.toml
//
// If no file exists, returns DefaultConfig() with environment overrides.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg, nil); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := applyEnvOverrides(cfg, nil); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	return loadFromReader(r, nil)
}

func loadFromReader(r io.Reader, environ map[string]string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode TOML: %w", err)
	}
	if err := applyEnvOverrides(cfg, environ); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	logFile := filepath.Join(xdgCacheHome(home), appName, "estimate.log")

	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
			LogFile:  logFile,
		},
		Display: DisplayConfig{
			Theme:    "default",
			Locale:   currency.DefaultLocale,
			Currency: currency.DefaultCurrency,
			Mouse:    true,
		},
	}
}

// envOverrides lists the settings that may come from the environment.
// Empty values leave the file setting untouched.
type envOverrides struct {
	Theme     string `env:"THEME"`
	ThemeFile string `env:"THEME_FILE"`
	Locale    string `env:"LOCALE"`
	Currency  string `env:"CURRENCY"`
	Service   string `env:"SERVICE"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFile   string `env:"LOG_FILE"`
}

// applyEnvOverrides reads ESTIMATE_* variables from environ, or from the
// process environment when environ is nil.
func applyEnvOverrides(cfg *Config, environ map[string]string) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return fmt.Errorf("config: environment overrides: %w", err)
	}

	for _, ov := range []struct {
		v   string
		dst *string
	}{
		{o.Theme, &cfg.Display.Theme},
		{o.ThemeFile, &cfg.Display.ThemeFile},
		{o.Locale, &cfg.Display.Locale},
		{o.Currency, &cfg.Display.Currency},
		{o.Service, &cfg.Defaults.Service},
		{o.LogLevel, &cfg.General.LogLevel},
		{o.LogFile, &cfg.General.LogFile},
	} {
		if ov.v != "" {
			*ov.dst = ov.v
		}
	}
	return nil
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appName, "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgCacheHome returns XDG_CACHE_HOME or ~/.cache as fallback.
func xdgCacheHome(home string) string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".cache")
}
