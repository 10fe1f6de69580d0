// Package config provides TOML-based configuration for design-estimate.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/design-estimate/pkg/currency"
	"gitlab.com/tinyland/lab/design-estimate/pkg/pricing"
)

// Config is the top-level configuration.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Display  DisplayConfig  `toml:"display"`
	Defaults DefaultsConfig `toml:"defaults"`
}

// GeneralConfig holds logging settings. The TUI owns the terminal, so logs
// always go to a file.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// DisplayConfig controls presentation: palette, currency rendering, and the
// initial state of the collapsible panels.
type DisplayConfig struct {
	Theme          string `toml:"theme"`
	ThemeFile      string `toml:"theme_file"`
	Locale         string `toml:"locale"`
	Currency       string `toml:"currency"`
	AddonsExpanded bool   `toml:"addons_expanded"`
	ShowHelp       bool   `toml:"show_help"`
	Mouse          bool   `toml:"mouse"`
}

// DefaultsConfig pre-populates the selection at startup.
type DefaultsConfig struct {
	// Service is a catalog id such as "industrial". Empty means the user
	// picks one.
	Service string `toml:"service"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks values that cannot be normalized silently.
func (c *Config) Validate() error {
	if !validLogLevels[strings.ToLower(c.General.LogLevel)] {
		return fmt.Errorf("general.log_level: unknown level %q (want debug, info, warn or error)", c.General.LogLevel)
	}
	if c.Defaults.Service != "" {
		if _, ok := pricing.Lookup(pricing.ServiceID(c.Defaults.Service)); !ok {
			return fmt.Errorf("defaults.service: unknown service %q", c.Defaults.Service)
		}
	}
	if err := currency.Validate(c.Display.Locale, c.Display.Currency); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
