// Package config loads user defaults for bytewin from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/joshuapare/bytewin/internal/render"
	"github.com/joshuapare/bytewin/pkg/window"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "BYTEWIN_CONFIG"

// Config holds defaults applied when the matching flag is not given.
type Config struct {
	Context int    `toml:"context"`
	Clamp   bool   `toml:"clamp"`
	Color   bool   `toml:"color"`
	Charset string `toml:"charset"`
	Summary bool   `toml:"summary"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Context: window.DefaultContext,
		Color:   true,
		Charset: render.DefaultCharset,
	}
}

// DefaultPath returns $BYTEWIN_CONFIG, or config.toml under the user config
// directory. It returns "" when neither can be determined.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bytewin", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error unless
// required is set, which is the case for an explicitly named file.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the comparator or renderer cannot use.
func (c *Config) Validate() error {
	if c.Context < 0 {
		return fmt.Errorf("context must be >= 0, got %d", c.Context)
	}
	if _, err := render.Charset(c.Charset); err != nil {
		return err
	}
	return nil
}

// WindowOptions converts the comparator settings.
func (c *Config) WindowOptions() *window.Options {
	return &window.Options{Context: c.Context, Clamp: c.Clamp}
}
