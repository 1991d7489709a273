// Package config loads the optional srtsh TOML configuration and resolves
// the save hook.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultConfigFile is used when no --config flag is given.
	DefaultConfigFile = "~/.config/srtsh/config.toml"
	// LegacyHookFile is picked up as the save hook when nothing else is set.
	LegacyHookFile = "~/.srt_shell_hook"
)

// Logging contains configuration for log output.
type Logging struct {
	Level string `toml:"level"`
}

// Display contains configuration for the interactive front end.
type Display struct {
	Color      string `toml:"color"`       // auto, always, never
	TableStyle string `toml:"table_style"` // rounded, light, ascii
	Prompt     string `toml:"prompt"`
}

// Config encapsulates all configuration values for srtsh.
type Config struct {
	SaveHook string  `toml:"save_hook"`
	Logging  Logging `toml:"logging"`
	Display  Display `toml:"display"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Logging: Logging{Level: "warn"},
		Display: Display{
			Color:      "auto",
			TableStyle: "rounded",
			Prompt:     "srt> ",
		},
	}
}

// Load parses the file at path, or the default location when path is
// empty. A missing file is not an error. The returned bool reports whether
// a file was read.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	resolved, err := ExpandPath(path)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return &cfg, false, cfg.normalize()
	case err != nil:
		return nil, false, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, false, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return &cfg, true, nil
}

func (c *Config) normalize() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Display.Color = strings.ToLower(strings.TrimSpace(c.Display.Color))
	c.Display.TableStyle = strings.ToLower(strings.TrimSpace(c.Display.TableStyle))
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Display.Color == "" {
		c.Display.Color = "auto"
	}
	if c.Display.TableStyle == "" {
		c.Display.TableStyle = "rounded"
	}
	if c.Display.Prompt == "" {
		c.Display.Prompt = "srt> "
	}
	if strings.TrimSpace(c.SaveHook) != "" {
		expanded, err := ExpandPath(strings.TrimSpace(c.SaveHook))
		if err != nil {
			return err
		}
		c.SaveHook = expanded
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch c.Display.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("display.color must be auto, always or never, got %q", c.Display.Color)
	}
	switch c.Display.TableStyle {
	case "rounded", "light", "ascii":
	default:
		return fmt.Errorf("display.table_style must be rounded, light or ascii, got %q", c.Display.TableStyle)
	}
	return nil
}

// ResolveSaveHook picks the hook script: the flag value, then the config
// file, then LegacyHookFile if it exists. An empty result means no hook.
func (c *Config) ResolveSaveHook(flagValue string) (string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return ExpandPath(strings.TrimSpace(flagValue))
	}
	if c.SaveHook != "" {
		return c.SaveHook, nil
	}

	legacy, err := ExpandPath(LegacyHookFile)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(legacy); err == nil && !info.IsDir() {
		return legacy, nil
	}
	return "", nil
}

// ExpandPath resolves a leading ~ and makes the path absolute.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
