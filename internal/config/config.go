package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/muurk/csvpage/internal/pager"
	"github.com/muurk/csvpage/internal/ui"
)

const (
	appName    = "csvpage"
	configFile = "config.yaml"

	// CurrentVersion is the only supported file version.
	CurrentVersion = 1

	// Height bounds for the default page height.
	MinDefaultHeight = 2
	MaxDefaultHeight = 10000
)

// Rendering formats
const (
	FormatCSV     = "csv"
	FormatAligned = "aligned"
)

// Config is the preferences file.
type Config struct {
	Version       int    `yaml:"version"`
	Format        string `yaml:"format"`              // csv or aligned
	Header        bool   `yaml:"header"`              // Repeat the header on every page (takes one line)
	Fallback      string `yaml:"fallback"`            // fail, default or dump
	DefaultHeight int    `yaml:"default_height"`      // Terminal rows assumed by the default fallback
	Prompt        string `yaml:"prompt,omitempty"`    // Text shown between pages
	Delimiter     string `yaml:"delimiter,omitempty"` // Single-character field separator
	Lenient       bool   `yaml:"lenient,omitempty"`   // Accept ragged records
	LogLevel      string `yaml:"log_level,omitempty"` // debug, info, warn or error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:       CurrentVersion,
		Format:        FormatCSV,
		Header:        false,
		Fallback:      string(pager.FallbackFail),
		DefaultHeight: 24,
		Prompt:        ui.DefaultPrompt,
	}
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	switch c.Format {
	case FormatCSV, FormatAligned:
	default:
		return fmt.Errorf("invalid format %q (expected %s or %s)", c.Format, FormatCSV, FormatAligned)
	}
	if _, err := pager.ParseFallback(c.Fallback); err != nil {
		return err
	}
	if c.DefaultHeight < MinDefaultHeight || c.DefaultHeight > MaxDefaultHeight {
		return fmt.Errorf("invalid default_height %d (expected %d-%d)", c.DefaultHeight, MinDefaultHeight, MaxDefaultHeight)
	}
	if c.Delimiter != "" {
		if _, err := c.Comma(); err != nil {
			return err
		}
	}
	return nil
}

// Comma returns the delimiter as a rune, or zero when unset.
func (c *Config) Comma() (rune, error) {
	if c.Delimiter == "" {
		return 0, nil
	}
	if c.Delimiter == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if size != len(c.Delimiter) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q (expected a single character)", c.Delimiter)
	}
	return r, nil
}

// GetConfigDir returns the OS-appropriate configuration directory for the application.
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

func resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return GetConfigPath()
}

// Load reads the configuration at path, or at GetConfigPath when path is
// empty. A missing file yields Default. Keys absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal returns the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path, or to GetConfigPath when path is
// empty. The write is atomic.
func (c *Config) Save(path string) error {
	path, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	header := []byte(`# csvpage configuration file
# Command-line flags override these values.
#
# format:         csv | aligned
# fallback:       fail | default | dump (used when stdout is not a terminal)
# default_height: terminal rows assumed by the default fallback

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
