// Package config provides configuration management for texparse.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eolymp/go-textree/metadata"
)

// Config holds the texparse configuration.
type Config struct {
	OutputFormat        string   `yaml:"output_format,omitempty" toml:"output_format,omitempty"`
	NoColor             bool     `yaml:"no_color,omitempty" toml:"no_color,omitempty"`
	LogLevel            string   `yaml:"log_level,omitempty" toml:"log_level,omitempty"`
	ToolchainMacro      string   `yaml:"toolchain_macro,omitempty" toml:"toolchain_macro,omitempty"`
	ToolchainConstraint string   `yaml:"toolchain_constraint,omitempty" toml:"toolchain_constraint,omitempty"`
	WatchDebounce       Duration `yaml:"watch_debounce,omitempty" toml:"watch_debounce"`
}

// Duration wraps time.Duration for text based config formats
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns configuration used when nothing is configured.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

func (c *Config) applyDefaults() {
	if c.OutputFormat == "" {
		c.OutputFormat = "plain"
	}

	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}

	if c.ToolchainMacro == "" {
		c.ToolchainMacro = metadata.DefaultToolchainMacro
	}

	if c.WatchDebounce.Duration <= 0 {
		c.WatchDebounce.Duration = 500 * time.Millisecond
	}
}

// LoadFromEnv overrides configuration with TEXPARSE_* environment variables, only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("TEXPARSE_OUTPUT"); v != "" {
		c.OutputFormat = v
	}

	if v := os.Getenv("TEXPARSE_NO_COLOR"); v != "" {
		c.NoColor, _ = strconv.ParseBool(v)
	}

	if v := os.Getenv("TEXPARSE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	if v := os.Getenv("TEXPARSE_TOOLCHAIN_MACRO"); v != "" {
		c.ToolchainMacro = v
	}

	if v := os.Getenv("TEXPARSE_TOOLCHAIN_CONSTRAINT"); v != "" {
		c.ToolchainConstraint = v
	}

	if v := os.Getenv("TEXPARSE_WATCH_DEBOUNCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.WatchDebounce.Duration = d
		}
	}
}

// Level returns log level, unknown values fall back to warn.
func (c *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}

	return level
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "texparse", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".texparse", "config.yml")
	}

	return filepath.Join(home, ".config", "texparse", "config.yml")
}

// Load reads the configuration from the specified path. Files with .toml extension are read as TOML, anything
// else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if isTOML(path) {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides it with environment variables. Missing file is not
// an error, defaults are used instead.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		cfg = Default()
	}

	cfg.LoadFromEnv()
	return cfg, nil
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	var err error

	if isTOML(path) {
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(c)
		data = []byte(b.String())
	} else {
		data, err = yaml.Marshal(c)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
