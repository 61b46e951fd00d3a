// Package config loads the settings of the soyc command from a TOML or YAML
// file.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/robfig/soyc/soyjs"
	"gopkg.in/yaml.v3"
)

// Config holds the complete compiler configuration
type Config struct {
	Inputs     []string  `toml:"inputs" yaml:"inputs"`           // template files and directories
	Output     string    `toml:"output" yaml:"output"`           // "" or "-" for stdout
	KnownTypes []string  `toml:"known_types" yaml:"known_types"` // types never required
	ForEach    string    `toml:"foreach" yaml:"foreach"`         // iteration helper
	Locale     string    `toml:"locale" yaml:"locale"`
	Messages   string    `toml:"messages" yaml:"messages"` // directory of <locale>.po files
	Log        LogConfig `toml:"log" yaml:"log"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn, error
	Format string `toml:"format" yaml:"format"` // text or json
}

// Format is the syntax of a configuration file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// DetectFormat determines the configuration format from file extension.
// Unknown extensions are read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML or YAML file.
// Relative input and message paths are resolved against the file's directory.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(content, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var dir = filepath.Dir(path)
	for i, input := range cfg.Inputs {
		cfg.Inputs[i] = resolve(dir, input)
	}
	if cfg.Messages != "" {
		cfg.Messages = resolve(dir, cfg.Messages)
	}
	return cfg, nil
}

// Parse decodes configuration content of the given format and applies
// defaults. The result is not validated, since command line flags may still
// complete it.
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.ForEach == "" {
		c.ForEach = soyjs.DefaultForEach
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks the settings that can be checked without touching the
// filesystem.
func (c *Config) Validate() error {
	if c.Locale != "" && c.Messages == "" {
		return fmt.Errorf("locale %q requires a messages directory", c.Locale)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// CompilerOptions returns the compiler options described by the
// configuration. Translations are loaded separately.
func (c *Config) CompilerOptions() soyjs.Options {
	return soyjs.Options{
		KnownTypes: c.KnownTypes,
		ForEach:    c.ForEach,
	}
}

// NewLogger returns a logger writing to w in the configured format and
// level.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level, err = c.level()
	if err != nil {
		return nil, err
	}
	var opts = &slog.HandlerOptions{Level: level}
	switch c.Log.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", c.Log.Format)
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return level, nil
}

func resolve(dir, path string) string {
	path = os.ExpandEnv(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
