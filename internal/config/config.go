// Package config loads and saves the docstree CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/docstree/format"
)

// AppName is the application name used for the config directory
const AppName = "docstree"

// ErrUnknownKey is returned for a key that is not a config setting.
var ErrUnknownKey = errors.New("config: unknown key")

// Config holds CLI configuration. Unset fields fall back to built-in
// defaults, so boolean settings are pointers.
type Config struct {
	PrettyHeaderIDs *bool  `yaml:"pretty_header_ids,omitempty"`
	Styles          *bool  `yaml:"styles,omitempty"`
	OutputFormat    string `yaml:"output_format,omitempty"` // html, markdown, json, yaml, outline
	Compression     string `yaml:"compression,omitempty"`   // none, gzip, zstd, brotli, lz4
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultConfigPath returns the default config file path
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load loads config from the given path. A missing file yields an empty
// Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save saves config to the given path
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	if c.OutputFormat != "" && format.Parse(c.OutputFormat) == format.Unknown {
		return fmt.Errorf("invalid output_format %q (expected html|markdown|json|yaml|outline)", c.OutputFormat)
	}
	if c.Compression != "" {
		if _, ok := format.ParseCompression(c.Compression); !ok {
			return fmt.Errorf("invalid compression %q (expected none|gzip|zstd|brotli|lz4)", c.Compression)
		}
	}
	return nil
}

// Keys returns the supported configuration keys
func Keys() []string {
	return []string{
		"compression",
		"output_format",
		"pretty_header_ids",
		"styles",
	}
}

// Get returns the value of key as text, or "" when it is unset
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "pretty_header_ids":
		return formatBool(c.PrettyHeaderIDs), nil
	case "styles":
		return formatBool(c.Styles), nil
	case "output_format":
		return c.OutputFormat, nil
	case "compression":
		return c.Compression, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set parses value and stores it under key
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "pretty_header_ids", "styles":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: expected true or false", key, value)
		}
		if key == "styles" {
			c.Styles = &b
		} else {
			c.PrettyHeaderIDs = &b
		}
		return nil
	case "output_format":
		if format.Parse(value) == format.Unknown {
			return fmt.Errorf("invalid output_format %q (expected html|markdown|json|yaml|outline)", value)
		}
		c.OutputFormat = strings.ToLower(value)
		return nil
	case "compression":
		if _, ok := format.ParseCompression(value); !ok {
			return fmt.Errorf("invalid compression %q (expected none|gzip|zstd|brotli|lz4)", value)
		}
		c.Compression = strings.ToLower(value)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Unset clears key so the built-in default applies
func (c *Config) Unset(key string) error {
	switch key {
	case "pretty_header_ids":
		c.PrettyHeaderIDs = nil
	case "styles":
		c.Styles = nil
	case "output_format":
		c.OutputFormat = ""
	case "compression":
		c.Compression = ""
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func formatBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
