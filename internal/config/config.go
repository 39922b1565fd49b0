package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"attribute-mapper/repository"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the root of the configuration file.
type Config struct {
	NameMatching string `yaml:"name_matching,omitempty"`
	Build        Build  `yaml:"build"`
	Log          Log    `yaml:"log"`
}

// Build holds the record builder policy.
type Build struct {
	MultipleBuilds bool `yaml:"multiple_builds"`
}

// Log selects the level and format of diagnostics.
type Log struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.NameMatching == "" {
		c.NameMatching = repository.DefaultComparer().Name()
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Log.Format == "" {
		c.Log.Format = FormatText
	}
}

// Validate checks that every value names something known.
func (c *Config) Validate() error {
	if _, err := c.Comparer(); err != nil {
		return fmt.Errorf("name_matching: %w", err)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("log.format: unknown format %q (expected %s or %s)", c.Log.Format, FormatText, FormatJSON)
	}

	return nil
}

// Comparer resolves the configured parameter name comparer.
func (c *Config) Comparer() (repository.Comparer, error) {
	return repository.ComparerByName(c.NameMatching)
}

// SlogLevel parses the configured level.
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, err
	}

	return level, nil
}

// NewLogger builds a logger writing to w as configured.
func (l Log) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if l.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
