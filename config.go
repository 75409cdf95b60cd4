package kson

import (
	"log/slog"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config controls parser behaviour
type Config struct {
	// StrictKeys turns a duplicate object key into a parse error instead of a warning
	StrictKeys bool `yaml:"strict_keys"`

	// MaxDepth bounds container nesting
	MaxDepth int `yaml:"max_depth"`

	// LogErrors logs every parse failure at error level before returning it
	LogErrors bool `yaml:"log_errors"`

	// Logger receives parse errors and advisory diagnostics.
	// A nil Logger means slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		StrictKeys: false,
		MaxDepth:   DefaultMaxDepth,
		LogErrors:  true,
	}
}

// ValidateConfig validates configuration values and applies corrections
func ValidateConfig(config *Config) error {
	if config == nil {
		return newOperationError("validate_config", "config cannot be nil", ErrInvalidConfig)
	}

	if config.MaxDepth < 0 {
		return newOperationError("validate_config", "MaxDepth cannot be negative", ErrInvalidConfig)
	}

	// Apply defaults for unset values
	if config.MaxDepth == 0 {
		config.MaxDepth = DefaultMaxDepth
	}

	return nil
}

// LoadConfig decodes a YAML document over the default configuration
func LoadConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}

	clone := *c
	return &clone
}

// logger returns the configured logger or the process default
func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
