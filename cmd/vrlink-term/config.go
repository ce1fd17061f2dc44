package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the terminal configuration, loadable from a YAML file
// and overridable by flags.
type Config struct {
	// Port is the serial device carrying operator command lines,
	// e.g. /dev/ttyUSB0. Empty selects interactive mode.
	Port string `yaml:"port"`

	// Baud is the serial line speed.
	Baud int `yaml:"baud"`

	// IdleTimeoutMS is the line assembler idle timeout in milliseconds.
	IdleTimeoutMS int `yaml:"idle_timeout_ms"`

	// PollIntervalMS bounds one serial read poll in milliseconds.
	PollIntervalMS int `yaml:"poll_interval_ms"`

	// LogFile is the CBOR protocol log path. Empty disables file logging.
	LogFile string `yaml:"log_file"`

	// LogLevel is the slog level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Baud:           115200,
		IdleTimeoutMS:  100,
		PollIntervalMS: 20,
		LogLevel:       "info",
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Baud <= 0 {
		return fmt.Errorf("config: baud must be positive, got %d", c.Baud)
	}
	if c.IdleTimeoutMS <= 0 {
		return fmt.Errorf("config: idle_timeout_ms must be positive, got %d", c.IdleTimeoutMS)
	}
	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("config: poll_interval_ms must be positive, got %d", c.PollIntervalMS)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// IdleTimeout returns the assembler idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMS) * time.Millisecond
}

// PollInterval returns the serial poll bound as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}
