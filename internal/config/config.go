// Package config loads the keel host configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the host configuration for the keel binary.
type Config struct {
	// Path is the default backing directory for the shell backend,
	// overridable with the -p flag.
	Path string `toml:"path"`

	// LogLevel overrides the flag-derived log level, same values as the
	// KEEL_LOG environment variable.
	LogLevel string `toml:"log_level"`

	// Commands lists Lua command-set scripts to load at startup.
	Commands []string `toml:"commands"`
}

// ParseError reports an unreadable or malformed configuration file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the configuration at path. A missing file is not an error;
// it yields an empty configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// DefaultPath returns the conventional configuration location:
// $XDG_CONFIG_HOME/keel/keel.toml, falling back to ~/.config/keel/keel.toml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "keel", "keel.toml")
}
