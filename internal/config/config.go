// Package config loads textscope configuration from TOML files.
//
// Configuration is optional: a missing file yields the defaults, and
// command-line flags override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config controls textscope defaults. Flags override file values.
type Config struct {
	// Encoding is the default input encoding: utf8, utf16be, utf16le.
	Encoding string `toml:"encoding"`

	// JSON selects JSON report output by default.
	JSON bool `toml:"json"`

	// Pretty pretty-prints JSON output.
	Pretty bool `toml:"pretty"`

	// NFC normalizes input to NFC before inspection.
	NFC bool `toml:"nfc"`

	// Theme is the seed color for the interactive viewer palette, as a
	// hex color like "#268bd2".
	Theme string `toml:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Encoding: "utf8",
		Theme:    "#268bd2",
	}
}

// Load reads the TOML file at path. An empty path falls back to
// DefaultPath. A missing file is not an error; the defaults are
// returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		perr := &ParseError{
			Path:    path,
			Message: err.Error(),
			Err:     err,
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return Default(), perr
	}

	return cfg, nil
}

// DefaultPath returns the user-level configuration path, or "" when
// the user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "textscope", "config.toml")
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
