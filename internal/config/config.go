// Package config loads chsim settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatPlain  = "plain"
	FormatPretty = "pretty"
)

// ErrInvalid is returned when a loaded value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every tunable of the CLI.
type Config struct {
	// Seed for Measure; 0 selects the library default.
	Seed int64 `yaml:"seed"`
	// Tolerance below which amplitudes print as zero.
	Tolerance float64 `yaml:"tolerance"`
	// MaxStatevectorQubits caps amplitude listings.
	MaxStatevectorQubits int `yaml:"max_statevector_qubits"`
	// Format is "plain" or "pretty".
	Format string `yaml:"format"`
	// Precision is the number of decimals for printed amplitudes.
	Precision int `yaml:"precision"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Seed:                 0,
		Tolerance:            1e-9,
		MaxStatevectorQubits: 16,
		Format:               FormatPlain,
		Precision:            4,
	}
}

// Load reads path over Default(). Unknown fields are rejected; an empty
// file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty or comment-only file decodes to io.EOF and keeps the defaults.
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges.
func (c Config) Validate() error {
	switch {
	case c.Tolerance < 0:
		return fmt.Errorf("tolerance %g: %w", c.Tolerance, ErrInvalid)
	case c.MaxStatevectorQubits < 1 || c.MaxStatevectorQubits > 24:
		return fmt.Errorf("max_statevector_qubits %d not in [1,24]: %w", c.MaxStatevectorQubits, ErrInvalid)
	case c.Format != FormatPlain && c.Format != FormatPretty:
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalid)
	case c.Precision < 0 || c.Precision > 15:
		return fmt.Errorf("precision %d not in [0,15]: %w", c.Precision, ErrInvalid)
	}

	return nil
}
