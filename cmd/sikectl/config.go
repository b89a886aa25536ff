package main

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Config is the sikectl configuration file
type Config struct {
	KEM    KEM
	Output Output
	Log    Log
}

// KEM selects the parameter set
type KEM struct {
	// Compressed selects compressed public keys and ciphertexts
	Compressed bool
}

// Output controls where and how key material is written
type Output struct {
	Dir string
	Hex bool
}

// Log is the logging configuration
type Log struct {
	Level string
}

func defaultConfig() *Config {
	return &Config{
		KEM:    KEM{Compressed: true},
		Output: Output{Dir: ".", Hex: true},
		Log:    Log{Level: "info"},
	}
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return errors.Wrapf(err, "config: Log: invalid level %q", c.Log.Level)
	}
	return nil
}

// Load parses and validates the provided buffer b as a config file body
func Load(b []byte) (*Config, error) {
	cfg := defaultConfig()
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, errors.Errorf("config: Undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses and validates the provided file. An empty name
// yields the defaults.
func LoadFile(f string) (*Config, error) {
	if f == "" {
		cfg := defaultConfig()
		return cfg, cfg.Validate()
	}
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	return Load(b)
}
