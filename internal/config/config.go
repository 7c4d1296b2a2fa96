// Package config loads the user-facing settings of the PHP segment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Default values for the segment's appearance.
const (
	DefaultSymbol = "🐘 "
	DefaultColor  = "4" // ANSI blue
)

// Config controls whether and how the PHP segment is drawn. It never affects
// how the PHP version is looked up.
type Config struct {
	Disabled bool   `yaml:"disabled" env:"PHP_SEGMENT_DISABLED"`
	Symbol   string `yaml:"symbol" env:"PHP_SEGMENT_SYMBOL"`
	Color    string `yaml:"color" env:"PHP_SEGMENT_COLOR"`
	Bold     bool   `yaml:"bold" env:"PHP_SEGMENT_BOLD"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Symbol: DefaultSymbol,
		Color:  DefaultColor,
		Bold:   true,
	}
}

// Load builds a Config from the defaults, then the YAML file at path (skipped
// when path is empty), then the given environment variables. Later layers win.
func Load(path string, envs map[string]string) (*Config, error) {
	c := Default()

	if path != "" {
		if err := c.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(c, env.Options{Environment: envs}); err != nil {
		return nil, fmt.Errorf("invalid environment: %v", err)
	}

	return c, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to read config file: %v", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid config file %s: %v", path, err)
	}

	return nil
}
