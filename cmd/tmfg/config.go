package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/tmfg/tmfg"
	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type OutputConfig struct {
	// Indent is the number of spaces per JSON level; 0 writes compact JSON.
	Indent int `yaml:"indent"`
}

type Config struct {
	Mode              string       `yaml:"mode"`
	SymmetryTolerance float64      `yaml:"symmetry_tolerance"`
	Log               LogConfig    `yaml:"log"`
	Output            OutputConfig `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:              tmfg.FilteredWeights.String(),
		SymmetryTolerance: tmfg.DefaultSymmetryTolerance,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Output: OutputConfig{Indent: 2},
	}
}

// LoadConfig reads path over the defaults; keys absent from the file keep
// their default value. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// applyFlags overrides config values with the flags set on the command line.
func (c *Config) applyFlags(get func(name string) (string, bool)) {
	if v, ok := get("mode"); ok {
		c.Mode = v
	}
	if v, ok := get("log-level"); ok {
		c.Log.Level = v
	}
	if v, ok := get("log-format"); ok {
		c.Log.Format = v
	}
}

func (c *Config) mode() (tmfg.Mode, error) {
	return tmfg.ParseMode(c.Mode)
}

func (c *Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}

	return lvl, nil
}

func (c *Config) format() (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(c.Log.Format)); f {
	case "text", "json":
		return f, nil
	default:
		return "", fmt.Errorf("log format %q: want text or json", c.Log.Format)
	}
}
