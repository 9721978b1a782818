package main

import (
	"io"
	"log/slog"
)

// newLogger builds the CLI logger from the validated config.
func newLogger(w io.Writer, cfg *Config) (*slog.Logger, error) {
	lvl, err := cfg.level()
	if err != nil {
		return nil, err
	}
	format, err := cfg.format()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
