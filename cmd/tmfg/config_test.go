package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/tmfg/tmfg"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	mode, err := cfg.mode()
	require.NoError(t, err)
	require.Equal(t, tmfg.FilteredWeights, mode)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: local-global\nlog:\n  level: debug\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "local-global", cfg.Mode)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Equal(t, tmfg.DefaultSymmetryTolerance, cfg.SymmetryTolerance)
	require.Equal(t, 2, cfg.Output.Indent)

	lvl, err := cfg.level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: [unterminated\n"), 0o644))
	_, err = LoadConfig(path)
	require.ErrorContains(t, err, "parse config")
}

func TestConfig_ApplyFlags(t *testing.T) {
	cfg := DefaultConfig()
	set := map[string]string{"mode": "unweighted", "log-format": "json"}
	cfg.applyFlags(func(name string) (string, bool) {
		v, ok := set[name]
		return v, ok
	})
	require.Equal(t, "unweighted", cfg.Mode)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestConfig_InvalidValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "dense"
	_, err := cfg.mode()
	require.ErrorIs(t, err, tmfg.ErrInvalidInput)

	cfg.Log.Level = "loud"
	_, err = cfg.level()
	require.Error(t, err)

	cfg.Log.Format = "xml"
	_, err = cfg.format()
	require.Error(t, err)
}
