package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "handhistory.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
parse {
  workers   = 8
  log_level = "debug"
}

output {
  dir    = "/tmp/hands"
  format = "phh"
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Parse.Workers)
	assert.Equal(t, "debug", cfg.Parse.LogLevel)
	assert.Equal(t, "/tmp/hands", cfg.Output.Dir)
	assert.Equal(t, FormatPHH, cfg.Output.Format)
}

func TestLoadConfigFillsMissingValues(t *testing.T) {
	path := writeConfig(t, `
parse {
  workers = 2
}

output {}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Parse.Workers)
	assert.Equal(t, "info", cfg.Parse.LogLevel)
	assert.Equal(t, DefaultConfig().Output, cfg.Output)
}

func TestLoadConfigRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, `
parse {}

output {
  format = "xml"
}
`)

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "unknown output format")
}
