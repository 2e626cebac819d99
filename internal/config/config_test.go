package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
binary: ./bin/rnaview
inputs:
  - test/1ehz.pdb
`))
	require.NoError(t, err)

	assert.Equal(t, "./bin/rnaview", cfg.Binary)
	assert.Equal(t, []string{"test/1ehz.pdb"}, cfg.Inputs)
	assert.Equal(t, 3, cfg.Runs)
	assert.Zero(t, cfg.Warmup)
	assert.Zero(t, cfg.TimeoutSeconds)
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
binary: ./bin/rnaview
args: ["--pdb"]
inputs:
  - test/1ehz.pdb
  - test/6tna.pdb
runs: 10
warmup: 2
timeout_seconds: 120
history_db: bench-history.db
revision: deadbeef
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"--pdb"}, cfg.Args)
	assert.Len(t, cfg.Inputs, 2)
	assert.Equal(t, 10, cfg.Runs)
	assert.Equal(t, 2, cfg.Warmup)
	assert.Equal(t, 120, cfg.TimeoutSeconds)
	assert.Equal(t, "bench-history.db", cfg.HistoryDB)
	assert.Equal(t, "deadbeef", cfg.Revision)
}

func TestLoadRejectsMissingBinary(t *testing.T) {
	_, err := Load(writeConfig(t, "inputs: [a.pdb]\n"))
	require.ErrorContains(t, err, "binary is required")
}

func TestLoadRejectsEmptyInputs(t *testing.T) {
	_, err := Load(writeConfig(t, "binary: ./bin/rnaview\n"))
	require.ErrorContains(t, err, "at least one input")
}

func TestLoadRejectsNegativeValues(t *testing.T) {
	_, err := Load(writeConfig(t, `
binary: ./bin/rnaview
inputs: [a.pdb]
runs: -1
`))
	require.ErrorContains(t, err, "runs must be")

	_, err = Load(writeConfig(t, `
binary: ./bin/rnaview
inputs: [a.pdb]
warmup: -2
`))
	require.ErrorContains(t, err, "warmup must be")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "binary: [unterminated\n"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
