package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoad_ParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	contents := `
[schema]
vanilla = "./schema/vanilla"

[output]
tables = "./generated/tables"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./schema/vanilla", cfg.Schema.Vanilla)
	assert.Equal(t, "./generated/tables", cfg.Output.Tables)
}
