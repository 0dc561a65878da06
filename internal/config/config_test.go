package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binstreamio/binstream/internal/codec/prim"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "big", cfg.ByteOrder)
	assert.Equal(t, prim.BigEndian, cfg.Order())
	assert.Equal(t, 16, cfg.HexdumpWidth)
	assert.Equal(t, 256, cfg.HexdumpLength)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binspect.toml")
	content := "byte_order = \"little\"\nhexdump_width = 8\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, prim.LittleEndian, cfg.Order())
	assert.Equal(t, 8, cfg.HexdumpWidth)
	// Unset keys keep their defaults.
	assert.Equal(t, 256, cfg.HexdumpLength)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binspect.toml")
	require.NoError(t, os.WriteFile(path, []byte("byte_order = \"middle\"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
