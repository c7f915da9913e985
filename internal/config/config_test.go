package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanohiro/ze/internal/fileio"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	m := NewManager()
	require.NoError(t, m.LoadWithFileOps(fileio.OSFileOps{}, filepath.Join(dir, "config.yaml")))
	assert.Equal(t, DefaultConfig(), m.GetConfig())
}

func TestLoadEmptyPathIsNoop(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.LoadWithFileOps(fileio.OSFileOps{}, ""))
	assert.Equal(t, DefaultConfig(), m.GetConfig())
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ze", "config.yaml")

	m := NewManager()
	require.NoError(t, m.LoadWithFileOps(fileio.OSFileOps{}, path))
	m.GetConfig().TabWidth = 8
	m.GetConfig().ScrollMargin = 3
	m.GetConfig().LineNumbers = true
	require.NoError(t, m.SaveWithFileOps(fileio.OSFileOps{}))

	loaded := NewManager()
	require.NoError(t, loaded.LoadWithFileOps(fileio.OSFileOps{}, path))
	assert.Equal(t, 8, loaded.GetConfig().TabWidth)
	assert.Equal(t, 3, loaded.GetConfig().ScrollMargin)
	assert.True(t, loaded.GetConfig().LineNumbers)
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	m := NewManager()
	require.NoError(t, m.LoadWithFileOps(fileio.OSFileOps{}, filepath.Join(dir, "config.yaml")))
	m.GetConfig().TabWidth = 99
	assert.Error(t, m.SaveWithFileOps(fileio.OSFileOps{}))
}

func TestSaveWithNoPathErrors(t *testing.T) {
	m := NewManager()
	assert.Error(t, m.SaveWithFileOps(fileio.OSFileOps{}))
}

func TestLoadRejectsOutOfRangeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tab_width: 0\n"), 0644))

	m := NewManager()
	assert.Error(t, m.LoadWithFileOps(fileio.OSFileOps{}, path))
}

func TestValidateRejectsUnknownProfile(t *testing.T) {
	c := DefaultConfig()
	c.KeymapProfile = "vi"
	err := c.Validate()
	require.Error(t, err)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "keymap_profile", ve.Field)
}

func TestDefaultPathUnderHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".ze", "config.yaml"), DefaultPath())
}
