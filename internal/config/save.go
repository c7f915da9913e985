package config

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/sanohiro/ze/internal/fileio"
)

// Save validates and writes the current config back to its load path,
// atomically via a temp file plus rename, same as the teacher's config
// writer and ze's own history file.
func (m *Manager) Save() error {
	return m.SaveWithFileOps(fileio.OSFileOps{})
}

// SaveWithFileOps saves with an injectable FileOps, for tests.
func (m *Manager) SaveWithFileOps(ops fileio.FileOps) error {
	if m.configPath == "" {
		return fmt.Errorf("config: no path to save to")
	}
	if err := m.config.Validate(); err != nil {
		return fmt.Errorf("cannot save invalid config: %w", err)
	}

	data, err := marshal(m.config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	dir := filepath.Dir(m.configPath)
	if err := ops.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp, err := ops.CreateTemp(dir, ".config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpName := tmp.Name()
	if runtime.GOOS != "windows" {
		_ = ops.Chmod(tmpName, 0600)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = ops.Remove(tmpName)
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = ops.Remove(tmpName)
		return fmt.Errorf("fsync temp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = ops.Remove(tmpName)
		return fmt.Errorf("close temp config: %w", err)
	}

	if runtime.GOOS == "windows" {
		_ = ops.Remove(m.configPath)
	}
	if err := ops.Rename(tmpName, m.configPath); err != nil {
		_ = ops.Remove(tmpName)
		return fmt.Errorf("replace config: %w", err)
	}
	if runtime.GOOS != "windows" {
		_ = ops.Chmod(m.configPath, 0600)
	}
	return nil
}
