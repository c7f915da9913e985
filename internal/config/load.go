package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sanohiro/ze/internal/fileio"
)

// DefaultPath returns ~/.ze/config.yaml, or "" if the home directory
// can't be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ze", "config.yaml")
}

// Load reads settings from path using the real filesystem. A missing
// file leaves the manager on DefaultConfig rather than failing: the
// editor is meant to run with zero configuration present.
func (m *Manager) Load(path string) error {
	return m.LoadWithFileOps(fileio.OSFileOps{}, path)
}

// LoadWithFileOps loads settings with an injectable FileOps, for tests.
func (m *Manager) LoadWithFileOps(ops fileio.FileOps, path string) error {
	m.configPath = path
	if path == "" {
		return nil
	}

	data, err := ops.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	m.config = cfg
	return nil
}
