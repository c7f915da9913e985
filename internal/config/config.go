// Package config loads and saves the optional YAML settings file at
// ~/.ze/config.yaml. The editor never requires it: every field has a
// safe default, and a missing file is not an error.
package config

import "go.yaml.in/yaml/v3"

// Config holds the editor's user-tunable settings. Field names are
// intentionally small: ze has no plugin system or per-mode settings to
// configure, just the handful of things that vary by taste.
type Config struct {
	TabWidth      int    `yaml:"tab_width"`
	ScrollMargin  int    `yaml:"scroll_margin"`
	LineNumbers   bool   `yaml:"line_numbers"`
	KeymapProfile string `yaml:"keymap_profile"`
}

// DefaultConfig returns the settings ze runs with when no config file
// exists or the file can't be parsed.
func DefaultConfig() *Config {
	return &Config{
		TabWidth:      4,
		ScrollMargin:  0,
		LineNumbers:   false,
		KeymapProfile: "emacs",
	}
}

// Manager loads, validates, and saves a Config against a configurable
// file path, so callers can swap in an in-memory FileOps for tests.
type Manager struct {
	config     *Config
	configPath string
}

// NewManager returns a Manager seeded with DefaultConfig.
func NewManager() *Manager {
	return &Manager{config: DefaultConfig()}
}

// GetConfig returns the manager's current settings.
func (m *Manager) GetConfig() *Config {
	return m.config
}

func marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

func unmarshal(data []byte, c *Config) error {
	return yaml.Unmarshal(data, c)
}
