package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config represents the user's configuration
type Config struct {
	Token            string `json:"token"`
	DefaultProjectID string `json:"default_project_id,omitempty"`
}

// Configured reports whether enough configuration exists to reach the
// workspace
func (c *Config) Configured() bool {
	return c != nil && c.Token != ""
}

// globalConfigDir returns the global config directory path (~/.chstory)
func globalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chstory"), nil
}

// globalConfigPath returns the global config file path (~/.chstory/config.json)
func globalConfigPath() (string, error) {
	dir, err := globalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// projectConfigPath returns the project-level config path (.chstory/config.json in cwd)
func projectConfigPath() string {
	return filepath.Join(".chstory", "config.json")
}

// Load reads the config from disk, checking project config first, then
// global. A missing file is not an error; it yields an empty config so
// the caller can route to setup.
func Load() (*Config, error) {
	if data, err := os.ReadFile(projectConfigPath()); err == nil {
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(globalPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to both project and global locations
func Save(cfg *Config) error {
	// Project save can fail (read-only checkout); the global copy is
	// the one that matters for credentials.
	_ = SaveToProject(cfg)

	return SaveToGlobal(cfg)
}

// SaveToProject writes the config to the project-level location (.chstory/config.json)
func SaveToProject(cfg *Config) error {
	if err := os.MkdirAll(".chstory", 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(projectConfigPath(), data, 0644)
}

// SaveToGlobal writes the config to the global location (~/.chstory/config.json)
func SaveToGlobal(cfg *Config) error {
	dir, err := globalConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := globalConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
