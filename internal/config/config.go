package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds process-wide settings loaded from ~/.taskboard/config.yaml.
type Config struct {
	// DatabasePath is where the sqlite database lives. Empty means the
	// default location under the taskboard home directory.
	DatabasePath string `yaml:"database_path"`

	// ReserveCoefficient controls how far before a hard deadline threshold
	// a soft warning is raised. Must be in (0, 1].
	ReserveCoefficient float64 `yaml:"reserve_coefficient"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ReserveCoefficient: 0.5,
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.ReserveCoefficient <= 0 || c.ReserveCoefficient > 1 {
		return fmt.Errorf("reserve_coefficient must be in (0, 1], got %v", c.ReserveCoefficient)
	}
	return nil
}

// HomeDir returns the taskboard home directory (~/.taskboard).
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskboard"), nil
}

// ConfigFile returns the path to the config file.
func ConfigFile() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist. Values not set in the file keep their defaults.
func Load() (*Config, error) {
	path, err := ConfigFile()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.ReserveCoefficient == 0 {
		cfg.ReserveCoefficient = Default().ReserveCoefficient
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to its default location.
func (c *Config) Save() error {
	path, err := ConfigFile()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
