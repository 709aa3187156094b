// Package config resolves runtime settings from an optional YAML file in the
// data directory, overridden by environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	defaultDirName = ".grindstone"
	configFileName = "config.yaml"
)

// CalendarConfig locates the Google Calendar OAuth material. Both paths
// default to files inside the data directory.
type CalendarConfig struct {
	CredentialsFile string `yaml:"credentials_file" env:"GRIND_CALENDAR_CREDENTIALS"`
	TokenFile       string `yaml:"token_file" env:"GRIND_CALENDAR_TOKEN"`
}

// Config is the resolved runtime configuration.
type Config struct {
	DataDir     string         `yaml:"data_dir" env:"GRIND_DATA_DIR"`
	DefaultUser string         `yaml:"default_user" env:"GRIND_USER"`
	Calendar    CalendarConfig `yaml:"calendar"`
}

// DefaultDataDir returns the default record/config location under the user's
// home directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, defaultDirName), nil
}

// Load reads <data dir>/config.yaml when present, applies environment
// overrides and fills in defaults.
func Load() (*Config, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom is Load with an explicit starting data directory.
func LoadFrom(dir string) (*Config, error) {
	cfg := &Config{DataDir: dir}

	data, err := os.ReadFile(filepath.Join(dir, configFileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = dir
	}
	if cfg.Calendar.CredentialsFile == "" {
		cfg.Calendar.CredentialsFile = filepath.Join(cfg.DataDir, "credentials.json")
	}
	if cfg.Calendar.TokenFile == "" {
		cfg.Calendar.TokenFile = filepath.Join(cfg.DataDir, "token.json")
	}
	return cfg, nil
}
