package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"practice-tracker/internal/store"
)

//go:embed config.example.toml
var exampleConf []byte

const fileName = "config.toml"

// Config is the application configuration loaded from a TOML file.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Log    LogConfig    `toml:"log"`
	Window WindowConfig `toml:"window"`
}

// DataConfig controls where the record collection is persisted.
type DataConfig struct {
	Path string `toml:"path"`
}

// LogConfig controls log verbosity and the optional rotated log file.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// WindowConfig sets the initial main window size.
type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// DefaultPath returns the per-user config file location, next to the data
// file.
func DefaultPath() (string, error) {
	dir, err := store.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads and parses a TOML configuration file. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := Default()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return config, nil
}

// Default returns the configuration parsed from the embedded example file.
func Default() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile writes the example config to path for the user to edit.
// Refuses to clobber an existing file.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, exampleConf, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// DataFile resolves the configured data file path, falling back to the
// per-user default.
func (c *Config) DataFile() (string, error) {
	if c.Data.Path != "" {
		return c.Data.Path, nil
	}
	return store.DefaultPath()
}
