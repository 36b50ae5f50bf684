package config

import (
	"fmt"
	"io/fs"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all ezfile configuration.
type Config struct {
	Files   FilesConfig
	Logging LogConfig
}

// FilesConfig holds defaults for created files and written text.
type FilesConfig struct {
	Encoding string      `envconfig:"EZFILE_ENCODING" default:"UTF-8 with BOM"`
	DirPerm  fs.FileMode `envconfig:"EZFILE_DIR_PERM" default:"0755"`
	FilePerm fs.FileMode `envconfig:"EZFILE_FILE_PERM" default:"0644"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Files: FilesConfig{
			Encoding: "UTF-8 with BOM",
			DirPerm:  0o755,
			FilePerm: 0o644,
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
	}
}
