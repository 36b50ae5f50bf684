package config

import (
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"EZFILE_ENCODING",
	"EZFILE_DIR_PERM",
	"EZFILE_FILE_PERM",
	"LOG_LEVEL",
	"LOG_DEV",
}

// clearEnv unsets every variable the config reads for the duration of t.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		if old, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { os.Setenv(key, old) })
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	// Files config
	assert.Equal(t, "UTF-8 with BOM", cfg.Files.Encoding)
	assert.Equal(t, fs.FileMode(0o755), cfg.Files.DirPerm)
	assert.Equal(t, fs.FileMode(0o644), cfg.Files.FilePerm)

	// Logging config
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}

func TestLoadOrDefault(t *testing.T) {
	clearEnv(t)

	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("EZFILE_ENCODING", "UTF-16")
	t.Setenv("EZFILE_DIR_PERM", "0700")
	t.Setenv("EZFILE_FILE_PERM", "0600")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "UTF-16", cfg.Files.Encoding)
	assert.Equal(t, fs.FileMode(0o700), cfg.Files.DirPerm)
	assert.Equal(t, fs.FileMode(0o600), cfg.Files.FilePerm)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoggingConfig(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		dev       string
		wantLevel string
		wantDev   bool
	}{
		{
			name:      "default values",
			wantLevel: "warn",
			wantDev:   false,
		},
		{
			name:      "debug level",
			level:     "debug",
			wantLevel: "debug",
			wantDev:   false,
		},
		{
			name:      "development mode",
			dev:       "true",
			wantLevel: "warn",
			wantDev:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.level != "" {
				t.Setenv("LOG_LEVEL", tt.level)
			}
			if tt.dev != "" {
				t.Setenv("LOG_DEV", tt.dev)
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantLevel, cfg.Logging.Level)
			assert.Equal(t, tt.wantDev, cfg.Logging.Development)
		})
	}
}

func TestLoadInvalidPermission(t *testing.T) {
	clearEnv(t)
	t.Setenv("EZFILE_DIR_PERM", "rwx")

	_, err := Load()
	assert.Error(t, err)

	cfg := LoadOrDefault()
	assert.Equal(t, fs.FileMode(0o755), cfg.Files.DirPerm)
}
