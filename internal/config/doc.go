// Package config provides environment configuration for the ezfile command.
//
// Configuration is loaded from environment variables with sensible defaults.
// Command-line flags override whatever is loaded here.
//
// Configuration Sections:
//   - Files: Default text encoding and permissions for created paths
//   - Logging: Log level and output format
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	ops := pathops.New(pathops.WithDefaultEncoding(cfg.Files.Encoding))
//
// Environment Variables:
//   - EZFILE_ENCODING, EZFILE_DIR_PERM, EZFILE_FILE_PERM
//   - LOG_LEVEL, LOG_DEV
package config
