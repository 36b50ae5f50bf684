// Package logging provides structured logging built on zap.
//
// Production output is JSON with lowercase levels; development output uses
// the colored console encoder with caller and stack traces enabled. Logs go
// to stderr by default.
//
// Example Usage:
//
//	log, err := logging.New(logging.Config{Level: "debug"})
//	if err != nil {
//		return err
//	}
//	defer log.Sync()
package logging
