// Package main is the entry point for the ezfile command.
//
// ezfile wraps the pathops library so scripts can use the same path and
// text-file semantics as Go callers.
//
// Configuration:
//   - Environment variables (see internal/config)
//   - CLI flags (override env vars)
//
// Usage:
//
//	ezfile info ./notes/todo.txt
//	ezfile cp --overwrite report.csv backup/report.csv
//	ezfile rename --keep-ext old.txt "new:name"
//	ezfile convert --to UTF-16 --from Shift_JIS legacy.txt
//	ezfile find --recursive --pattern txt ./docs
//
// Exit Status:
//   - 0: every operation was performed
//   - 1: an error occurred or an operation returned false
package main
