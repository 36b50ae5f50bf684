// Package pathops provides small, synchronous helpers over the host filesystem.
//
// The package is organized into:
//   - path: Pure path algebra (short names, extensions, parent, child, sibling)
//     and existence predicates
//   - operations: Directory creation, move, remove, copy and rename
//   - text: Whole-file text reads and writes with encoding detection
//   - search: File discovery by extension (fastwalk) and glob (doublestar)
//
// Paths are plain strings normalized to forward slashes. Nothing is cached
// between calls and every file handle is closed before an operation returns.
//
// Error Handling:
//   - Existence mismatches (target already a file, source missing) are
//     reported as false results, not errors
//   - Host filesystem failures are returned wrapped with the operation name
//   - Text that does not match its encoding fails with ErrDecode
//
// Encoding Detection:
//   - The first SampleSize bytes are handed to a Detector
//   - ChardetDetector (saintfish/chardet) is the default; WithDetector swaps it
//   - Detection is a guess, callers should treat it as a hint
//
// Example Usage:
//
//	ops := pathops.New(pathops.WithLogger(logger))
//	ok, err := ops.CopyTo("notes/a.txt", "backup/a.txt", false)
//	text, err := ops.ReadText("notes/a.txt", "")
//	files, err := ops.FindChildFiles("notes", true, "txt")
package pathops
