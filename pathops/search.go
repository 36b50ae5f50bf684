package pathops

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

// suffixFilter turns an extension pattern into the suffix a file name must
// end with. "" means every file matches.
func suffixFilter(pattern string) string {
	pattern = strings.TrimLeft(strings.ReplaceAll(pattern, "*", ""), ".")
	if pattern == "" {
		return ""
	}
	return "." + pattern
}

// FindChildFiles lists the files under directory p.
//
// Without recursive only direct children are returned. pattern is an
// extension filter: ".", "", "*" and ".*" match everything, anything else is
// matched case-sensitively as a suffix after gaining a single leading dot
// ("txt", ".txt" and "*.txt" are equivalent). Directories are never returned
// and the order is unspecified. A p that is not a directory yields nothing.
func (o *Ops) FindChildFiles(p string, recursive bool, pattern string) ([]string, error) {
	root := path.Clean(Normalize(p))
	if !ExistsAsDir(root) {
		return []string{}, nil
	}
	suffix := suffixFilter(pattern)

	var mu sync.Mutex
	files := []string{}
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(fp string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if d.IsDir() {
			if !recursive && filepath.Clean(fp) != filepath.Clean(root) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 && ExistsAsDir(fp) {
			return nil
		}
		if suffix != "" && !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}

		mu.Lock()
		files = append(files, filepath.ToSlash(fp))
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, o.fail("find files", root, err)
	}

	o.logger.Debug("files found",
		zap.String("path", root),
		zap.Bool("recursive", recursive),
		zap.String("pattern", pattern),
		zap.Int("count", len(files)))
	return files, nil
}

// Glob returns the files under directory p matching pattern, which may use
// "**" to cross directory levels. A p that is not a directory yields nothing.
func (o *Ops) Glob(p, pattern string) ([]string, error) {
	root := path.Clean(Normalize(p))
	if !ExistsAsDir(root) {
		return []string{}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, o.fail("glob", root, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		files = append(files, path.Join(root, match))
	}
	return files, nil
}
