package pathops

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Normalize converts every backslash in p to a forward slash.
func Normalize(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// FullPath returns the absolute, cleaned form of p.
func FullPath(p string) string {
	abs, err := filepath.Abs(Normalize(p))
	if err != nil {
		return path.Clean(Normalize(p))
	}
	return filepath.ToSlash(abs)
}

// ShortNameWithExt returns the last segment of p. A trailing slash yields "".
func ShortNameWithExt(p string) string {
	p = Normalize(p)
	return p[strings.LastIndex(p, "/")+1:]
}

// ShortNameWithoutExt returns the last segment of p without its extension.
func ShortNameWithoutExt(p string) string {
	name := ShortNameWithExt(p)
	return name[:len(name)-len(filepath.Ext(name))]
}

// Ext returns the extension of the last segment, including the dot, or ""
// when the segment has no dot. Hidden names are not special-cased, so
// ".bashrc" has the extension ".bashrc".
func Ext(p string) string {
	return filepath.Ext(ShortNameWithExt(p))
}

// FullPathWithoutExt returns the absolute path of p with its extension removed.
func FullPathWithoutExt(p string) string {
	return Sibling(p, ShortNameWithoutExt(p))
}

// ParentDir returns the absolute path of the directory containing p,
// equivalent to resolving p/..
func ParentDir(p string) string {
	return FullPath(Normalize(p) + "/..")
}

// Child joins p and name without checking existence. An absolute name
// replaces p entirely.
func Child(p, name string) string {
	name = Normalize(name)
	if path.IsAbs(name) || filepath.IsAbs(name) {
		return path.Clean(name)
	}
	return path.Join(Normalize(p), name)
}

// Sibling returns the path named name that shares p's parent directory.
func Sibling(p, name string) string {
	return Child(ParentDir(p), name)
}

// WithNewExt returns p with its extension replaced by ext. Paths without an
// extension (directories, extensionless files) are returned unchanged. A
// missing leading dot is added to ext; an empty ext strips the extension.
func WithNewExt(p, ext string) string {
	p = Normalize(p)
	old := Ext(p)
	if old == "" {
		return p
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return p[:len(p)-len(old)] + ext
}

// Exists reports whether anything exists at p.
func Exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// ExistsAsDir reports whether p exists and is a directory.
func ExistsAsDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// ExistsAsFile reports whether p exists and is a regular file.
func ExistsAsFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
