package pathops

import (
	"io/fs"

	"go.uber.org/zap"
)

// Default permissions for created directories and files
const (
	DefaultDirPerm  fs.FileMode = 0o755
	DefaultFilePerm fs.FileMode = 0o644
)

// Ops runs the side-effecting operations. It is immutable once built and
// safe to share; it holds no state between calls.
type Ops struct {
	detector        Detector
	logger          *zap.Logger
	dirPerm         fs.FileMode
	filePerm        fs.FileMode
	defaultEncoding string
}

// Option configures an Ops
type Option func(*Ops)

// WithDetector sets the encoding detector used when no encoding is given.
func WithDetector(d Detector) Option {
	return func(o *Ops) {
		if d != nil {
			o.detector = d
		}
	}
}

// WithLogger sets the logger mutations are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(o *Ops) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDirPerm sets the permission bits for created directories.
func WithDirPerm(perm fs.FileMode) Option {
	return func(o *Ops) { o.dirPerm = perm }
}

// WithFilePerm sets the permission bits for created files.
func WithFilePerm(perm fs.FileMode) Option {
	return func(o *Ops) { o.filePerm = perm }
}

// WithDefaultEncoding sets the label WriteText uses when given none.
func WithDefaultEncoding(label string) Option {
	return func(o *Ops) {
		if label != "" {
			o.defaultEncoding = label
		}
	}
}

// New creates an Ops. Without options it detects encodings with chardet,
// logs nothing and writes UTF-8 with a byte-order mark.
func New(opts ...Option) *Ops {
	o := &Ops{
		detector:        ChardetDetector{},
		logger:          zap.NewNop(),
		dirPerm:         DefaultDirPerm,
		filePerm:        DefaultFilePerm,
		defaultEncoding: UTF8BOM,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var std = New()

// Default returns the Ops behind the package-level functions.
func Default() *Ops { return std }

// File binds p to o.
func (o *Ops) File(p string) File {
	return File{path: Normalize(p), ops: o}
}

// CreateDir calls Default().CreateDir.
func CreateDir(p string) error {
	return std.CreateDir(p)
}

// MoveTo calls Default().MoveTo.
func MoveTo(src, dst string) (bool, error) {
	return std.MoveTo(src, dst)
}

// Remove calls Default().Remove.
func Remove(p string) error {
	return std.Remove(p)
}

// CopyTo calls Default().CopyTo.
func CopyTo(src, dst string, overwrite bool) (bool, error) {
	return std.CopyTo(src, dst, overwrite)
}

// Rename calls Default().Rename.
func Rename(p, newName string, opts RenameOptions) (string, bool, error) {
	return std.Rename(p, newName, opts)
}

// CreateFile calls Default().CreateFile.
func CreateFile(p string) error {
	return std.CreateFile(p)
}

// EmptyFile calls Default().EmptyFile.
func EmptyFile(p string) error {
	return std.EmptyFile(p)
}

// DetectTextEncoding calls Default().DetectTextEncoding.
func DetectTextEncoding(p string) (string, error) {
	return std.DetectTextEncoding(p)
}

// ReadText calls Default().ReadText.
func ReadText(p, encoding string) (string, error) {
	return std.ReadText(p, encoding)
}

// WriteText calls Default().WriteText.
func WriteText(p, text, encoding string) error {
	return std.WriteText(p, text, encoding)
}

// ConvertTextEncoding calls Default().ConvertTextEncoding.
func ConvertTextEncoding(p, target, source string) error {
	return std.ConvertTextEncoding(p, target, source)
}

// FindChildFiles calls Default().FindChildFiles.
func FindChildFiles(p string, recursive bool, pattern string) ([]string, error) {
	return std.FindChildFiles(p, recursive, pattern)
}
