package pathops

// File is a path bound to the Ops that acts on it. It is a value: methods
// that produce a different path return a new File.
type File struct {
	path string
	ops  *Ops
}

// NewFile binds p to the default Ops.
func NewFile(p string) File {
	return std.File(p)
}

// Path returns the normalized path.
func (f File) Path() string { return f.path }

// String returns the normalized path.
func (f File) String() string { return f.path }

func (f File) with(p string) File { return File{path: p, ops: f.ops} }

func (f File) FullPath() string { return FullPath(f.path) }
func (f File) FullPathWithoutExt() string { return FullPathWithoutExt(f.path) }
func (f File) ShortNameWithExt() string { return ShortNameWithExt(f.path) }
func (f File) ShortNameWithoutExt() string { return ShortNameWithoutExt(f.path) }
func (f File) Ext() string { return Ext(f.path) }
func (f File) Exists() bool { return Exists(f.path) }
func (f File) ExistsAsDir() bool { return ExistsAsDir(f.path) }
func (f File) ExistsAsFile() bool { return ExistsAsFile(f.path) }

func (f File) ParentDir() File { return f.with(ParentDir(f.path)) }
func (f File) Child(name string) File { return f.with(Child(f.path, name)) }
func (f File) Sibling(name string) File { return f.with(Sibling(f.path, name)) }
func (f File) WithNewExt(ext string) File {
	return f.with(WithNewExt(f.path, ext))
}

func (f File) CreateDir() error { return f.ops.CreateDir(f.path) }
func (f File) Remove() error { return f.ops.Remove(f.path) }
func (f File) MoveTo(dst string) (bool, error) { return f.ops.MoveTo(f.path, dst) }
func (f File) CopyTo(dst string, overwrite bool) (bool, error) {
	return f.ops.CopyTo(f.path, dst, overwrite)
}

// Rename renames the file on disk and returns the File for its new path.
// When the rename is refused the original File comes back with false.
func (f File) Rename(newName string, opts RenameOptions) (File, bool, error) {
	p, ok, err := f.ops.Rename(f.path, newName, opts)
	return f.with(p), ok, err
}

func (f File) CreateFile() error { return f.ops.CreateFile(f.path) }
func (f File) EmptyFile() error { return f.ops.EmptyFile(f.path) }
func (f File) DetectTextEncoding() (string, error) { return f.ops.DetectTextEncoding(f.path) }
func (f File) ReadText(encoding string) (string, error) {
	return f.ops.ReadText(f.path, encoding)
}
func (f File) WriteText(text, encoding string) error {
	return f.ops.WriteText(f.path, text, encoding)
}
func (f File) ConvertTextEncoding(target, source string) error {
	return f.ops.ConvertTextEncoding(f.path, target, source)
}

// FindChildFiles returns the matching files under f as Files.
func (f File) FindChildFiles(recursive bool, pattern string) ([]File, error) {
	paths, err := f.ops.FindChildFiles(f.path, recursive, pattern)
	if err != nil {
		return nil, err
	}
	files := make([]File, len(paths))
	for i, p := range paths {
		files[i] = f.with(p)
	}
	return files, nil
}
