package pathops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"syscall"

	cp "github.com/otiai10/copy"
	"go.uber.org/zap"
)

// illegalNameChars cannot appear in a file name on at least one common platform.
const illegalNameChars = `?*/\<>:"|`

// RenameOptions controls Rename. The zero value strips illegal characters and
// leaves the extension out of the new name.
type RenameOptions struct {
	// Strict rejects names containing illegal characters instead of stripping them.
	Strict bool
	// IncludeExt appends the original extension to the new name.
	IncludeExt bool
}

// fail logs and wraps a filesystem error.
func (o *Ops) fail(op, p string, err error) error {
	o.logger.Warn("filesystem operation failed",
		zap.String("op", op),
		zap.String("path", p),
		zap.Error(err))
	return fmt.Errorf("%s %s: %w", op, p, err)
}

// CreateDir creates p and any missing parents. It does nothing if p is
// already a directory and fails if p exists as something else.
func (o *Ops) CreateDir(p string) error {
	p = Normalize(p)
	if ExistsAsDir(p) {
		return nil
	}
	if err := os.MkdirAll(p, o.dirPerm); err != nil {
		return o.fail("create dir", p, err)
	}
	o.logger.Debug("directory created", zap.String("path", p))
	return nil
}

// MoveTo moves the file or directory src to dst.
//
// If dst already exists as a file nothing is moved and MoveTo still reports
// true. Only file destinations are checked: when dst is an existing directory
// src is moved inside it, as the host move would. Moving a file creates dst's
// parent first. A missing src is not an error.
func (o *Ops) MoveTo(src, dst string) (bool, error) {
	src, dst = Normalize(src), Normalize(dst)
	if ExistsAsFile(dst) {
		o.logger.Debug("move skipped, destination is a file",
			zap.String("src", src),
			zap.String("dst", dst))
		return true, nil
	}

	switch {
	case ExistsAsFile(src):
		if err := o.CreateDir(ParentDir(dst)); err != nil {
			return false, err
		}
	case ExistsAsDir(src):
	default:
		return true, nil
	}

	target := dst
	if ExistsAsDir(dst) {
		target = Child(dst, ShortNameWithExt(strings.TrimRight(src, "/")))
	}
	if err := o.move(src, target); err != nil {
		return false, err
	}
	o.logger.Debug("moved", zap.String("src", src), zap.String("dst", target))
	return true, nil
}

// move renames src to dst, copying and deleting when they live on
// different devices.
func (o *Ops) move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return o.fail("move", src, err)
	}
	if err := cp.Copy(src, dst, cp.Options{PreserveTimes: true}); err != nil {
		return o.fail("move", src, err)
	}
	if err := os.RemoveAll(src); err != nil {
		return o.fail("move", src, err)
	}
	return nil
}

// Remove deletes p, recursively for directories. A missing p is not an error.
func (o *Ops) Remove(p string) error {
	p = Normalize(p)
	if _, err := os.Lstat(p); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := os.RemoveAll(p); err != nil {
		return o.fail("remove", p, err)
	}
	o.logger.Debug("removed", zap.String("path", p))
	return nil
}

// CopyTo copies the file or directory src to dst and reports whether it did.
//
// An existing file at dst is replaced only when overwrite is set; otherwise
// CopyTo returns false. Directories are copied as whole trees and never onto
// an existing directory. A file copied onto an existing directory lands
// inside it, under the same overwrite rule. A missing src returns false.
func (o *Ops) CopyTo(src, dst string, overwrite bool) (bool, error) {
	src, dst = Normalize(src), Normalize(dst)
	if ExistsAsFile(dst) {
		if !overwrite {
			return false, nil
		}
		if err := o.Remove(dst); err != nil {
			return false, err
		}
	}

	target := dst
	switch {
	case ExistsAsFile(src):
		if ExistsAsDir(dst) {
			target = Child(dst, ShortNameWithExt(src))
			if ExistsAsFile(target) {
				if !overwrite {
					return false, nil
				}
				if err := o.Remove(target); err != nil {
					return false, err
				}
			}
		} else if err := o.CreateDir(ParentDir(dst)); err != nil {
			return false, err
		}
	case ExistsAsDir(src):
		if ExistsAsDir(dst) {
			return false, nil
		}
	default:
		return false, nil
	}

	if err := cp.Copy(src, target, cp.Options{PreserveTimes: true}); err != nil {
		return false, o.fail("copy", src, err)
	}
	o.logger.Debug("copied", zap.String("src", src), zap.String("dst", target))
	return true, nil
}

// Rename gives p the short name newName inside the same parent directory and
// returns the resulting path.
//
// Illegal characters (? * / \ < > : " |) are stripped, or with Strict make
// Rename return false without touching anything. When p does not exist the
// new path is still returned with true, but nothing on disk changes. A name
// left empty after stripping returns false instead of the usual true.
func (o *Ops) Rename(p, newName string, opts RenameOptions) (string, bool, error) {
	p = Normalize(p)
	if opts.Strict && strings.ContainsAny(newName, illegalNameChars) {
		return p, false, nil
	}
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegalNameChars, r) {
			return -1
		}
		return r
	}, newName)
	if name == "" {
		return p, false, nil
	}

	target := Child(ParentDir(p), name)
	if !Exists(p) {
		return target, true, nil
	}
	if opts.IncludeExt {
		target += Ext(p)
	}
	if err := o.move(p, target); err != nil {
		return p, false, err
	}
	o.logger.Debug("renamed", zap.String("from", p), zap.String("to", target))
	return target, true, nil
}
