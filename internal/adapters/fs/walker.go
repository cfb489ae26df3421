// Package fs provides the file system adapters that populate a build working directory.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Walker lists the regular files below a directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root, in lexical order, with its path starting at root.
// A root that is itself a symlink is resolved first. Below the root, symlinks are included when
// they resolve to a regular file; linked directories are not followed.
// A walk error is yielded once with an empty path and ends the iteration.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		resolved, err := filepath.EvalSymlinks(root)
		if err != nil {
			yield("", err)
			return
		}

		err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			regular, err := isRegular(path, d)
			if err != nil {
				return err
			}
			if !regular {
				return nil
			}

			rel, err := filepath.Rel(resolved, path)
			if err != nil {
				return err
			}
			if !yield(filepath.Join(root, rel), nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

func isRegular(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
