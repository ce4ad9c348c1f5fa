// Package fs provides file system adapters for locating sources and managing artifacts.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root, skipping VCS metadata and
// any directory matched by skip. Walk errors are yielded and end the walk.
func (w *Walker) WalkFiles(root string, skip []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(path, d.Name(), skip) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

// shouldSkipDir reports whether a directory is VCS metadata or matches skip,
// either by absolute path or by a name pattern.
func (w *Walker) shouldSkipDir(path, name string, skip []string) bool {
	if name == ".git" || name == ".jj" {
		return true
	}

	for _, pattern := range skip {
		if filepath.IsAbs(pattern) {
			if filepath.Clean(pattern) == path {
				return true
			}
			continue
		}
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
