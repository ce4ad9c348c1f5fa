package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Artifacts implements ports.ArtifactStore for a directory of object files.
type Artifacts struct{}

// NewArtifacts creates a new Artifacts store.
func NewArtifacts() *Artifacts {
	return &Artifacts{}
}

// List returns the object files directly inside dir, sorted.
func (a *Artifacts) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactCleanupFailed.Error()), "path", dir)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), domain.ObjectExt) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	slices.Sort(out)
	return out, nil
}

// Remove deletes path. A missing file is not an error.
func (a *Artifacts) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
