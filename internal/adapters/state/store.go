// Package state persists the build state as a JSON record.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.StateStore using a flat JSON file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the record at path.
func (s *Store) Load(path, toolVersion string) (*domain.BuildState, domain.LoadStatus, error) {
	empty := domain.NewBuildState(domain.Fingerprint{})

	//nolint:gosec // Path is derived from the project configuration
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return empty, domain.StateMissing, nil
		}
		return nil, domain.StateMissing, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", path)
	}

	var st domain.BuildState
	if err := json.Unmarshal(data, &st); err != nil {
		return empty, domain.StateIncompatible, nil
	}
	if st.Meta.ToolVersion != toolVersion {
		return empty, domain.StateIncompatible, nil
	}
	if st.Files == nil {
		st.Files = make(map[string]domain.FileEntry)
	}

	return &st, domain.StateLoaded, nil
}

// Save writes state to a temporary file next to path and renames it into place,
// so an interrupted write never leaves a truncated record behind.
func (s *Store) Save(path string, state *domain.BuildState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStateWriteFailed.Error())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()

	if err := writeAndSync(tmp, data); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", tmpName)
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}

	return nil
}

// Remove deletes the record at path. A missing record is not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	return nil
}

func writeAndSync(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
