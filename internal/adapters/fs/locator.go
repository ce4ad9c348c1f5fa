package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Locator implements ports.SourceLocator on top of Walker.
type Locator struct {
	walker *Walker
	skip   []string
}

// NewLocator creates a Locator. Directories matching skip are not descended into.
func NewLocator(walker *Walker, skip ...string) *Locator {
	return &Locator{walker: walker, skip: skip}
}

// Locate returns every C and C++ source below roots, sorted by path.
// A file reachable from two roots is reported once.
func (l *Locator) Locate(roots []string) ([]domain.SourceUnit, error) {
	seen := make(map[string]struct{})
	var units []domain.SourceUnit

	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceScanFailed.Error()), "path", root)
		}

		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return nil, zerr.With(domain.ErrMissingSourceDirectory, "path", abs)
		}

		for path, err := range l.walker.WalkFiles(abs, l.skip) {
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceScanFailed.Error()), "path", abs)
			}

			kind, ok := domain.KindOf(path)
			if !ok {
				continue
			}
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}

			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			units = append(units, domain.SourceUnit{
				Path:    path,
				Kind:    kind,
				ModTime: info.ModTime().UnixNano(),
			})
		}
	}

	slices.SortFunc(units, func(a, b domain.SourceUnit) int {
		return strings.Compare(a.Path, b.Path)
	})
	return units, nil
}
