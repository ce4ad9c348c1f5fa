// Package libs finds the dynamic libraries a program links against and
// places them next to the binary.
package libs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver implements ports.LibraryResolver.
type Resolver struct {
	goos string
}

// NewResolver creates a Resolver for the host platform.
func NewResolver() *Resolver {
	return NewResolverFor(runtime.GOOS)
}

// NewResolverFor creates a Resolver that matches the library extensions of goos.
func NewResolverFor(goos string) *Resolver {
	return &Resolver{goos: goos}
}

// Extensions returns the dynamic library extensions for goos.
func Extensions(goos string) []string {
	switch goos {
	case "windows":
		return []string{".dll"}
	case "linux", "freebsd", "openbsd", "netbsd":
		return []string{".so"}
	case "darwin":
		return []string{".dylib", ".framework"}
	default:
		return []string{".dll", ".so", ".dylib"}
	}
}

// Resolve walks dirs and returns every library whose normalised name is in names.
// A name is normalised by lowercasing it and dropping a "lib" prefix and the extension.
func (r *Resolver) Resolve(dirs, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[normalise(n, "")] = struct{}{}
	}
	exts := Extensions(r.goos)

	var found []string
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == dir && os.IsNotExist(err) {
					return filepath.SkipDir
				}
				return err
			}

			ext := matchExt(d.Name(), exts)
			if ext == "" {
				return nil
			}
			if _, ok := wanted[normalise(d.Name(), ext)]; ok {
				found = append(found, path)
			}
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		})
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrLibraryScanFailed.Error()), "path", dir)
		}
	}

	slices.Sort(found)
	return slices.Compact(found), nil
}

// Copy places each library in dest. Framework bundles are copied recursively.
func (r *Resolver) Copy(libs []string, dest string) error {
	if len(libs) == 0 {
		return nil
	}
	if err := os.MkdirAll(dest, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLibraryCopyFailed.Error()), "path", dest)
	}

	for _, lib := range libs {
		info, err := os.Stat(lib)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLibraryCopyFailed.Error()), "path", lib)
		}

		target := filepath.Join(dest, filepath.Base(lib))
		if info.IsDir() {
			_ = os.RemoveAll(target)
			err = os.CopyFS(target, os.DirFS(lib))
		} else {
			err = copyFile(lib, target, info.Mode().Perm())
		}
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLibraryCopyFailed.Error()), "path", lib)
		}
	}
	return nil
}

func matchExt(name string, exts []string) string {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return ext
		}
	}
	return ""
}

func normalise(name, ext string) string {
	n := strings.ToLower(name)
	n = strings.TrimSuffix(n, ext)
	return strings.TrimPrefix(n, "lib")
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // library paths come from the project config
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm) //nolint:gosec // destination is the build output
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
