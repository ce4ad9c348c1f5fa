// Package deps computes the transitive set of headers a translation unit includes.
package deps

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"syscall"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

var includeDirective = regexp.MustCompile(`^\s*#\s*include\s*[<"]([^">]+)[">]`)

const maxLineSize = 1 << 20

// MTimeCache memoises header modification times for one build.
// Concurrent writers only ever store the same value for a path.
type MTimeCache struct {
	m sync.Map
}

// NewMTimeCache returns an empty cache.
func NewMTimeCache() *MTimeCache {
	return &MTimeCache{}
}

// Stat returns the modification time of path and whether it is a regular file.
func (c *MTimeCache) Stat(path string) (int64, bool, error) {
	if v, ok := c.m.Load(path); ok {
		return v.(int64), true, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, false, err
	}
	if !info.Mode().IsRegular() {
		return 0, false, nil
	}

	mtime := info.ModTime().UnixNano()
	c.m.Store(path, mtime)
	return mtime, true, nil
}

// Crawler resolves include directives against the including file's directory
// and then the configured include directories, in order.
type Crawler struct {
	includeDirs []string
	cache       *MTimeCache
}

// NewCrawler creates a Crawler sharing cache with every other crawler of the run.
func NewCrawler(includeDirs []string, cache *MTimeCache) *Crawler {
	if cache == nil {
		cache = NewMTimeCache()
	}
	return &Crawler{includeDirs: includeDirs, cache: cache}
}

// Closure returns every header reachable from source through include
// directives. Headers that cannot be found or read are skipped.
func (c *Crawler) Closure(source string) (domain.HeaderSet, error) {
	_, found, err := c.walk(source, map[string]struct{}{}, domain.HeaderSet{})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDependencyScanFailed.Error()), "source", source)
	}
	return found, nil
}

func (c *Crawler) walk(path string, visited map[string]struct{}, found domain.HeaderSet) (map[string]struct{}, domain.HeaderSet, error) {
	if _, seen := visited[path]; seen {
		return visited, found, nil
	}
	visited[path] = struct{}{}

	includes, err := scanIncludes(path)
	if err != nil {
		if ignorable(err) {
			return visited, found, nil
		}
		return visited, found, err
	}

	for _, name := range includes {
		header, mtime, ok, err := c.resolve(filepath.Dir(path), name)
		if err != nil {
			return visited, found, err
		}
		if !ok {
			continue
		}
		if _, dup := found[header]; dup {
			continue
		}
		found[header] = mtime

		visited, found, err = c.walk(header, visited, found)
		if err != nil {
			return visited, found, err
		}
	}

	return visited, found, nil
}

// resolve returns the first candidate for name that exists as a regular file.
func (c *Crawler) resolve(dir, name string) (string, int64, bool, error) {
	candidates := make([]string, 0, 1+len(c.includeDirs))
	candidates = append(candidates, filepath.Join(dir, name))
	for _, inc := range c.includeDirs {
		candidates = append(candidates, filepath.Join(inc, name))
	}

	for _, candidate := range candidates {
		mtime, ok, err := c.cache.Stat(candidate)
		if err != nil {
			if ignorable(err) {
				continue
			}
			return "", 0, false, err
		}
		if ok {
			return candidate, mtime, true, nil
		}
	}
	return "", 0, false, nil
}

func scanIncludes(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // paths come from the project tree
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if m := includeDirective.FindSubmatch(scanner.Bytes()); m != nil {
			names = append(names, string(m[1]))
		}
	}
	return names, scanner.Err()
}

// ignorable reports whether err is an expected failure to read one header.
func ignorable(err error) bool {
	switch {
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, syscall.EISDIR),
		errors.Is(err, syscall.ENOTDIR),
		errors.Is(err, syscall.ENAMETOOLONG),
		errors.Is(err, syscall.ELOOP),
		errors.Is(err, bufio.ErrTooLong):
		return true
	}
	return false
}
