package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// MaxObjectPrefix bounds the readable part of an object name so the full
// name stays below the common 255 byte file name limit.
const MaxObjectPrefix = 200

var nameReplacer = strings.NewReplacer("/", "_", "\\", "_", ":", "_")

// ObjectName returns the object file name for a source path.
// The readable prefix mirrors the path relative to root, or the absolute path
// when source lies outside root. Long prefixes keep their tail. The hash of
// the absolute path keeps two sources that share a prefix apart.
func ObjectName(root, source string) string {
	display := source
	if root != "" {
		if rel, err := filepath.Rel(root, source); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			display = rel
		}
	}

	flat := strings.TrimLeft(nameReplacer.Replace(filepath.ToSlash(display)), "_")
	if len(flat) > MaxObjectPrefix {
		cut := len(flat) - MaxObjectPrefix
		for cut < len(flat) && !utf8.RuneStart(flat[cut]) {
			cut++
		}
		flat = flat[cut:]
	}
	return fmt.Sprintf("%s.%016x%s", flat, xxhash.Sum64String(source), ObjectExt)
}

// ObjectPath joins the object directory with the object name of source.
func ObjectPath(objDir, root, source string) string {
	return filepath.Join(objDir, ObjectName(root, source))
}
