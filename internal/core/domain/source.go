package domain

import (
	"path/filepath"
	"strings"
)

// SourceKind distinguishes C translation units from C++ ones.
type SourceKind int

const (
	// KindC marks a C source file.
	KindC SourceKind = iota
	// KindCXX marks a C++ source file.
	KindCXX
)

// String returns the language name.
func (k SourceKind) String() string {
	if k == KindCXX {
		return "c++"
	}
	return "c"
}

// SourceUnit is one translation unit discovered under a source root.
type SourceUnit struct {
	// Path is absolute and cleaned.
	Path string
	Kind SourceKind
	// ModTime is the file modification time in Unix nanoseconds.
	ModTime int64
}

// KindOf reports the kind of a source file by extension.
// The second result is false for files that are not translation units.
func KindOf(path string) (SourceKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".c":
		return KindC, true
	case ".cpp", ".cc", ".cxx", ".c++":
		return KindCXX, true
	default:
		return KindC, false
	}
}
