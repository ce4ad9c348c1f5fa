package domain

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"maps"

	"github.com/zeebo/blake3"
)

// HeaderSet maps every header transitively included by a source to its
// modification time in Unix nanoseconds.
type HeaderSet map[string]int64

// Equal reports whether both sets hold the same headers with the same times.
func (h HeaderSet) Equal(other HeaderSet) bool {
	if len(h) != len(other) {
		return false
	}
	for path, mtime := range h {
		if got, ok := other[path]; !ok || got != mtime {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (h HeaderSet) Clone() HeaderSet {
	if h == nil {
		return HeaderSet{}
	}
	return maps.Clone(h)
}

// Fingerprint identifies the environment a build state was produced in.
type Fingerprint struct {
	OS          string          `json:"os"`
	ToolVersion string          `json:"build-system-version"`
	Config      json.RawMessage `json:"config"`
}

// ConfigDigest returns a stable digest of the configuration snapshot.
// Insignificant whitespace is ignored.
func (f Fingerprint) ConfigDigest() string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, f.Config); err != nil {
		buf.Reset()
		buf.Write(f.Config)
	}

	h := blake3.New()
	_, _ = h.Write(buf.Bytes())
	return hex.EncodeToString(h.Sum(nil))
}

// FileEntry is the snapshot of one source at the time it was last built.
type FileEntry struct {
	Time    int64     `json:"time"`
	Headers HeaderSet `json:"headers"`
}

// BuildState is the persisted record of one build.
type BuildState struct {
	Meta  Fingerprint          `json:"metainfo"`
	Files map[string]FileEntry `json:"files"`
}

// NewBuildState returns an empty state carrying the given fingerprint.
func NewBuildState(meta Fingerprint) *BuildState {
	return &BuildState{
		Meta:  meta,
		Files: make(map[string]FileEntry),
	}
}

// LoadStatus reports what was found when reading the persisted state.
type LoadStatus int

const (
	// StateLoaded means a compatible record was read.
	StateLoaded LoadStatus = iota
	// StateMissing means no record exists yet.
	StateMissing
	// StateIncompatible means a record exists but cannot be trusted.
	StateIncompatible
)

// String returns a human readable status.
func (s LoadStatus) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateMissing:
		return "missing"
	case StateIncompatible:
		return "incompatible"
	default:
		return "unknown"
	}
}
