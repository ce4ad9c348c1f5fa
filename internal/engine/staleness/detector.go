// Package staleness decides which translation units must be rebuilt.
package staleness

import (
	"context"
	"maps"
	"path/filepath"
	"slices"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Detect compares the previous build state with the current one.
func Detect(prev, curr *domain.BuildState, status domain.LoadStatus, reset bool) domain.RebuildDecision {
	var d domain.RebuildDecision

	if reset {
		d.Resets = append(d.Resets, domain.ResetReason{Kind: domain.ResetClearRequested})
	}

	switch status {
	case domain.StateMissing:
		d.Resets = append(d.Resets, domain.ResetReason{Kind: domain.ResetNoPreviousState})
	case domain.StateIncompatible:
		d.Resets = append(d.Resets, domain.ResetReason{Kind: domain.ResetIncompatibleState})
	case domain.StateLoaded:
		if prev.Meta.OS != curr.Meta.OS {
			d.Resets = append(d.Resets, domain.ResetReason{
				Kind:   domain.ResetPlatformChanged,
				Detail: prev.Meta.OS + " -> " + curr.Meta.OS,
			})
		}
		if prev.Meta.ConfigDigest() != curr.Meta.ConfigDigest() {
			d.Resets = append(d.Resets, domain.ResetReason{Kind: domain.ResetConfigChanged})
		}
	}

	var prevFiles map[string]domain.FileEntry
	if prev != nil {
		prevFiles = prev.Files
	}

	for _, path := range slices.Sorted(maps.Keys(curr.Files)) {
		entry := curr.Files[path]
		old, ok := prevFiles[path]
		switch {
		case !ok:
			d.Added = append(d.Added, path)
		case old.Time != entry.Time || !old.Headers.Equal(entry.Headers):
			d.Changed = append(d.Changed, path)
		default:
			d.Unaffected = append(d.Unaffected, path)
		}
	}

	for _, path := range slices.Sorted(maps.Keys(prevFiles)) {
		if _, ok := curr.Files[path]; !ok {
			d.Removed = append(d.Removed, path)
		}
	}

	return d
}

// Reconcile brings the object directory in line with the decision and returns
// the sources that must be compiled, sorted. Object names are derived
// relative to root.
//
// A whole reset deletes every artifact. Otherwise only artifacts without a
// current source are deleted. A source whose artifact is missing is rebuilt
// even when its classification says unaffected.
func Reconcile(_ context.Context, d domain.RebuildDecision, curr *domain.BuildState, objDir, root string, artifacts ports.ArtifactStore) ([]string, error) {
	expected := make(map[string]string, len(curr.Files))
	for path := range curr.Files {
		expected[domain.ObjectPath(objDir, root, path)] = path
	}

	existing, err := artifacts.List(objDir)
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(existing))
	for _, obj := range existing {
		_, wanted := expected[obj]
		switch {
		case d.WholeReset():
		case filepath.Base(obj) == domain.ResourceObjectName:
			continue
		case wanted:
			present[obj] = struct{}{}
			continue
		}

		if err := artifacts.Remove(obj); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactCleanupFailed.Error()), "path", obj)
		}
	}

	mustBuild := make(map[string]struct{}, len(curr.Files))
	if d.WholeReset() {
		for path := range curr.Files {
			mustBuild[path] = struct{}{}
		}
	} else {
		for _, path := range d.Stale() {
			mustBuild[path] = struct{}{}
		}
		for obj, path := range expected {
			if _, ok := present[obj]; !ok {
				mustBuild[path] = struct{}{}
			}
		}
	}

	return slices.Sorted(maps.Keys(mustBuild)), nil
}
