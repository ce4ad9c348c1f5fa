package staleness_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/staleness"
	"go.uber.org/mock/gomock"
)

func meta(os, config string) domain.Fingerprint {
	return domain.Fingerprint{OS: os, ToolVersion: "1.0.0", Config: json.RawMessage(config)}
}

func stateOf(m domain.Fingerprint, files map[string]domain.FileEntry) *domain.BuildState {
	st := domain.NewBuildState(m)
	for k, v := range files {
		st.Files[k] = v
	}
	return st
}

func TestDetect_Classification(t *testing.T) {
	m := meta("linux", `{}`)
	prev := stateOf(m, map[string]domain.FileEntry{
		"/src/same.c":    {Time: 1, Headers: domain.HeaderSet{"/inc/a.h": 1}},
		"/src/touched.c": {Time: 1},
		"/src/header.c":  {Time: 1, Headers: domain.HeaderSet{"/inc/a.h": 1}},
		"/src/lost.c":    {Time: 1, Headers: domain.HeaderSet{"/inc/a.h": 1, "/inc/b.h": 1}},
		"/src/gained.c":  {Time: 1},
		"/src/deleted.c": {Time: 1},
	})
	curr := stateOf(m, map[string]domain.FileEntry{
		"/src/same.c":    {Time: 1, Headers: domain.HeaderSet{"/inc/a.h": 1}},
		"/src/touched.c": {Time: 2},
		"/src/header.c":  {Time: 1, Headers: domain.HeaderSet{"/inc/a.h": 2}},
		"/src/lost.c":    {Time: 1, Headers: domain.HeaderSet{"/inc/a.h": 1}},
		"/src/gained.c":  {Time: 1, Headers: domain.HeaderSet{"/inc/c.h": 1}},
		"/src/new.c":     {Time: 1},
	})

	d := staleness.Detect(prev, curr, domain.StateLoaded, false)

	assert.False(t, d.WholeReset())
	assert.Equal(t, []string{"/src/new.c"}, d.Added)
	assert.Equal(t, []string{"/src/gained.c", "/src/header.c", "/src/lost.c", "/src/touched.c"}, d.Changed)
	assert.Equal(t, []string{"/src/deleted.c"}, d.Removed)
	assert.Equal(t, []string{"/src/same.c"}, d.Unaffected)
}

func TestDetect_Resets(t *testing.T) {
	base := stateOf(meta("linux", `{"a":1}`), nil)

	tests := []struct {
		name   string
		prev   *domain.BuildState
		curr   *domain.BuildState
		status domain.LoadStatus
		clear  bool
		want   []domain.ResetKind
	}{
		{name: "nothing changed", prev: base, curr: stateOf(meta("linux", `{ "a": 1 }`), nil), status: domain.StateLoaded},
		{name: "clear requested", prev: base, curr: base, status: domain.StateLoaded, clear: true, want: []domain.ResetKind{domain.ResetClearRequested}},
		{name: "missing state", prev: stateOf(domain.Fingerprint{}, nil), curr: base, status: domain.StateMissing, want: []domain.ResetKind{domain.ResetNoPreviousState}},
		{name: "incompatible state", prev: stateOf(domain.Fingerprint{}, nil), curr: base, status: domain.StateIncompatible, want: []domain.ResetKind{domain.ResetIncompatibleState}},
		{name: "platform changed", prev: base, curr: stateOf(meta("windows", `{"a":1}`), nil), status: domain.StateLoaded, want: []domain.ResetKind{domain.ResetPlatformChanged}},
		{name: "config changed", prev: base, curr: stateOf(meta("linux", `{"a":2}`), nil), status: domain.StateLoaded, want: []domain.ResetKind{domain.ResetConfigChanged}},
		{
			name: "several reasons", prev: base, curr: stateOf(meta("darwin", `{"a":2}`), nil), status: domain.StateLoaded, clear: true,
			want: []domain.ResetKind{domain.ResetClearRequested, domain.ResetPlatformChanged, domain.ResetConfigChanged},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := staleness.Detect(tt.prev, tt.curr, tt.status, tt.clear)

			var got []domain.ResetKind
			for _, r := range d.Resets {
				got = append(got, r.Kind)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) > 0, d.WholeReset())
		})
	}
}

func TestDetect_PlatformDetail(t *testing.T) {
	d := staleness.Detect(stateOf(meta("linux", `{}`), nil), stateOf(meta("windows", `{}`), nil), domain.StateLoaded, false)
	require.Len(t, d.Resets, 1)
	assert.Equal(t, "linux -> windows", d.Resets[0].Detail)
}

func TestReconcile_Incremental(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mocks.NewMockArtifactStore(ctrl)

	const objDir = "/build/obj"
	curr := stateOf(meta("linux", `{}`), map[string]domain.FileEntry{
		"/src/a.c": {Time: 1},
		"/src/b.c": {Time: 1},
		"/src/c.c": {Time: 1},
	})
	d := domain.RebuildDecision{
		Changed:    []string{"/src/b.c"},
		Unaffected: []string{"/src/a.c", "/src/c.c"},
		Removed:    []string{"/src/old.c"},
	}

	orphan := domain.ObjectPath(objDir, "/", "/src/old.c")
	icon := objDir + "/" + domain.ResourceObjectName
	artifacts.EXPECT().List(objDir).Return([]string{
		domain.ObjectPath(objDir, "/", "/src/a.c"),
		domain.ObjectPath(objDir, "/", "/src/b.c"),
		orphan,
		icon,
	}, nil)
	artifacts.EXPECT().Remove(orphan).Return(nil)

	got, err := staleness.Reconcile(context.Background(), d, curr, objDir, "/", artifacts)
	require.NoError(t, err)

	// c.c is unaffected but its artifact is gone.
	assert.Equal(t, []string{"/src/b.c", "/src/c.c"}, got)
}

func TestReconcile_WholeReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mocks.NewMockArtifactStore(ctrl)

	const objDir = "/build/obj"
	curr := stateOf(meta("linux", `{}`), map[string]domain.FileEntry{
		"/src/a.c": {Time: 1},
		"/src/b.c": {Time: 1},
	})
	d := domain.RebuildDecision{
		Unaffected: []string{"/src/a.c", "/src/b.c"},
		Resets:     []domain.ResetReason{{Kind: domain.ResetConfigChanged}},
	}

	existing := []string{
		domain.ObjectPath(objDir, "/", "/src/a.c"),
		objDir + "/" + domain.ResourceObjectName,
	}
	artifacts.EXPECT().List(objDir).Return(existing, nil)
	for _, obj := range existing {
		artifacts.EXPECT().Remove(obj).Return(nil)
	}

	got, err := staleness.Reconcile(context.Background(), d, curr, objDir, "/", artifacts)
	require.NoError(t, err)
	assert.Equal(t, []string{"/src/a.c", "/src/b.c"}, got)
}

func TestReconcile_RemoveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mocks.NewMockArtifactStore(ctrl)

	orphan := domain.ObjectPath("/obj", "/", "/src/gone.c")
	artifacts.EXPECT().List("/obj").Return([]string{orphan}, nil)
	artifacts.EXPECT().Remove(orphan).Return(errors.New("read-only file system"))

	_, err := staleness.Reconcile(context.Background(), domain.RebuildDecision{}, stateOf(meta("linux", `{}`), nil), "/obj", "/", artifacts)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArtifactCleanupFailed.Error())
}

func TestReconcile_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mocks.NewMockArtifactStore(ctrl)

	listErr := errors.New("permission denied")
	artifacts.EXPECT().List("/obj").Return(nil, listErr)

	_, err := staleness.Reconcile(context.Background(), domain.RebuildDecision{}, stateOf(meta("linux", `{}`), nil), "/obj", "/", artifacts)
	assert.ErrorIs(t, err, listErr)
}
