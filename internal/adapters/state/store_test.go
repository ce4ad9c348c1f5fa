package state_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/state"
	"go.trai.ch/forge/internal/core/domain"
)

func sampleState() *domain.BuildState {
	return &domain.BuildState{
		Meta: domain.Fingerprint{
			OS:          "linux",
			ToolVersion: "1.0.0",
			Config:      json.RawMessage(`{"program-name":"demo"}`),
		},
		Files: map[string]domain.FileEntry{
			"/proj/src/main.c": {
				Time:    100,
				Headers: domain.HeaderSet{"/proj/src/util.h": 50},
			},
		},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build", domain.StateFileName)
	store := state.NewStore()

	require.NoError(t, store.Save(path, sampleState()))

	got, status, err := store.Load(path, "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, domain.StateLoaded, status)
	assert.Equal(t, "linux", got.Meta.OS)
	assert.Equal(t, sampleState().Meta.ConfigDigest(), got.Meta.ConfigDigest())
	assert.Equal(t, sampleState().Files, got.Files)
}

func TestStore_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.StateFileName)
	require.NoError(t, state.NewStore().Save(path, sampleState()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "state_layout", data)
}

func TestStore_LoadMissing(t *testing.T) {
	got, status, err := state.NewStore().Load(filepath.Join(t.TempDir(), "absent.json"), "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, domain.StateMissing, status)
	assert.Empty(t, got.Files)
}

func TestStore_LoadIncompatible(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "other version", content: `{"metainfo":{"os":"linux","build-system-version":"0.9.0","config":{}},"files":{}}`},
		{name: "corrupt", content: `{"metainfo":`},
		{name: "wrong shape", content: `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), domain.StateFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			got, status, err := state.NewStore().Load(path, "1.0.0")
			require.NoError(t, err)
			assert.Equal(t, domain.StateIncompatible, status)
			assert.Empty(t, got.Files)
		})
	}
}

func TestStore_LoadReadError(t *testing.T) {
	// A directory in place of the record cannot be read.
	path := t.TempDir()

	_, _, err := state.NewStore().Load(path, "1.0.0")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStateReadFailed.Error())
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.StateFileName)
	store := state.NewStore()

	require.NoError(t, store.Save(path, sampleState()))
	require.NoError(t, store.Save(path, domain.NewBuildState(domain.Fingerprint{ToolVersion: "1.0.0"})))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.StateFileName, entries[0].Name())

	got, status, err := store.Load(path, "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, domain.StateLoaded, status)
	assert.Empty(t, got.Files)
}

func TestStore_Remove(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.StateFileName)
	store := state.NewStore()

	require.NoError(t, store.Save(path, sampleState()))
	require.NoError(t, store.Remove(path))
	require.NoError(t, store.Remove(path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
