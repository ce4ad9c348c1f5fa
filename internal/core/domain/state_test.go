package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/forge/internal/core/domain"
)

func TestHeaderSet_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.HeaderSet
		want bool
	}{
		{name: "both empty", a: domain.HeaderSet{}, b: nil, want: true},
		{name: "same entries", a: domain.HeaderSet{"/a.h": 1, "/b.h": 2}, b: domain.HeaderSet{"/b.h": 2, "/a.h": 1}, want: true},
		{name: "different time", a: domain.HeaderSet{"/a.h": 1}, b: domain.HeaderSet{"/a.h": 2}, want: false},
		{name: "extra header", a: domain.HeaderSet{"/a.h": 1}, b: domain.HeaderSet{"/a.h": 1, "/b.h": 1}, want: false},
		{name: "renamed header", a: domain.HeaderSet{"/a.h": 1}, b: domain.HeaderSet{"/b.h": 1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestHeaderSet_Clone(t *testing.T) {
	orig := domain.HeaderSet{"/a.h": 1}
	clone := orig.Clone()
	clone["/b.h"] = 2

	assert.Len(t, orig, 1)
	assert.NotNil(t, domain.HeaderSet(nil).Clone())
}

func TestFingerprint_ConfigDigest(t *testing.T) {
	compact := domain.Fingerprint{Config: json.RawMessage(`{"a":1,"b":[1,2]}`)}
	spaced := domain.Fingerprint{Config: json.RawMessage("{\n  \"a\": 1,\n  \"b\": [1, 2]\n}")}
	other := domain.Fingerprint{Config: json.RawMessage(`{"a":2,"b":[1,2]}`)}

	assert.Equal(t, compact.ConfigDigest(), spaced.ConfigDigest())
	assert.NotEqual(t, compact.ConfigDigest(), other.ConfigDigest())
	assert.Len(t, compact.ConfigDigest(), 64)
}

func TestRebuildDecision(t *testing.T) {
	d := domain.RebuildDecision{Added: []string{"/a.c"}, Changed: []string{"/b.c"}}
	assert.False(t, d.WholeReset())
	assert.Equal(t, []string{"/a.c", "/b.c"}, d.Stale())

	d.Resets = append(d.Resets, domain.ResetReason{Kind: domain.ResetClearRequested})
	assert.True(t, d.WholeReset())
}
