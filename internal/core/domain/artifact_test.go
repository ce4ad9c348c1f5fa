package domain_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
)

func TestObjectName(t *testing.T) {
	name := domain.ObjectName("", "/src/util/math.c")

	assert.True(t, strings.HasPrefix(name, "src_util_math.c."), name)
	assert.True(t, strings.HasSuffix(name, domain.ObjectExt), name)
	assert.NotContains(t, name, "/")
	assert.Equal(t, name, domain.ObjectName("", "/src/util/math.c"))
}

func TestObjectName_NoCollisions(t *testing.T) {
	// Both flatten to the same readable prefix.
	a := domain.ObjectName("", "/src/a_b/c.c")
	b := domain.ObjectName("", "/src/a/b_c.c")

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, domain.ResourceObjectName, domain.ObjectName("", "/icon"))
}

func TestObjectName_RelativeToRoot(t *testing.T) {
	root := filepath.FromSlash("/home/dev/game")

	inside := domain.ObjectName(root, filepath.Join(root, "src", "util", "math.c"))
	assert.True(t, strings.HasPrefix(inside, "src_util_math.c."), inside)

	outside := domain.ObjectName(root, filepath.FromSlash("/opt/vendor/zlib.c"))
	assert.True(t, strings.HasPrefix(outside, "opt_vendor_zlib.c."), outside)

	sibling := domain.ObjectName(root, filepath.FromSlash("/home/dev/game-extra/x.c"))
	assert.True(t, strings.HasPrefix(sibling, "home_dev_game-extra_x.c."), sibling)
}

func TestObjectName_LongPathFitsFileNameLimit(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "project")
	source := filepath.Join(root, strings.Repeat("nested-directory/", 15), "translation_unit.c")
	require.Greater(t, len(source)-len(root), 240)

	name := domain.ObjectName(root, source)
	assert.LessOrEqual(t, len(name), 255)
	assert.Contains(t, name, "_translation_unit.c.")

	other := domain.ObjectName(root, filepath.Join(root, "x", strings.Repeat("nested-directory/", 15), "translation_unit.c"))
	assert.NotEqual(t, name, other)

	require.NoError(t, os.WriteFile(domain.ObjectPath(dir, root, source), []byte("obj"), 0o600))
}

func TestObjectPath(t *testing.T) {
	got := domain.ObjectPath("/build/obj", "/proj", "/src/main.c")
	assert.Equal(t, "/build/obj", filepath.Dir(got))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		path string
		kind domain.SourceKind
		ok   bool
	}{
		{"main.c", domain.KindC, true},
		{"main.cpp", domain.KindCXX, true},
		{"main.cc", domain.KindCXX, true},
		{"main.cxx", domain.KindCXX, true},
		{"main.h", domain.KindC, false},
		{"README", domain.KindC, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, ok := domain.KindOf(tt.path)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.kind, kind)
			}
		})
	}
}
