package detector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/detector"
)

func TestDetectEnvironment_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment(f))
}

func TestDetectEnvironment_Nil(t *testing.T) {
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment(nil))
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment(os.Stderr))
}
