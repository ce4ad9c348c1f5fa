package linear_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/forge/internal/adapters/linear"
	"go.trai.ch/forge/internal/core/ports"
)

func TestRenderer_UnitLogPadding(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	r := linear.NewRenderer(&buf, false)

	r.OnUnitLog("compile", 3, 10, "src/main.c")
	r.OnUnitLog("compile", 10, 10, "src/util.c")

	assert.Equal(t, "[ 3/10] src/main.c\n[10/10] src/util.c\n", buf.String())
}

func TestRenderer_LinearSkipsProgress(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	r := linear.NewRenderer(&buf, false)

	r.OnProgress("compile", 1, 2)
	assert.Empty(t, buf.String())
}

func TestRenderer_InteractiveProgress(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name    string
		percent bool
		want    string
	}{
		{name: "percent", percent: true, want: "Compile: Progress 30.0% done..."},
		{name: "count", percent: false, want: "Compile: 3 done of 10..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := linear.NewRenderer(&buf, true)
			r.Configure(ports.RenderOptions{Verbose: true, Percent: tt.percent})

			r.OnProgress("compile", 3, 10)
			assert.Equal(t, tt.want, buf.String())

			// The next line replaces the progress line.
			r.OnUnitLog("compile", 4, 10, "a.c")
			assert.Contains(t, buf.String(), "\r")
			assert.Contains(t, buf.String(), "[ 4/10] a.c\n")
		})
	}
}

func TestRenderer_PhaseEnd(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	r := linear.NewRenderer(&buf, false)

	r.OnPhaseEnd("analysis", 4, 4, 1500*time.Millisecond)
	r.OnPhaseEnd("compile", 2, 4, time.Second)

	assert.Equal(t, "✓ Analysis finished in 1.5s\n✗ Compile stopped: 2 of 4 done\n", buf.String())
}

func TestRenderer_Quiet(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	r := linear.NewRenderer(&buf, true)
	r.Configure(ports.RenderOptions{Verbose: false})

	r.OnUnitLog("compile", 1, 1, "a.c")
	r.OnProgress("compile", 1, 1)
	r.OnPhaseEnd("compile", 1, 1, time.Second)
	assert.Empty(t, buf.String())

	// Failures are always reported.
	r.OnPhaseEnd("compile", 0, 1, time.Second)
	assert.Contains(t, buf.String(), "Compile stopped")
}
