// Package linear renders scheduler phases as terminal lines.
package linear

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/ui/output"
	"go.trai.ch/forge/internal/ui/style"
)

// Renderer implements ports.Renderer.
// In interactive mode the progress line is redrawn in place; otherwise only
// unit logs and phase summaries are printed.
type Renderer struct {
	out         *termenv.Output
	interactive bool

	mu       sync.Mutex
	opts     ports.RenderOptions
	progress bool
}

// NewRenderer creates a new Renderer writing to w.
func NewRenderer(w io.Writer, interactive bool) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{
		out:         output.New(w),
		interactive: interactive,
		opts:        ports.RenderOptions{Verbose: true, Percent: true},
	}
}

// Configure applies options for subsequent phases.
func (r *Renderer) Configure(opts ports.RenderOptions) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts = opts
}

// OnPhaseStart is a no-op; the first progress update announces the phase.
func (r *Renderer) OnPhaseStart(string, int) {}

// OnUnitLog prints one numbered unit line.
func (r *Renderer) OnUnitLog(_ string, seq, total int, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.opts.Verbose {
		return
	}
	r.clearProgressLocked()

	width := len(strconv.Itoa(total))
	prefix := r.out.String(fmt.Sprintf("[%*d/%d]", width, seq, total)).Foreground(termenv.RGBColor(string(style.Slate)))
	_, _ = fmt.Fprintf(r.out, "%s %s\n", prefix, msg)
}

// OnProgress redraws the progress line in interactive mode.
func (r *Renderer) OnProgress(phase string, completed, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.interactive || !r.opts.Verbose {
		return
	}

	r.clearProgressLocked()
	_, _ = fmt.Fprintf(r.out, "%s: %s", title(phase), r.describe(completed, total))
	r.progress = true
}

// OnPhaseEnd prints the phase summary.
func (r *Renderer) OnPhaseEnd(phase string, completed, total int, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearProgressLocked()

	if completed == total {
		if !r.opts.Verbose {
			return
		}
		icon := r.out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green)))
		_, _ = fmt.Fprintf(r.out, "%s %s finished in %s\n", icon, title(phase), elapsed.Round(time.Millisecond))
		return
	}

	icon := r.out.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red)))
	_, _ = fmt.Fprintf(r.out, "%s %s stopped: %d of %d done\n", icon, title(phase), completed, total)
}

func (r *Renderer) describe(completed, total int) string {
	if r.opts.Percent {
		pct := 100.0
		if total > 0 {
			pct = float64(completed) * 100 / float64(total)
		}
		return fmt.Sprintf("Progress %.1f%% done...", pct)
	}
	return fmt.Sprintf("%d done of %d...", completed, total)
}

func (r *Renderer) clearProgressLocked() {
	if !r.progress {
		return
	}
	_, _ = io.WriteString(r.out, "\r")
	r.out.ClearLine()
	r.progress = false
}

func title(phase string) string {
	if phase == "" {
		return phase
	}
	return strings.ToUpper(phase[:1]) + phase[1:]
}
