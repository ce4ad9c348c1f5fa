// Package resources embeds the program icon into a linkable object on Windows.
package resources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCompiler is the resource compiler used on Windows.
const DefaultCompiler = "windres"

// Windres implements ports.ResourceEmbedder using a windres-compatible tool.
type Windres struct {
	runner   ports.CommandRunner
	goos     string
	compiler string
}

// NewWindres creates a Windres for the host platform.
func NewWindres(runner ports.CommandRunner) *Windres {
	return NewWindresFor(runner, runtime.GOOS)
}

// NewWindresFor creates a Windres that behaves as it would on goos.
func NewWindresFor(runner ports.CommandRunner, goos string) *Windres {
	return &Windres{runner: runner, goos: goos, compiler: DefaultCompiler}
}

// Embed writes a resource script referencing icon, compiles it and returns
// the resulting object. Outside Windows, or without an icon, any stale
// resource object is removed and an empty path is returned.
func (w *Windres) Embed(ctx context.Context, icon, objDir string) (string, error) {
	script := filepath.Join(objDir, domain.ResourceScriptName)
	object := filepath.Join(objDir, domain.ResourceObjectName)
	defer func() { _ = os.Remove(script) }()

	if w.goos != "windows" || icon == "" || !isFile(icon) {
		if err := os.Remove(object); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", w.fail(err, object)
		}
		return "", nil
	}

	if err := os.MkdirAll(objDir, domain.DirPerm); err != nil {
		return "", w.fail(err, objDir)
	}

	base := filepath.Base(icon)
	rc := fmt.Sprintf("IDI_ICON1 ICON %q\n", base)
	if err := os.WriteFile(script, []byte(rc), domain.FilePerm); err != nil { //nolint:gosec // object dir is owned by the build
		return "", w.fail(err, script)
	}
	if err := copyFile(icon, filepath.Join(objDir, base)); err != nil {
		return "", w.fail(err, icon)
	}

	if err := w.runner.Run(ctx, objDir, []string{w.compiler, script, object}); err != nil {
		return "", w.fail(err, icon)
	}
	return object, nil
}

func (w *Windres) fail(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrResourceEmbeddingFailed.Error()), "path", path)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // icon path comes from the project config
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm) //nolint:gosec // object dir is owned by the build
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
