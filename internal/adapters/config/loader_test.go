package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, `
program-name: game
source-dirs: [src]
`)

	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, "game", cfg.ProgramName)
	assert.Equal(t, []string{filepath.Join(dir, "src")}, cfg.SourceDirs)
	assert.Equal(t, filepath.Join(dir, "build"), cfg.BuildDir)
	assert.Equal(t, "bin", cfg.BinDirName)
	assert.Equal(t, "obj", cfg.ObjDirName)
	assert.Equal(t, "libs", cfg.LibsOutput)
	assert.True(t, cfg.BuildLogging)
	assert.True(t, cfg.MultiThreads)
	assert.True(t, cfg.ProgressPercent)
	assert.False(t, cfg.Strip)
	assert.False(t, cfg.ConsoleDisabled)
	assert.Equal(t, "-O0", cfg.Optimization)
	assert.Equal(t, "c17", cfg.StdC)
	assert.Equal(t, "c++17", cfg.StdCPP)
	assert.Equal(t, "gcc", cfg.CompilerC)
	assert.Equal(t, "g++", cfg.CompilerCPP)
	assert.Equal(t, "g++", cfg.Linker)
	assert.Equal(t, filepath.Join(dir, "build", "obj"), cfg.ObjDir())
}

func TestLoad_ExplicitValues(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, `
program-name: game
program-icon: assets/icon.ico
source-dirs: [src, /abs/engine]
build-dir: out
build-logging: false
multi-threads: false
progress-percent: false
strip: true
defines: [DEBUG, " ", VERSION=2]
includes: [include]
libraries: [vendor/lib]
libnames: [SDL2]
optimization: -O2
compiler-c: clang
compiler-cpp: clang++
linker: clang++
warnings: [-Wall]
compile-flags: [-g]
linker-flags: [-pthread]
`)

	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "assets", "icon.ico"), cfg.ProgramIcon)
	assert.Equal(t, []string{filepath.Join(dir, "src"), "/abs/engine"}, cfg.SourceDirs)
	assert.Equal(t, filepath.Join(dir, "out"), cfg.BuildDir)
	assert.False(t, cfg.BuildLogging)
	assert.False(t, cfg.MultiThreads)
	assert.False(t, cfg.ProgressPercent)
	assert.True(t, cfg.Strip)
	assert.Equal(t, []string{"DEBUG", "VERSION=2"}, cfg.Defines)
	assert.Equal(t, []string{filepath.Join(dir, "include")}, cfg.Includes)
	assert.Equal(t, []string{filepath.Join(dir, "vendor", "lib")}, cfg.Libraries)
	assert.Equal(t, []string{"SDL2"}, cfg.LibNames)
	assert.Equal(t, "-O2", cfg.Optimization)
	assert.Equal(t, "clang", cfg.CompilerC)
	assert.Equal(t, "clang++", cfg.CompilerCPP)
	assert.Equal(t, "clang++", cfg.Linker)
	assert.Equal(t, []string{"-Wall"}, cfg.Warnings)
	assert.Equal(t, []string{"-g"}, cfg.ExtraCompile)
	assert.Equal(t, []string{"-pthread"}, cfg.ExtraLink)
}

func TestLoad_DiscoversConfigInParent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	writeConfig(t, dir, "program-name: game\nsource-dirs: [src]\n")
	nested := filepath.Join(dir, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Root)
}

func TestLoad_EmptyPathSearchesFromWorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	writeConfig(t, dir, "program-name: game\nsource-dirs: [src]\n")
	nested := filepath.Join(dir, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))
	t.Chdir(nested)

	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load("")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(cfg.Root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_WarnsOnUnknownKeys(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn("ignoring unknown config key colour")

	path := writeConfig(t, t.TempDir(), "program-name: game\nsource-dirs: [src]\ncolour: red\n")

	_, err := config.NewLoader(logger).Load(path)
	require.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "malformed yaml", content: "program-name: [", want: domain.ErrConfigParseFailed.Error()},
		{name: "wrong type", content: "program-name: game\nsource-dirs: src\n", want: domain.ErrConfigParseFailed.Error()},
		{name: "missing program name", content: "source-dirs: [src]\n", want: domain.ErrConfigInvalid.Error()},
		{name: "program name with separator", content: "program-name: a/b\nsource-dirs: [src]\n", want: domain.ErrConfigInvalid.Error()},
		{name: "no source dirs", content: "program-name: game\n", want: domain.ErrConfigInvalid.Error()},
		{name: "empty compiler", content: "program-name: game\nsource-dirs: [src]\ncompiler-c: \"\"\n", want: domain.ErrConfigInvalid.Error()},
		{name: "empty linker", content: "program-name: game\nsource-dirs: [src]\nlinker: \"\"\n", want: domain.ErrConfigInvalid.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			path := writeConfig(t, t.TempDir(), tt.content)

			_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
